package idgen

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionIDFunc(t *testing.T) {
	gen, err := NewTransactionIDFunc()
	require.NoError(t, err)

	re := regexp.MustCompile(`^[0-9a-z]{9}$`)
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := gen()
		assert.Regexp(t, re, id)
		seen[id] = true
	}
	assert.Len(t, seen, 1000)
}

func TestNewItemID(t *testing.T) {
	_, err := uuid.Parse(NewItemID())
	assert.NoError(t, err)
	assert.NotEqual(t, NewItemID(), NewItemID())
}
