package sheets

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/jhoicas/kitchen-stores/internal/domain"
)

func TestParseSpreadsheetID(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://docs.google.com/spreadsheets/d/1AbC-dEf_123456/edit#gid=0", "1AbC-dEf_123456"},
		{"docs.google.com/spreadsheets/d/XYZ987654321/", "XYZ987654321"},
		{"  1AbC-dEf_123456  ", "1AbC-dEf_123456"},
	}
	for _, tc := range cases {
		got, err := ParseSpreadsheetID(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	for _, bad := range []string{"", "https://example.com/sheet", "corto"} {
		_, err := ParseSpreadsheetID(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
}

func TestReadRange(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"range":"Stock!A1:C4","majorDimension":"ROWS","values":[["Particulars","Balance","UOM"],["Ghee","35","Liters"],[],["Salt",12]]}`)
	}))
	defer srv.Close()

	src, err := NewSourceWithOptions(context.Background(), zerolog.Nop(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	rows, err := src.ReadRange(context.Background(), "https://docs.google.com/spreadsheets/d/sheet-id-12345/edit", "Stock!A:C")
	require.NoError(t, err)
	assert.True(t, strings.Contains(gotPath, "sheet-id-12345"), gotPath)

	require.Len(t, rows, 2)
	assert.Equal(t, "Particulars", rows[0][0].Header)
	assert.Equal(t, "Ghee", rows[0][0].Value)
	assert.Equal(t, float64(12), rows[1][1].Value)
	assert.Nil(t, rows[1][2].Value)

	_, err = src.ReadRange(context.Background(), "sheet-id-12345", " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
