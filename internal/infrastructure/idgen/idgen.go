// Package idgen genera identificadores: cortos en base 36 para movimientos y UUID para artículos.
package idgen

import (
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/jaevor/go-nanoid"
)

const (
	txAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	txLength   = 9
)

// NewTransactionIDFunc devuelve un generador de IDs de 9 caracteres en base 36.
// El generador devuelto es seguro para uso concurrente.
func NewTransactionIDFunc() (func() string, error) {
	gen, err := gonanoid.CustomASCII(txAlphabet, txLength)
	if err != nil {
		return nil, fmt.Errorf("idgen: %w", err)
	}
	return gen, nil
}

// NewItemID UUID v4 para artículos importados.
func NewItemID() string {
	return uuid.New().String()
}
