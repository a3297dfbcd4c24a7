package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tipo de movimiento del libro mayor.
type TransactionType string

const (
	TransactionAdd      TransactionType = "ADD"      // entrada / reposición
	TransactionWithdraw TransactionType = "WITHDRAW" // salida / consumo
)

// Valid indica si t es ADD o WITHDRAW.
func (t TransactionType) Valid() bool {
	return t == TransactionAdd || t == TransactionWithdraw
}

// Transaction registro inmutable del libro mayor.
// ItemName es una copia del nombre al momento del movimiento; ItemID no se valida después.
type Transaction struct {
	ID        string
	ItemID    string
	ItemName  string
	Type      TransactionType
	Amount    decimal.Decimal // siempre positivo
	Timestamp time.Time
	Reason    string
}

// Clone devuelve una copia independiente del movimiento.
func (t *Transaction) Clone() *Transaction {
	c := *t
	return &c
}
