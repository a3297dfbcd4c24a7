package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem representa un artículo del catálogo del almacén.
// Quantity nunca queda negativa después de una mutación aceptada.
type StockItem struct {
	ID           string
	Name         string
	Category     Category
	Quantity     decimal.Decimal
	Unit         string // kg, Liters, units...
	MinThreshold decimal.Decimal // punto de reorden
	LastUpdated  time.Time
}

// IsCritical indica violación de umbral: cantidad igual o inferior al mínimo.
func (i *StockItem) IsCritical() bool {
	return i.Quantity.LessThanOrEqual(i.MinThreshold)
}

// Clone devuelve una copia superficial; los campos son valores, así que la copia es independiente.
func (i *StockItem) Clone() *StockItem {
	c := *i
	return &c
}
