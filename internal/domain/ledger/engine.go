// Package ledger implementa el motor del libro mayor: aplica entradas y salidas
// sobre una instantánea del catálogo y produce el registro inmutable del movimiento.
//
// El motor es puro: no guarda estado, no bloquea y no decide refrescos ni
// notificaciones. Quien lo invoca debe serializar las llamadas concurrentes;
// aplicar dos instantáneas en paralelo y escribir ambas pierde actualizaciones.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kitchen-stores/internal/domain"
	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
)

// Request solicitud de movimiento sobre un artículo.
type Request struct {
	ItemID string
	Amount decimal.Decimal
	Type   entity.TransactionType
	Reason string
}

// Result catálogo actualizado más el movimiento generado.
// Catalog comparte los punteros de los artículos no afectados con el catálogo de entrada.
type Result struct {
	Catalog     []*entity.StockItem
	Transaction *entity.Transaction
}

// Engine aplica movimientos con reloj y generador de IDs inyectados.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// NewEngine construye el motor. now y newID no pueden ser nil.
func NewEngine(now func() time.Time, newID func() string) *Engine {
	return &Engine{now: now, newID: newID}
}

// Apply valida y aplica req sobre catalog. Nunca modifica catalog ni sus artículos:
// devuelve un slice nuevo donde solo el artículo afectado es una copia actualizada.
//
// Errores: domain.ErrInvalidAmount (precondición: amount > 0), domain.ErrInvalidInput
// (tipo desconocido), domain.ErrItemNotFound, domain.ErrInsufficientStock.
func (e *Engine) Apply(catalog []*entity.StockItem, req Request) (*Result, error) {
	if !req.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("tipo %q: %w", req.Type, domain.ErrInvalidInput)
	}

	idx := indexOf(catalog, req.ItemID)
	if idx < 0 {
		return nil, fmt.Errorf("artículo %q: %w", req.ItemID, domain.ErrItemNotFound)
	}
	item := catalog[idx]

	var newQty decimal.Decimal
	switch req.Type {
	case entity.TransactionAdd:
		newQty = item.Quantity.Add(req.Amount)
	case entity.TransactionWithdraw:
		if req.Amount.GreaterThan(item.Quantity) {
			return nil, fmt.Errorf("%s: disponible %s, solicitado %s: %w",
				item.Name, item.Quantity.String(), req.Amount.String(), domain.ErrInsufficientStock)
		}
		newQty = item.Quantity.Sub(req.Amount)
	}

	now := e.now()
	updated := item.Clone()
	updated.Quantity = newQty
	updated.LastUpdated = now

	next := make([]*entity.StockItem, len(catalog))
	copy(next, catalog)
	next[idx] = updated

	return &Result{
		Catalog: next,
		Transaction: &entity.Transaction{
			ID:        e.newID(),
			ItemID:    item.ID,
			ItemName:  item.Name,
			Type:      req.Type,
			Amount:    req.Amount,
			Timestamp: now,
			Reason:    req.Reason,
		},
	}, nil
}

func indexOf(catalog []*entity.StockItem, id string) int {
	for i, it := range catalog {
		if it.ID == id {
			return i
		}
	}
	return -1
}
