package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
)

// StockItemDTO artículo del catálogo en respuestas.
type StockItemDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
	LastUpdated  time.Time       `json:"last_updated"`
	Critical     bool            `json:"critical"` // quantity <= min_threshold
}

// TransactionDTO movimiento del libro mayor.
type TransactionDTO struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	Reason    string          `json:"reason,omitempty"`
}

// RegisterTransactionRequest body para POST /api/transactions.
type RegisterTransactionRequest struct {
	ItemID string          `json:"item_id"`
	Type   string          `json:"type"` // ADD | WITHDRAW
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason,omitempty"`
}

// RegisterTransactionResponse artículo actualizado y movimiento creado.
type RegisterTransactionResponse struct {
	Item        StockItemDTO   `json:"item"`
	Transaction TransactionDTO `json:"transaction"`
}

// ItemDetailDTO respuesta de GET /api/items/:id.
type ItemDetailDTO struct {
	Item    StockItemDTO     `json:"item"`
	History []TransactionDTO `json:"history"`
}

// TransactionListDTO respuesta paginada de GET /api/transactions.
type TransactionListDTO struct {
	Items []TransactionDTO `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ReplenishmentSuggestionDTO sugerencia de pedido para un artículo en estado crítico.
type ReplenishmentSuggestionDTO struct {
	ItemID            string          `json:"item_id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	MinThreshold      decimal.Decimal `json:"min_threshold"`
	IdealStock        decimal.Decimal `json:"ideal_stock"`         // MinThreshold * 1.5
	SuggestedOrderQty decimal.Decimal `json:"suggested_order_qty"` // IdealStock - CurrentStock
	Priority          int             `json:"priority"`            // 1 = más urgente
}

// ToStockItemDTO convierte la entidad a su representación HTTP.
func ToStockItemDTO(it *entity.StockItem) StockItemDTO {
	return StockItemDTO{
		ID:           it.ID,
		Name:         it.Name,
		Category:     string(it.Category),
		Quantity:     it.Quantity,
		Unit:         it.Unit,
		MinThreshold: it.MinThreshold,
		LastUpdated:  it.LastUpdated,
		Critical:     it.IsCritical(),
	}
}

// ToStockItemDTOs convierte una lista; nunca devuelve nil.
func ToStockItemDTOs(items []*entity.StockItem) []StockItemDTO {
	out := make([]StockItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, ToStockItemDTO(it))
	}
	return out
}

// ToTransactionDTO convierte el movimiento a su representación HTTP.
func ToTransactionDTO(tx *entity.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:        tx.ID,
		ItemID:    tx.ItemID,
		ItemName:  tx.ItemName,
		Type:      string(tx.Type),
		Amount:    tx.Amount,
		Timestamp: tx.Timestamp,
		Reason:    tx.Reason,
	}
}

// ToTransactionDTOs convierte una lista; nunca devuelve nil.
func ToTransactionDTOs(txs []*entity.Transaction) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(txs))
	for _, tx := range txs {
		out = append(out, ToTransactionDTO(tx))
	}
	return out
}
