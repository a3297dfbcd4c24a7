package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kitchen-stores/internal/application/dto"
	domaininv "github.com/jhoicas/kitchen-stores/internal/domain/inventory"
)

// ReplenishmentUseCase genera la lista de reposición del almacén a partir de los artículos críticos.
type ReplenishmentUseCase struct {
	store *Store
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(store *Store) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{store: store}
}

// GenerateReplenishmentList devuelve los artículos en o bajo su mínimo con la cantidad
// sugerida de pedido. Prioridad: mayor déficit relativo primero.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) []dto.ReplenishmentSuggestionDTO {
	critical := domaininv.Critical(uc.store.Catalog())
	if len(critical) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}
	}

	factor := decimal.NewFromFloat(1.5)
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(critical))
	for _, item := range critical {
		ideal := item.MinThreshold.Mul(factor)
		qty := ideal.Sub(item.Quantity)
		if qty.LessThan(decimal.Zero) {
			qty = decimal.Zero
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ItemID:            item.ID,
			Name:              item.Name,
			Category:          string(item.Category),
			Unit:              item.Unit,
			CurrentStock:      item.Quantity,
			MinThreshold:      item.MinThreshold,
			IdealStock:        ideal,
			SuggestedOrderQty: qty,
		})
	}

	// Déficit relativo = (mínimo - actual) / mínimo; mínimo cero cuenta como déficit total.
	deficit := func(s dto.ReplenishmentSuggestionDTO) decimal.Decimal {
		if !s.MinThreshold.IsPositive() {
			return decimal.NewFromInt(1)
		}
		return s.MinThreshold.Sub(s.CurrentStock).Div(s.MinThreshold)
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := deficit(suggestions[i]), deficit(suggestions[j])
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		// Tiebreak: mayor cantidad sugerida
		return suggestions[i].SuggestedOrderQty.GreaterThan(suggestions[j].SuggestedOrderQty)
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions
}
