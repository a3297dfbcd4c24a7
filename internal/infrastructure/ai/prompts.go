package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
)

// conciseItem versión compacta de un artículo para no gastar tokens.
type conciseItem struct {
	N string  `json:"n"`
	Q float64 `json:"q"`
	T float64 `json:"t"`
	U string  `json:"u"`
}

type contextItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	MinThreshold float64 `json:"minThreshold"`
}

type contextTx struct {
	ItemName  string  `json:"itemName"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Timestamp string  `json:"timestamp"`
	Reason    string  `json:"reason,omitempty"`
}

// tipPayload recomendación tal como la devuelve el modelo.
type tipPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

func tipsPrompt(items []*entity.StockItem) string {
	concise := make([]conciseItem, 0, len(items))
	for _, it := range items {
		concise = append(concise, conciseItem{
			N: it.Name,
			Q: it.Quantity.InexactFloat64(),
			T: it.MinThreshold.InexactFloat64(),
			U: it.Unit,
		})
	}
	raw, _ := json.Marshal(concise)
	return fmt.Sprintf(`Examine this subset of critical Rajbhavan items: %s.
Provide 3 formal bureaucratic tips in Hindi.
1. Alert for low stock.
2. Procure timing advice.
3. Seasonal kitchen efficiency.`, raw)
}

func chatPrompt(query string, items []*entity.StockItem, recent []*entity.Transaction) string {
	ctxItems := make([]contextItem, 0, len(items))
	for _, it := range items {
		ctxItems = append(ctxItems, contextItem{
			ID:           it.ID,
			Name:         it.Name,
			Category:     string(it.Category),
			Quantity:     it.Quantity.InexactFloat64(),
			Unit:         it.Unit,
			MinThreshold: it.MinThreshold.InexactFloat64(),
		})
	}
	ctxTxs := make([]contextTx, 0, len(recent))
	for _, tx := range recent {
		ctxTxs = append(ctxTxs, contextTx{
			ItemName:  tx.ItemName,
			Type:      string(tx.Type),
			Amount:    tx.Amount.InexactFloat64(),
			Timestamp: tx.Timestamp.UTC().Format("2006-01-02T15:04:05Z"),
			Reason:    tx.Reason,
		})
	}
	rawItems, _ := json.Marshal(ctxItems)
	rawTxs, _ := json.Marshal(ctxTxs)

	return fmt.Sprintf(`You are the "Administrative Assistant" for the Rajbhavan Kitchen.

LANGUAGE RULE: Respond ONLY in Hindi (हिंदी).

Inventory Data (Subset of relevant items): %s
Recent Activity: %s

Instructions:
1. Use a formal, bureaucratic Hindi tone.
2. Refer to current quantities and units.
3. Items below "minThreshold" are urgent priorities.
4. If user asks for an item not in this context, politely explain you only have visibility over current records.

User Query: %q`, rawItems, rawTxs, query)
}

// toTips normaliza el tipo a WARNING/INFO/SUCCESS (INFO por defecto) y descarta entradas sin título.
func toTips(payload []tipPayload) []entity.IntelligenceTip {
	out := make([]entity.IntelligenceTip, 0, len(payload))
	for _, p := range payload {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			continue
		}
		typ := strings.ToUpper(strings.TrimSpace(p.Type))
		switch typ {
		case entity.TipWarning, entity.TipInfo, entity.TipSuccess:
		default:
			typ = entity.TipInfo
		}
		out = append(out, entity.IntelligenceTip{
			Title:       title,
			Description: strings.TrimSpace(p.Description),
			Type:        typ,
		})
	}
	return out
}
