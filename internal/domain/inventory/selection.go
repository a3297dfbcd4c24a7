package inventory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
)

// AdvisoryCap máximo de artículos enviados al asesor en una sola llamada.
const AdvisoryCap = 50

// RecentActivityCap movimientos recientes que acompañan una consulta al asistente.
const RecentActivityCap = 10

// Critical filtra los artículos con violación de umbral, conservando el orden.
func Critical(items []*entity.StockItem) []*entity.StockItem {
	out := make([]*entity.StockItem, 0)
	for _, it := range items {
		if it.IsCritical() {
			out = append(out, it)
		}
	}
	return out
}

// AdvisorySubset subconjunto para las recomendaciones: críticos (máx. AdvisoryCap);
// si no hay críticos, los primeros AdvisoryCap del catálogo.
func AdvisorySubset(items []*entity.StockItem) []*entity.StockItem {
	if critical := Critical(items); len(critical) > 0 {
		return capItems(critical, AdvisoryCap)
	}
	return capItems(items, AdvisoryCap)
}

// ChatSubset subconjunto para el asistente: artículos cuyo nombre contiene alguna
// palabra de la consulta o que están en estado crítico (máx. AdvisoryCap).
func ChatSubset(query string, items []*entity.StockItem) []*entity.StockItem {
	words := strings.Fields(strings.ToLower(query))
	out := make([]*entity.StockItem, 0)
	for _, it := range items {
		if len(out) == AdvisoryCap {
			break
		}
		if it.IsCritical() || nameContainsAny(it.Name, words) {
			out = append(out, it)
		}
	}
	return out
}

func nameContainsAny(name string, words []string) bool {
	lower := strings.ToLower(name)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// Search filtra por nombre o categoría (sin distinguir mayúsculas) y ordena con
// SortCriticalFirst. query vacío devuelve todo el catálogo.
func Search(query string, items []*entity.StockItem) []*entity.StockItem {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]*entity.StockItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) || strings.Contains(strings.ToLower(string(it.Category)), q) {
			out = append(out, it)
		}
	}
	SortCriticalFirst(out)
	return out
}

// SortCriticalFirst ordena en sitio: primero los críticos, luego por nombre según collation.
func SortCriticalFirst(items []*entity.StockItem) {
	col := collate.New(language.English)
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		ac, bc := a.IsCritical(), b.IsCritical()
		if ac != bc {
			return ac
		}
		return col.CompareString(a.Name, b.Name) < 0
	})
}

// RecentFirst devuelve hasta limit movimientos del más reciente al más antiguo por fecha.
// limit <= 0 devuelve todos.
func RecentFirst(txs []*entity.Transaction, limit int) []*entity.Transaction {
	out := make([]*entity.Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func capItems(items []*entity.StockItem, n int) []*entity.StockItem {
	if len(items) > n {
		items = items[:n]
	}
	out := make([]*entity.StockItem, len(items))
	copy(out, items)
	return out
}
