// Package importer traduce filas de hojas de cálculo con encabezados arbitrarios al
// esquema del catálogo mediante coincidencia difusa de columnas y conversión numérica textual.
package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kitchen-stores/internal/domain"
	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
)

const (
	// UnknownName marca filas sin columna de nombre reconocible; se descartan.
	UnknownName = "Unknown Item"
	// DefaultUnit unidad cuando la fila no trae una.
	DefaultUnit = "kg"
)

// DefaultMinThreshold umbral mínimo cuando la fila no trae uno utilizable.
var DefaultMinThreshold = decimal.NewFromInt(10)

// Result artículos importados y filas descartadas por no tener nombre.
type Result struct {
	Items     []*entity.StockItem
	Discarded int
}

// Importer convierte filas en artículos. Es puro salvo por el reloj y el generador de IDs.
type Importer struct {
	columns []FieldPatterns
	now     func() time.Time
	newID   func() string
}

// New construye el importador con la tabla DefaultColumns.
func New(now func() time.Time, newID func() string) *Importer {
	return &Importer{columns: DefaultColumns, now: now, newID: newID}
}

// Import deriva un artículo por fila. Las celdas en blanco cuentan como ausentes, así que
// una fila cuyo nombre es solo espacios se descarta igual que una sin columna de nombre.
// Si ninguna fila sobrevive devuelve domain.ErrFormat;
// el llamador no debe tocar el catálogo en ese caso. Con éxito, Items sustituye el
// catálogo completo (no es una fusión).
func (im *Importer) Import(rows []Row) (*Result, error) {
	now := im.now()
	res := &Result{Items: make([]*entity.StockItem, 0, len(rows))}
	seen := make(map[string]struct{}, len(rows))

	for _, raw := range rows {
		item := im.deriveItem(raw.present(), now)
		if item.Name == UnknownName {
			res.Discarded++
			continue
		}
		item.ID = im.uniqueID(item.ID, seen)
		seen[item.ID] = struct{}{}
		res.Items = append(res.Items, item)
	}

	if len(res.Items) == 0 {
		return nil, fmt.Errorf("%d filas sin columnas de nombre/cantidad identificables: %w", len(rows), domain.ErrFormat)
	}
	return res, nil
}

// maxIDAttempts llamadas extra al generador antes de desambiguar con sufijo.
const maxIDAttempts = 8

// uniqueID garantiza IDs únicos dentro del lote aunque el generador repita valores.
// Termina siempre: tras maxIDAttempts agrega un sufijo numérico creciente.
func (im *Importer) uniqueID(id string, seen map[string]struct{}) string {
	for i := 0; i < maxIDAttempts; i++ {
		if _, dup := seen[id]; !dup {
			return id
		}
		id = im.newID()
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if _, dup := seen[candidate]; !dup {
			return candidate
		}
	}
}

func (im *Importer) deriveItem(row Row, now time.Time) *entity.StockItem {
	cells := Match(row, im.columns)

	name := UnknownName
	if c, ok := cells[FieldName]; ok {
		name = strings.TrimSpace(c.text())
	}

	category := entity.CategoryMiscellaneous
	if c, ok := cells[FieldCategory]; ok {
		category = matchCategory(c.text())
	}

	quantity := decimal.Zero
	if c, ok := cells[FieldQuantity]; ok {
		if d, ok := extractNumber(c.text()); ok {
			quantity = d
		}
	}

	unit := DefaultUnit
	if c, ok := cells[FieldUnit]; ok {
		if u := strings.TrimSpace(c.text()); u != "" {
			unit = u
		}
	}

	minThreshold := DefaultMinThreshold
	if c, ok := cells[FieldMinThreshold]; ok {
		if d, ok := extractNumber(c.text()); ok {
			minThreshold = d
		}
	}

	return &entity.StockItem{
		ID:           im.newID(),
		Name:         name,
		Category:     category,
		Quantity:     quantity,
		Unit:         unit,
		MinThreshold: minThreshold,
		LastUpdated:  now,
	}
}

// matchCategory devuelve la primera categoría de la enumeración contenida en raw.
func matchCategory(raw string) entity.Category {
	lower := strings.ToLower(raw)
	for _, c := range entity.Categories {
		if strings.Contains(lower, strings.ToLower(string(c))) {
			return c
		}
	}
	return entity.CategoryMiscellaneous
}
