package importer

import "strings"

// Field campo semántico del catálogo que el importador intenta localizar.
type Field string

const (
	FieldName         Field = "name"
	FieldCategory     Field = "category"
	FieldQuantity     Field = "quantity"
	FieldUnit         Field = "unit"
	FieldMinThreshold Field = "minThreshold"
)

// FieldPatterns asocia un campo con sus patrones candidatos (subcadenas, sin distinguir mayúsculas).
type FieldPatterns struct {
	Field    Field
	Patterns []string
}

// DefaultColumns tabla de coincidencias evaluada en orden. Cambiar el orden de los
// patrones o de los campos cambia el resultado con encabezados ambiguos.
var DefaultColumns = []FieldPatterns{
	{Field: FieldName, Patterns: []string{"name", "nomenclature", "particulars", "item", "description", "label"}},
	{Field: FieldCategory, Patterns: []string{"category", "group", "type", "class", "department"}},
	{Field: FieldQuantity, Patterns: []string{"qty", "quantity", "balance", "stock", "opening", "available", "amount"}},
	{Field: FieldUnit, Patterns: []string{"unit", "uom", "measure", "packaging"}},
	{Field: FieldMinThreshold, Patterns: []string{"min", "threshold", "buffer", "reorder", "limit"}},
}

// findCell devuelve la primera celda (en orden de columnas) cuyo encabezado en minúsculas
// contiene alguno de los patrones. ok=false si ninguna columna coincide.
func findCell(row Row, patterns []string) (Cell, bool) {
	for _, c := range row {
		key := strings.ToLower(c.Header)
		for _, p := range patterns {
			if strings.Contains(key, strings.ToLower(p)) {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// Match resuelve, para cada campo de columns, la celda que lo alimenta en row.
func Match(row Row, columns []FieldPatterns) map[Field]Cell {
	out := make(map[Field]Cell, len(columns))
	for _, fp := range columns {
		if c, ok := findCell(row, fp.Patterns); ok {
			out[fp.Field] = c
		}
	}
	return out
}
