// Package spreadsheet lee y escribe hojas de cálculo (.xlsx con excelize, .csv)
// y las convierte en filas para el importador heurístico.
package spreadsheet

import (
	"strings"

	"github.com/jhoicas/kitchen-stores/internal/domain/importer"
)

// rowsFromTable toma la primera fila como encabezado. Las filas completamente vacías
// se omiten y las celdas vacías quedan ausentes (las descarta el importador).
func rowsFromTable(records [][]string) []importer.Row {
	if len(records) == 0 {
		return []importer.Row{}
	}
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]importer.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		values := make([]any, len(rec))
		for i, v := range rec {
			values[i] = v
		}
		rows = append(rows, importer.NewRow(headers, values))
	}
	return rows
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
