package importer

import (
	"strings"

	"github.com/spf13/cast"
)

// Cell par encabezado/valor de una fila. Value es de tipo libre (texto, número, bool...).
type Cell struct {
	Header string
	Value  any
}

// Row fila de hoja de cálculo con las columnas en su orden original.
// El orden importa: ante encabezados ambiguos gana la primera columna que coincide.
type Row []Cell

// NewRow arma una fila a partir del encabezado y los valores de la misma posición.
// Las columnas sobrantes de values (sin encabezado) se ignoran.
func NewRow(headers []string, values []any) Row {
	row := make(Row, 0, len(headers))
	for i, h := range headers {
		var v any
		if i < len(values) {
			v = values[i]
		}
		row = append(row, Cell{Header: h, Value: v})
	}
	return row
}

// text devuelve el valor de la celda como texto.
func (c Cell) text() string {
	return cast.ToString(c.Value)
}

// present descarta celdas sin encabezado o con valor en blanco, igual que los
// lectores de hojas que omiten celdas vacías al convertir filas en objetos.
func (r Row) present() Row {
	out := make(Row, 0, len(r))
	for _, c := range r {
		if strings.TrimSpace(c.Header) == "" || strings.TrimSpace(c.text()) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}
