package spreadsheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/kitchen-stores/internal/domain/importer"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVReader lee archivos .csv con encabezado. Acepta UTF-8 (con o sin BOM) y
// Windows-1252, la codificación que usa Excel al exportar CSV en Windows.
type CSVReader struct{}

// NewCSVReader construye el lector.
func NewCSVReader() *CSVReader { return &CSVReader{} }

// ReadRows devuelve una fila por registro de datos.
func (CSVReader) ReadRows(ctx context.Context, r io.Reader) ([]importer.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("csv: leer: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var src io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parsear: %w", err)
	}
	return rowsFromTable(records), nil
}
