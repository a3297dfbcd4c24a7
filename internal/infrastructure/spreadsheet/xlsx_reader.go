package spreadsheet

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/kitchen-stores/internal/domain/importer"
)

// XLSXReader lee la primera hoja de un libro .xlsx/.xlsm.
type XLSXReader struct{}

// NewXLSXReader construye el lector.
func NewXLSXReader() *XLSXReader { return &XLSXReader{} }

// ReadRows devuelve una fila por cada fila de datos de la primera hoja.
func (XLSXReader) ReadRows(ctx context.Context, r io.Reader) ([]importer.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx: abrir libro: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []importer.Row{}, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("xlsx: leer hoja %q: %w", sheets[0], err)
	}
	return rowsFromTable(records), nil
}
