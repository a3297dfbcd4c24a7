package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
)

// exportHeaders encabezados reconocidos por el importador, para poder reimportar el archivo.
var exportHeaders = []interface{}{"ID", "Name", "Category", "Quantity", "Unit", "Min Threshold", "Status", "Last Updated"}

// XLSXWriter exporta el catálogo a .xlsx.
type XLSXWriter struct{}

// NewXLSXWriter construye el escritor.
func NewXLSXWriter() *XLSXWriter { return &XLSXWriter{} }

// WriteStock escribe una fila por artículo; las filas críticas se resaltan.
func (XLSXWriter) WriteStock(w io.Writer, items []*entity.StockItem) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}
	criticalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#9B1C1C"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FDE8E8"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("xlsx: estilo críticos: %w", err)
	}

	header := exportHeaders
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: encabezado: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}

	for i, it := range items {
		row := i + 2
		status := "OK"
		if it.IsCritical() {
			status = "LOW"
		}
		values := []interface{}{
			it.ID,
			it.Name,
			string(it.Category),
			it.Quantity.InexactFloat64(),
			it.Unit,
			it.MinThreshold.InexactFloat64(),
			status,
			it.LastUpdated.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d: %w", row, err)
		}
		if it.IsCritical() {
			end := fmt.Sprintf("%s%d", lastCol, row)
			if err := f.SetCellStyle(sheet, cell, end, criticalStyle); err != nil {
				return fmt.Errorf("xlsx: estilo fila %d: %w", row, err)
			}
		}
	}
	_ = f.SetColWidth(sheet, "B", "B", 32)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: escribir: %w", err)
	}
	return nil
}
