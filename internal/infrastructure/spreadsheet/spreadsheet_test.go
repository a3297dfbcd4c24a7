package spreadsheet_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
	"github.com/jhoicas/kitchen-stores/internal/domain/importer"
	"github.com/jhoicas/kitchen-stores/internal/infrastructure/spreadsheet"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf := new(bytes.Buffer)
	require.NoError(t, f.Write(buf))
	return buf
}

func cellValue(row importer.Row, header string) any {
	for _, c := range row {
		if c.Header == header {
			return c.Value
		}
	}
	return nil
}

func TestXLSXReader_PrimeraHojaConEncabezado(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"Item Name", "Qty", "UOM"},
		{"Rice", "200 kg", "kg"},
		{nil, nil, nil},
		{"Ghee", 35, nil},
	})

	rows, err := spreadsheet.NewXLSXReader().ReadRows(context.Background(), buf)
	require.NoError(t, err)
	require.Len(t, rows, 2, "las filas vacías se omiten")

	assert.Equal(t, "Rice", cellValue(rows[0], "Item Name"))
	assert.Equal(t, "200 kg", cellValue(rows[0], "Qty"))
	assert.Equal(t, "35", cellValue(rows[1], "Qty"))
	assert.Nil(t, cellValue(rows[1], "UOM"), "celda faltante queda sin valor")
}

func TestXLSXReader_ArchivoInvalido(t *testing.T) {
	_, err := spreadsheet.NewXLSXReader().ReadRows(context.Background(), bytes.NewBufferString("no es un zip"))
	assert.Error(t, err)
}

func TestCSVReader_UTF8ConBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Description,Category,Balance\nSugar,Grains,\"1,000\"\n,,\n")...)

	rows, err := spreadsheet.NewCSVReader().ReadRows(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Description", rows[0][0].Header, "el BOM no contamina el primer encabezado")
	assert.Equal(t, "1,000", cellValue(rows[0], "Balance"))
}

func TestCSVReader_Windows1252(t *testing.T) {
	// "Crème fraîche" codificado en Windows-1252
	data := []byte("Name,Qty\nCr\xe8me fra\xeeche,4\n")

	rows, err := spreadsheet.NewCSVReader().ReadRows(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Crème fraîche", cellValue(rows[0], "Name"))
}

func TestCSVReader_FilasIrregulares(t *testing.T) {
	data := []byte("Name,Qty,Unit\nSalt,12\nTea,3,kg,extra\n")

	rows, err := spreadsheet.NewCSVReader().ReadRows(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Nil(t, cellValue(rows[0], "Unit"))
	assert.Len(t, rows[1], 3, "columnas sin encabezado se ignoran")
}

func TestXLSXWriter_SePuedeReimportar(t *testing.T) {
	now := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	items := []*entity.StockItem{
		{ID: "1", Name: "Premium Basmati Rice", Category: entity.CategoryGrains, Quantity: decimal.NewFromInt(200), Unit: "kg", MinThreshold: decimal.NewFromInt(50), LastUpdated: now},
		{ID: "13", Name: "Cumin Seeds (Jeera)", Category: entity.CategorySpices, Quantity: decimal.RequireFromString("1.5"), Unit: "kg", MinThreshold: decimal.RequireFromString("1.5"), LastUpdated: now},
	}

	var buf bytes.Buffer
	require.NoError(t, spreadsheet.NewXLSXWriter().WriteStock(&buf, items))

	rows, err := spreadsheet.NewXLSXReader().ReadRows(context.Background(), &buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "LOW", cellValue(rows[1], "Status"))

	seq := 0
	imp := importer.New(func() time.Time { return now }, func() string { seq++; return string(rune('a' + seq)) })
	res, err := imp.Import(rows)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	cumin := res.Items[1]
	assert.Equal(t, "Cumin Seeds (Jeera)", cumin.Name)
	assert.Equal(t, entity.CategorySpices, cumin.Category)
	assert.True(t, cumin.Quantity.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, cumin.MinThreshold.Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, "kg", cumin.Unit)
}
