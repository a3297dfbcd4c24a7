// Package pdf genera el registro de existencias imprimible del almacén.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del almacén   │  Fecha de generación        │
//	│  RESUMEN: Total artículos / En estado crítico               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Artículo | Categoría | Cantidad | Mínimo | Estado│
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: firma del encargado de almacén                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 15, Green: 23, Blue: 42}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorCritical = &props.Color{Red: 185, Green: 28, Blue: 28}
	colorStripe   = &props.Color{Red: 248, Green: 250, Blue: 252}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// StockRegisterGenerator implementa inventory.ReportGenerator usando Maroto v2.
type StockRegisterGenerator struct {
	title string
}

// NewStockRegisterGenerator construye el generador. title encabeza cada documento.
func NewStockRegisterGenerator(title string) *StockRegisterGenerator {
	if title == "" {
		title = "Kitchen Stores"
	}
	return &StockRegisterGenerator{title: title}
}

// StockRegister genera el PDF y devuelve sus bytes.
func (g *StockRegisterGenerator) StockRegister(items []*entity.StockItem, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Stock Register", true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	critical := 0
	for _, it := range items {
		if it.IsCritical() {
			critical++
		}
	}

	m.AddRows(headerRow(g.title, generatedAt))
	m.AddRows(summaryRow(len(items), critical))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("STOCK REGISTER", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generated", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(at.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func summaryRow(total, critical int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total items: %d   |   Below minimum: %d", total, critical), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Item", 4, align.Left),
		h("Category", 2, align.Left),
		h("Quantity", 2, align.Right),
		h("Minimum", 2, align.Right),
		h("Status", 1, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows: una fila por artículo; los críticos en rojo.
func tableRows(items []*entity.StockItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		status := "OK"
		var color *props.Color
		style := fontstyle.Normal
		if it.IsCritical() {
			status, color, style = "LOW", colorCritical, fontstyle.Bold
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: color, Style: style,
			}))
		}
		r := row.New(6).Add(
			cell(fmt.Sprint(i+1), 1, align.Center),
			cell(it.Name, 4, align.Left),
			cell(string(it.Category), 2, align.Left),
			cell(it.Quantity.String()+" "+it.Unit, 2, align.Right),
			cell(it.MinThreshold.String()+" "+it.Unit, 2, align.Right),
			cell(status, 1, align.Center),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

func footerRow() core.Row {
	return row.New(20).Add(
		col.New(6),
		col.New(6).Add(
			text.New("Store Keeper (signature)", props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}
