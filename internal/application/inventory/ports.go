package inventory

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
	"github.com/jhoicas/kitchen-stores/internal/domain/importer"
)

// SpreadsheetReader convierte un archivo tabular en filas para el importador.
type SpreadsheetReader interface {
	ReadRows(ctx context.Context, r io.Reader) ([]importer.Row, error)
}

// SheetSource lee un rango de una hoja de cálculo remota (Google Sheets).
// ref es la URL de la hoja o su ID.
type SheetSource interface {
	ReadRange(ctx context.Context, ref, readRange string) ([]importer.Row, error)
}

// WorkbookWriter escribe el catálogo como libro de cálculo.
type WorkbookWriter interface {
	WriteStock(w io.Writer, items []*entity.StockItem) error
}

// ReportGenerator genera el registro de existencias imprimible.
type ReportGenerator interface {
	StockRegister(items []*entity.StockItem, generatedAt time.Time) ([]byte, error)
}

// Metrics contadores de negocio. Las implementaciones deben ser seguras para uso concurrente.
type Metrics interface {
	TransactionApplied(t entity.TransactionType)
	TransactionRejected(reason string)
	ImportFinished(result string)
	LowStockItems(n int)
}

// RefreshPolicy recibe los eventos que pueden disparar un refresco del asesor.
// Las implementaciones no deben bloquear.
type RefreshPolicy interface {
	ObserveTransaction(priorLedgerLen int)
	ObserveImport()
}

type nopMetrics struct{}

func (nopMetrics) TransactionApplied(entity.TransactionType) {}
func (nopMetrics) TransactionRejected(string)                {}
func (nopMetrics) ImportFinished(string)                     {}
func (nopMetrics) LowStockItems(int)                         {}

type nopRefresh struct{}

func (nopRefresh) ObserveTransaction(int) {}
func (nopRefresh) ObserveImport()         {}
