package inventory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/kitchen-stores/internal/application/dto"
	"github.com/jhoicas/kitchen-stores/internal/domain"
	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
	"github.com/jhoicas/kitchen-stores/internal/domain/importer"
	domaininv "github.com/jhoicas/kitchen-stores/internal/domain/inventory"
	"github.com/jhoicas/kitchen-stores/internal/domain/ledger"
)

// Resultados de importación para métricas.
const (
	ImportOK          = "ok"
	ImportFormatError = "format_error"
	ImportReadError   = "read_error"
)

// Deps colaboradores del caso de uso. Los campos nil se reemplazan por no-ops
// o dejan la operación correspondiente deshabilitada.
type Deps struct {
	Readers      map[string]SpreadsheetReader // por extensión en minúsculas: ".xlsx", ".csv"
	Sheets       SheetSource                  // nil: importación desde Google Sheets deshabilitada
	DefaultRange string                       // rango por defecto para Sheets, ej. "A:Z"
	Writer       WorkbookWriter
	Reports      ReportGenerator
	Metrics      Metrics
	Refresh      RefreshPolicy
	Now          func() time.Time
}

// UseCase orquesta el libro mayor, la importación y los reportes sobre el Store.
type UseCase struct {
	store    *Store
	importer *importer.Importer
	deps     Deps
	log      zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(store *Store, imp *importer.Importer, deps Deps, log zerolog.Logger) *UseCase {
	if deps.Metrics == nil {
		deps.Metrics = nopMetrics{}
	}
	if deps.Refresh == nil {
		deps.Refresh = nopRefresh{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.DefaultRange == "" {
		deps.DefaultRange = "A:Z"
	}
	uc := &UseCase{store: store, importer: imp, deps: deps, log: log}
	deps.Metrics.LowStockItems(store.Stats().LowStockCount)
	return uc
}

// SetRefreshPolicy conecta el asesor después de construir ambos casos de uso.
func (uc *UseCase) SetRefreshPolicy(p RefreshPolicy) {
	if p == nil {
		p = nopRefresh{}
	}
	uc.deps.Refresh = p
}

// RegisterTransaction valida la solicitud y la aplica al libro mayor.
// El refresco del asesor se dispara sin bloquear la respuesta.
func (uc *UseCase) RegisterTransaction(ctx context.Context, in dto.RegisterTransactionRequest) (*dto.RegisterTransactionResponse, error) {
	txType := entity.TransactionType(strings.ToUpper(strings.TrimSpace(in.Type)))
	switch {
	case strings.TrimSpace(in.ItemID) == "":
		uc.deps.Metrics.TransactionRejected("validation")
		return nil, fmt.Errorf("item_id es obligatorio: %w", domain.ErrInvalidInput)
	case !txType.Valid():
		uc.deps.Metrics.TransactionRejected("validation")
		return nil, fmt.Errorf("type debe ser ADD o WITHDRAW: %w", domain.ErrInvalidInput)
	case !in.Amount.IsPositive():
		uc.deps.Metrics.TransactionRejected("validation")
		return nil, domain.ErrInvalidAmount
	}

	applied, err := uc.store.Apply(ledger.Request{
		ItemID: strings.TrimSpace(in.ItemID),
		Amount: in.Amount,
		Type:   txType,
		Reason: strings.TrimSpace(in.Reason),
	})
	if err != nil {
		uc.deps.Metrics.TransactionRejected(rejectReason(err))
		uc.log.Info().Err(err).Str("item_id", in.ItemID).Str("type", string(txType)).Msg("movimiento rechazado")
		return nil, err
	}

	uc.deps.Metrics.TransactionApplied(txType)
	uc.deps.Metrics.LowStockItems(uc.store.Stats().LowStockCount)
	uc.log.Info().
		Str("tx_id", applied.Transaction.ID).
		Str("item_id", applied.Item.ID).
		Str("type", string(txType)).
		Str("amount", in.Amount.String()).
		Str("quantity", applied.Item.Quantity.String()).
		Msg("movimiento registrado")
	uc.deps.Refresh.ObserveTransaction(applied.PriorLedgerLen)

	return &dto.RegisterTransactionResponse{
		Item:        dto.ToStockItemDTO(applied.Item),
		Transaction: dto.ToTransactionDTO(applied.Transaction),
	}, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return "item_not_found"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	default:
		return "validation"
	}
}

// ImportRows importa filas ya leídas. Si ninguna fila sobrevive devuelve domain.ErrFormat
// y el catálogo queda intacto; si no, el resultado reemplaza el catálogo completo.
func (uc *UseCase) ImportRows(ctx context.Context, rows []importer.Row) (*dto.ImportResultDTO, error) {
	res, err := uc.importer.Import(rows)
	if err != nil {
		uc.deps.Metrics.ImportFinished(ImportFormatError)
		uc.log.Warn().Err(err).Int("rows", len(rows)).Msg("importación rechazada")
		return nil, err
	}
	uc.store.ReplaceCatalog(res.Items)

	uc.deps.Metrics.ImportFinished(ImportOK)
	uc.deps.Metrics.LowStockItems(uc.store.Stats().LowStockCount)
	uc.log.Info().Int("rows", len(rows)).Int("imported", len(res.Items)).Int("discarded", res.Discarded).Msg("catálogo reemplazado por importación")
	uc.deps.Refresh.ObserveImport()

	return &dto.ImportResultDTO{
		Imported:  len(res.Items),
		Discarded: res.Discarded,
		Items:     dto.ToStockItemDTOs(res.Items),
	}, nil
}

// ImportTable importa encabezados más filas de valores (JSON).
func (uc *UseCase) ImportTable(ctx context.Context, in dto.ImportRowsRequest) (*dto.ImportResultDTO, error) {
	if len(in.Headers) == 0 {
		return nil, fmt.Errorf("headers es obligatorio: %w", domain.ErrInvalidInput)
	}
	rows := make([]importer.Row, 0, len(in.Rows))
	for _, values := range in.Rows {
		rows = append(rows, importer.NewRow(in.Headers, values))
	}
	return uc.ImportRows(ctx, rows)
}

// ImportFile elige el lector según la extensión del archivo y luego importa.
func (uc *UseCase) ImportFile(ctx context.Context, filename string, r io.Reader) (*dto.ImportResultDTO, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	reader, ok := uc.deps.Readers[ext]
	if !ok {
		return nil, fmt.Errorf("%q: %w", ext, domain.ErrUnsupportedFile)
	}
	rows, err := reader.ReadRows(ctx, r)
	if err != nil {
		uc.deps.Metrics.ImportFinished(ImportReadError)
		return nil, fmt.Errorf("leer %s: %w", filename, err)
	}
	return uc.ImportRows(ctx, rows)
}

// ImportGoogleSheet lee el rango de la hoja remota y luego importa.
func (uc *UseCase) ImportGoogleSheet(ctx context.Context, in dto.GoogleSheetImportRequest) (*dto.ImportResultDTO, error) {
	if uc.deps.Sheets == nil {
		return nil, domain.ErrSheetsUnavailable
	}
	if strings.TrimSpace(in.URL) == "" {
		return nil, fmt.Errorf("url es obligatorio: %w", domain.ErrInvalidInput)
	}
	readRange := strings.TrimSpace(in.Range)
	if readRange == "" {
		readRange = uc.deps.DefaultRange
	}
	rows, err := uc.deps.Sheets.ReadRange(ctx, in.URL, readRange)
	if err != nil {
		uc.deps.Metrics.ImportFinished(ImportReadError)
		return nil, fmt.Errorf("google sheets: %w", err)
	}
	return uc.ImportRows(ctx, rows)
}

// Search artículos filtrados; los críticos primero.
func (uc *UseCase) Search(ctx context.Context, query string) []dto.StockItemDTO {
	return dto.ToStockItemDTOs(uc.store.Search(query))
}

// GetItem artículo con sus últimos movimientos.
func (uc *UseCase) GetItem(ctx context.Context, id string) (*dto.ItemDetailDTO, error) {
	item, ok := uc.store.Item(id)
	if !ok {
		return nil, fmt.Errorf("artículo %q: %w", id, domain.ErrItemNotFound)
	}
	return &dto.ItemDetailDTO{
		Item:    dto.ToStockItemDTO(item),
		History: dto.ToTransactionDTOs(uc.store.ItemHistory(id, DefaultHistoryLimit)),
	}, nil
}

// ListTransactions libro mayor paginado, del más reciente al más antiguo.
func (uc *UseCase) ListTransactions(ctx context.Context, page dto.PageRequest) *dto.TransactionListDTO {
	page.DefaultPage()
	all := uc.store.Transactions(0)
	start := page.Offset
	if start > len(all) {
		start = len(all)
	}
	end := start + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return &dto.TransactionListDTO{
		Items: dto.ToTransactionDTOs(all[start:end]),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(all)},
	}
}

// Dashboard contadores, artículos críticos y actividad reciente.
func (uc *UseCase) Dashboard(ctx context.Context) *dto.DashboardDTO {
	stats := uc.store.Stats()
	critical := domaininv.Critical(uc.store.Catalog())
	domaininv.SortCriticalFirst(critical)
	return &dto.DashboardDTO{
		TotalItems:         stats.TotalItems,
		LowStockCount:      stats.LowStockCount,
		TransactionCount:   stats.TransactionCount,
		CriticalItems:      dto.ToStockItemDTOs(critical),
		RecentTransactions: dto.ToTransactionDTOs(uc.store.Transactions(domaininv.RecentActivityCap)),
	}
}

// ExportWorkbook escribe el catálogo como .xlsx.
func (uc *UseCase) ExportWorkbook(ctx context.Context, w io.Writer) error {
	if uc.deps.Writer == nil {
		return errors.New("exportación no configurada")
	}
	items := uc.store.Catalog()
	domaininv.SortCriticalFirst(items)
	return uc.deps.Writer.WriteStock(w, items)
}

// StockReportPDF genera el registro de existencias en PDF.
func (uc *UseCase) StockReportPDF(ctx context.Context) ([]byte, error) {
	if uc.deps.Reports == nil {
		return nil, errors.New("reportes no configurados")
	}
	items := uc.store.Catalog()
	domaininv.SortCriticalFirst(items)
	pdf, err := uc.deps.Reports.StockRegister(items, uc.deps.Now())
	if err != nil {
		return nil, fmt.Errorf("generar registro PDF: %w", err)
	}
	return pdf, nil
}

// ExportWorkbookBytes variante en memoria de ExportWorkbook para handlers HTTP.
func (uc *UseCase) ExportWorkbookBytes(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := uc.ExportWorkbook(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
