package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kitchen-stores/internal/application/advisory"
	"github.com/jhoicas/kitchen-stores/internal/application/dto"
	"github.com/jhoicas/kitchen-stores/internal/application/inventory"
	"github.com/jhoicas/kitchen-stores/internal/domain/importer"
	"github.com/jhoicas/kitchen-stores/internal/domain/ledger"
	"github.com/jhoicas/kitchen-stores/internal/infrastructure/metrics"
	"github.com/jhoicas/kitchen-stores/internal/infrastructure/spreadsheet"
	apphttp "github.com/jhoicas/kitchen-stores/internal/interfaces/http"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// buildTestApp arma la API sobre el catálogo inicial, sin proveedor de IA ni Google Sheets.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	var seq int64
	newID := func() string { return fmt.Sprintf("id-%d", atomic.AddInt64(&seq, 1)) }
	now := func() time.Time { return fixedNow }

	m := metrics.New()
	store := inventory.NewStore(ledger.NewEngine(now, newID), inventory.SeedCatalog(fixedNow), inventory.SeedLedger(fixedNow))
	invUC := inventory.NewUseCase(store, importer.New(now, newID), inventory.Deps{
		Readers: map[string]inventory.SpreadsheetReader{
			".csv":  spreadsheet.NewCSVReader(),
			".xlsx": spreadsheet.NewXLSXReader(),
		},
		Writer:  spreadsheet.NewXLSXWriter(),
		Metrics: m,
		Now:     now,
	}, zerolog.Nop())
	advUC := advisory.NewUseCase(nil, store, m, advisory.Config{RefreshEvery: -1}, zerolog.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Inventory:     invUC,
		Replenishment: inventory.NewReplenishmentUseCase(store),
		Advisory:      advUC,
		Metrics:       m.Handler(),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var e dto.ErrorResponse
	decode(t, resp, &e)
	return e.Code
}

func TestRegisterTransaction_Retiro(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/transactions",
		`{"item_id":"1","type":"WITHDRAW","amount":15,"reason":"Banquete"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.RegisterTransactionResponse
	decode(t, resp, &out)
	assert.Equal(t, "185", out.Item.Quantity.String())
	assert.Equal(t, "WITHDRAW", out.Transaction.Type)
	assert.Equal(t, "Premium Basmati Rice", out.Transaction.ItemName)
}

func TestRegisterTransaction_Errores(t *testing.T) {
	app := buildTestApp(t)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"stock insuficiente", `{"item_id":"1","type":"WITHDRAW","amount":1000}`, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{"artículo inexistente", `{"item_id":"nope","type":"ADD","amount":1}`, fiber.StatusNotFound, "ITEM_NOT_FOUND"},
		{"cantidad cero", `{"item_id":"1","type":"ADD","amount":0}`, fiber.StatusBadRequest, "VALIDATION"},
		{"tipo desconocido", `{"item_id":"1","type":"MOVE","amount":1}`, fiber.StatusBadRequest, "VALIDATION"},
		{"cuerpo inválido", `{"item_id":`, fiber.StatusBadRequest, "INVALID_BODY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/transactions", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, errorCode(t, resp))
		})
	}
}

func TestGetItem(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/items/1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.ItemDetailDTO
	decode(t, resp, &out)
	assert.Equal(t, "1", out.Item.ID)
	require.NotEmpty(t, out.History)
	assert.Equal(t, "1", out.History[0].ItemID)

	resp = doJSON(t, app, http.MethodGet, "/api/items/no-existe", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ITEM_NOT_FOUND", errorCode(t, resp))
}

func TestListItemsYTransacciones(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/items", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var items struct {
		Items []dto.StockItemDTO `json:"items"`
		Total int                `json:"total"`
	}
	decode(t, resp, &items)
	assert.Equal(t, 40, items.Total)
	assert.Len(t, items.Items, 40)

	resp = doJSON(t, app, http.MethodGet, "/api/transactions?limit=2", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var txs dto.TransactionListDTO
	decode(t, resp, &txs)
	assert.Len(t, txs.Items, 2)
	assert.Equal(t, 3, txs.Page.Total)
	assert.Equal(t, "t2", txs.Items[0].ID)
}

func TestDashboard(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.DashboardDTO
	decode(t, resp, &out)
	assert.Equal(t, 40, out.TotalItems)
	assert.Equal(t, 0, out.LowStockCount)
	assert.Equal(t, 3, out.TransactionCount)
	assert.Len(t, out.RecentTransactions, 3)
}

func TestImportRows(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/import/rows",
		`{"headers":["Particulars","Balance","UOM"],"rows":[["Jeera","4 kg","kg"],["Hing",1,"g"]]}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.ImportResultDTO
	decode(t, resp, &out)
	assert.Equal(t, 2, out.Imported)

	resp = doJSON(t, app, http.MethodGet, "/api/dashboard", "")
	var dash dto.DashboardDTO
	decode(t, resp, &dash)
	assert.Equal(t, 2, dash.TotalItems)
	assert.Equal(t, 3, dash.TransactionCount, "el libro mayor se conserva")
}

func TestImportRows_FormatoNoReconocido(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/import/rows", `{"headers":["foo"],"rows":[["bar"]]}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "FORMAT_ERROR", errorCode(t, resp))
}

func TestImportGoogleSheet_NoConfigurado(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/import/google-sheet", `{"url":"abc"}`)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "SHEETS_UNAVAILABLE", errorCode(t, resp))
}

func multipartFile(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestImportFile(t *testing.T) {
	app := buildTestApp(t)

	body, ct := multipartFile(t, "stock.CSV", "Item Name,Qty,Unit\nSugar,12,kg\nSalt,3,kg\n")
	req := httptest.NewRequest(http.MethodPost, "/api/import", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.ImportResultDTO
	decode(t, resp, &out)
	assert.Equal(t, 2, out.Imported)

	body, ct = multipartFile(t, "stock.txt", "x")
	req = httptest.NewRequest(http.MethodPost, "/api/import", body)
	req.Header.Set("Content-Type", ct)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, resp.StatusCode)
	assert.Equal(t, "UNSUPPORTED_FILE", errorCode(t, resp))

	resp = doJSON(t, app, http.MethodPost, "/api/import", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestExportStock(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/export/stock.xlsx", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "un .xlsx es un zip")
}

func TestReplenishment_SinCriticos(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/reports/replenishment", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out struct {
		Total int `json:"total"`
	}
	decode(t, resp, &out)
	assert.Equal(t, 0, out.Total)
}

func TestAdvisory_SinProveedor(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/advisory/chat", `{"query":"चावल कितना है?"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var chat dto.ChatResponse
	decode(t, resp, &chat)
	assert.Equal(t, advisory.ChatUnavailableMessage, chat.Answer)

	resp = doJSON(t, app, http.MethodPost, "/api/advisory/chat", `{"query":"  "}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))

	resp = doJSON(t, app, http.MethodPost, "/api/advisory/tips/refresh", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var tips dto.TipsResponse
	decode(t, resp, &tips)
	assert.Len(t, tips.Tips, len(advisory.FallbackTips()))
	assert.Equal(t, "INFO", tips.Tips[0].Type)
}

func TestMetricsEndpoint(t *testing.T) {
	app := buildTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/transactions", `{"item_id":"1","type":"ADD","amount":5}`).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/metrics", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), `kitchen_transactions_total{type="ADD"} 1`)
}
