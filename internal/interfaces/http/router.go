package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/kitchen-stores/internal/application/advisory"
	"github.com/jhoicas/kitchen-stores/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Inventory     *inventory.UseCase
	Replenishment *inventory.ReplenishmentUseCase
	Advisory      *advisory.UseCase
	// Metrics handler Prometheus; nil no expone /metrics.
	Metrics http.Handler
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	inventoryHandler := NewInventoryHandler(deps.Inventory, deps.Replenishment)
	api.Get("/items", inventoryHandler.ListItems)
	api.Get("/items/:id", inventoryHandler.GetItem)
	api.Get("/transactions", inventoryHandler.ListTransactions)
	api.Post("/transactions", inventoryHandler.RegisterTransaction)

	dashboardHandler := NewDashboardHandler(deps.Inventory)
	api.Get("/dashboard", dashboardHandler.GetSummary)

	importGroup := api.Group("/import")
	importHandler := NewImportHandler(deps.Inventory)
	importGroup.Post("/", importHandler.ImportFile)
	importGroup.Post("/rows", importHandler.ImportRows)
	importGroup.Post("/google-sheet", importHandler.ImportGoogleSheet)

	reportHandler := NewReportHandler(deps.Inventory)
	api.Get("/export/stock.xlsx", reportHandler.ExportStock)
	api.Get("/reports/stock.pdf", reportHandler.StockRegisterPDF)
	api.Get("/reports/replenishment", inventoryHandler.GetReplenishmentList)

	advisoryGroup := api.Group("/advisory")
	aiHandler := NewAIHandler(deps.Advisory)
	advisoryGroup.Get("/tips", aiHandler.GetTips)
	advisoryGroup.Post("/tips/refresh", aiHandler.RefreshTips)
	advisoryGroup.Post("/chat", aiHandler.Chat)
}
