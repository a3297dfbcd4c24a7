package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/kitchen-stores/internal/application/advisory"
	"github.com/jhoicas/kitchen-stores/internal/application/inventory"
	"github.com/jhoicas/kitchen-stores/internal/domain/importer"
	"github.com/jhoicas/kitchen-stores/internal/domain/ledger"
	infraai "github.com/jhoicas/kitchen-stores/internal/infrastructure/ai"
	"github.com/jhoicas/kitchen-stores/internal/infrastructure/idgen"
	inframetrics "github.com/jhoicas/kitchen-stores/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/kitchen-stores/internal/infrastructure/pdf"
	"github.com/jhoicas/kitchen-stores/internal/infrastructure/scheduler"
	infrasheets "github.com/jhoicas/kitchen-stores/internal/infrastructure/sheets"
	"github.com/jhoicas/kitchen-stores/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/kitchen-stores/internal/interfaces/http"
	"github.com/jhoicas/kitchen-stores/pkg/config"
	"github.com/jhoicas/kitchen-stores/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("ai_provider", cfg.AI.Provider).
		Msg("iniciando aplicación")

	ctx := context.Background()

	newTxID, err := idgen.NewTransactionIDFunc()
	if err != nil {
		log.Fatal().Err(err).Msg("generador de IDs de movimientos")
	}

	// Estado en memoria sembrado con el catálogo inicial
	now := time.Now()
	engine := ledger.NewEngine(time.Now, newTxID)
	store := inventory.NewStore(engine, inventory.SeedCatalog(now), inventory.SeedLedger(now))

	metrics := inframetrics.New()

	// Google Sheets solo si hay credenciales de cuenta de servicio
	var sheetSource inventory.SheetSource
	if cfg.Sheets.CredentialsPath != "" {
		src, err := infrasheets.NewSource(ctx, cfg.Sheets.CredentialsPath, log.Component("sheets"))
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de Google Sheets")
		}
		sheetSource = src
	} else {
		log.Warn().Msg("SHEETS_CREDENTIALS_PATH vacío: importación desde Google Sheets deshabilitada")
	}

	xlsxReader := spreadsheet.NewXLSXReader()
	inventoryUC := inventory.NewUseCase(store, importer.New(time.Now, idgen.NewItemID), inventory.Deps{
		Readers: map[string]inventory.SpreadsheetReader{
			".xlsx": xlsxReader,
			".xlsm": xlsxReader,
			".csv":  spreadsheet.NewCSVReader(),
		},
		Sheets:       sheetSource,
		DefaultRange: cfg.Sheets.DefaultRange,
		Writer:       spreadsheet.NewXLSXWriter(),
		Reports:      infrapdf.NewStockRegisterGenerator(cfg.App.Name),
		Metrics:      metrics,
	}, log.Component("inventory"))
	replenishmentUC := inventory.NewReplenishmentUseCase(store)

	advisorySvc := infraai.NewAdvisoryService(cfg.AI)
	if advisorySvc == nil {
		log.Warn().Str("provider", cfg.AI.Provider).Msg("API key de IA no configurada: el asesor usará respuestas de respaldo")
	}
	refreshEvery := cfg.Advisory.RefreshEvery
	if refreshEvery <= 0 {
		refreshEvery = -1
	}
	advisoryUC := advisory.NewUseCase(advisorySvc, store, metrics, advisory.Config{
		Timeout:      cfg.Advisory.Timeout,
		RefreshEvery: refreshEvery,
	}, log.Component("advisory"))
	inventoryUC.SetRefreshPolicy(advisoryUC)

	// Primer cálculo de recomendaciones sin bloquear el arranque
	advisoryUC.ObserveImport()

	sched := scheduler.New(func(ctx context.Context) { advisoryUC.RefreshTips(ctx) }, 2*cfg.Advisory.Timeout, log.Component("scheduler"))
	if err := sched.Schedule(cfg.Advisory.RefreshCron); err != nil {
		log.Fatal().Err(err).Msg("programar refresco de recomendaciones")
	}
	sched.Start()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit(),
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.DocsEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Kitchen Stores API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	deps := httpRouter.RouterDeps{
		Inventory:     inventoryUC,
		Replenishment: replenishmentUC,
		Advisory:      advisoryUC,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.Handler()
	}
	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	sched.Stop()
	advisoryUC.Wait()

	log.Info().Msg("aplicación detenida")
}
