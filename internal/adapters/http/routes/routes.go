package routes

import (
	"openshelf/internal/adapters/http/handlers"
	"openshelf/internal/adapters/persistence/memstore"
	"openshelf/internal/config"
	"openshelf/internal/core/domain"
	"openshelf/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// App bundles the wired services so the entrypoint can reach them
// (seeding, reminder scheduling, shutdown).
type App struct {
	Catalog     *services.CatalogService
	Circulation *services.CirculationService
	Reports     *services.ReportService
	Reminders   *services.ReminderService
	Notifier    *services.NotificationService
}

// Setup configures all routes for the application
func Setup(app *fiber.App, cfg *config.Config) *App {
	// Initialize stores
	catalogStore := memstore.NewCatalogStore()
	ledgerStore := memstore.NewLedgerStore()

	// Initialize services
	policies := domain.DefaultPolicies()
	notifier := services.NewNotificationService()
	notifier.Subscribe(services.LogObserver{})

	catalogService := services.NewCatalogService(catalogStore, policies)
	circulationService := services.NewCirculationService(catalogStore, ledgerStore, policies, notifier)
	reportService := services.NewReportService(catalogStore, ledgerStore, policies)
	reminderService := services.NewReminderService(catalogStore, ledgerStore, policies, notifier, cfg.ReminderCron)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	circulationHandler := handlers.NewCirculationHandler(circulationService)
	reportHandler := handlers.NewReportHandler(reportService, reminderService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	setupItemRoutes(apiV1.Group("/items"), catalogHandler)
	setupPatronRoutes(apiV1.Group("/patrons"), catalogHandler)
	setupLibrarianRoutes(apiV1.Group("/librarians"), catalogHandler)
	setupCirculationRoutes(apiV1.Group("/circulation"), circulationHandler)
	setupReportRoutes(apiV1.Group("/reports"), reportHandler)

	return &App{
		Catalog:     catalogService,
		Circulation: circulationService,
		Reports:     reportService,
		Reminders:   reminderService,
		Notifier:    notifier,
	}
}

// setupItemRoutes configures catalog item routes
func setupItemRoutes(router fiber.Router, handler *handlers.CatalogHandler) {
	router.Get("/", handler.GetItems)
	router.Post("/", handler.CreateItem)
	router.Get("/:id", handler.GetItem)
	router.Put("/:id", handler.UpdateItem)
	router.Delete("/:id", handler.DeleteItem)
}

// setupPatronRoutes configures patron registry routes
func setupPatronRoutes(router fiber.Router, handler *handlers.CatalogHandler) {
	router.Get("/", handler.GetPatrons)
	router.Post("/", handler.RegisterPatron)
	router.Get("/:id", handler.GetPatron)
	router.Delete("/:id", handler.DeletePatron)
}

// setupLibrarianRoutes configures librarian record routes
func setupLibrarianRoutes(router fiber.Router, handler *handlers.CatalogHandler) {
	router.Get("/", handler.GetLibrarians)
	router.Post("/", handler.CreateLibrarian)
}

// setupCirculationRoutes configures lifecycle operation routes
func setupCirculationRoutes(router fiber.Router, handler *handlers.CirculationHandler) {
	router.Post("/borrow", handler.Borrow)
	router.Post("/return", handler.Return)
	router.Post("/reserve", handler.Reserve)
	router.Post("/cancel-reservation", handler.CancelReservation)

	router.Get("/items/:id/state", handler.GetItemState)
	router.Get("/loans", handler.GetActiveLoans)
	router.Get("/loans/history", handler.GetLoanHistory)
	router.Get("/reservations", handler.GetReservations)
}

// setupReportRoutes configures reporting routes
func setupReportRoutes(router fiber.Router, handler *handlers.ReportHandler) {
	router.Get("/most-borrowed", handler.GetMostBorrowed)
	router.Get("/active-borrowers", handler.GetActiveBorrowers)
	router.Get("/overdue", handler.GetOverdue)
	router.Post("/reminders/run", handler.RunReminderSweep)
}
