package http

import (
	"github.com/gofiber/fiber/v2"

	appstock "github.com/tallerpro/stock-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ContainerUC *appstock.ContainerUseCase
	EditUC      *appstock.EditContainerUseCase
	ViewsUC     *appstock.StockViewUseCase
	ScanUC      *appstock.ScanUseCase
	SettingsUC  *appstock.SettingsUseCase
	ReportUC    *appstock.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Containers (protegido)
	containers := api.Group("/containers")
	containerHandler := NewContainerHandler(deps.ContainerUC, deps.EditUC)
	containers.Get("/", containerHandler.List)
	containers.Post("/", containerHandler.Create)
	containers.Get("/:id", containerHandler.GetByID)
	containers.Put("/:id", containerHandler.Update)
	containers.Delete("/:id", containerHandler.Delete)

	// Vistas de stock + escaneo (protegido)
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.ViewsUC, deps.ScanUC, deps.ReportUC)
	stockGroup.Get("/consolidated", stockHandler.Consolidated)
	stockGroup.Get("/alerts", stockHandler.Alerts)
	stockGroup.Get("/valuation", stockHandler.Valuation)
	stockGroup.Get("/report.pdf", stockHandler.Report)
	stockGroup.Post("/scan", stockHandler.Scan)

	// Configuración de stock (protegido)
	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
}
