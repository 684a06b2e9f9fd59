package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC SnapshotService
	ReportUC    ReportService // opcional
	JWTSecret   string
	JWTIssuer   string
	DefaultLang string
	Log         *zerolog.Logger // opcional; nil descarta los logs de petición
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token con store_id)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	dashboard := protected.Group("/dashboard")
	reqLog := zerolog.Nop()
	if deps.Log != nil {
		reqLog = *deps.Log
	}
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC, deps.DefaultLang, reqLog)
	dashboard.Get("/snapshot", dashboardHandler.GetSnapshot)
	dashboard.Post("/refresh", dashboardHandler.Refresh)
	dashboard.Get("/report.pdf", dashboardHandler.DownloadReport)
}
