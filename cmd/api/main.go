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

	appanalytics "github.com/jhoicas/pos-analytics/internal/application/analytics"
	"github.com/jhoicas/pos-analytics/internal/application/ports"
	"github.com/jhoicas/pos-analytics/internal/infrastructure/backend"
	infracache "github.com/jhoicas/pos-analytics/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/pos-analytics/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-analytics/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pos-analytics/internal/interfaces/http"
	"github.com/jhoicas/pos-analytics/pkg/config"
	"github.com/jhoicas/pos-analytics/pkg/logger"
)

// @title                       POS Analytics API
// @version                     1.0
// @description                 Métricas de ventas, inventario y deudas por tienda.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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
		Str("data_source", cfg.Source.Kind).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Fuentes: API REST del backend de la tienda o réplica PostgreSQL.
	var sources appanalytics.Sources
	switch cfg.Source.Kind {
	case config.DataSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		sources = appanalytics.Sources{
			Transactions: postgres.NewTransactionRepository(pool),
			Sellers:      postgres.NewSellerRepository(pool),
			Products:     postgres.NewProductRepository(pool),
			Debts:        postgres.NewDebtRepository(pool),
		}
	default:
		client, err := backend.NewClient(backend.Config{
			BaseURL:   cfg.Backend.BaseURL,
			Timeout:   cfg.Backend.Timeout,
			AuthToken: cfg.Backend.AuthToken,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cliente del backend")
		}
		sources = appanalytics.Sources{
			Transactions: backend.NewTransactionRepository(client),
			Sellers:      backend.NewSellerRepository(client),
			Products:     backend.NewProductRepository(client),
			Debts:        backend.NewDebtRepository(client),
		}
	}

	// Cache compartido de datasets: Redis si hay REDIS_ADDR, si no no-op.
	var datasetCache ports.DatasetCache = infracache.NoopDatasetCache{}
	if cfg.Redis.Enabled() {
		rc := infracache.NewRedisDatasetCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rc.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, se usará solo la sesión en memoria")
		}
		cancel()
		defer rc.Close()
		datasetCache = rc
	}

	loc, err := cfg.Dashboard.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}

	loader := appanalytics.NewLoader(sources, log.Zerolog())
	dashboardUC := appanalytics.NewDashboardUseCase(loader, datasetCache, appanalytics.DashboardConfig{
		DatasetTTL: cfg.Dashboard.DatasetTTL,
		Location:   loc,
	}, log.Zerolog())
	reportUC := appanalytics.NewReportUseCase(dashboardUC, infrapdf.NewMarotoPDFGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS Analytics API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	reqLog := log.Zerolog().With().Str("component", "http").Logger()
	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
		DefaultLang: cfg.Dashboard.DefaultLang,
		Log:         &reqLog,
	})

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

	log.Info().Msg("aplicación detenida")
}
