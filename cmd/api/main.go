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

	"github.com/jhoicas/polipostres-api/internal/application/usecase"
	"github.com/jhoicas/polipostres-api/internal/domain/ledger"
	infrapdf "github.com/jhoicas/polipostres-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/polipostres-api/internal/interfaces/http"
	"github.com/jhoicas/polipostres-api/pkg/config"
	"github.com/jhoicas/polipostres-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Todo el estado vive en memoria, en un único ledger por proceso.
	// Se pierde al apagar: no hay persistencia en este diseño.
	ledgerStore := ledger.New()
	if cfg.Demo.Seed {
		n, err := ledgerStore.SeedDemo()
		if err != nil {
			log.Fatal().Err(err).Msg("cargar catálogo de demostración")
		}
		log.Info().Int("productos", n).Msg("catálogo de demostración cargado")
	}

	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)

	productUC := usecase.NewProductUseCase(ledgerStore)
	saleUC := usecase.NewSaleUseCase(ledgerStore)
	analyticsUC := usecase.NewAnalyticsUseCase(ledgerStore)
	reportUC := usecase.NewReportUseCase(ledgerStore, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Polipostres API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		SaleUC:      saleUC,
		AnalyticsUC: analyticsUC,
		ReportUC:    reportUC,
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
