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

	"github.com/jhoicas/isp-cobros/internal/application/billing"
	"github.com/jhoicas/isp-cobros/internal/application/receipts"
	infraemail "github.com/jhoicas/isp-cobros/internal/infrastructure/email/ses"
	infrapdf "github.com/jhoicas/isp-cobros/internal/infrastructure/pdf"
	"github.com/jhoicas/isp-cobros/internal/infrastructure/postgres"
	"github.com/jhoicas/isp-cobros/internal/infrastructure/printer"
	infras3 "github.com/jhoicas/isp-cobros/internal/infrastructure/storage/s3"
	infraxlsx "github.com/jhoicas/isp-cobros/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/isp-cobros/internal/interfaces/http"
	"github.com/jhoicas/isp-cobros/pkg/config"
	"github.com/jhoicas/isp-cobros/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	ispRepo := postgres.NewISPRepository(pool)
	deps := receipts.Deps{
		Payments:     postgres.NewPaymentRepository(pool),
		Customers:    postgres.NewCustomerRepository(pool),
		Invoices:     postgres.NewInvoiceRepository(pool),
		ISPs:         ispRepo,
		Collections:  postgres.NewCollectionRepository(pool),
		Printer:      printer.NewNetworkPrinter(cfg.Printer.Timeout(), log),
		PDFGenerator: infrapdf.NewMarotoPDFGenerator(),
		Reports:      infraxlsx.NewCollectionReportWriter(),
		Logger:       log,
	}

	// Canales opcionales: sin configuración responden "no configurado".
	if cfg.S3.Enabled() {
		storage, err := infras3.NewStorage(ctx, cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente S3")
		}
		deps.Storage = storage
	} else {
		log.Warn().Msg("S3_BUCKET vacío: compartir recibos deshabilitado")
	}
	if cfg.SES.Enabled() {
		mailer, err := infraemail.NewMailer(ctx, cfg.SES)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente SES")
		}
		deps.Mailer = mailer
	} else {
		log.Warn().Msg("SES_FROM_ADDRESS vacío: envío por correo deshabilitado")
	}

	receiptsUC := receipts.NewUseCase(deps, receipts.Config{
		DefaultWidth: cfg.Receipt.DefaultWidth,
		Locale:       cfg.Receipt.Locale,
		PrinterAddr:  cfg.Printer.Addr,
		PresignTTL:   time.Duration(cfg.S3.PresignSeconds) * time.Second,
	})

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
		Title:    "ISP Cobros API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Receipts:    receiptsUC,
		Recalculate: billing.NewRecalculateUseCase(),
		ISPs:        ispRepo,
		JWTSecret:   cfg.JWT.Secret,
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
