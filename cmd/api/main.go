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

	appauth "github.com/crmventas/negociaciones-api/internal/application/auth"
	appneg "github.com/crmventas/negociaciones-api/internal/application/negociacion"
	"github.com/crmventas/negociaciones-api/internal/infrastructure/excel"
	"github.com/crmventas/negociaciones-api/internal/infrastructure/postgres"
	"github.com/crmventas/negociaciones-api/internal/infrastructure/profit"
	"github.com/crmventas/negociaciones-api/internal/infrastructure/storage"
	httpRouter "github.com/crmventas/negociaciones-api/internal/interfaces/http"
	"github.com/crmventas/negociaciones-api/pkg/config"
	"github.com/crmventas/negociaciones-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Conexión de solo lectura al sistema administrativo (gestiones y vendedores).
	profitDB, err := profit.NewDB(cfg.Profit)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Profit")
	}
	defer profitDB.Close()

	negociacionRepo := postgres.NewNegociacionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	gestionRepo := profit.NewGestionRepository(profitDB)
	vendedorRepo := profit.NewVendedorRepository(profitDB)

	docs := storage.NewLocal(cfg.Storage.Dir, cfg.Storage.BaseURL)
	exporter := excel.NewExporter()

	negociacionUC := appneg.NewUseCase(negociacionRepo, userRepo, gestionRepo, vendedorRepo, docs, exporter)
	authUC := appauth.NewAuthUseCase(userRepo, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // PDFs adjuntos
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Negociaciones API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Documentos PDF públicos bajo el prefijo fijo de almacenamiento.
	app.Static(storage.PublicPrefix, cfg.Storage.Dir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		NegociacionUC: negociacionUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
		JWTExpMinutes: cfg.JWT.Expiration,
		SecureCookies: cfg.App.Env == "production",
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
