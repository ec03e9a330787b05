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

	"github.com/cafeteriasoma/soma-api/internal/application/auth"
	"github.com/cafeteriasoma/soma-api/internal/application/events"
	"github.com/cafeteriasoma/soma-api/internal/application/usecase"
	"github.com/cafeteriasoma/soma-api/internal/domain/repository"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/localstore"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/memory"
	infrapdf "github.com/cafeteriasoma/soma-api/internal/infrastructure/pdf"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/remote"
	httpRouter "github.com/cafeteriasoma/soma-api/internal/interfaces/http"
	"github.com/cafeteriasoma/soma-api/pkg/config"
	"github.com/cafeteriasoma/soma-api/pkg/logger"
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

	// Snapshot local clave-valor (equivalente al localStorage del navegador)
	var store localstore.Store
	switch cfg.Store.Driver {
	case "redis":
		store, err = localstore.NewRedisStore(cfg.Store.RedisAddr)
	default:
		store, err = localstore.NewFileStore(cfg.Store.Path)
	}
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir snapshot local")
	}

	bus := events.NewBus()

	productCache := memory.NewProductRepository(memory.SeedProducts())
	promotionRepo := memory.NewPromotionRepository(memory.SeedPromotions())
	saleRepo := memory.NewSaleRepository(memory.SeedSales())
	accountRepo := memory.NewAccountRepository(store)
	sessionRepo := memory.NewSessionRepository(store)
	cartRepo := memory.NewCartRepository(store)

	// Estrategia de datos: con API_BASE_URL los productos y el auth pasan por
	// el backend remoto (con caché local como respaldo); sin ella, todo mock.
	var productRepo repository.ProductRepository = productCache
	var authGateway auth.RemoteGateway
	if cfg.API.BaseURL != "" {
		client := remote.NewClient(cfg.API.BaseURL)
		productRepo = remote.NewProductRepository(client, productCache, log)
		authGateway = remote.NewAuthGateway(client)
		log.Info().Str("base_url", cfg.API.BaseURL).Msg("modo remoto habilitado")
	}

	authUC := auth.NewAuthUseCase(accountRepo, sessionRepo, authGateway, bus, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.AdminIdentity{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	if err := authUC.MigrateStoredNames(); err != nil {
		log.Warn().Err(err).Msg("migración de nombres del snapshot")
	}

	catalogUC := usecase.NewCatalogUseCase(productRepo, bus)
	promotionUC := usecase.NewPromotionUseCase(promotionRepo, bus)
	salesUC := usecase.NewSalesUseCase(saleRepo, infrapdf.NewReceiptGenerator(cfg.App.Name), bus)
	cartUC := usecase.NewCartUseCase(cartRepo, bus)

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
		Title:    "Cafetería SOMA API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		PromotionUC: promotionUC,
		SalesUC:     salesUC,
		CartUC:      cartUC,
		Bus:         bus,
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
