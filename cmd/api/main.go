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

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/auth"
	appsearch "github.com/ArthurS357/capcom-suprimentos-api/internal/application/search"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/usecase"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/infrastructure/postgres"
	httpRouter "github.com/ArthurS357/capcom-suprimentos-api/internal/interfaces/http"
	"github.com/ArthurS357/capcom-suprimentos-api/pkg/config"
	"github.com/ArthurS357/capcom-suprimentos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	brandRepo := postgres.NewBrandRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	printerRepo := postgres.NewPrinterRepository(pool)
	compatRepo := postgres.NewCompatibilityRepository(pool)
	configRepo := postgres.NewStoreConfigRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	searchSvc := appsearch.NewService(productRepo, printerRepo, compatRepo, brandRepo)
	productUC := usecase.NewProductUseCase(productRepo, brandRepo, categoryRepo, compatRepo, txRunner)
	brandUC := usecase.NewBrandUseCase(brandRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	printerUC := usecase.NewPrinterUseCase(printerRepo, brandRepo, productRepo, compatRepo, txRunner)
	bannerUC := usecase.NewStoreConfigUseCase(configRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cap.Com Suprimentos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SearchSvc:  searchSvc,
		ProductUC:  productUC,
		BrandUC:    brandUC,
		CategoryUC: categoryUC,
		PrinterUC:  printerUC,
		BannerUC:   bannerUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
