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

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/assistant"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/auth"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/importer"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/movement"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/report"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/usecase"
	infraai "github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/infrastructure/ai"
	infrapdf "github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/infrastructure/pdf"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/infrastructure/postgres"
	httpRouter "github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/interfaces/http"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/pkg/config"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("yapılandırma yüklenemedi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("uygulama başlatılıyor")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL bağlantısı")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("şema hazırlanamadı")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	partyRepo := postgres.NewPartyRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	balanceRepo := postgres.NewBalanceRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	partyUC := usecase.NewPartyUseCase(partyRepo, locationRepo)
	movementUC := movement.NewUseCase(txRunner, productRepo, locationRepo, partyRepo, cfg.Policy.AssignFaulty)

	formGen := infrapdf.NewCustodyFormGenerator()
	reportUC := report.NewUseCase(balanceRepo, movementRepo, assetRepo, reportRepo, formGen)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	assistantUC := assistant.NewUseCase(geminiSvc, balanceRepo, reportRepo)

	importUC := importer.NewUseCase(txRunner, productRepo, locationRepo, balanceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // Excel içe aktarma dosyaları için
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "İskaya Depo Takip API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.SetupRoutes(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		LocationUC:  locationUC,
		PartyUC:     partyUC,
		MovementUC:  movementUC,
		ReportUC:    reportUC,
		AssistantUC: assistantUC,
		ImportUC:    importUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP sunucusu sonlandı")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("kapatma sinyali alındı, sunucu kapatılıyor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("sunucu kapatma")
	}

	log.Info().Msg("uygulama durduruldu")
}
