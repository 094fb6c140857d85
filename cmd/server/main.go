// @title           Photo Market Backend API
// @version         1.0.0
// @description     Settlement backend for a photo marketplace: seller onboarding on Stripe Connect, split-payment checkout, signed webhook settlement, balances and payouts.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"photo-market-backend/docs"
	"photo-market-backend/internal/config"
	"photo-market-backend/internal/database"
	"photo-market-backend/internal/handlers"
	applog "photo-market-backend/internal/log"
	"photo-market-backend/internal/middleware"
	"photo-market-backend/internal/payments"
	"photo-market-backend/internal/services"
	"photo-market-backend/internal/supabase"
	"photo-market-backend/internal/watermark"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := applog.New("development")
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := applog.New(cfg.Environment)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Point the Swagger UI at the deployed host.
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	if cfg.DatabaseURL == "" {
		logger.Fatal().Msg("DATABASE_URL is required: set it to the Supabase PostgreSQL connection string")
	}
	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database client")
	}
	defer dbClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.NewMigrator(dbClient.DB(), logger).Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	supabaseClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize supabase client")
	}
	feedClient := supabase.NewFeedClient(supabaseClient)
	storageClient := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.PrivateBucket, cfg.PublicBucket)

	processor := payments.NewStripeProcessor(cfg.StripeSecretKey)

	connectService := services.NewConnectService(dbClient, processor, services.ConnectConfig{
		Country:     cfg.AccountCountry,
		AppURL:      cfg.AppURL,
		AppDeepLink: cfg.AppDeepLink,
	}, logger)
	checkoutService := services.NewCheckoutService(dbClient, processor, services.CheckoutConfig{
		Currency: cfg.Currency,
		AppURL:   cfg.AppURL,
		Pricing:  payments.NewPricing(cfg.PlatformFeePercent),
	}, logger)
	settlementService := services.NewSettlementService(dbClient, logger)
	payoutService := services.NewPayoutService(dbClient, processor, cfg.Currency, logger)
	downloadService := services.NewDownloadService(dbClient, storageClient, cfg.SignedURLTTL, logger)
	previewService := services.NewPreviewService(dbClient, storageClient, watermark.Options{
		MaxWidth: cfg.PreviewMaxWidth,
		Text:     cfg.WatermarkText,
		Quality:  watermark.DefaultQuality,
	}, logger)
	feedService := services.NewFeedService(feedClient, storageClient, logger)

	routes := &handlers.Handlers{
		Connect:  handlers.NewConnectHandler(connectService),
		Checkout: handlers.NewCheckoutHandler(checkoutService),
		Payouts:  handlers.NewPayoutHandler(payoutService),
		Photos:   handlers.NewPhotosHandler(feedService, downloadService, previewService),
		Webhooks: handlers.NewWebhookHandler(
			payments.NewWebhookVerifier(cfg.StripeWebhookSecret),
			payments.NewWebhookVerifier(cfg.StripeConnectWebhookSecret),
			settlementService.HandleEvent,
			connectService.HandleAccountUpdated,
			logger,
		),
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Register(router, middleware.AuthMiddleware(cfg))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
