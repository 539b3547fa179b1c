package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/storefront/internal/adapters/cache"
	"github.com/SscSPs/storefront/internal/adapters/database/memory"
	"github.com/SscSPs/storefront/internal/adapters/database/pgsql"
	"github.com/SscSPs/storefront/internal/adapters/storeapi"
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
	"github.com/SscSPs/storefront/internal/core/services"
	"github.com/SscSPs/storefront/internal/handlers"
	"github.com/SscSPs/storefront/internal/middleware"
	"github.com/SscSPs/storefront/internal/platform/config"
	"github.com/SscSPs/storefront/internal/utils"
	"github.com/SscSPs/storefront/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
)

const shutdownTimeout = 10 * time.Second

// @title Storefront BFF API
// @version 1.0
// @description Backend-for-frontend of the storefront: reference data, reviews, variants and subscriptions.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := setupLogger(cfg.IsProduction)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	activityRepo, healthChecker, closeDB := setupActivityRepository(ctx, cfg, logger)
	defer closeDB()

	subscriptionCache, closeCache := setupSubscriptionCache(ctx, cfg, logger)
	defer closeCache()

	storeClient, err := storeapi.NewClient(storeapi.Config{
		BaseURL:      cfg.StoreAPIBaseURL,
		Timeout:      cfg.StoreAPITimeout,
		ClientID:     cfg.StoreAPIClientID,
		ClientSecret: cfg.StoreAPIClientSecret,
		TokenURL:     cfg.StoreAPITokenURL,
	})
	if err != nil {
		logger.Error("Failed to create store API client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := storeapi.NewRepositoryProvider(storeClient, activityRepo, subscriptionCache)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware: logging first so every later layer has a request logger.
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(),
		cors.New(corsConfig(cfg)),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer,
		handlers.WithHealthChecker(healthChecker),
		handlers.WithPosthog(posthogClient),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store_api", cfg.StoreAPIBaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.String("error", err.Error()))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}
}

// setupLogger returns coloured console logs in development and JSON in production.
func setupLogger(isProduction bool) *slog.Logger {
	if isProduction {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// setupActivityRepository stores activity in PostgreSQL when PGSQL_URL is set,
// running migrations first, and in memory otherwise.
func setupActivityRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.ActivityRepositoryFacade, portsrepo.HealthChecker, func()) {
	if cfg.DatabaseURL == "" {
		logger.Warn("PGSQL_URL not set, keeping activity in memory")
		return memory.NewActivityRepository(), nil, func() {}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Running database migrations", slog.String("path", cfg.MigrationsPath))
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		dbPool.Close()
		logger.Error("Database migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repo := pgsql.NewActivityRepository(dbPool)
	return repo, repo, func() { database.ClosePgxPool(dbPool, logger) }
}

// setupSubscriptionCache shares the list cache through redis when REDIS_URL is
// set and keeps it per instance otherwise.
func setupSubscriptionCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.SubscriptionCache, func()) {
	if cfg.RedisURL == "" {
		logger.Info("Using in-memory subscription cache", slog.Duration("ttl", cfg.SubscriptionCacheTTL))
		return cache.NewMemorySubscriptionCache(cfg.SubscriptionCacheTTL), func() {}
	}

	client, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Using redis subscription cache", slog.Duration("ttl", cfg.SubscriptionCacheTTL))
	return cache.NewRedisSubscriptionCache(client), func() {
		if err := client.Close(); err != nil {
			logger.Error("Error closing redis client", slog.String("error", err.Error()))
		}
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	return cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
