package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger_backend/internal/core/services"
	"github.com/SscSPs/wallet_ledger_backend/internal/handlers"
	"github.com/SscSPs/wallet_ledger_backend/internal/middleware"
	"github.com/SscSPs/wallet_ledger_backend/internal/platform/config"
	"github.com/SscSPs/wallet_ledger_backend/internal/platform/metrics"
	"github.com/SscSPs/wallet_ledger_backend/internal/repositories/cache"
	"github.com/SscSPs/wallet_ledger_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/wallet_ledger_backend/internal/repositories/memory"
	"github.com/SscSPs/wallet_ledger_backend/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Wallet Ledger API
// @version 1.0
// @description Custodial wallet ledger with a seamless wallet webhook adapter.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	repos, healthFn, closeStorage, err := setupStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStorage()

	// Redis is optional: without it claims are disabled and rate limits are per process.
	var (
		redisClient *redis.Client
		claims      repositories.ClaimStore
	)
	if cfg.RedisAddr != "" {
		redisClient, err = database.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		}()
		claims = cache.NewRedisClaimStore(redisClient)
		logger.Info("Redis connected; in-flight claims enabled.", slog.String("addr", cfg.RedisAddr))
	} else {
		logger.Warn("REDIS_ADDR not set; in-flight claims disabled, rate limits kept in memory.")
	}

	limiters, err := setupLimiters(cfg, redisClient)
	if err != nil {
		logger.Error("Failed to configure rate limits", slog.String("error", err.Error()))
		os.Exit(1)
	}

	metrics.Register(prometheus.DefaultRegisterer)
	metricsServer := metrics.StartServer(cfg.MetricsPort, healthFn, logger)
	defer func() {
		if cerr := metricsServer.Close(); cerr != nil {
			logger.Error("Error closing metrics server", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Metrics server started", slog.String("port", cfg.MetricsPort))

	serviceContainer := services.NewServiceContainer(cfg, repos, claims)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, limiters)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupStorage builds the repository provider for the configured driver together with a
// readiness probe and a cleanup func.
func setupStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, metrics.HealthFunc, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("Using in-memory storage; balances are lost on restart.")
		return memory.NewRepositoryProvider(memory.NewStore()), nil, func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return repositories.RepositoryProvider{}, nil, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		dbPool.Close()
		return repositories.RepositoryProvider{}, nil, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), poolHealth(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func poolHealth(pool *pgxpool.Pool) metrics.HealthFunc {
	return func(ctx context.Context) error {
		return pool.Ping(ctx)
	}
}

// runMigrations applies every pending "up" migration from cfg.MigrationsPath.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// setupLimiters builds the webhook and admin rate limiters. An empty rate disables the surface's limiter.
func setupLimiters(cfg *config.Config, client *redis.Client) (handlers.Limiters, error) {
	var limiters handlers.Limiters
	var err error
	if cfg.WebhookRateLimit != "" {
		if limiters.Webhook, err = middleware.NewLimiter(cfg.WebhookRateLimit, "wallet:rl:webhook", client); err != nil {
			return limiters, err
		}
	}
	if cfg.AdminRateLimit != "" {
		if limiters.Admin, err = middleware.NewLimiter(cfg.AdminRateLimit, "wallet:rl:admin", client); err != nil {
			return limiters, err
		}
	}
	return limiters, nil
}
