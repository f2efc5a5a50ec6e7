package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wallet-api/internal/domain/port/core"
	balanceUseCase "github.com/amirhossein-jamali/wallet-api/internal/domain/usecase/balance"
	transactionUseCase "github.com/amirhossein-jamali/wallet-api/internal/domain/usecase/transaction"

	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/blockchain"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	failurePolicy, err := transactionUseCase.ParseBalanceFailurePolicy(cfg.Blockchain.FailurePolicy)
	if err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction())
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Database.LogLevel,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := dbManager.RegisterMetrics(registry); err != nil {
		appLogger.Warn("Database metrics unavailable", map[string]any{
			"error": err.Error(),
		})
	}

	// one RPC client is dialled at startup and shared by all requests
	ethSource, err := blockchain.NewEthBalanceSource(ctx, cfg.Blockchain.RPCURL, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to balance service", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer ethSource.Close()

	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), tp, appLogger, cfg.Database.QueryTimeout)

	enricher := balanceUseCase.NewEnricher(
		blockchain.NewInstrumentedBalanceSource(ethSource, registry, tp),
		balanceUseCase.EnricherConfig{
			WalletAddress:  cfg.Blockchain.WalletAddress,
			RequestTimeout: cfg.Blockchain.RequestTimeout,
		},
		tp,
		appLogger,
	)

	transactionService := transactionUseCase.NewTransactionService(
		transactionRepo,
		enricher,
		idgen.NewUUIDGenerator(),
		tp,
		appLogger,
		transactionUseCase.WithBalanceFailurePolicy(failurePolicy),
	)

	router := gin.New()

	routes.SetupMiddlewares(router, appLogger, tp, registry, routes.MiddlewareConfig{
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		RateLimitRPS:       cfg.HTTP.RateLimitRPS,
		RateLimitBurst:     cfg.HTTP.RateLimitBurst,
	})

	routes.SetupRoutes(router, routes.Handlers{
		Transaction: handler.NewTransactionHandler(transactionService, appLogger),
		Balance:     handler.NewBalanceHandler(enricher, appLogger),
		Health:      handler.NewHealthHandler(dbManager, appLogger),
	}, registry)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":           server.Addr,
			"env":            cfg.Environment,
			"wallet_address": cfg.Blockchain.WalletAddress,
			"failure_policy": string(failurePolicy),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	missingConfigs := cfg.MissingKeys()

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	switch cfg.Environment {
	case config.Development, config.Production, config.Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if err := entity.ValidateAddress(cfg.Blockchain.WalletAddress); err != nil {
		return fmt.Errorf("blockchain.walletAddress: %w", err)
	}

	if cfg.IsProduction() {
		var warnings []string

		switch strings.ToLower(cfg.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if !strings.HasPrefix(cfg.Blockchain.RPCURL, "https://") {
			warnings = append(warnings, "blockchain.rpcUrl should use https in production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
