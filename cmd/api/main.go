package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	adminUseCase "github.com/multinvest/platform/internal/domain/usecase/admin"
	authUseCase "github.com/multinvest/platform/internal/domain/usecase/auth"
	investmentUseCase "github.com/multinvest/platform/internal/domain/usecase/investment"
	withdrawalUseCase "github.com/multinvest/platform/internal/domain/usecase/withdrawal"

	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/infrastructure/adapter/api/handler"
	"github.com/multinvest/platform/internal/infrastructure/adapter/api/routes"
	authAdapter "github.com/multinvest/platform/internal/infrastructure/adapter/auth"
	"github.com/multinvest/platform/internal/infrastructure/adapter/database"
	"github.com/multinvest/platform/internal/infrastructure/adapter/database/migration"
	"github.com/multinvest/platform/internal/infrastructure/adapter/logger"
	"github.com/multinvest/platform/internal/infrastructure/adapter/notifier"
	"github.com/multinvest/platform/internal/infrastructure/adapter/repository"
	timeProvider "github.com/multinvest/platform/internal/infrastructure/adapter/time"
	"github.com/multinvest/platform/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction())
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer appLogger.Flush()

	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
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
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	migrationMgr := migration.NewManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	hasher := authAdapter.NewBcryptHasher(cfg.Auth.BcryptCost)

	seeder := migration.NewSeeder(dbManager.DB(), hasher, appLogger, tp)
	if err := seeder.SeedAll(context.Background(), migration.AdminAccount{
		Username: cfg.Auth.AdminUsername,
		Email:    cfg.Auth.AdminEmail,
		Password: cfg.Auth.AdminPassword,
	}); err != nil {
		appLogger.Error("Failed to seed bootstrap data", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories and transaction manager
	queries := repository.NewQueryRunner(dbManager.QueryTimeout(), tp, appLogger)
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger, queries)
	firmRepo := repository.NewFirmRepository(dbManager.DB(), appLogger, queries)
	investmentRepo := repository.NewInvestmentRepository(dbManager.DB(), tp, appLogger, queries)
	withdrawalRepo := repository.NewWithdrawalRepository(dbManager.DB(), tp, appLogger, queries)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp, queries)

	// Event notifier; disabled without brokers
	var events coreport.Notifier = notifier.NewNoopNotifier()
	if len(cfg.Kafka.Brokers) > 0 {
		events = notifier.NewKafkaNotifier(cfg.Kafka.Brokers, cfg.Kafka.Topic, appLogger, tp)
	}
	defer events.Close()

	// Use cases
	authSvc := authUseCase.NewService(userRepo, hasher, tp, appLogger)
	investmentSvc := investmentUseCase.NewService(firmRepo, investmentRepo, withdrawalRepo, uow, events, tp, appLogger)
	withdrawalSvc := withdrawalUseCase.NewService(userRepo, withdrawalRepo, uow, events, tp, appLogger)
	adminSvc := adminUseCase.NewService(userRepo, investmentRepo, withdrawalRepo, appLogger)

	sessions := authAdapter.NewSessionManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, tp)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, sessions, appLogger)
	pageHandler := handler.NewPageHandler(authSvc, investmentSvc, sessions, appLogger)
	investmentHandler := handler.NewInvestmentHandler(investmentSvc, appLogger)
	withdrawalHandler := handler.NewWithdrawalHandler(withdrawalSvc, appLogger)
	adminHandler := handler.NewAdminHandler(adminSvc, authSvc, investmentSvc, withdrawalSvc, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, sessions, authHandler, pageHandler, investmentHandler, withdrawalHandler, adminHandler, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
