package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/config"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/infrastructure/database"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/infrastructure/github"
	httpServer "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/infrastructure/http"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/infrastructure/metrics"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/infrastructure/scheduler"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
	pkglogger "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := pkglogger.NewZapLogger(cfg.Log.Logger())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("service", cfg.Service.Name), zap.String("env", cfg.Service.Environment))

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, logger); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// Run database migrations
	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	repos := database.NewRepositories(db, logger)

	if cfg.Database.SeedOnStart {
		file, err := database.LoadSeedFile(cfg.Database.SeedFile)
		if err != nil {
			logger.Fatal("Failed to load seed file", zap.Error(err))
		}
		if _, err := database.NewSeeder(repos, logger).Seed(context.Background(), file); err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	m := metrics.New()
	factory, err := github.NewClientFactory(cfg.GitHub, logger, github.WithTransport(m.InstrumentTransport(http.DefaultTransport)))
	if err != nil {
		logger.Fatal("Failed to configure GitHub client", zap.Error(err))
	}

	services := usecase.NewServices(repos, factory, m, usecase.SyncConfig{EmailDomain: cfg.GitHub.EmailDomain}, logger)

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(cfg.Scheduler, services.Maturity, services.KPI, m, logger)
		if err != nil {
			logger.Fatal("Failed to configure scheduler", zap.Error(err))
		}
		sched.Start()
	}

	httpSrv := httpServer.NewServer(cfg, logger, services, m)

	go func() {
		if err := httpSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	if sched != nil {
		if err := sched.Stop(ctx); err != nil {
			logger.Error("Failed to stop scheduler", zap.Error(err))
		}
	}

	logger.Info("Server shut down successfully")
}
