package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/config"
	"gitlab.com/fleetops/api/pipeline-admin/internal/filestore"
	"gitlab.com/fleetops/api/pipeline-admin/internal/healthcheck"
	"gitlab.com/fleetops/api/pipeline-admin/internal/httpapi"
	"gitlab.com/fleetops/api/pipeline-admin/internal/observer"
	"gitlab.com/fleetops/api/pipeline-admin/internal/storage"
	"gitlab.com/fleetops/api/pipeline-admin/internal/usecase"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
)

func main() {
	// Set timezone to UTC
	time.Local = time.UTC

	// Load configuration
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	observer.SetMetricsEnabled(cfg.Metrics.Enabled)

	logger.Log.Info("Starting Pipeline Admin API",
		zap.String("environment", cfg.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	// Initialize the Postgres repository
	postgresRepo, err := storage.NewPostgresRepo(cfg.Database.PostgresDSN, cfg.Database.PostgresAutoMigrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize Postgres repository", zap.Error(err))
	}

	// Object store client for document blobs
	fileStore := filestore.NewClient(
		cfg.Storage.Endpoint,
		cfg.Storage.Bucket,
		cfg.Storage.PublicBaseURL,
		cfg.Storage.AuthToken,
	)

	// Repository adapters
	prospectRepo := storage.NewProspectRepoAdapter(postgresRepo)
	contactRepo := storage.NewContactRepoAdapter(postgresRepo)
	documentRepo := storage.NewDocumentRepoAdapter(postgresRepo)
	routeRepo := storage.NewRouteRepoAdapter(postgresRepo)
	driverRepo := storage.NewDriverRepoAdapter(postgresRepo)
	optionRepo := storage.NewOptionRepoAdapter(postgresRepo)
	helpRepo := storage.NewHelpRepoAdapter(postgresRepo)
	userRoleRepo := storage.NewUserRoleRepoAdapter(postgresRepo)

	// Services
	documentService := usecase.NewDocumentService(documentRepo, fileStore)
	optionService := usecase.NewOptionService(optionRepo)
	services := httpapi.Services{
		Prospects: usecase.NewProspectService(prospectRepo),
		Contacts:  usecase.NewContactService(contactRepo),
		Documents: documentService,
		Routes:    usecase.NewRouteService(routeRepo, driverRepo),
		Drivers:   usecase.NewDriverService(driverRepo, routeRepo),
		Options:   optionService,
		Help:      usecase.NewHelpService(helpRepo),
		Roles:     usecase.NewRoleService(userRoleRepo, cfg),
		Reports:   usecase.NewReportService(prospectRepo, contactRepo, routeRepo, driverRepo, optionRepo),
		Snapshot:  usecase.NewSnapshotService(prospectRepo, contactRepo, routeRepo, driverRepo, documentService, optionService),
	}

	// API server
	apiServer := httpapi.NewServer(strconv.Itoa(cfg.Server.Port), services, logger.Log)
	apiServer.Start()

	// Health check server, with /metrics when enabled
	healthServer := healthcheck.NewServer(strconv.Itoa(cfg.Metrics.Port), postgresRepo, logger.Log)
	if cfg.Metrics.Enabled {
		healthServer.RegisterMetricsHandler(promhttp.Handler())
		logger.Log.Info("Metrics endpoint enabled", zap.String("path", "/metrics"), zap.Int("port", cfg.Metrics.Port))
	} else {
		logger.Log.Info("Metrics endpoint disabled for environment", zap.String("environment", cfg.Environment))
	}
	healthServer.Start()

	logger.Log.Info("Health check endpoints available",
		zap.String("health", fmt.Sprintf("http://localhost:%d/health", cfg.Metrics.Port)),
		zap.String("readiness", fmt.Sprintf("http://localhost:%d/ready", cfg.Metrics.Port)),
	)

	// Wait for termination signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Log.Info("Received termination signal", zap.String("signal", sig.String()))

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	logger.Log.Info("Starting graceful shutdown", zap.Duration("timeout", 30*time.Second))

	if err := apiServer.Stop(shutdownCtx); err != nil {
		logger.Log.Error("Failed to stop API server cleanly", zap.Error(err))
	}
	if err := healthServer.Stop(shutdownCtx); err != nil {
		logger.Log.Error("Failed to stop health check server cleanly", zap.Error(err))
	}
	if err := postgresRepo.Close(shutdownCtx); err != nil {
		logger.Log.Error("Failed to close database connection", zap.Error(err))
	}

	logger.Log.Info("Shutdown complete")
}
