package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pymecredit/creditrisk/internal/application/usecase"
	"github.com/pymecredit/creditrisk/internal/domain/port"
	"github.com/pymecredit/creditrisk/internal/domain/service"
	"github.com/pymecredit/creditrisk/internal/infrastructure/config"
	"github.com/pymecredit/creditrisk/internal/infrastructure/kafka"
	"github.com/pymecredit/creditrisk/internal/infrastructure/messaging"
	pgRepo "github.com/pymecredit/creditrisk/internal/infrastructure/persistence/postgres"
	"github.com/pymecredit/creditrisk/internal/infrastructure/render"
	"github.com/pymecredit/creditrisk/internal/infrastructure/storage"
	"github.com/pymecredit/creditrisk/internal/infrastructure/telemetry"
	grpcPresentation "github.com/pymecredit/creditrisk/internal/presentation/grpc"
	"github.com/pymecredit/creditrisk/internal/presentation/rest"
	pkgkafka "github.com/pymecredit/creditrisk/pkg/kafka"
	"github.com/pymecredit/creditrisk/pkg/money"
	"github.com/pymecredit/creditrisk/pkg/observability"
	pkgpostgres "github.com/pymecredit/creditrisk/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting creditrisk",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"max_files", cfg.MaxFiles,
		"analysis_delay", cfg.AnalysisDelay.String(),
	)

	// Tracing is optional.
	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() { _ = shutdown(context.Background()) }() //nolint:errcheck // best-effort tracer shutdown
		}
	}

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: cfg.ServiceName})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck
	recorder, err := telemetry.NewRecorder(meterProvider)
	if err != nil {
		logger.Error("failed to create metric instruments", "error", err)
		os.Exit(1)
	}

	checks := map[string]rest.ReadinessCheck{}

	// Document registry (optional).
	var registry port.DocumentRegistry
	if cfg.DatabaseURL != "" {
		dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
		pool, err := pkgpostgres.NewPool(dbCtx, pkgpostgres.Config{URL: cfg.DatabaseURL})
		dbCancel()
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("connected to database")

		if migErr := pkgpostgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsSource); migErr != nil {
			logger.Warn("migration warning", "error", migErr)
		}
		registry = pgRepo.NewDocumentRegistry(pool)
		checks["database"] = func(ctx context.Context) error { return pkgpostgres.HealthCheck(ctx, pool) }
	}

	// Domain events go to Kafka when brokers are configured, otherwise to the log.
	var publisher port.EventPublisher
	kafkaCfg := pkgkafka.Config{Brokers: cfg.Kafka.Brokers, ClientID: cfg.ServiceName}
	if kafkaCfg.Enabled() {
		producer := pkgkafka.NewProducer(kafkaCfg)
		defer producer.Close()
		publisher = kafka.NewEventPublisher(producer, cfg.Kafka.Topic, logger)
		logger.Info("publishing events to kafka", "topic", cfg.Kafka.Topic)
	} else {
		publisher = messaging.NewLogPublisher(logger, slog.LevelInfo)
	}

	// Object storage (optional). Without it evaluations never stage documents.
	evaluateOpts := []usecase.EvaluateOption{
		usecase.WithAnalysisDelay(cfg.AnalysisDelay),
		usecase.WithMaxFiles(cfg.MaxFiles),
		usecase.WithRecorder(recorder),
	}
	if cfg.Storage.Enabled() {
		store, err := storage.NewS3ObjectStore(cfg.Storage, logger)
		if err != nil {
			logger.Error("failed to create object store", "error", err)
			os.Exit(1)
		}
		checks["storage"] = store.Ping
		stager := usecase.NewStageDocumentsUseCase(store, registry, publisher, recorder)
		evaluateOpts = append(evaluateOpts, usecase.WithStager(stager))
	} else {
		logger.Info("object storage not configured, document staging disabled")
	}

	// Wire use cases.
	composer := service.NewReportComposer()
	evaluateUC := usecase.NewEvaluateCompanyUseCase(
		service.NewScoreEngine(service.SeededPerturbation(uint64(time.Now().UnixNano()))),
		service.NewRecommendationPolicy(money.USD),
		service.NewWhatIfSimulator(),
		publisher,
		evaluateOpts...,
	)
	exportUC := usecase.NewExportReportUseCase(composer,
		render.NewPDFRenderer(),
		render.NewJSONRenderer(),
		render.NewTextRenderer(),
	)

	// gRPC server.
	grpcHandler := grpcPresentation.NewEvaluationHandler(evaluateUC, exportUC, composer, logger)
	grpcServer := grpcPresentation.NewServer(grpcHandler, logger, grpcPresentation.ServerOptions{
		TLS:        cfg.TLS,
		Reflection: cfg.Reflection,
	})

	// HTTP server.
	router := rest.NewRouter(
		rest.NewHealthHandler(logger, checks),
		rest.NewEvaluationHandler(evaluateUC, exportUC, composer, logger),
		rest.NewDocumentHandler(usecase.NewListDocumentsUseCase(registry), logger),
		metricsHandler,
		logger,
	)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("creditrisk stopped")
}
