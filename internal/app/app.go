package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brandscope/api/internal/auth"
	"github.com/brandscope/api/internal/config"
	"github.com/brandscope/api/internal/event"
	handlerhttp "github.com/brandscope/api/internal/handler/http"
	"github.com/brandscope/api/internal/repository/postgres"
	"github.com/brandscope/api/internal/service"
	"github.com/brandscope/api/migrations"
	"github.com/brandscope/api/pkg/database"
	"github.com/brandscope/api/pkg/health"
	"github.com/brandscope/api/pkg/kafka"
	"github.com/brandscope/api/pkg/tracing"
)

const serviceName = "brandscope"

// App wires configuration, storage, messaging, and the HTTP server together.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	pool     *pgxpool.Pool
	producer *kafka.Producer
	server   *http.Server

	shutdownTracer func(context.Context) error
}

// New builds the application: it connects to PostgreSQL, runs migrations,
// and assembles the HTTP server. Kafka is optional; without brokers events
// are discarded.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	shutdownTracer, err := tracing.InitTracer(ctx, tracing.Config{
		Enabled:     cfg.TracingEnabled,
		Endpoint:    cfg.TracingEndpoint,
		ServiceName: serviceName,
		Environment: cfg.Environment,
		SampleRatio: cfg.TracingSample,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	pool, err := database.NewPostgresPoolWithLogger(ctx, cfg.Postgres(), logger)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := database.RunMigrations(ctx, pool, migrations.FS, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	var producer *kafka.Producer
	var publisher event.Publisher = event.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewProducer(cfg.KafkaBrokers, logger)
		publisher = event.NewKafkaPublisher(producer, logger)
	} else {
		logger.Warn("no kafka brokers configured, domain events are disabled")
	}

	brandRepo := postgres.NewBrandRepository(pool)
	competitorRepo := postgres.NewCompetitorRepository(pool)

	brandSvc := service.NewBrandService(brandRepo, publisher, logger)
	competitorSvc := service.NewCompetitorService(competitorRepo, brandRepo, publisher, logger)

	verifier := auth.NewVerifier(cfg.JWTSecret)

	healthHandler := health.NewHandler()
	healthHandler.RegisterCritical("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	if producer != nil {
		healthHandler.RegisterNonCritical("kafka", producer.Ping)
	}

	router := handlerhttp.NewRouter(handlerhttp.RouterConfig{
		BrandHandler:      handlerhttp.NewBrandHandler(brandSvc, logger),
		CompetitorHandler: handlerhttp.NewCompetitorHandler(competitorSvc, logger),
		Health:            healthHandler,
		TokenValidator:    verifier.Validate,
		Logger:            logger,
		ServiceName:       serviceName,
		CORSOrigins:       cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		pool:           pool,
		producer:       producer,
		server:         server,
		shutdownTracer: shutdownTracer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is cancelled or the
// server fails.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server listening",
			slog.String("addr", a.server.Addr),
			slog.String("environment", a.cfg.Environment),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return a.shutdown()
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

// shutdown drains in-flight requests and closes resources in reverse
// dependency order.
func (a *App) shutdown() error {
	a.logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var errs []error

	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka producer: %w", err))
		}
	}

	a.pool.Close()

	if err := a.shutdownTracer(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown tracer: %w", err))
	}

	a.logger.Info("shutdown complete")
	return errors.Join(errs...)
}
