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
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"mesa-judge/internal/adapter/breaker"
	httpadapter "mesa-judge/internal/adapter/http"
	"mesa-judge/internal/adapter/memory"
	"mesa-judge/internal/adapter/postgres"
	redisadapter "mesa-judge/internal/adapter/redis"
	"mesa-judge/internal/adapter/usecase"
	"mesa-judge/internal/config"
	"mesa-judge/internal/config/configs"
	"mesa-judge/internal/core/anomaly"
	"mesa-judge/internal/core/domain"
	"mesa-judge/internal/core/judgment"
	"mesa-judge/internal/core/override"
	"mesa-judge/internal/core/port"
	"mesa-judge/internal/db"
	"mesa-judge/internal/metrics"
	"mesa-judge/internal/scheduler"
)

// main is the entry point of the mesa-judge service. It loads configuration,
// optionally runs database migrations and seeds demo data, wires the
// judgment engine, anomaly detector and override store, schedules the
// background jobs and starts the HTTP server. On receiving a termination
// signal it gracefully shuts everything down.
func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration from .env and environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	loc, err := cfg.Override.Location()
	if err != nil {
		logger.Error("invalid override timezone", slog.Any("error", err))
		return 1
	}

	engine, err := judgment.NewEngine(cfg.Judgment.ToDomain(), domain.MarkerDetector{Marker: cfg.Judgment.RefreshMarker})
	if err != nil {
		logger.Error("invalid judgment config", slog.Any("error", err))
		return 1
	}
	detector, err := anomaly.NewDetector(cfg.Anomaly.ToDomain())
	if err != nil {
		logger.Error("invalid anomaly config", slog.Any("error", err))
		return 1
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return 1
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return 1
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, cfg.Judgment.LookbackDays); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return 1
		}
		logger.Info("demo data seeded")
	}

	overrideRepo, closeRepo, err := newOverrideRepository(ctx, cfg, pool)
	if err != nil {
		logger.Error("override backend error", slog.Any("error", err))
		return 1
	}
	defer closeRepo()

	store := override.NewStore(overrideRepo, loc, override.WithLogger(logger))
	reg := metrics.NewRegistry()
	records := breaker.NewRecordSource("postgres_records", postgres.NewRecordRepository(pool), breaker.Settings{
		Failures: cfg.Psql.BreakerFailures,
		Timeout:  cfg.Psql.BreakerTimeout,
	}, logger)
	svc := usecase.NewJudgmentUseCase(records, engine, detector, store, logger, usecase.Options{
		Workers:      cfg.Worker.Count,
		LookbackDays: cfg.Judgment.LookbackDays,
		Metrics:      reg,
	})

	sched := scheduler.New(ctx, logger, loc, cfg.Worker.JobTimeout)
	if cfg.Override.PurgeSchedule != "" {
		if err = sched.AddJob(cfg.Override.PurgeSchedule, scheduler.PurgeOverridesJob{Store: store, Logger: logger}); err != nil {
			logger.Error("invalid purge schedule", slog.Any("error", err))
			return 1
		}
	}
	if cfg.Judgment.Schedule != "" {
		if err = sched.AddJob(cfg.Judgment.Schedule, scheduler.JudgmentRunJob{UseCase: svc}); err != nil {
			logger.Error("invalid judgment schedule", slog.Any("error", err))
			return 1
		}
	}
	sched.Start()
	defer sched.Stop()

	handler := httpadapter.NewHandler(svc, logger, reg.Handler(), cfg.HTTP.CORSOrigins)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("override_backend", cfg.Override.StoreBackend()),
			slog.String("timezone", loc.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		exitCode = 1
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	return exitCode
}

// newOverrideRepository builds the configured override backend. The
// returned func releases its connections.
func newOverrideRepository(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) (port.OverrideRepository, func(), error) {
	switch cfg.Override.StoreBackend() {
	case configs.BackendPostgres:
		return postgres.NewOverrideRepository(pool), func() {}, nil
	case configs.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return redisadapter.NewOverrideRepository(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil
	default:
		return memory.NewOverrideRepository(), func() {}, nil
	}
}
