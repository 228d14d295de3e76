package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/config"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/repository/postgres"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/logger"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/messaging/redis"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/metrics"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/worker"
)

// retention window for processed outbox rows
const processedRetention = 7 * 24 * time.Hour

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	broker, err := redis.NewRedisBroker(redis.Config{
		URL:          cfg.Redis.URL,
		MaxRetries:   cfg.Redis.MaxRetries,
		RetryBackoff: cfg.Redis.RetryBackoff,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	}, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer broker.Close()

	outboxRepo := postgres.NewOutboxRepository(db)
	m := metrics.NewMetrics("volunteer", "worker")
	l := logger.NewLogger(nil)

	processor := worker.NewOutboxProcessor(outboxRepo, broker, worker.OutboxProcessorConfig{
		BatchSize:     cfg.Outbox.BatchSize,
		PollInterval:  cfg.Outbox.PollingInterval,
		RetryAttempts: cfg.Outbox.MaxRetries,
		RetryDelay:    cfg.Outbox.RetryBackoff,
	}, l, m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go processor.Start(ctx)

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().UTC().Add(-processedRetention)
				deleted, err := outboxRepo.DeleteProcessedBefore(ctx, cutoff)
				if err != nil {
					log.Error().Err(err).Msg("failed to prune processed events")
					continue
				}
				if deleted > 0 {
					log.Info().Int64("deleted", deleted).Msg("pruned processed events")
				}
			}
		}
	}()

	metricsSrv := &http.Server{
		Addr:    ":9090",
		Handler: promhttp.Handler(),
	}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start metrics server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down worker...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("metrics server forced to shutdown")
	}

	log.Info().Msg("worker exited properly")
}
