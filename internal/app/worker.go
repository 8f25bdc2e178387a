package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-logbook/internal/config"
	"go-logbook/internal/messaging/kafka/producer"
	"go-logbook/internal/shared/connection"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const purgeInterval = time.Hour

func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	in, err := connect(cfg)
	if err != nil {
		return err
	}
	defer in.close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	m, err := newModules(cfg, in.db, in.rdb, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		producer.ProcessOutboxEvents(ctx, m.outboxRepo, kafkaWriter, logger, cfg.Worker.PollInterval)
		return nil
	})
	g.Go(func() error {
		m.reconciler().Run(ctx, cfg.Worker.ReconcileInterval)
		return nil
	})
	g.Go(func() error {
		m.purgeLoop(ctx, logger)
		return nil
	})

	err = g.Wait()
	logger.Info("worker shutting down")
	return err
}

// purgeLoop drops used or expired reset tokens and dead sessions.
func (m *modules) purgeLoop(ctx context.Context, logger *zap.Logger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		m.purgeOnce(ctx, logger)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (m *modules) purgeOnce(ctx context.Context, logger *zap.Logger) {
	tokens, err := m.resetSvc.PurgeStale(ctx, m.cfg.Worker.TokenPurgeAfter)
	if err != nil {
		logger.Warn("purge reset tokens failed", zap.Error(err))
	}

	sessions, err := m.authRepo.PurgeExpired(ctx, time.Now().UTC())
	if err != nil {
		logger.Warn("purge sessions failed", zap.Error(err))
	}

	if tokens > 0 || sessions > 0 {
		logger.Info("purged stale credentials",
			zap.Int64("reset_tokens", tokens),
			zap.Int64("sessions", sessions),
		)
	}
}
