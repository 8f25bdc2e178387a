package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-logbook/internal/config"
	"go-logbook/internal/events"
	"go-logbook/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	in, err := connect(cfg)
	if err != nil {
		return err
	}
	defer in.close()

	m, err := newModules(cfg, in.db, in.rdb, logger)
	if err != nil {
		return err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		GroupID:        cfg.Kafka.ConsumerGroup,
		GroupTopics:    []string{events.ReportRecordedTopic, events.ReportRemovedTopic},
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeReportEvents(ctx, reader, m.ledgerSvc, logger)

	logger.Info("consumer shutting down")
	return nil
}
