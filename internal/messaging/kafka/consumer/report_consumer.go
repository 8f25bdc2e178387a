package consumer

import (
	"context"
	"encoding/json"

	"go-logbook/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ReportCache is dropped whenever another process changes the ledger.
type ReportCache interface {
	InvalidateReports(ctx context.Context) error
}

type reportEnvelope struct {
	EventType string `json:"event_type"`
	ReportID  string `json:"report_id"`
	SourceID  string `json:"source_id"`
}

func ConsumeReportEvents(
	ctx context.Context,
	reader MessageReader,
	cache ReportCache,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.report_events")
	log.Info("report events consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("report events consumer stopped")
				return
			}
			log.Error("fetch report event failed", zap.Error(err))
			continue
		}

		if err := handleReportMessage(ctx, msg, cache, log); err != nil {
			// left uncommitted so the message is redelivered
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit report event failed", zap.Error(err))
		}
	}
}

func handleReportMessage(ctx context.Context, msg kafkago.Message, cache ReportCache, log *zap.Logger) error {
	var event reportEnvelope
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode report event failed", zap.String("topic", msg.Topic), zap.Error(err))
		return nil
	}

	switch event.EventType {
	case events.ReportRecordedType, events.ReportRemovedType:
	default:
		log.Warn("unknown report event type, skipping", zap.String("event_type", event.EventType))
		return nil
	}

	if err := cache.InvalidateReports(ctx); err != nil {
		log.Error("invalidate report cache failed",
			zap.String("event_type", event.EventType),
			zap.String("report_id", event.ReportID),
			zap.Error(err),
		)
		return err
	}

	log.Info("report cache invalidated",
		zap.String("event_type", event.EventType),
		zap.String("report_id", event.ReportID),
		zap.String("source_id", event.SourceID),
	)
	return nil
}
