package events

import (
	"context"
	"log/slog"
)

// LogSink writes events to the structured log. It is the fallback when no
// broker is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Write(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, "storefront event",
		"event_id", event.ID,
		"event_type", event.Type,
		"order_code", event.OrderCode,
		"customer_id", event.CustomerID,
		"session_id", event.SessionID,
		"payload", event.Payload,
	)
	return nil
}

func (s *LogSink) Close() error {
	return nil
}
