// Package messaging holds event publishers that do not need a broker.
package messaging

import (
	"context"
	"log/slog"

	"github.com/pymecredit/creditrisk/internal/domain/event"
	"github.com/pymecredit/creditrisk/internal/domain/port"
)

var _ port.EventPublisher = (*LogPublisher)(nil)

// LogPublisher writes each domain event to the logger. It is used when no
// Kafka brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
	level  slog.Level
}

func NewLogPublisher(logger *slog.Logger, level slog.Level) *LogPublisher {
	return &LogPublisher{logger: logger, level: level}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	for _, evt := range events {
		p.logger.Log(ctx, p.level, "domain event",
			"event_type", evt.EventType(),
			"event_id", evt.EventID(),
			"aggregate_id", evt.AggregateID(),
			"aggregate_type", evt.AggregateType(),
			"occurred_at", evt.OccurredAt(),
		)
	}
	return nil
}
