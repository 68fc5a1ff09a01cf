package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Event types emitted by the service.
const (
	TypeActivityRecorded = "activity.recorded"
	TypeLeadCaptured     = "lead.captured"
)

// Publisher ships domain events to whatever sink is configured.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
	Close() error
}

// Event is the JSON body written for every published event.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// PublishJSON encodes data into an Event and publishes it.
func PublishJSON(ctx context.Context, p Publisher, eventType, partitionKey string, data any) error {
	b, err := json.Marshal(Event{Type: eventType, OccurredAt: time.Now().UTC(), Data: data})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", eventType, err)
	}
	return p.Publish(ctx, eventType, b, partitionKey)
}

// LogPublisher writes events to the structured log; used when no
// broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger.With("module", "events")}
}

func (p *LogPublisher) Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error {
	p.logger.InfoContext(ctx, "event published", "event_type", eventType, "key", partitionKey, "bytes", len(payload))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
