// Package kafka publishes extracted quake events to a sink topic for
// downstream consumers. The sink is optional and never gates rendering.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/seismoview/quake-globe/internal/config"
	"github.com/seismoview/quake-globe/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces quake events to the sink topic.
// It implements pipeline.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishSnapshot serializes and publishes every event in the snapshot in a
// single WriteMessages call. Event IDs are stable across fetches, so
// downstream consumers can deduplicate replays by key.
func (w *Writer) PublishSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil || len(snapshot.Events) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(snapshot.Events))
	for i := range snapshot.Events {
		msg, err := serializeToMessage(snapshot.Events[i], snapshot.FetchedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals an Event into a Kafka message keyed by event ID.
func serializeToMessage(event domain.Event, fetchedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize quake event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "place", Value: []byte(event.Place)},
			{Key: "fetched_at", Value: []byte(fetchedAt.Format(time.RFC3339))},
		},
	}, nil
}
