//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	kafkaadapter "github.com/seismoview/quake-globe/internal/adapter/kafka"
	"github.com/seismoview/quake-globe/internal/config"
	"github.com/seismoview/quake-globe/internal/domain"
)

const testSinkTopic = "test-quake-events"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-broker Kafka container and returns its address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("test-cluster"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	ctrlConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrlConn.Close()

	require.NoError(t, ctrlConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestSinkPublishesSnapshot verifies the Writer publishes every event of a
// snapshot, keyed by event ID and carrying the fetched_at header.
func TestSinkPublishesSnapshot(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSinkTopic)

	cfg := &config.Config{
		KafkaBrokers:   []string{broker},
		KafkaSinkTopic: testSinkTopic,
	}

	fetchedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	snapshot := &domain.Snapshot{
		Events: []domain.Event{
			{ID: "us7000aaa1", Lat: 35.6, Lon: 139.7, DepthKm: 10, Magnitude: 5, Place: "near Tokyo, Japan"},
			{ID: "us7000aaa2", Lat: 0, Lon: 0, DepthKm: 0, Magnitude: -1, Place: "Unknown"},
		},
		FetchedAt: fetchedAt,
	}

	writer := kafkaadapter.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	require.NoError(t, writer.PublishSnapshot(ctx, snapshot))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSinkTopic,
		GroupID:     fmt.Sprintf("test-sink-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	seen := map[string]domain.Event{}
	for i := 0; i < len(snapshot.Events); i++ {
		readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := consumer.ReadMessage(readCtx)
		readCancel()
		require.NoError(t, err, "read from sink topic")

		var ev domain.Event
		require.NoError(t, json.Unmarshal(msg.Value, &ev))
		assert.Equal(t, ev.ID, string(msg.Key), "messages are keyed by event ID")

		headers := map[string]string{}
		for _, h := range msg.Headers {
			headers[h.Key] = string(h.Value)
		}
		assert.Equal(t, fetchedAt.Format(time.RFC3339), headers["fetched_at"])

		seen[ev.ID] = ev
	}

	require.Len(t, seen, 2)
	assert.Equal(t, 5.0, seen["us7000aaa1"].Magnitude)
	assert.Equal(t, "Unknown", seen["us7000aaa2"].Place)
}

// TestSinkEmptySnapshotIsNoop verifies publishing nothing succeeds without
// touching the broker.
func TestSinkEmptySnapshotIsNoop(t *testing.T) {
	cfg := &config.Config{
		KafkaBrokers:   []string{"localhost:1"}, // unreachable on purpose
		KafkaSinkTopic: testSinkTopic,
	}
	writer := kafkaadapter.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	require.NoError(t, writer.PublishSnapshot(context.Background(), &domain.Snapshot{}))
	require.NoError(t, writer.PublishSnapshot(context.Background(), nil))
}
