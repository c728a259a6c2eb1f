package events

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher is the outbound event contract used by application services.
type Publisher interface {
	// PublishEvent sends a CloudEvent to the given topic, keyed for
	// per-session ordering.
	PublishEvent(ctx context.Context, topic, key string, event CloudEvent) error

	// Close releases the underlying connections.
	Close() error
}

// KafkaProducer publishes CloudEvents to Kafka.
type KafkaProducer struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

// NewKafkaProducer creates a producer for the given brokers. Topics are set
// per message.
func NewKafkaProducer(brokers []string, logger *zap.Logger) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			Balancer:               &kafkago.Hash{},
			RequiredAcks:           kafkago.RequireOne,
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

// PublishEvent sends the event to the topic.
func (p *KafkaProducer) PublishEvent(ctx context.Context, topic, key string, event CloudEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	})
}

// Close closes the underlying Kafka writer.
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops all events. Used when no brokers are configured and
// in unit tests.
type NoopPublisher struct{}

// PublishEvent discards the event.
func (NoopPublisher) PublishEvent(context.Context, string, string, CloudEvent) error { return nil }

// Close is a no-op.
func (NoopPublisher) Close() error { return nil }
