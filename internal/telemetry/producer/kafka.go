// Package producer writes committed audit events to Kafka for downstream consumers.
package producer

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/telemetry"
)

// MessageWriter is the subset of *kafka.Writer the producer uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer exports audit events as JSON envelopes keyed by scope, so one entity's events
// land on one partition in order.
type KafkaProducer struct {
	writer MessageWriter
}

// NewKafkaProducer returns nil when brokers or topic are unset, which callers treat as disabled.
func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	return NewKafkaProducerWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	})
}

// NewKafkaProducerWithWriter is used by tests.
func NewKafkaProducerWithWriter(w MessageWriter) *KafkaProducer {
	return &KafkaProducer{writer: w}
}

// Export writes e to the topic.
func (p *KafkaProducer) Export(ctx context.Context, e *domain.Event) error {
	if p == nil || p.writer == nil || e == nil {
		return nil
	}
	env := telemetry.NewEnvelope(e)
	payload, err := env.Marshal()
	if err != nil {
		return fmt.Errorf("producer: marshal %s: %w", e.ID, err)
	}
	msg := kafka.Message{
		Key:   []byte(env.Scope()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(env.Action)},
		},
		Time: env.CreatedAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("producer: write %s: %w", e.ID, err)
	}
	return nil
}

// Close flushes and closes the writer. Safe on a nil producer.
func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
