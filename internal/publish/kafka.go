// Package publish delivers workout summary events to Kafka.
package publish

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/admi20/pet-project-fitness-tracker/internal/events"
	"github.com/admi20/pet-project-fitness-tracker/internal/observability"
)

// Publisher sends summary events downstream.
type Publisher interface {
	Publish(ctx context.Context, evt events.WorkoutSummarized) error
	Close() error
}

type messageWriter interface {
	WriteMessages(context.Context, ...kafka.Message) error
	Close() error
}

// KafkaPublisher lazily manages writers per topic.
type KafkaPublisher struct {
	brokers   []string
	topic     string
	newWriter func(brokers []string, topic string) messageWriter

	mu      sync.Mutex
	writers map[string]messageWriter
}

// NewKafkaPublisher creates a KafkaPublisher writing to topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		brokers:   brokers,
		topic:     topic,
		newWriter: newKafkaWriter,
		writers:   make(map[string]messageWriter),
	}
}

func newKafkaWriter(brokers []string, topic string) messageWriter {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Async:                  false,
	}
}

// Publish encodes the event as JSON and writes it keyed by training type.
func (p *KafkaPublisher) Publish(ctx context.Context, evt events.WorkoutSummarized) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(evt.TrainingType),
		Value: payload,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(events.EventWorkoutSummarized)},
			{Key: "run_id", Value: []byte(evt.RunID)},
		},
	}

	if err := p.writerForTopic(p.topic).WriteMessages(ctx, msg); err != nil {
		observability.RecordPublishError(p.topic)
		return err
	}
	observability.RecordPublished(p.topic)
	return nil
}

func (p *KafkaPublisher) writerForTopic(topic string) messageWriter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}

	writer := p.newWriter(p.brokers, topic)
	p.writers[topic] = writer
	return writer
}

// Close releases all writers.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}

// NoopPublisher discards events; used when no brokers are configured.
type NoopPublisher struct{}

// Publish implements Publisher.
func (NoopPublisher) Publish(context.Context, events.WorkoutSummarized) error { return nil }

// Close implements Publisher.
func (NoopPublisher) Close() error { return nil }
