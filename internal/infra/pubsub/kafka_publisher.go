package pubsub

import (
	"context"
	"log/slog"
	"time"

	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a single Kafka topic.
// Messages are keyed by workout ID so events of one workout stay ordered.
type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a synchronous writer that waits for all in-sync replicas.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
		logger: logger,
	}
}

func (p *kafkaPublisher) PublishWorkoutCompleted(ctx context.Context, event *service.WorkoutCompletedEvent) error {
	data, attributes, err := encodeWorkoutCompleted(event)
	if err != nil {
		return err
	}

	headers := make([]kafka.Header, 0, len(attributes))
	for k, v := range attributes {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.WorkoutID),
		Value:   data,
		Headers: headers,
		Time:    time.Now().UTC(),
	}); err != nil {
		return errors.Wrap(err, "failed to write kafka message")
	}

	p.logger.Info("[Kafka] Event published successfully",
		slog.String("workout_id", event.WorkoutID),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
