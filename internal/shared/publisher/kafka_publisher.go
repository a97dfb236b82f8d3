package publisher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaOptions struct {
	Brokers      []string
	Topic        string
	MaxAttempts  int
	BatchTimeout time.Duration
	WriteTimeout time.Duration
}

var _ Publisher = (*KafkaPublisher)(nil)

type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewKafkaPublisher writes synchronously with acks from all in-sync
// replicas, keyed by message Key so one order's events stay ordered.
func NewKafkaPublisher(opts KafkaOptions, logger *slog.Logger) (*KafkaPublisher, error) {
	if len(opts.Brokers) == 0 {
		return nil, errors.New("publisher: at least one kafka broker is required")
	}
	if opts.Topic == "" {
		return nil, errors.New("publisher: kafka topic is required")
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.BatchTimeout <= 0 {
		opts.BatchTimeout = 10 * time.Millisecond
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(opts.Brokers...),
		Topic:                  opts.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            opts.MaxAttempts,
		BatchTimeout:           opts.BatchTimeout,
		WriteTimeout:           opts.WriteTimeout,
		AllowAutoTopicCreation: false,
		Logger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Debug(fmt.Sprintf(msg, args...), "component", "kafka_writer")
		}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Error(fmt.Sprintf(msg, args...), "component", "kafka_writer")
		}),
	}

	return newKafkaPublisher(writer, opts.Topic), nil
}

func newKafkaPublisher(writer messageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}

	now := time.Now().UTC()
	batch := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		headers := make([]kafka.Header, 0, len(m.Headers))
		for k, v := range m.Headers {
			headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
		}
		batch = append(batch, kafka.Message{
			Key:     []byte(m.Key),
			Value:   m.Value,
			Headers: headers,
			Time:    now,
		})
	}

	err := p.writer.WriteMessages(ctx, batch...)
	if err == nil {
		return nil
	}

	var writeErrs kafka.WriteErrors
	if errors.As(err, &writeErrs) {
		return &BatchError{Errs: []error(writeErrs)}
	}
	return fmt.Errorf("publisher: write to %s: %w", p.topic, err)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
