package events

import (
	"bannerdesk/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ErrPublisherClosed is returned by Publish after Close
var ErrPublisherClosed = errors.New("publisher is closed")

// KafkaPublisher writes events to a Kafka topic keyed by booking id, so all
// events of one booking land on the same partition in order.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    *zap.Logger
	mu     sync.RWMutex
	closed bool
}

// defaultBatchTimeout keeps a single event from waiting on kafka-go's 1s default
const defaultBatchTimeout = 10 * time.Millisecond

// NewKafkaPublisher creates a publisher for cfg.Topic on cfg.Brokers. In async
// mode Publish returns once messages are queued and write failures are logged.
func NewKafkaPublisher(cfg config.EventsConfig, log *zap.Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	if log == nil {
		log = zap.NewNop()
	}
	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = defaultBatchTimeout
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: batchTimeout,
		Async:        cfg.Async,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Sugar().Errorf(msg, args...)
		}),
	}
	if cfg.Async {
		writer.Completion = func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error("failed to publish booking events", zap.Int("messages", len(messages)), zap.Error(err))
			}
		}
	}
	return &KafkaPublisher{writer: writer, log: log}, nil
}

// Message converts an event to the kafka message written by Publish
func Message(e Event) (kafka.Message, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(e.BookingID.String()),
		Value: value,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(e.Type)},
		},
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, events ...Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		msg, err := Message(e)
		if err != nil {
			return fmt.Errorf("failed to encode %s event: %w", e.Type, err)
		}
		msgs = append(msgs, msg)
	}
	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}
