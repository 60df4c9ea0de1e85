package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var ErrPublisherClosed = errors.New("publisher is closed")

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	log    *zap.Logger
	closed bool
	mu     sync.RWMutex
}

func NewKafkaPublisher(brokers []string, topic string, log *zap.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger:  kafka.LoggerFunc(log.Sugar().Errorf),
	}

	return newKafkaPublisher(writer, log), nil
}

func newKafkaPublisher(w messageWriter, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: w,
		log:    log.With(zap.String("component", "events")),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", event.Type, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Key()),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("Failed to publish event",
			zap.Error(err),
			zap.String("type", string(event.Type)),
			zap.String("key", event.Key()),
		)
		return fmt.Errorf("publish event %s: %w", event.Type, err)
	}

	p.log.Debug("Event published",
		zap.String("type", string(event.Type)),
		zap.String("key", event.Key()),
	)
	return nil
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
