package storage

import (
	"context"
	"encoding/json"

	"hotel-concierge/feed-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

var _ MessageReader = (*kafka.Reader)(nil)

// KafkaChangeSource consumes order_created events. They already carry
// resolved item names.
type KafkaChangeSource struct {
	Reader MessageReader
	logger *zap.Logger
}

func NewKafkaChangeSource(reader MessageReader, logger *zap.Logger) *KafkaChangeSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaChangeSource{Reader: reader, logger: logger}
}

func (s *KafkaChangeSource) Subscribe(ctx context.Context) (<-chan domain.OrderEvent, error) {
	events := make(chan domain.OrderEvent)
	go func() {
		defer close(events)
		for {
			message, err := s.Reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() == nil {
					s.logger.Warn("order event stream stopped", zap.Error(err))
				}
				return
			}

			var msg domain.OrderCreatedEvent
			if err := json.Unmarshal(message.Value, &msg); err != nil {
				s.logger.Warn("skipping malformed order event", zap.Int64("offset", message.Offset), zap.Error(err))
				continue
			}
			if msg.Type != domain.OrderCreatedType {
				continue
			}
			if msg.Order.Items == nil {
				msg.Order.Items = []string{}
			}

			select {
			case events <- domain.OrderEvent{Order: msg.Order, Resolved: true}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}
