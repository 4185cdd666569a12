package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/ecommerce-service/internal/config"
	"github.com/SergeyBogomolovv/ecommerce-service/internal/entities"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// OrderCreatedEvent событие о созданном заказе
type OrderCreatedEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Order      Order     `json:"order"`
}

const eventTypeOrderCreated = "order.created"

type kafkaPublisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *kafkaPublisher) PublishOrderCreated(ctx context.Context, order entities.Order) error {
	event := OrderCreatedEvent{
		EventID:    uuid.NewString(),
		Type:       eventTypeOrderCreated,
		OccurredAt: time.Now().UTC(),
		Order:      OrderEntityToJSON(order),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: value,
	}); err != nil {
		orderEventsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to write event: %w", err)
	}

	orderEventsPublished.WithLabelValues("ok").Inc()
	p.logger.Debug("order event published",
		slog.String("event_id", event.EventID),
		slog.String("order_id", order.ID),
	)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
