package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"real-estate-manager/internal/constants"
	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DomainEventDTO - тело сообщения о созданной или удаленной сущности
type DomainEventDTO struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	EntityID   int       `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// messagePublisher - часть *rabbitmq_producer.Publisher, которая нужна адаптеру
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// DomainEventsAdapter публикует события в topic-обменник, ключ маршрутизации = тип события.
type DomainEventsAdapter struct {
	producer messagePublisher
}

func NewDomainEventsAdapter(producer messagePublisher) (*DomainEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &DomainEventsAdapter{producer: producer}, nil
}

func (a *DomainEventsAdapter) Publish(ctx context.Context, event domain.DomainEvent) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "DomainEventsAdapter",
		"routing_key": string(event.Type),
		"entity_id":   event.EntityID,
	})

	body, err := json.Marshal(DomainEventDTO{
		EventID:    event.ID.String(),
		Type:       string(event.Type),
		EntityID:   event.EntityID,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID.String(),
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt,
		Headers:      make(amqp.Table),
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, constants.PublishTimeoutSeconds*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, string(event.Type), msg); err != nil {
		logger.Error("Failed to publish domain event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish %s for entity %d: %w", event.Type, event.EntityID, err)
	}

	logger.Info("Domain event published", nil)
	return nil
}

// NoopEventsPublisher используется, когда RABBITMQ_URL не задан.
type NoopEventsPublisher struct{}

func (NoopEventsPublisher) Publish(ctx context.Context, event domain.DomainEvent) error {
	contextkeys.LoggerFromContext(ctx).Debug("Event publishing disabled, dropping event", port.Fields{
		"event_type": string(event.Type),
		"entity_id":  event.EntityID,
	})
	return nil
}
