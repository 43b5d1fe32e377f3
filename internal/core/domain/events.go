package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventListingCreated EventType = "listing.created"
	EventListingDeleted EventType = "listing.deleted"
	EventAgentCreated   EventType = "agent.created"
)

// DomainEvent - уведомление о записи, прошедшей через удаленный API
type DomainEvent struct {
	ID         uuid.UUID
	Type       EventType
	EntityID   int
	OccurredAt time.Time
}

func NewDomainEvent(eventType EventType, entityID int) DomainEvent {
	return DomainEvent{
		ID:         uuid.New(),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}
