package port

import (
	"context"
	"real-estate-manager/internal/core/domain"
)

// DomainEventsPort публикует события о созданных и удаленных сущностях.
type DomainEventsPort interface {
	Publish(ctx context.Context, event domain.DomainEvent) error
}
