package usecases_port

import (
	"context"
	"real-estate-manager/internal/core/domain"

	"github.com/google/uuid"
)

// FilterCriteriaUseCasePort - состояние фильтров сессии.
// Каждое изменение сохраняется целиком.
type FilterCriteriaUseCasePort interface {
	Get(ctx context.Context, sessionID uuid.UUID) (domain.FilterCriteria, error)
	Replace(ctx context.Context, sessionID uuid.UUID, criteria domain.FilterCriteria) (domain.FilterCriteria, error)
	Update(ctx context.Context, sessionID uuid.UUID, change func(domain.FilterCriteria) domain.FilterCriteria) (domain.FilterCriteria, error)
	Clear(ctx context.Context, sessionID uuid.UUID) (domain.FilterCriteria, error)
}
