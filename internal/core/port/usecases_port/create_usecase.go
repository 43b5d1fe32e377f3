package usecases_port

import (
	"context"
	"real-estate-manager/internal/core/forms"

	"github.com/google/uuid"
)

// CreateListingUseCasePort принимает заполненную форму листинга.
// Ошибка валидации возвращается как *forms.ValidationError.
type CreateListingUseCasePort interface {
	Execute(ctx context.Context, sessionID uuid.UUID, form *forms.Form) (int, error)
}

type CreateAgentUseCasePort interface {
	Execute(ctx context.Context, sessionID uuid.UUID, form *forms.Form) (int, error)
}
