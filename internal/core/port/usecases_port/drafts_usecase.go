package usecases_port

import (
	"context"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/forms"

	"github.com/google/uuid"
)

type DraftsUseCasePort interface {
	GetDraft(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) (domain.Draft, error)
	SaveDraft(ctx context.Context, sessionID uuid.UUID, draft domain.Draft) error
	ClearDraft(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) error

	GetPreview(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) (string, bool, error)
	// SavePreview возвращает data URL сохраненного изображения.
	SavePreview(ctx context.Context, sessionID uuid.UUID, form domain.FormKind, file forms.File) (string, error)
	ClearPreview(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) error
}
