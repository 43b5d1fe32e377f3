package port

import (
	"context"
	"real-estate-manager/internal/core/domain"

	"github.com/google/uuid"
)

// FilterCriteriaStorePort сохраняет активные фильтры сессии.
// Load без сохраненного значения возвращает пустые критерии без ошибки.
type FilterCriteriaStorePort interface {
	Load(ctx context.Context, sessionID uuid.UUID) (domain.FilterCriteria, error)
	Save(ctx context.Context, sessionID uuid.UUID, criteria domain.FilterCriteria) error
	Clear(ctx context.Context, sessionID uuid.UUID) error
}

// DraftStorePort - черновики форм и превью выбранных изображений.
type DraftStorePort interface {
	LoadDraft(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) (domain.Draft, bool, error)
	SaveDraft(ctx context.Context, sessionID uuid.UUID, draft domain.Draft) error
	ClearDraft(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) error

	LoadPreview(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) (string, bool, error)
	SavePreview(ctx context.Context, sessionID uuid.UUID, form domain.FormKind, dataURL string) error
	ClearPreview(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) error
}
