package usecase

import (
	"context"
	"errors"

	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/forms"
	"real-estate-manager/internal/core/port"

	"github.com/google/uuid"
)

// formSubmitter - общая часть создания листинга и агента:
// зеркалирование черновика, отправка формы, очистка черновика и событие.
type formSubmitter struct {
	drafts port.DraftStorePort
	events port.DomainEventsPort
}

type createFunc func(ctx context.Context, body port.MultipartBody) (int, error)

func (s formSubmitter) submit(
	ctx context.Context,
	logger port.LoggerPort,
	sessionID uuid.UUID,
	kind domain.FormKind,
	form *forms.Form,
	create createFunc,
	eventType domain.EventType,
) (int, error) {
	// значения формы сохраняются до отправки, чтобы при ошибке форма открылась заполненной
	if err := s.drafts.SaveDraft(ctx, sessionID, domain.Draft{Form: kind, Values: form.Values()}); err != nil {
		logger.Warn("Failed to mirror form values to draft", port.Fields{"error": err.Error()})
	}

	var createdID int
	err := form.HandleSubmit(ctx, func(ctx context.Context, body port.MultipartBody) error {
		id, err := create(ctx, body)
		createdID = id
		return err
	})
	if err != nil {
		var validationErr *forms.ValidationError
		if errors.As(err, &validationErr) {
			logger.Info("Form rejected by client-side validation", port.Fields{"fields": len(validationErr.Fields)})
		} else {
			logger.Error("Form submission failed", err, nil)
		}
		return 0, err
	}

	if err := s.drafts.ClearDraft(ctx, sessionID, kind); err != nil {
		logger.Warn("Failed to clear draft", port.Fields{"error": err.Error()})
	}
	if err := s.drafts.ClearPreview(ctx, sessionID, kind); err != nil {
		logger.Warn("Failed to clear image preview", port.Fields{"error": err.Error()})
	}
	if err := s.events.Publish(ctx, domain.NewDomainEvent(eventType, createdID)); err != nil {
		logger.Warn("Failed to publish event", port.Fields{"event_type": string(eventType), "error": err.Error()})
	}
	return createdID, nil
}
