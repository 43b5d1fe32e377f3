package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/forms"
	"real-estate-manager/internal/core/port"

	"github.com/google/uuid"
)

type DraftsUseCase struct {
	store port.DraftStorePort
}

func NewDraftsUseCase(store port.DraftStorePort) *DraftsUseCase {
	return &DraftsUseCase{store: store}
}

func (uc *DraftsUseCase) logger(ctx context.Context, method string, form domain.FormKind) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Drafts",
		"method":   method,
		"form":     string(form),
	})
}

// GetDraft возвращает пустой черновик, если сохраненного нет.
func (uc *DraftsUseCase) GetDraft(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) (domain.Draft, error) {
	draft, _, err := uc.store.LoadDraft(ctx, sessionID, form)
	if err != nil {
		uc.logger(ctx, "GetDraft", form).Error("Failed to load draft", err, nil)
		return domain.Draft{}, err
	}
	return draft, nil
}

// SaveDraft оставляет только поля, известные форме.
func (uc *DraftsUseCase) SaveDraft(ctx context.Context, sessionID uuid.UUID, draft domain.Draft) error {
	form := formFor(draft.Form)
	form.Restore(draft.Values)

	if err := uc.store.SaveDraft(ctx, sessionID, domain.Draft{Form: draft.Form, Values: form.Values()}); err != nil {
		uc.logger(ctx, "SaveDraft", draft.Form).Error("Failed to save draft", err, nil)
		return err
	}
	return nil
}

func (uc *DraftsUseCase) ClearDraft(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) error {
	if err := uc.store.ClearDraft(ctx, sessionID, form); err != nil {
		uc.logger(ctx, "ClearDraft", form).Error("Failed to clear draft", err, nil)
		return err
	}
	return nil
}

func (uc *DraftsUseCase) GetPreview(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) (string, bool, error) {
	return uc.store.LoadPreview(ctx, sessionID, form)
}

// SavePreview проверяет файл теми же правилами, что и поле изображения формы,
// и сохраняет его как data URL.
func (uc *DraftsUseCase) SavePreview(ctx context.Context, sessionID uuid.UUID, form domain.FormKind, file forms.File) (string, error) {
	logger := uc.logger(ctx, "SavePreview", form)

	fileForm := forms.NewPreviewForm(string(form))
	if err := fileForm.SetFile(forms.PreviewFile, file); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !fileForm.Validate() {
		return "", fileForm.ValidationError()
	}

	dataURL := toDataURL(file)
	if err := uc.store.SavePreview(ctx, sessionID, form, dataURL); err != nil {
		logger.Error("Failed to save preview", err, nil)
		return "", err
	}
	logger.Debug("Preview saved", port.Fields{"bytes": len(file.Data)})
	return dataURL, nil
}

func (uc *DraftsUseCase) ClearPreview(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) error {
	if err := uc.store.ClearPreview(ctx, sessionID, form); err != nil {
		uc.logger(ctx, "ClearPreview", form).Error("Failed to clear preview", err, nil)
		return err
	}
	return nil
}

func toDataURL(file forms.File) string {
	var b strings.Builder
	b.WriteString("data:")
	b.WriteString(file.ContentType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(file.Data))
	return b.String()
}

func formFor(kind domain.FormKind) *forms.Form {
	if kind == domain.FormAgent {
		return forms.NewAgentForm()
	}
	return forms.NewListingForm()
}
