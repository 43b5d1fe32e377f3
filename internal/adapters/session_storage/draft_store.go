package session_storage

import (
	"context"
	"encoding/json"
	"fmt"

	"real-estate-manager/internal/constants"
	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/contracts"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"

	"github.com/google/uuid"
)

// DraftStore хранит черновики форм (JSON поле -> строка) и превью изображений (data URL).
type DraftStore struct {
	storage port.BrowserStoragePort
}

func NewDraftStore(storage port.BrowserStoragePort) *DraftStore {
	return &DraftStore{storage: storage}
}

func (s *DraftStore) LoadDraft(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) (domain.Draft, bool, error) {
	raw, found, err := s.storage.GetItem(ctx, sessionID, constants.DraftKey(form))
	if err != nil {
		return domain.Draft{}, false, fmt.Errorf("DraftStore: failed to read %s draft: %w", form, err)
	}
	if !found {
		return domain.Draft{Form: form, Values: map[string]string{}}, false, nil
	}

	if err := contracts.ValidateStored(contracts.FormDraftV1, []byte(raw)); err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Stored draft has incompatible shape, ignoring", port.Fields{
			"component": "DraftStore",
			"form":      string(form),
			"error":     err.Error(),
		})
		return domain.Draft{Form: form, Values: map[string]string{}}, false, nil
	}

	values := make(map[string]string)
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return domain.Draft{}, false, fmt.Errorf("DraftStore: failed to decode %s draft: %w", form, err)
	}
	return domain.Draft{Form: form, Values: values}, true, nil
}

func (s *DraftStore) SaveDraft(ctx context.Context, sessionID uuid.UUID, draft domain.Draft) error {
	values := draft.Values
	if values == nil {
		values = map[string]string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("DraftStore: failed to marshal %s draft: %w", draft.Form, err)
	}
	if err := s.storage.SetItem(ctx, sessionID, constants.DraftKey(draft.Form), string(data)); err != nil {
		return fmt.Errorf("DraftStore: failed to save %s draft: %w", draft.Form, err)
	}
	return nil
}

func (s *DraftStore) ClearDraft(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) error {
	if err := s.storage.RemoveItem(ctx, sessionID, constants.DraftKey(form)); err != nil {
		return fmt.Errorf("DraftStore: failed to clear %s draft: %w", form, err)
	}
	return nil
}

func (s *DraftStore) LoadPreview(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) (string, bool, error) {
	value, found, err := s.storage.GetItem(ctx, sessionID, constants.PreviewKey(form))
	if err != nil {
		return "", false, fmt.Errorf("DraftStore: failed to read %s preview: %w", form, err)
	}
	return value, found, nil
}

func (s *DraftStore) SavePreview(ctx context.Context, sessionID uuid.UUID, form domain.FormKind, dataURL string) error {
	if err := s.storage.SetItem(ctx, sessionID, constants.PreviewKey(form), dataURL); err != nil {
		return fmt.Errorf("DraftStore: failed to save %s preview: %w", form, err)
	}
	return nil
}

func (s *DraftStore) ClearPreview(ctx context.Context, sessionID uuid.UUID, form domain.FormKind) error {
	if err := s.storage.RemoveItem(ctx, sessionID, constants.PreviewKey(form)); err != nil {
		return fmt.Errorf("DraftStore: failed to clear %s preview: %w", form, err)
	}
	return nil
}
