package usecase

import (
	"context"
	"errors"
	"testing"

	"real-estate-manager/internal/adapters/memory"
	"real-estate-manager/internal/adapters/session_storage"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/forms"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftsUseCase_SaveDraftKeepsOnlyKnownFields(t *testing.T) {
	ctx := context.Background()
	uc := NewDraftsUseCase(session_storage.NewDraftStore(memory.NewBrowserStorage()))
	sid := uuid.New()

	err := uc.SaveDraft(ctx, sid, domain.Draft{Form: domain.FormAgent, Values: map[string]string{
		"name":    "Giorgi",
		"unknown": "dropped",
	}})
	require.NoError(t, err)

	draft, err := uc.GetDraft(ctx, sid, domain.FormAgent)
	require.NoError(t, err)
	assert.Equal(t, "Giorgi", draft.Values["name"])
	assert.NotContains(t, draft.Values, "unknown")
	assert.Contains(t, draft.Values, "email")

	require.NoError(t, uc.ClearDraft(ctx, sid, domain.FormAgent))
	draft, err = uc.GetDraft(ctx, sid, domain.FormAgent)
	require.NoError(t, err)
	assert.Empty(t, draft.Values)
}

func TestDraftsUseCase_SavePreview(t *testing.T) {
	ctx := context.Background()
	uc := NewDraftsUseCase(session_storage.NewDraftStore(memory.NewBrowserStorage()))
	sid := uuid.New()

	dataURL, err := uc.SavePreview(ctx, sid, domain.FormListing, forms.File{Name: "a.png", ContentType: "image/png", Data: []byte("abc")})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,YWJj", dataURL)

	stored, found, err := uc.GetPreview(ctx, sid, domain.FormListing)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, dataURL, stored)

	require.NoError(t, uc.ClearPreview(ctx, sid, domain.FormListing))
	_, found, err = uc.GetPreview(ctx, sid, domain.FormListing)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDraftsUseCase_SavePreviewRejectsNonImage(t *testing.T) {
	uc := NewDraftsUseCase(session_storage.NewDraftStore(memory.NewBrowserStorage()))

	_, err := uc.SavePreview(context.Background(), uuid.New(), domain.FormAgent, forms.File{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("%PDF")})

	var validationErr *forms.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "imageFile", validationErr.Fields["file"].Rule)
}
