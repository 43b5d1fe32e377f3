package usecase

import (
	"context"
	"testing"

	"real-estate-manager/internal/adapters/memory"
	"real-estate-manager/internal/adapters/session_storage"
	"real-estate-manager/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCriteriaUseCase_UpdatePersistsEveryChange(t *testing.T) {
	ctx := context.Background()
	store := session_storage.NewFilterCriteriaStore(memory.NewBrowserStorage())
	uc := NewFilterCriteriaUseCase(store)
	sid := uuid.New()

	_, err := uc.Replace(ctx, sid, domain.FilterCriteria{RegionIDs: []int{1, 1, 3}, MinArea: domain.Float(40), MaxArea: domain.Float(90)})
	require.NoError(t, err)

	toggle := func(id int) func(domain.FilterCriteria) domain.FilterCriteria {
		return func(c domain.FilterCriteria) domain.FilterCriteria { return c.WithRegionToggled(id) }
	}
	updated, err := uc.Update(ctx, sid, toggle(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, updated.RegionIDs)

	updated, err = uc.Update(ctx, sid, toggle(1))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, updated.RegionIDs)

	updated, err = uc.Update(ctx, sid, domain.FilterCriteria.WithoutArea)
	require.NoError(t, err)
	assert.Nil(t, updated.MinArea)

	stored, err := store.Load(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestFilterCriteriaUseCase_ReplaceRejectsInvertedRange(t *testing.T) {
	ctx := context.Background()
	store := session_storage.NewFilterCriteriaStore(memory.NewBrowserStorage())
	uc := NewFilterCriteriaUseCase(store)
	sid := uuid.New()

	_, err := uc.Replace(ctx, sid, domain.FilterCriteria{MinPrice: domain.Float(500), MaxPrice: domain.Float(100)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := store.Load(ctx, sid)
	require.NoError(t, err)
	assert.False(t, stored.HasActive())
}

func TestFilterCriteriaUseCase_Clear(t *testing.T) {
	ctx := context.Background()
	uc := NewFilterCriteriaUseCase(session_storage.NewFilterCriteriaStore(memory.NewBrowserStorage()))
	sid := uuid.New()

	_, err := uc.Replace(ctx, sid, domain.FilterCriteria{Bedrooms: domain.Int(2)})
	require.NoError(t, err)

	cleared, err := uc.Clear(ctx, sid)
	require.NoError(t, err)
	assert.False(t, cleared.HasActive())

	got, err := uc.Get(ctx, sid)
	require.NoError(t, err)
	assert.False(t, got.HasActive())
}
