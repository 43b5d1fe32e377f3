package session_storage

import (
	"context"
	"testing"

	"real-estate-manager/internal/adapters/memory"
	"real-estate-manager/internal/constants"
	"real-estate-manager/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleListings() []domain.Listing {
	return []domain.Listing{
		{ID: 1, Price: 100000, Area: 50, Bedrooms: 2, City: domain.City{ID: 10, RegionID: 1}},
		{ID: 2, Price: 200000, Area: 80, Bedrooms: 3, City: domain.City{ID: 20, RegionID: 2}},
		{ID: 3, Price: 250000, Area: 120, Bedrooms: 3, City: domain.City{ID: 21, RegionID: 2}},
	}
}

func TestFilterCriteriaStore_MissingReturnsEmpty(t *testing.T) {
	store := NewFilterCriteriaStore(memory.NewBrowserStorage())

	criteria, err := store.Load(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, criteria.HasActive())
	assert.NotNil(t, criteria.RegionIDs)
}

func TestFilterCriteriaStore_RoundTripReproducesFilteredResult(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewBrowserStorage()
	store := NewFilterCriteriaStore(storage)
	sid := uuid.New()

	criteria := domain.FilterCriteria{
		RegionIDs: []int{2},
		MinPrice:  domain.Float(150000),
		MaxArea:   domain.Float(100),
		Bedrooms:  domain.Int(3),
	}
	require.NoError(t, store.Save(ctx, sid, criteria))

	raw, found, err := storage.GetItem(ctx, sid, constants.FilterCriteriaKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"selectedRegions":[2],"minPrice":150000,"maxPrice":null,"minArea":null,"maxArea":100,"bedroomCount":3}`, raw)

	loaded, err := store.Load(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, criteria.Apply(sampleListings()), loaded.Apply(sampleListings()))
	assert.Equal(t, []int{2}, loaded.RegionIDs)
	assert.Nil(t, loaded.MaxPrice)
}

func TestFilterCriteriaStore_MissingKeysAreUnset(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewBrowserStorage()
	store := NewFilterCriteriaStore(storage)
	sid := uuid.New()

	require.NoError(t, storage.SetItem(ctx, sid, constants.FilterCriteriaKey, `{"minPrice":150000}`))

	loaded, err := store.Load(ctx, sid)
	require.NoError(t, err)
	require.NotNil(t, loaded.MinPrice)
	assert.Equal(t, 150000.0, *loaded.MinPrice)
	assert.Empty(t, loaded.RegionIDs)
	assert.Nil(t, loaded.Bedrooms)
	assert.Equal(t, []int{2, 3}, ids(loaded.Apply(sampleListings())))
}

func TestFilterCriteriaStore_IncompatibleShapeIsIgnored(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewBrowserStorage()
	store := NewFilterCriteriaStore(storage)
	sid := uuid.New()

	require.NoError(t, storage.SetItem(ctx, sid, constants.FilterCriteriaKey, `{"selectedRegions":"tbilisi","minPrice":"a lot"}`))

	loaded, err := store.Load(ctx, sid)
	require.NoError(t, err)
	assert.False(t, loaded.HasActive())
	assert.Len(t, loaded.Apply(sampleListings()), 3)
}

func TestFilterCriteriaStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewFilterCriteriaStore(memory.NewBrowserStorage())
	sid := uuid.New()

	require.NoError(t, store.Save(ctx, sid, domain.FilterCriteria{Bedrooms: domain.Int(1)}))
	require.NoError(t, store.Clear(ctx, sid))

	loaded, err := store.Load(ctx, sid)
	require.NoError(t, err)
	assert.False(t, loaded.HasActive())
}

func ids(listings []domain.Listing) []int {
	out := make([]int, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}
