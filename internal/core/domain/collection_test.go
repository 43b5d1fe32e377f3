package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingCollection_LoadedDistinguishesEmptyResult(t *testing.T) {
	c := NewListingCollection()
	assert.False(t, c.Loaded())
	assert.Empty(t, c.Filtered())

	c.SetCriteria(FilterCriteria{MinPrice: Float(1_000_000)})
	c.SetListings([]Listing{listing(1, 100, 10, 1, 1)})

	assert.True(t, c.Loaded())
	assert.Empty(t, c.Filtered())
	assert.Len(t, c.All(), 1)
}

func TestListingCollection_RecomputesOnEveryChange(t *testing.T) {
	c := NewListingCollection()
	c.SetListings([]Listing{
		listing(1, 100000, 50, 2, 1),
		listing(2, 200000, 80, 3, 2),
	})
	assert.Equal(t, []int{1, 2}, ids(c.Filtered()))

	c.SetCriteria(FilterCriteria{MinPrice: Float(150000)})
	assert.Equal(t, []int{2}, ids(c.Filtered()))

	c.SetListings(append(c.All(), listing(3, 300000, 90, 3, 1)))
	assert.Equal(t, []int{2, 3}, ids(c.Filtered()))

	assert.True(t, c.Remove(2))
	assert.False(t, c.Remove(2))
	assert.Equal(t, []int{3}, ids(c.Filtered()))

	c.SetCriteria(c.Criteria().Cleared())
	assert.Equal(t, []int{1, 3}, ids(c.Filtered()))
}

func TestListingCollection_ReturnsCopies(t *testing.T) {
	c := NewListingCollection()
	c.SetListings([]Listing{listing(1, 100, 10, 1, 1)})

	filtered := c.Filtered()
	filtered[0].Price = 1

	got, ok := c.Find(1)
	assert.True(t, ok)
	assert.Equal(t, 100.0, got.Price)

	_, ok = c.Find(42)
	assert.False(t, ok)
}

func TestListingCollection_SimilarTo(t *testing.T) {
	c := NewListingCollection()
	var listings []Listing
	for i := 1; i <= 11; i++ {
		listings = append(listings, listing(i, 100, 10, 1, 1))
	}
	listings = append(listings, listing(12, 100, 10, 1, 2))
	c.SetListings(listings)

	similar := c.SimilarTo(listings[0], 8)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9}, ids(similar))
	assert.Empty(t, c.SimilarTo(listings[11], 8))
}

func TestListingCollection_ConcurrentAccess(t *testing.T) {
	c := NewListingCollection()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			c.SetListings([]Listing{listing(i, float64(i), 1, 1, 1)})
		}(i)
		go func(i int) {
			defer wg.Done()
			c.SetCriteria(FilterCriteria{MaxPrice: Float(float64(i))})
			_ = c.Filtered()
		}(i)
	}
	wg.Wait()
	assert.True(t, c.Loaded())
}
