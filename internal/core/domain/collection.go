package domain

import (
	"slices"
	"sync"
)

// ListingCollection хранит полный набор листингов и производный отфильтрованный срез.
// Любое изменение входов полностью пересчитывает результат, устаревшие данные не отдаются.
type ListingCollection struct {
	mu       sync.RWMutex
	all      []Listing
	criteria FilterCriteria
	filtered []Listing
	loaded   bool
}

func NewListingCollection() *ListingCollection {
	return &ListingCollection{
		all:      []Listing{},
		criteria: FilterCriteria{RegionIDs: []int{}},
		filtered: []Listing{},
	}
}

// SetListings заменяет полный набор и помечает коллекцию загруженной.
func (c *ListingCollection) SetListings(listings []Listing) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.all = slices.Clone(listings)
	if c.all == nil {
		c.all = []Listing{}
	}
	c.loaded = true
	c.recompute()
}

func (c *ListingCollection) SetCriteria(criteria FilterCriteria) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.criteria = criteria.Normalized()
	c.recompute()
}

// Remove убирает листинг из полного набора (после успешного удаления на сервере).
func (c *ListingCollection) Remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := len(c.all)
	c.all = slices.DeleteFunc(c.all, func(l Listing) bool { return l.ID == id })
	if len(c.all) == before {
		return false
	}
	c.recompute()
	return true
}

func (c *ListingCollection) recompute() {
	c.filtered = c.criteria.Apply(c.all)
}

// Filtered - копия текущего отфильтрованного среза.
func (c *ListingCollection) Filtered() []Listing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.filtered)
}

func (c *ListingCollection) All() []Listing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.all)
}

func (c *ListingCollection) Criteria() FilterCriteria {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.criteria.Clone()
}

// Loaded отличает "еще не загружено" от пустого результата фильтрации.
func (c *ListingCollection) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *ListingCollection) Find(id int) (Listing, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, l := range c.all {
		if l.ID == id {
			return l, true
		}
	}
	return Listing{}, false
}

// SimilarTo - другие листинги того же региона в порядке коллекции, не больше limit.
func (c *ListingCollection) SimilarTo(listing Listing, limit int) []Listing {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Listing, 0, limit)
	for _, l := range c.all {
		if len(result) >= limit {
			break
		}
		if l.ID == listing.ID || l.RegionID() != listing.RegionID() {
			continue
		}
		result = append(result, l)
	}
	return result
}
