package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"

	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"
)

// fakeAPI - удаленный API в памяти со счетчиком вызовов.
type fakeAPI struct {
	mu sync.Mutex

	regions  []domain.Region
	cities   []domain.City
	agents   []domain.Agent
	listings []domain.Listing

	fetchErr  error
	createErr error
	deleteErr error

	nextID          int
	calls           map[string]int
	lastBody        []byte
	lastContentType string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{nextID: 100, calls: make(map[string]int)}
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeAPI) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeAPI) FetchRegions(ctx context.Context) ([]domain.Region, error) {
	f.record("FetchRegions")
	if f.fetchErr != nil {
		return []domain.Region{}, f.fetchErr
	}
	return f.regions, nil
}

func (f *fakeAPI) FetchCities(ctx context.Context) ([]domain.City, error) {
	f.record("FetchCities")
	if f.fetchErr != nil {
		return []domain.City{}, f.fetchErr
	}
	return f.cities, nil
}

func (f *fakeAPI) FetchAgents(ctx context.Context) ([]domain.Agent, error) {
	f.record("FetchAgents")
	if f.fetchErr != nil {
		return []domain.Agent{}, f.fetchErr
	}
	return f.agents, nil
}

func (f *fakeAPI) FetchListings(ctx context.Context) ([]domain.Listing, error) {
	f.record("FetchListings")
	if f.fetchErr != nil {
		return []domain.Listing{}, f.fetchErr
	}
	return f.listings, nil
}

func (f *fakeAPI) FetchListing(ctx context.Context, id int) (*domain.Listing, error) {
	f.record("FetchListing")
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	for _, l := range f.listings {
		if l.ID == id {
			listing := l
			return &listing, nil
		}
	}
	return nil, fmt.Errorf("%w: listing %d", domain.ErrNotFound, id)
}

func (f *fakeAPI) create(name string, body port.MultipartBody) (int, error) {
	f.record(name)
	data, err := io.ReadAll(body.Body)
	if err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastBody = data
	f.lastContentType = body.ContentType
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeAPI) CreateListing(ctx context.Context, body port.MultipartBody) (int, error) {
	return f.create("CreateListing", body)
}

func (f *fakeAPI) CreateAgent(ctx context.Context, body port.MultipartBody) (int, error) {
	return f.create("CreateAgent", body)
}

func (f *fakeAPI) DeleteListing(ctx context.Context, id int) error {
	f.record("DeleteListing")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, l := range f.listings {
		if l.ID == id {
			f.listings = append(f.listings[:i:i], f.listings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: listing %d", domain.ErrNotFound, id)
}

type fakeEvents struct {
	published []domain.DomainEvent
	err       error
}

func (f *fakeEvents) Publish(ctx context.Context, event domain.DomainEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, event)
	return nil
}

func twoListings() []domain.Listing {
	return []domain.Listing{
		{ID: 1, Price: 100000, Area: 50, Bedrooms: 2, City: domain.City{ID: 1, RegionID: 1}},
		{ID: 2, Price: 200000, Area: 80, Bedrooms: 3, City: domain.City{ID: 2, RegionID: 2}},
	}
}

func listingIDs(listings []domain.Listing) []int {
	out := make([]int, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}
