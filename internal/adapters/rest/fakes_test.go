package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"real-estate-manager/internal/adapters/cache"
	"real-estate-manager/internal/adapters/memory"
	"real-estate-manager/internal/adapters/session_storage"
	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"
	"real-estate-manager/internal/core/usecase"
)

// stubAPI - удаленный API в памяти
type stubAPI struct {
	mu sync.Mutex

	regions  []domain.Region
	agents   []domain.Agent
	listings []domain.Listing

	fetchErr  error
	deleteErr error
	nextID    int
}

func (s *stubAPI) FetchRegions(ctx context.Context) ([]domain.Region, error) {
	if s.fetchErr != nil {
		return []domain.Region{}, s.fetchErr
	}
	return s.regions, nil
}

func (s *stubAPI) FetchCities(ctx context.Context) ([]domain.City, error) {
	if s.fetchErr != nil {
		return []domain.City{}, s.fetchErr
	}
	cities := make([]domain.City, 0)
	for _, l := range s.listings {
		cities = append(cities, l.City)
	}
	return cities, nil
}

func (s *stubAPI) FetchAgents(ctx context.Context) ([]domain.Agent, error) {
	if s.fetchErr != nil {
		return []domain.Agent{}, s.fetchErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Agent(nil), s.agents...), nil
}

func (s *stubAPI) FetchListings(ctx context.Context) ([]domain.Listing, error) {
	if s.fetchErr != nil {
		return []domain.Listing{}, s.fetchErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Listing(nil), s.listings...), nil
}

func (s *stubAPI) FetchListing(ctx context.Context, id int) (*domain.Listing, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.listings {
		if l.ID == id {
			listing := l
			return &listing, nil
		}
	}
	return nil, fmt.Errorf("%w: listing %d", domain.ErrNotFound, id)
}

func (s *stubAPI) CreateListing(ctx context.Context, body port.MultipartBody) (int, error) {
	_, _ = io.Copy(io.Discard, body.Body)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID, nil
}

func (s *stubAPI) CreateAgent(ctx context.Context, body port.MultipartBody) (int, error) {
	_, _ = io.Copy(io.Discard, body.Body)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.agents = append(s.agents, domain.Agent{ID: s.nextID, Name: "new", Surname: "agent"})
	return s.nextID, nil
}

func (s *stubAPI) DeleteListing(ctx context.Context, id int) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	return nil
}

func newStubAPI() *stubAPI {
	tbilisi := domain.Region{ID: 1, Name: "თბილისი"}
	batumi := domain.Region{ID: 2, Name: "აჭარა"}
	return &stubAPI{
		nextID:  100,
		regions: []domain.Region{tbilisi, batumi},
		agents:  []domain.Agent{{ID: 7, Name: "nino", Surname: "beridze", Email: "nino@redberry.ge"}},
		listings: []domain.Listing{
			{ID: 1, Address: "Chavchavadze 12", Price: 150000, Area: 80, Bedrooms: 2,
				City: domain.City{ID: 3, Name: "Tbilisi", RegionID: 1}, CreatedAt: time.Date(2024, 9, 12, 10, 0, 0, 0, time.UTC)},
			{ID: 2, Address: "Rustaveli 5", Price: 900, Area: 40, Bedrooms: 1, IsRental: true,
				City: domain.City{ID: 7, Name: "Batumi", RegionID: 2}},
			{ID: 3, Address: "Vake 1", Price: 250000, Area: 120, Bedrooms: 3,
				City: domain.City{ID: 3, Name: "Tbilisi", RegionID: 1}},
		},
	}
}

type nopEvents struct{}

func (nopEvents) Publish(ctx context.Context, event domain.DomainEvent) error { return nil }

// newTestRouter собирает роутер на настоящих use cases и хранилище сессий в памяти.
func newTestRouter(t *testing.T, api *stubAPI) http.Handler {
	t.Helper()

	refCache := cache.NewReferenceCache(nil)
	t.Cleanup(refCache.Stop)

	storage := memory.NewBrowserStorage()
	filterStore := session_storage.NewFilterCriteriaStore(storage)
	draftStore := session_storage.NewDraftStore(storage)

	regionsUC := usecase.NewGetRegionsUseCase(api, refCache, time.Minute)
	citiesUC := usecase.NewGetCitiesUseCase(api, refCache, time.Minute)
	agentsUC := usecase.NewGetAgentsUseCase(api)

	handlers := Handlers{
		Reference: NewReferenceHandler(regionsUC, citiesUC),
		Agents:    NewAgentsHandler(agentsUC, usecase.NewCreateAgentUseCase(api, draftStore, nopEvents{})),
		Listings: NewListingsHandler(
			usecase.NewListListingsUseCase(api, filterStore),
			usecase.NewGetListingDetailsUseCase(api),
			usecase.NewCreateListingUseCase(api, draftStore, nopEvents{}),
			usecase.NewDeleteListingUseCase(api, nopEvents{}),
			regionsUC,
		),
		Filters: NewFiltersHandler(usecase.NewFilterCriteriaUseCase(filterStore), regionsUC),
		Drafts:  NewDraftsHandler(usecase.NewDraftsUseCase(draftStore)),
	}
	return NewRouter(handlers, []string{"http://localhost:5173"}, contextkeys.LoggerFromContext(context.Background()))
}

// do выполняет запрос в рамках сессии (пустая сессия - новая).
func do(t *testing.T, h http.Handler, method, path, session string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if session != "" {
		req.Header.Set(sessionHeader, session)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type multipartFile struct {
	field       string
	name        string
	contentType string
	data        []byte
}

func multipartBody(t *testing.T, values map[string]string, files ...multipartFile) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for k, v := range values {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.field, f.name))
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = part.Write(f.data)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return buf, writer.FormDataContentType()
}
