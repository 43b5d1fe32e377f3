package redberry_api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingsJSON = `[
  {"id":1,"address":"Chavchavadze 12","zip_code":"0179","price":150000,"area":80.5,"bedrooms":2,"is_rental":0,
   "image":"https://img/1.png","city_id":3,
   "city":{"id":3,"name":"Tbilisi","region_id":1,"region":{"id":1,"name":"Tbilisi region"}},
   "created_at":"2024-09-12T10:47:03.000000Z"},
  {"id":2,"address":"Rustaveli 5","zip_code":"6000","price":900,"area":40,"bedrooms":1,"is_rental":1,
   "image":"https://img/2.png","city_id":7,"city":{"id":7,"name":"Batumi","region_id":2},
   "created_at":"2024-09-13T08:00:00.000000Z"}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *RealEstateAPIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRealEstateAPIClient(srv.URL, "secret-token", WithHTTPClient(srv.Client()))
}

func TestFetchListings_MapsFieldsAndSendsToken(t *testing.T) {
	var gotAuth, gotTrace string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/real-estates", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotTrace = r.Header.Get("X-Trace-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, listingsJSON)
	})

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-1")
	listings, err := client.FetchListings(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "trace-1", gotTrace)

	first := listings[0]
	assert.False(t, first.IsRental)
	assert.Equal(t, 150000.0, first.Price)
	assert.Equal(t, 80.5, first.Area)
	assert.Equal(t, 1, first.RegionID())
	assert.Equal(t, "Tbilisi", first.City.Name)
	assert.Equal(t, 2024, first.CreatedAt.Year())

	assert.True(t, listings[1].IsRental)
	assert.Equal(t, 2, listings[1].RegionID())
}

func TestFetchRegions_NoAuthorizationHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{"id":1,"name":"Tbilisi"},{"id":2,"name":"Adjara"}]`)
	})

	regions, err := client.FetchRegions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Region{{ID: 1, Name: "Tbilisi"}, {ID: 2, Name: "Adjara"}}, regions)
}

func TestFetch_ServerErrorReturnsEmptySlice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	cities, err := client.FetchCities(context.Background())
	require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	assert.NotNil(t, cities)
	assert.Empty(t, cities)

	agents, err := client.FetchAgents(context.Background())
	require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	assert.NotNil(t, agents)
	assert.Empty(t, agents)
}

func TestFetch_UnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewRealEstateAPIClient(url, "token")
	listings, err := client.FetchListings(context.Background())
	require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	assert.Empty(t, listings)
}

func TestFetchListing_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/real-estates/42", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	listing, err := client.FetchListing(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, listing)
}

func TestCreateListing_PostsMultipartBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/real-estates", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Chavchavadze 12", r.FormValue("address"))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":77}`)
	})

	body := "--b\r\nContent-Disposition: form-data; name=\"address\"\r\n\r\nChavchavadze 12\r\n--b--\r\n"
	id, err := client.CreateListing(context.Background(), port.MultipartBody{
		ContentType: "multipart/form-data; boundary=b",
		Body:        strings.NewReader(body),
	})
	require.NoError(t, err)
	assert.Equal(t, 77, id)
}

func TestCreateListing_CreatedWithoutIDIsAnError(t *testing.T) {
	cases := map[string]string{
		"empty body": "",
		"no id":      `{"message":"ok"}`,
		"zero id":    `{"id":0}`,
	}
	for name, responseBody := range cases {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = io.WriteString(w, responseBody)
			})

			id, err := client.CreateListing(context.Background(), port.MultipartBody{
				ContentType: "multipart/form-data; boundary=b",
				Body:        strings.NewReader("--b--\r\n"),
			})
			require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
			assert.Zero(t, id)
		})
	}
}

func TestCreateAgent_RejectedByServer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message":"invalid"}`)
	})

	_, err := client.CreateAgent(context.Background(), port.MultipartBody{
		ContentType: "multipart/form-data; boundary=b",
		Body:        strings.NewReader("--b--\r\n"),
	})
	require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	assert.Contains(t, err.Error(), "422")
}

func TestDeleteListing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		})
		require.NoError(t, client.DeleteListing(context.Background(), 5))
	})

	t.Run("non-2xx", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		err := client.DeleteListing(context.Background(), 5)
		require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	})
}
