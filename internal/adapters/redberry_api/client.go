package redberry_api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"
)

// RealEstateAPIClient - клиент удаленного REST API листингов и агентов.
type RealEstateAPIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*RealEstateAPIClient)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *RealEstateAPIClient) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *RealEstateAPIClient) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func NewRealEstateAPIClient(baseURL, token string, opts ...Option) *RealEstateAPIClient {
	c := &RealEstateAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest выполняет запрос, добавляя trace_id и, при необходимости, bearer-токен.
func (c *RealEstateAPIClient) doRequest(ctx context.Context, method, path string, body io.Reader, contentType string, authorized bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrRemoteUnavailable, method, path, err)
	}
	return resp, nil
}

// checkStatus превращает не-2xx ответ в ошибку домена.
func checkStatus(resp *http.Response, method, path string) error {
	if resp.StatusCode/100 == 2 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, method, path)
	}
	return fmt.Errorf("%w: %s %s returned status %d: %s",
		domain.ErrRemoteUnavailable, method, path, resp.StatusCode, strings.TrimSpace(string(body)))
}

// getJSON выполняет GET и декодирует ответ в target.
func (c *RealEstateAPIClient) getJSON(ctx context.Context, path string, authorized bool, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, "application/json", authorized)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.MethodGet, path); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %v", domain.ErrRemoteUnavailable, path, err)
	}
	return nil
}

func (c *RealEstateAPIClient) FetchRegions(ctx context.Context) ([]domain.Region, error) {
	logger := c.logger(ctx, "FetchRegions")

	var dtos []regionResponse
	if err := c.getJSON(ctx, "/regions", false, &dtos); err != nil {
		logger.Error("Failed to fetch regions", err, nil)
		return []domain.Region{}, err
	}

	regions := make([]domain.Region, len(dtos))
	for i, dto := range dtos {
		regions[i] = dto.toDomain()
	}
	logger.Debug("Regions fetched", port.Fields{"count": len(regions)})
	return regions, nil
}

func (c *RealEstateAPIClient) FetchCities(ctx context.Context) ([]domain.City, error) {
	logger := c.logger(ctx, "FetchCities")

	var dtos []cityResponse
	if err := c.getJSON(ctx, "/cities", false, &dtos); err != nil {
		logger.Error("Failed to fetch cities", err, nil)
		return []domain.City{}, err
	}

	cities := make([]domain.City, len(dtos))
	for i, dto := range dtos {
		cities[i] = dto.toDomain()
	}
	logger.Debug("Cities fetched", port.Fields{"count": len(cities)})
	return cities, nil
}

func (c *RealEstateAPIClient) FetchAgents(ctx context.Context) ([]domain.Agent, error) {
	logger := c.logger(ctx, "FetchAgents")

	var dtos []agentResponse
	if err := c.getJSON(ctx, "/agents", true, &dtos); err != nil {
		logger.Error("Failed to fetch agents", err, nil)
		return []domain.Agent{}, err
	}

	agents := make([]domain.Agent, len(dtos))
	for i, dto := range dtos {
		agents[i] = dto.toDomain()
	}
	logger.Debug("Agents fetched", port.Fields{"count": len(agents)})
	return agents, nil
}

func (c *RealEstateAPIClient) FetchListings(ctx context.Context) ([]domain.Listing, error) {
	logger := c.logger(ctx, "FetchListings")

	var dtos []listingResponse
	if err := c.getJSON(ctx, "/real-estates", true, &dtos); err != nil {
		logger.Error("Failed to fetch listings", err, nil)
		return []domain.Listing{}, err
	}

	listings := make([]domain.Listing, len(dtos))
	for i, dto := range dtos {
		listings[i] = dto.toDomain()
	}
	logger.Debug("Listings fetched", port.Fields{"count": len(listings)})
	return listings, nil
}

func (c *RealEstateAPIClient) FetchListing(ctx context.Context, id int) (*domain.Listing, error) {
	logger := c.logger(ctx, "FetchListing").WithFields(port.Fields{"listing_id": id})

	var dto listingResponse
	if err := c.getJSON(ctx, "/real-estates/"+strconv.Itoa(id), true, &dto); err != nil {
		logger.Error("Failed to fetch listing", err, nil)
		return nil, err
	}

	listing := dto.toDomain()
	return &listing, nil
}

func (c *RealEstateAPIClient) CreateListing(ctx context.Context, body port.MultipartBody) (int, error) {
	return c.postMultipart(ctx, "/real-estates", body)
}

func (c *RealEstateAPIClient) CreateAgent(ctx context.Context, body port.MultipartBody) (int, error) {
	return c.postMultipart(ctx, "/agents", body)
}

func (c *RealEstateAPIClient) postMultipart(ctx context.Context, path string, body port.MultipartBody) (int, error) {
	logger := c.logger(ctx, "postMultipart").WithFields(port.Fields{"path": path})

	resp, err := c.doRequest(ctx, http.MethodPost, path, body.Body, body.ContentType, true)
	if err != nil {
		logger.Error("Failed to perform multipart request", err, nil)
		return 0, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.MethodPost, path); err != nil {
		logger.Error("Received non-2xx response", err, port.Fields{"status_code": resp.StatusCode})
		return 0, err
	}

	// без id нельзя ни опубликовать событие, ни ответить клиенту
	var created createdResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		logger.Error("Could not decode created entity response", err, nil)
		return 0, fmt.Errorf("%w: POST %s: undecodable response: %v", domain.ErrRemoteUnavailable, path, err)
	}
	if created.ID <= 0 {
		logger.Error("Created entity response has no id", nil, port.Fields{"id": created.ID})
		return 0, fmt.Errorf("%w: POST %s: response has no entity id", domain.ErrRemoteUnavailable, path)
	}
	logger.Info("Entity created", port.Fields{"id": created.ID})
	return created.ID, nil
}

func (c *RealEstateAPIClient) DeleteListing(ctx context.Context, id int) error {
	path := "/real-estates/" + strconv.Itoa(id)
	logger := c.logger(ctx, "DeleteListing").WithFields(port.Fields{"listing_id": id})

	resp, err := c.doRequest(ctx, http.MethodDelete, path, nil, "application/json", true)
	if err != nil {
		logger.Error("Failed to perform delete request", err, nil)
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.MethodDelete, path); err != nil {
		logger.Error("Error deleting listing", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}
	logger.Info("Listing deleted successfully", nil)
	return nil
}

func (c *RealEstateAPIClient) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RealEstateAPIClient",
		"method":    method,
	})
}
