package rest

import (
	"context"
	"fmt"
	"net/http"

	core_port "real-estate-manager/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const apiPrefix = "/api/v1"

// Handlers - все обработчики REST API
type Handlers struct {
	Reference *ReferenceHandler
	Agents    *AgentsHandler
	Listings  *ListingsHandler
	Filters   *FiltersHandler
	Drafts    *DraftsHandler
}

// Server - REST API сервер для фронтенда.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer создает новый экземпляр сервера.
func NewServer(port string, handlers Handlers, allowedOrigins []string, baseLogger core_port.LoggerPort) *Server {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: NewRouter(handlers, allowedOrigins, baseLogger),
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// NewRouter собирает маршруты API. Вынесен отдельно для тестов.
func NewRouter(handlers Handlers, allowedOrigins []string, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", sessionHeader, traceHeader},
		ExposedHeaders:   []string{sessionHeader, traceHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	})

	r.Route(apiPrefix, func(r chi.Router) {
		r.Use(SessionMiddleware)

		r.Get("/regions", handlers.Reference.GetRegions)
		r.Get("/cities", handlers.Reference.GetCities)

		r.Get("/agents", handlers.Agents.GetAgents)
		r.Post("/agents", handlers.Agents.CreateAgent)

		r.Route("/listings", func(r chi.Router) {
			r.Get("/", handlers.Listings.GetListings)
			r.Post("/", handlers.Listings.CreateListing)
			r.Get("/{listingID}", handlers.Listings.GetListing)
			r.Delete("/{listingID}", handlers.Listings.DeleteListing)
		})

		r.Route("/filters", func(r chi.Router) {
			r.Get("/", handlers.Filters.GetFilters)
			r.Put("/", handlers.Filters.ReplaceFilters)
			r.Delete("/", handlers.Filters.ClearFilters)
			r.Post("/regions/{regionID}", handlers.Filters.ToggleRegion)
			r.Delete("/regions/{regionID}", handlers.Filters.RemoveRegion)
			r.Delete("/price", handlers.Filters.RemovePrice)
			r.Delete("/area", handlers.Filters.RemoveArea)
			r.Delete("/bedrooms", handlers.Filters.RemoveBedrooms)
		})

		r.Route("/drafts/{form}", func(r chi.Router) {
			r.Get("/", handlers.Drafts.GetDraft)
			r.Put("/", handlers.Drafts.SaveDraft)
			r.Delete("/", handlers.Drafts.ClearDraft)
			r.Get("/preview", handlers.Drafts.GetPreview)
			r.Put("/preview", handlers.Drafts.SavePreview)
			r.Delete("/preview", handlers.Drafts.ClearPreview)
		})
	})

	return r
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
