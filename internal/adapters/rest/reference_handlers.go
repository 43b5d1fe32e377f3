package rest

import (
	"net/http"
	"strconv"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/port"
	"real-estate-manager/internal/core/port/usecases_port"
)

// ReferenceHandler отдает справочники для выпадающих списков.
// Ошибка удаленного API не ломает страницу: отдается пустой список.
type ReferenceHandler struct {
	regionsUC usecases_port.GetRegionsUseCasePort
	citiesUC  usecases_port.GetCitiesUseCasePort
}

func NewReferenceHandler(regionsUC usecases_port.GetRegionsUseCasePort, citiesUC usecases_port.GetCitiesUseCasePort) *ReferenceHandler {
	return &ReferenceHandler{regionsUC: regionsUC, citiesUC: citiesUC}
}

// GetRegions обрабатывает GET /api/v1/regions
func (h *ReferenceHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetRegions"})

	regions, err := h.regionsUC.Execute(r.Context())
	if err != nil {
		logger.Warn("Regions unavailable, responding with empty list", port.Fields{"error": err.Error()})
	}

	response := make([]RegionResponse, len(regions))
	for i, region := range regions {
		response[i] = RegionResponse{ID: region.ID, Name: region.Name}
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetCities обрабатывает GET /api/v1/cities?region_id=
func (h *ReferenceHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetCities"})

	var regionID *int
	if raw := r.URL.Query().Get("region_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			WriteJSONError(w, http.StatusBadRequest, "Invalid region_id")
			return
		}
		regionID = &id
	}

	cities, err := h.citiesUC.Execute(r.Context(), regionID)
	if err != nil {
		logger.Warn("Cities unavailable, responding with empty list", port.Fields{"error": err.Error()})
	}

	response := make([]CityResponse, len(cities))
	for i, city := range cities {
		response[i] = CityResponse{ID: city.ID, Name: city.Name, RegionID: city.RegionID}
	}
	RespondWithJSON(w, http.StatusOK, response)
}
