package rest

import (
	"encoding/json"
	"net/http"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"
	"real-estate-manager/internal/core/port/usecases_port"
)

// FiltersHandler управляет критериями фильтрации сессии.
// Каждый ответ содержит критерии, чипы и признак активности фильтров.
type FiltersHandler struct {
	filtersUC usecases_port.FilterCriteriaUseCasePort
	regionsUC usecases_port.GetRegionsUseCasePort
	present   *presenter
}

func NewFiltersHandler(filtersUC usecases_port.FilterCriteriaUseCasePort, regionsUC usecases_port.GetRegionsUseCasePort) *FiltersHandler {
	return &FiltersHandler{filtersUC: filtersUC, regionsUC: regionsUC, present: newPresenter()}
}

// GetFilters обрабатывает GET /api/v1/filters
func (h *FiltersHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFilters"})

	criteria, err := h.filtersUC.Get(r.Context(), sessionFromRequest(r))
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	h.respondWithState(w, r, logger, criteria)
}

// ReplaceFilters обрабатывает PUT /api/v1/filters
func (h *FiltersHandler) ReplaceFilters(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ReplaceFilters"})

	var req FilterCriteriaDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	criteria, err := h.filtersUC.Replace(r.Context(), sessionFromRequest(r), req.toDomain())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	h.respondWithState(w, r, logger, criteria)
}

// ClearFilters обрабатывает DELETE /api/v1/filters ("Clear all")
func (h *FiltersHandler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ClearFilters"})

	criteria, err := h.filtersUC.Clear(r.Context(), sessionFromRequest(r))
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	h.respondWithState(w, r, logger, criteria)
}

// ToggleRegion обрабатывает POST /api/v1/filters/regions/{regionID}
func (h *FiltersHandler) ToggleRegion(w http.ResponseWriter, r *http.Request) {
	regionID, ok := intURLParam(r, "regionID")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Invalid region ID")
		return
	}
	h.update(w, r, "ToggleRegion", func(c domain.FilterCriteria) domain.FilterCriteria {
		return c.WithRegionToggled(regionID)
	})
}

// RemoveRegion обрабатывает DELETE /api/v1/filters/regions/{regionID}
func (h *FiltersHandler) RemoveRegion(w http.ResponseWriter, r *http.Request) {
	regionID, ok := intURLParam(r, "regionID")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Invalid region ID")
		return
	}
	h.update(w, r, "RemoveRegion", func(c domain.FilterCriteria) domain.FilterCriteria {
		return c.WithoutRegion(regionID)
	})
}

// RemovePrice обрабатывает DELETE /api/v1/filters/price
func (h *FiltersHandler) RemovePrice(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, "RemovePrice", domain.FilterCriteria.WithoutPrice)
}

// RemoveArea обрабатывает DELETE /api/v1/filters/area
func (h *FiltersHandler) RemoveArea(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, "RemoveArea", domain.FilterCriteria.WithoutArea)
}

// RemoveBedrooms обрабатывает DELETE /api/v1/filters/bedrooms
func (h *FiltersHandler) RemoveBedrooms(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, "RemoveBedrooms", domain.FilterCriteria.WithoutBedrooms)
}

func (h *FiltersHandler) update(w http.ResponseWriter, r *http.Request, handler string, change func(domain.FilterCriteria) domain.FilterCriteria) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": handler})

	criteria, err := h.filtersUC.Update(r.Context(), sessionFromRequest(r), change)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	h.respondWithState(w, r, logger, criteria)
}

func (h *FiltersHandler) respondWithState(w http.ResponseWriter, r *http.Request, logger port.LoggerPort, criteria domain.FilterCriteria) {
	var regions []domain.Region
	if len(criteria.RegionIDs) > 0 {
		var err error
		regions, err = h.regionsUC.Execute(r.Context())
		if err != nil {
			logger.Warn("Regions unavailable for filter chips", port.Fields{"error": err.Error()})
		}
	}
	RespondWithJSON(w, http.StatusOK, h.present.filterState(criteria, regions))
}
