package rest

import (
	"net/http"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/forms"
	"real-estate-manager/internal/core/port"
	"real-estate-manager/internal/core/port/usecases_port"
)

type ListingsHandler struct {
	listUC    usecases_port.ListListingsUseCasePort
	detailsUC usecases_port.GetListingDetailsUseCasePort
	createUC  usecases_port.CreateListingUseCasePort
	deleteUC  usecases_port.DeleteListingUseCasePort
	regionsUC usecases_port.GetRegionsUseCasePort
	present   *presenter
}

func NewListingsHandler(
	listUC usecases_port.ListListingsUseCasePort,
	detailsUC usecases_port.GetListingDetailsUseCasePort,
	createUC usecases_port.CreateListingUseCasePort,
	deleteUC usecases_port.DeleteListingUseCasePort,
	regionsUC usecases_port.GetRegionsUseCasePort,
) *ListingsHandler {
	return &ListingsHandler{
		listUC:    listUC,
		detailsUC: detailsUC,
		createUC:  createUC,
		deleteUC:  deleteUC,
		regionsUC: regionsUC,
		present:   newPresenter(),
	}
}

// GetListings обрабатывает GET /api/v1/listings
func (h *ListingsHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetListings"})

	view, err := h.listUC.Execute(r.Context(), sessionFromRequest(r))
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	// имена регионов нужны только для чипов; без них чипы остаются без подписи
	regions, err := h.regionsUC.Execute(r.Context())
	if err != nil {
		logger.Warn("Regions unavailable for filter chips", port.Fields{"error": err.Error()})
	}

	RespondWithJSON(w, http.StatusOK, ListingsPageResponse{
		Cards:               h.present.cards(view.Filtered),
		Total:               view.Total,
		FilteredCount:       len(view.Filtered),
		Loaded:              view.Loaded,
		FilterStateResponse: h.present.filterState(view.Criteria, regions),
	})
}

// GetListing обрабатывает GET /api/v1/listings/{listingID}
func (h *ListingsHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetListing"})

	listingID, ok := intURLParam(r, "listingID")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	details, err := h.detailsUC.Execute(r.Context(), listingID)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, h.present.details(details))
}

// CreateListing обрабатывает POST /api/v1/listings (multipart/form-data)
func (h *ListingsHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateListing"})

	form := forms.NewListingForm()
	if err := bindMultipartForm(w, r, form); err != nil {
		writeBindError(w, logger, form, err)
		return
	}

	id, err := h.createUC.Execute(r.Context(), sessionFromRequest(r), form)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, CreatedResponse{ID: id})
}

// DeleteListing обрабатывает DELETE /api/v1/listings/{listingID}.
// Переход на главную страницу предлагается только после успешного удаления.
func (h *ListingsHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteListing"})

	listingID, ok := intURLParam(r, "listingID")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), listingID); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, DeletedResponse{ID: listingID, RedirectTo: "/"})
}

