package rest

import (
	"encoding/json"
	"net/http"

	"real-estate-manager/internal/constants"
	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/forms"
	"real-estate-manager/internal/core/port"
	"real-estate-manager/internal/core/port/usecases_port"
)

// DraftsHandler хранит незаконченные формы сессии и превью изображений.
type DraftsHandler struct {
	draftsUC usecases_port.DraftsUseCasePort
}

func NewDraftsHandler(draftsUC usecases_port.DraftsUseCasePort) *DraftsHandler {
	return &DraftsHandler{draftsUC: draftsUC}
}

// GetDraft обрабатывает GET /api/v1/drafts/{form}
func (h *DraftsHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetDraft"})

	kind, err := formKindParam(r)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	draft, err := h.draftsUC.GetDraft(r.Context(), sessionFromRequest(r), kind)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, draftToResponse(kind, draft))
}

// SaveDraft обрабатывает PUT /api/v1/drafts/{form}.
// Неизвестные поля отбрасываются, файлы в черновик не попадают.
func (h *DraftsHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SaveDraft"})

	kind, err := formKindParam(r)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sessionID := sessionFromRequest(r)
	if err := h.draftsUC.SaveDraft(r.Context(), sessionID, domain.Draft{Form: kind, Values: req.Values}); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	draft, err := h.draftsUC.GetDraft(r.Context(), sessionID, kind)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, draftToResponse(kind, draft))
}

// ClearDraft обрабатывает DELETE /api/v1/drafts/{form}
func (h *DraftsHandler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ClearDraft"})

	kind, err := formKindParam(r)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	if err := h.draftsUC.ClearDraft(r.Context(), sessionFromRequest(r), kind); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetPreview обрабатывает GET /api/v1/drafts/{form}/preview
func (h *DraftsHandler) GetPreview(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPreview"})

	kind, err := formKindParam(r)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	dataURL, found, err := h.draftsUC.GetPreview(r.Context(), sessionFromRequest(r), kind)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	if !found {
		WriteJSONError(w, http.StatusNotFound, "Preview not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, PreviewResponse{DataURL: dataURL})
}

// SavePreview обрабатывает PUT /api/v1/drafts/{form}/preview (multipart, поле "file")
func (h *DraftsHandler) SavePreview(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SavePreview"})

	kind, err := formKindParam(r)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	if err := parseMultipart(w, r); err != nil {
		writeBindError(w, logger, forms.NewPreviewForm(string(kind)), err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[forms.PreviewFile]
	if len(headers) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "File field is required")
		return
	}
	file, err := forms.ReadFileHeader(headers[0], constants.MaxUploadBytes)
	if err != nil {
		logger.Warn("Failed to read uploaded file", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid file")
		return
	}

	dataURL, err := h.draftsUC.SavePreview(r.Context(), sessionFromRequest(r), kind, file)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, PreviewResponse{DataURL: dataURL})
}

// ClearPreview обрабатывает DELETE /api/v1/drafts/{form}/preview
func (h *DraftsHandler) ClearPreview(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ClearPreview"})

	kind, err := formKindParam(r)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	if err := h.draftsUC.ClearPreview(r.Context(), sessionFromRequest(r), kind); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func draftToResponse(kind domain.FormKind, draft domain.Draft) DraftResponse {
	values := draft.Values
	if values == nil {
		values = map[string]string{}
	}
	return DraftResponse{Form: string(kind), Values: values}
}
