package rest

import (
	"errors"
	"net/http"

	"real-estate-manager/internal/constants"
	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/forms"
	"real-estate-manager/internal/core/port"
	"real-estate-manager/internal/core/port/usecases_port"
)

type AgentsHandler struct {
	getUC    usecases_port.GetAgentsUseCasePort
	createUC usecases_port.CreateAgentUseCasePort
	present  *presenter
}

func NewAgentsHandler(getUC usecases_port.GetAgentsUseCasePort, createUC usecases_port.CreateAgentUseCasePort) *AgentsHandler {
	return &AgentsHandler{getUC: getUC, createUC: createUC, present: newPresenter()}
}

// GetAgents обрабатывает GET /api/v1/agents
func (h *AgentsHandler) GetAgents(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetAgents"})

	agents, err := h.getUC.Execute(r.Context())
	if err != nil {
		logger.Warn("Agents unavailable, responding with empty list", port.Fields{"error": err.Error()})
	}
	RespondWithJSON(w, http.StatusOK, h.present.agents(agents))
}

// CreateAgent обрабатывает POST /api/v1/agents (multipart/form-data).
// В ответе - обновленный список агентов для выпадающего списка формы листинга.
func (h *AgentsHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateAgent"})

	form := forms.NewAgentForm()
	if err := bindMultipartForm(w, r, form); err != nil {
		writeBindError(w, logger, form, err)
		return
	}

	id, err := h.createUC.Execute(r.Context(), sessionFromRequest(r), form)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	agents, err := h.getUC.Execute(r.Context())
	if err != nil {
		logger.Warn("Agent created, but the agent list could not be refreshed", port.Fields{"error": err.Error()})
	}
	RespondWithJSON(w, http.StatusCreated, AgentCreatedResponse{ID: id, Agents: h.present.agents(agents)})
}

// Тело формы: текстовые поля и не больше одного файла с запасом на превышение
const maxFormBodyBytes = 4 * constants.MaxUploadBytes

// parseMultipart ограничивает размер тела и разбирает multipart/form-data.
// Слишком большое тело дает *http.MaxBytesError.
func parseMultipart(w http.ResponseWriter, r *http.Request) error {
	if r.ContentLength > maxFormBodyBytes {
		return &http.MaxBytesError{Limit: maxFormBodyBytes}
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBodyBytes)
	return r.ParseMultipartForm(2 * constants.MaxUploadBytes)
}

// bindMultipartForm разбирает тело запроса в поля формы.
func bindMultipartForm(w http.ResponseWriter, r *http.Request, form *forms.Form) error {
	if err := parseMultipart(w, r); err != nil {
		return err
	}
	defer r.MultipartForm.RemoveAll()
	return form.Bind(r.MultipartForm, constants.MaxUploadBytes)
}

// writeBindError отвечает 422 с правилом maxFileSize для файловых полей,
// если тело отброшено по размеру, и 400 на прочие ошибки разбора.
func writeBindError(w http.ResponseWriter, logger port.LoggerPort, form *forms.Form, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		logger.Warn("Request body exceeds upload limit", port.Fields{"limit": maxErr.Limit})
		writeUseCaseError(w, logger, form.RejectFiles(forms.RuleMaxFileSize))
		return
	}
	logger.Warn("Failed to parse multipart form", port.Fields{"error": err.Error()})
	WriteJSONError(w, http.StatusBadRequest, "Invalid multipart form")
}
