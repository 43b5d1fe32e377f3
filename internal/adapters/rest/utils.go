package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/forms"
	"real-estate-manager/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// writeUseCaseError переводит ошибки ядра в HTTP-статусы.
func writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	var validationErr *forms.ValidationError
	switch {
	case errors.As(err, &validationErr):
		RespondWithJSON(w, http.StatusUnprocessableEntity, newValidationErrorResponse(validationErr))
	case errors.Is(err, domain.ErrInvalidInput):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrRemoteUnavailable):
		WriteJSONError(w, http.StatusBadGateway, "Remote API is unavailable")
	default:
		logger.Error("Unexpected error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// intURLParam читает положительный целочисленный параметр пути.
func intURLParam(r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

// formKindParam читает имя формы из пути /drafts/{form}.
func formKindParam(r *http.Request) (domain.FormKind, error) {
	return domain.ParseFormKind(chi.URLParam(r, "form"))
}
