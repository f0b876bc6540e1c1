package handler

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"shopde/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return
	}
}

// writeHTML writes an HTML fragment response.
func writeHTML(w http.ResponseWriter, status int, fragment template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(fragment))
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError is the single boundary translating pipeline failures to
// HTTP responses. Remote-service errors surface with the underlying message
// verbatim; validation failures carry the per-field messages.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var validation *model.ValidationFailedError
	if errors.As(err, &validation) {
		writeJSON(w, http.StatusUnprocessableEntity, model.ErrorResponse{
			Error:   model.ErrCodeValidationFailed,
			Message: "validation failed",
			Details: validation.Messages,
		})
		return
	}

	var domain *model.DomainError
	if errors.As(err, &domain) {
		status := http.StatusBadRequest
		switch domain.Code {
		case model.ErrCodeProductNotFound, model.ErrCodeCategoryNotFound:
			status = http.StatusNotFound
		case model.ErrCodeCategoryInUse:
			status = http.StatusConflict
		}
		writeError(w, status, domain.Code, domain.Message, logger)
		return
	}

	var read *model.RemoteReadError
	if errors.As(err, &read) {
		writeError(w, http.StatusBadGateway, model.ErrCodeUpstreamRead, read.Error(), logger)
		return
	}

	var write *model.RemoteWriteError
	if errors.As(err, &write) {
		writeError(w, http.StatusBadGateway, model.ErrCodeUpstreamWrite, write.Error(), logger)
		return
	}

	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal error", logger)
}
