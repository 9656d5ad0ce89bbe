package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/brandscope/api/pkg/errors"
	"github.com/brandscope/api/pkg/validator"
)

// envelope is the JSON response wrapper. Exactly one of data or error is set.
type envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Data: data})
}

func writeAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, envelope{Error: &errorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
		}})
		return
	}

	writeJSON(w, apperrors.HTTPStatus(err), envelope{Error: &errorBody{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
	}})
}

func writeValidationError(w http.ResponseWriter, verr *validator.ValidationError) {
	writeJSON(w, http.StatusBadRequest, envelope{Error: &errorBody{
		Code:    "INVALID_INPUT",
		Message: "request validation failed",
		Fields:  verr.Fields(),
	}})
}
