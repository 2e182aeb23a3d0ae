package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// Error codes carried in ErrorResponse.
const (
	codeNotFound         = "not_found"
	codeValidation       = "validation_error"
	codeBadRequest       = "bad_request"
	codeTooLarge         = "payload_too_large"
	codeNothingToUndo    = "nothing_to_undo"
	codeMethodNotAllowed = "method_not_allowed"
	codeInternal         = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed request. Fields maps request fields to
// their validation messages and is only set for 422 responses.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeValidation writes a 422 for ozzo validation errors.
func writeValidation(w http.ResponseWriter, err error) {
	detail := ErrorDetail{Code: codeValidation, Message: err.Error()}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		detail.Fields = make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			detail.Fields[field] = ferr.Error()
		}
	}
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: detail})
}

// respondError maps a service error onto a status code. what names the
// resource for not-found messages (e.g. "trip").
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, what string, err error) {
	var verrs validation.Errors
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, what+" not found")
	case errors.Is(err, domain.ErrNothingToUndo):
		writeError(w, http.StatusConflict, codeNothingToUndo, "nothing to undo")
	case errors.As(err, &verrs), errors.Is(err, domain.ErrValidation):
		writeValidation(w, err)
	default:
		s.Log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// decodeJSON reads the request body into dst. It writes a 400 or 413 and
// returns false when the body cannot be decoded.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		writeError(w, http.StatusBadRequest, codeBadRequest, "request body is required")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, "malformed request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}
