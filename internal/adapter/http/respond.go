package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MuriloBarros304/web-menu/internal/adapter/logger"
	"github.com/MuriloBarros304/web-menu/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

// respondError maps domain error kinds to HTTP status codes. Anything
// unrecognized is a 500 with a generic body; the real error only goes
// to the log.
func respondError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	var statusCode int
	message := err.Error()

	switch {
	case domain.IsValidation(err):
		statusCode = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		statusCode = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		statusCode = http.StatusConflict
	default:
		statusCode = http.StatusInternalServerError
		message = "internal server error"
		log.Error("request_failed", "Unhandled error", requestIDFrom(r.Context()), map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
		}, err)
	}

	respondJSON(w, statusCode, errorResponse{Error: message})
}

func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, domain.Validationf("invalid id in URL")
	}
	return id, nil
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Validationf("invalid request body")
	}
	return nil
}
