package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"logbook/internal/core"
	applog "logbook/internal/log"
)

// errorBody is the uniform error envelope. Details carries the itemized
// violation list for validation failures.
type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError is the single place a typed error becomes a status code and
// envelope. Handlers never pick status codes themselves.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr     *core.ValidationError
		notFound *core.NotFoundError
		conflict *core.ConflictError
		storeErr *core.StorageError
	)

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid parameters", Details: verr.Details})
	case errors.Is(err, core.ErrMalformedBody):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid parameters", Details: []string{core.ErrMalformedBody.Error()}})
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: notFound.Error()})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, errorBody{Error: conflict.Error()})
	case errors.As(err, &storeErr):
		// The driver fault stays server-side; clients get a generic message.
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Storage failure",
			applog.FieldPath, r.URL.Path, applog.FieldError, err.Error())
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "an unexpected server error occurred"})
	default:
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Unhandled error",
			applog.FieldPath, r.URL.Path, applog.FieldError, err.Error())
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "an unexpected server error occurred"})
	}
}

// decodeJSON reads the request body into v. Any parse failure is reported
// as a malformed-body error, which the envelope treats like a validation
// failure rather than a crash.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", core.ErrMalformedBody, err)
	}
	return nil
}

// pathID parses the {id} route parameter. A non-numeric id behaves like a
// missing record.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &core.NotFoundError{Resource: "record", Key: fmt.Sprintf("id %s", raw)}
	}
	return id, nil
}
