package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/diewo77/go-assets/httpx"
	"github.com/diewo77/go-assets/internal/services"
	"github.com/diewo77/go-assets/internal/store"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var errInvalidID = errors.New("invalid id")

// pathID parses the {id} route variable.
func pathID(r *http.Request) (uint, error) {
	n, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || n == 0 {
		return 0, errInvalidID
	}
	return uint(n), nil
}

// queryClientID parses an optional client_id query value. Blank means no filter.
func queryClientID(r *http.Request) (*uint, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("client_id"))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, errInvalidID
	}
	id := uint(n)
	return &id, nil
}

// writeError maps service and store errors onto the JSON error body.
func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", ve.Violations)
	case errors.Is(err, services.ErrClientNotFound):
		httpx.JSONError(w, http.StatusUnprocessableEntity, "client_not_found", nil)
	case errors.Is(err, services.ErrDuplicateSerial):
		httpx.JSONError(w, http.StatusConflict, "serial_already_exists", nil)
	case errors.Is(err, store.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	default:
		log.Error("request failed", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
