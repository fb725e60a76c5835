package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	// ErrInput marks a missing or malformed request field.
	ErrInput = errors.New("invalid input")
	// ErrUpstreamFetch covers every failure of an outbound fetch: network, timeout, non-2xx, parse.
	ErrUpstreamFetch = errors.New("upstream fetch failed")
	// ErrNotFound marks a lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrDataUnavailable is returned when no backing store is configured.
	ErrDataUnavailable = errors.New("data store unavailable")
)

func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDataUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON writes {"error": message} with the status derived from err.
// Upstream and unknown failures are reported with the generic message only.
func WriteJSON(w http.ResponseWriter, err error, message string) {
	status := HTTPStatus(err)
	body := map[string]string{"error": message}
	if status == http.StatusBadRequest || status == http.StatusNotFound {
		body["error"] = err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
