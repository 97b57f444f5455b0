package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/agriadvisor/agriadvisor-go/pkg/analysis"
	"github.com/agriadvisor/agriadvisor-go/pkg/chat"
	"github.com/agriadvisor/agriadvisor-go/pkg/metadatastore"
	"github.com/agriadvisor/agriadvisor-go/pkg/scoring"
	"github.com/agriadvisor/agriadvisor-go/pkg/user"
	"github.com/agriadvisor/agriadvisor-go/pkg/weather"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// writeJSONResponse writes a JSON response with the given status code
func writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeErrorResponse writes an error response with the given status code and message
func writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeJSONResponse(w, statusCode, map[string]any{
		"error":  message,
		"status": "error",
	})
}

// writeServiceError maps a service error onto an HTTP status. Unexpected
// errors are logged and reported without detail.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, scoring.ErrInvalidInput),
		errors.Is(err, user.ErrInvalidUser),
		errors.Is(err, chat.ErrInvalidMessage),
		errors.Is(err, analysis.ErrNoImage),
		errors.Is(err, weather.ErrInvalidCoordinates):
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, metadatastore.ErrNotFound):
		writeErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, user.ErrUsernameTaken):
		writeErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, weather.ErrNotConfigured):
		writeErrorResponse(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, weather.ErrUpstream):
		logger.Warn("weather provider failed", zap.Error(err))
		writeErrorResponse(w, http.StatusBadGateway, "Failed to fetch weather data")
	default:
		logger.Error("request failed", zap.Error(err))
		writeErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// decodeBody decodes a JSON request body into v
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %v", err)
	}
	return nil
}

// requireUserID reads the user_id query parameter
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return "", false
	}
	return userID, true
}
