package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/agriadvisor/agriadvisor-go/pkg/analysis"
	"github.com/agriadvisor/agriadvisor-go/pkg/weather"
)

// maxImageBytes caps uploaded photos
const maxImageBytes = 10 << 20

// AnalysisHandler handles photo analyses and field analytics
type AnalysisHandler struct {
	service *analysis.Service
	logger  *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *analysis.Service, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		logger:  logger,
	}
}

// HandleHealth scores an uploaded crop photo (multipart field "image")
func (h *AnalysisHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, image, ok := readImageUpload(w, r)
	if !ok {
		return
	}

	result, err := h.service.AnalyzeHealth(userID, image)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, result)
}

// HandleSoil analyses an uploaded soil photo (multipart field "image")
func (h *AnalysisHandler) HandleSoil(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, image, ok := readImageUpload(w, r)
	if !ok {
		return
	}

	result, err := h.service.AnalyzeSoil(userID, image)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, result)
}

// HandleFields returns the user's fields with their analytics history
func (h *AnalysisHandler) HandleFields(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	fields, err := h.service.Fields(userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, fields)
}

// readImageUpload reads the "image" file and user_id from a multipart form.
// It writes the error response itself and reports false on failure.
func readImageUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid upload: %v", err))
		return "", nil, false
	}

	userID := r.FormValue("user_id")
	if userID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return "", nil, false
	}

	file, _, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		writeErrorResponse(w, http.StatusBadRequest, analysis.ErrNoImage.Error())
		return "", nil, false
	}
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid upload: %v", err))
		return "", nil, false
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid upload: %v", err))
		return "", nil, false
	}
	return userID, image, true
}

// WeatherHandler relays forecasts from the weather provider
type WeatherHandler struct {
	client *weather.Client
	logger *zap.Logger
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(client *weather.Client, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{
		client: client,
		logger: logger,
	}
}

// HandleForecast serves /api/weather/{lat}/{lon}
func (h *WeatherHandler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/weather/"), "/"), "/")
	if len(parts) != 2 {
		writeErrorResponse(w, http.StatusBadRequest, "expected /api/weather/{lat}/{lon}")
		return
	}

	lat, lon, err := weather.ParseCoordinates(parts[0], parts[1])
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	forecast, err := h.client.Forecast(r.Context(), lat, lon)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(forecast)
}
