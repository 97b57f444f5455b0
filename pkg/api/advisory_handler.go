package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/agriadvisor/agriadvisor-go/pkg/advisory"
	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

// AdvisoryHandler handles recommendation and prediction requests
type AdvisoryHandler struct {
	service *advisory.Service
	logger  *zap.Logger
}

// NewAdvisoryHandler creates a new advisory handler
func NewAdvisoryHandler(service *advisory.Service, logger *zap.Logger) *AdvisoryHandler {
	return &AdvisoryHandler{
		service: service,
		logger:  logger,
	}
}

// HandleRecommendations ranks crops for the posted conditions
func (h *AdvisoryHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input models.ConditionInput
	if err := decodeBody(w, r, &input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	recs, err := h.service.RecommendCrops(input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, models.RecommendationResponse{Recommendations: recs})
}

// HandlePredictions lists a user's stored predictions
func (h *AdvisoryHandler) HandlePredictions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	predictions, err := h.service.ListPredictions(userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, predictions)
}

// HandlePrediction routes /api/predictions/{segment}. POST runs the predictor
// named by the segment and stores the result; GET fetches a stored prediction
// by ID.
func (h *AdvisoryHandler) HandlePrediction(w http.ResponseWriter, r *http.Request) {
	segment := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/predictions/"), "/")

	switch r.Method {
	case http.MethodPost:
		h.handleCreatePrediction(w, r, models.PredictionType(segment))
	case http.MethodGet:
		h.handleGetPrediction(w, r, segment)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *AdvisoryHandler) handleGetPrediction(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "prediction ID is required")
		return
	}
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	prediction, err := h.service.GetPrediction(userID, id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, prediction)
}

func (h *AdvisoryHandler) handleCreatePrediction(w http.ResponseWriter, r *http.Request, kind models.PredictionType) {
	var predict func(string, json.RawMessage) (*models.Prediction, error)
	switch kind {
	case models.PredictionTypeSeed:
		predict = h.service.PredictSeed
	case models.PredictionTypePlantDisease:
		predict = h.service.PredictPlantDisease
	case models.PredictionTypeSeasonalCrop:
		predict = h.service.PredictSeasonalCrop
	default:
		writeErrorResponse(w, http.StatusNotFound, "unknown prediction type: "+string(kind))
		return
	}

	var req models.PredictionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	prediction, err := predict(req.UserID, req.Input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, prediction)
}
