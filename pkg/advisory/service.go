// Package advisory implements the recommendation and prediction operations
// exposed to farmers. Scoring itself lives in pkg/scoring; this package
// chooses the profile set and ranking options for each flow and persists
// predictions against their owner.
package advisory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agriadvisor/agriadvisor-go/pkg/catalog"
	"github.com/agriadvisor/agriadvisor-go/pkg/config"
	"github.com/agriadvisor/agriadvisor-go/pkg/metadatastore"
	"github.com/agriadvisor/agriadvisor-go/pkg/models"
	"github.com/agriadvisor/agriadvisor-go/pkg/scoring"
)

// UserGetter resolves the owner of a prediction
type UserGetter interface {
	Get(id string) (*models.User, error)
}

// Flow binds a profile set to ranking options
type Flow struct {
	Set     catalog.Set
	Options scoring.Options
}

// CropFlow ranks the state-level crop profiles with the seven-factor
// strategy and keeps the five best.
func CropFlow() Flow {
	return Flow{Set: catalog.SetCrops, Options: scoring.Options{Strategy: scoring.Extended(), TopN: 5}}
}

// SeedFlow ranks the climate-zone seed profiles with the four-factor
// strategy and keeps every candidate at or above 0.4.
func SeedFlow() Flow {
	return Flow{Set: catalog.SetSeeds, Options: scoring.Options{Strategy: scoring.Simple(), MinConfidence: 0.4}}
}

// FlowFromConfig applies configured overrides to a flow
func FlowFromConfig(base Flow, cfg config.FlowConfig) (Flow, error) {
	strategy, err := scoring.StrategyByName(cfg.Strategy)
	if err != nil {
		return Flow{}, err
	}
	base.Options = scoring.Options{Strategy: strategy, TopN: cfg.TopN, MinConfidence: cfg.MinConfidence}
	return base, nil
}

// Service runs the advisory flows
type Service struct {
	store    metadatastore.MetadataStore
	users    UserGetter
	catalog  *catalog.Catalog
	engine   *scoring.Engine
	cropFlow Flow
	seedFlow Flow
}

// NewService creates a new advisory service
func NewService(store metadatastore.MetadataStore, users UserGetter, cat *catalog.Catalog, cropFlow, seedFlow Flow) *Service {
	return &Service{
		store:    store,
		users:    users,
		catalog:  cat,
		engine:   scoring.NewEngine(cat),
		cropFlow: cropFlow,
		seedFlow: seedFlow,
	}
}

// RecommendCrops ranks crops for the submitted conditions. Nothing is stored.
func (s *Service) RecommendCrops(raw models.ConditionInput) ([]models.ScoredCandidate, error) {
	cv, err := scoring.ParseConditions(raw)
	if err != nil {
		return nil, err
	}
	return s.run(s.cropFlow, cv)
}

// PredictSeed ranks seeds for the conditions in input and stores the result
func (s *Service) PredictSeed(userID string, input json.RawMessage) (*models.Prediction, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}

	var raw models.ConditionInput
	if err := json.Unmarshal(input, &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed conditions: %v", scoring.ErrInvalidInput, err)
	}
	cv, err := scoring.ParseConditions(raw)
	if err != nil {
		return nil, err
	}

	recs, err := s.run(s.seedFlow, cv)
	if err != nil {
		return nil, err
	}

	return s.save(userID, models.PredictionTypeSeed, input, models.RecommendationResponse{Recommendations: recs})
}

// PredictPlantDisease records a plant-disease diagnosis. The classifier is
// not connected yet; every request receives the same diagnosis.
func (s *Service) PredictPlantDisease(userID string, input json.RawMessage) (*models.Prediction, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}

	result := models.PlantDiseaseResult{
		Disease:    "Leaf Blight",
		Confidence: 0.85,
		Recommendations: []string{
			"Apply fungicide",
			"Improve air circulation",
			"Remove infected leaves",
		},
	}
	return s.save(userID, models.PredictionTypePlantDisease, input, result)
}

// PredictSeasonalCrop records a seasonal crop suggestion. Like the disease
// classifier this returns a fixed summer plan.
func (s *Service) PredictSeasonalCrop(userID string, input json.RawMessage) (*models.Prediction, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}

	result := models.SeasonalCropResult{
		Crops: []models.SeasonalCrop{
			{Name: "Tomatoes", Confidence: 0.95},
			{Name: "Peppers", Confidence: 0.85},
			{Name: "Cucumbers", Confidence: 0.75},
		},
		Season: "Summer",
	}
	return s.save(userID, models.PredictionTypeSeasonalCrop, input, result)
}

// ListPredictions returns a user's predictions, newest first
func (s *Service) ListPredictions(userID string) ([]*models.Prediction, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	return s.store.ListPredictionsByUser(userID)
}

// GetPrediction returns one of the user's predictions. A prediction owned by
// someone else is reported as not found.
func (s *Service) GetPrediction(userID, id string) (*models.Prediction, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	prediction, err := s.store.GetPrediction(id)
	if err != nil {
		return nil, err
	}
	if prediction.UserID != userID {
		return nil, fmt.Errorf("%w: prediction %s", metadatastore.ErrNotFound, id)
	}
	return prediction, nil
}

func (s *Service) run(flow Flow, cv models.ConditionVector) ([]models.ScoredCandidate, error) {
	profiles, err := s.catalog.Profiles(flow.Set)
	if err != nil {
		return nil, err
	}
	return s.engine.Recommend(cv, profiles, flow.Options)
}

func (s *Service) save(userID string, typ models.PredictionType, input json.RawMessage, result any) (*models.Prediction, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prediction result: %w", err)
	}

	prediction := &models.Prediction{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      typ,
		Input:     normalizeInput(input),
		Result:    resultJSON,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.SavePrediction(prediction); err != nil {
		return nil, fmt.Errorf("failed to save prediction: %w", err)
	}
	return prediction, nil
}

// normalizeInput stores missing or invalid input as an empty object so the
// record always re-encodes as valid JSON.
func normalizeInput(input json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(input)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || !json.Valid(trimmed) {
		return json.RawMessage("{}")
	}
	return append(json.RawMessage(nil), trimmed...)
}
