package models

import (
	"encoding/json"
	"time"
)

// PredictionType identifies which predictor produced a record
type PredictionType string

const (
	PredictionTypePlantDisease PredictionType = "plant-disease"
	PredictionTypeSeed         PredictionType = "seed"
	PredictionTypeSeasonalCrop PredictionType = "seasonal-crop"
)

// Prediction is a stored prediction owned by a user.
// Input and Result are kept as raw JSON since their shape depends on Type.
type Prediction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Type      PredictionType  `json:"type"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// PlantDiseaseResult is the result payload of a plant-disease prediction
type PlantDiseaseResult struct {
	Disease         string   `json:"disease"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

// SeasonalCrop is a single crop suggestion for a season
type SeasonalCrop struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// SeasonalCropResult is the result payload of a seasonal-crop prediction
type SeasonalCropResult struct {
	Crops  []SeasonalCrop `json:"crops"`
	Season string         `json:"season"`
}

// PredictionRequest is the body of a prediction endpoint
type PredictionRequest struct {
	UserID string          `json:"user_id"`
	Input  json.RawMessage `json:"input"`
}
