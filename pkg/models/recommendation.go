package models

// ScoreBreakdown records each factor's sub-score for a candidate
type ScoreBreakdown struct {
	PH          float64 `json:"ph"`
	Temperature float64 `json:"temperature"`
	Rainfall    float64 `json:"rainfall"`
	Region      float64 `json:"region"`
	SoilType    float64 `json:"soil_type"`
	Irrigation  float64 `json:"irrigation"`
	Experience  float64 `json:"experience"`
}

// ScoredCandidate is one ranked recommendation
type ScoredCandidate struct {
	CropID      CropID         `json:"crop_id"`
	CropName    string         `json:"crop"`
	VarietyName string         `json:"variety,omitempty"`
	Confidence  float64        `json:"confidence"`
	Details     string         `json:"details"`
	Season      string         `json:"season,omitempty"`
	Description string         `json:"description,omitempty"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
}

// RecommendationResponse wraps the ranked candidates returned to clients
type RecommendationResponse struct {
	Recommendations []ScoredCandidate `json:"recommendations"`
}
