package models

// CropHealthResult is the outcome of a crop photo health check
type CropHealthResult struct {
	HealthScore     float64  `json:"health_score"`
	Recommendations []string `json:"recommendations"`
}

// NutrientLevels are soil macronutrient readings in kg/ha
type NutrientLevels struct {
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
}

// SoilAnalysisResult is the outcome of a soil photo analysis
type SoilAnalysisResult struct {
	NutrientLevels  NutrientLevels `json:"nutrient_levels"`
	PH              float64        `json:"ph"`
	OrganicMatter   float64        `json:"organic_matter"`
	Recommendations []string       `json:"recommendations"`
}

// HealthPoint is one day of a field's health history
type HealthPoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// YieldPoint compares actual and predicted yield for one day
type YieldPoint struct {
	Date      string  `json:"date"`
	Actual    float64 `json:"actual"`
	Predicted float64 `json:"predicted"`
}

// NutrientPoint is one day of a field's nutrient history
type NutrientPoint struct {
	Date string `json:"date"`
	NutrientLevels
}

// Field is a farmer's field with its recent analytics
type Field struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	HealthHistory   []HealthPoint   `json:"health_history"`
	YieldHistory    []YieldPoint    `json:"yield_history"`
	NutrientHistory []NutrientPoint `json:"nutrient_history"`
}
