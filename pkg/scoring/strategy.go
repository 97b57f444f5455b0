package scoring

import (
	"fmt"
	"math"
	"strings"
)

// weightTolerance bounds floating-point drift when summing weights
const weightTolerance = 1e-9

// Weights defines the relative importance of each scoring factor.
// All weights must sum to 1.0 so that confidence stays within [0,1].
type Weights struct {
	PH          float64 `json:"ph" yaml:"ph"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Rainfall    float64 `json:"rainfall" yaml:"rainfall"`
	Region      float64 `json:"region" yaml:"region"`
	SoilType    float64 `json:"soil_type" yaml:"soil_type"`
	Irrigation  float64 `json:"irrigation" yaml:"irrigation"`
	Experience  float64 `json:"experience" yaml:"experience"`
}

// Sum returns the total of all weights
func (w Weights) Sum() float64 {
	return w.PH + w.Temperature + w.Rainfall + w.Region + w.SoilType + w.Irrigation + w.Experience
}

// Validate checks that weights sum to 1.0 and none are negative
func (w Weights) Validate() error {
	for _, v := range []float64{w.PH, w.Temperature, w.Rainfall, w.Region, w.SoilType, w.Irrigation, w.Experience} {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("invalid weight: %v", v)
		}
	}
	if math.Abs(w.Sum()-1.0) > weightTolerance {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	return nil
}

// Strategy is a complete, named scoring configuration
type Strategy struct {
	Name    string  `json:"name" yaml:"name"`
	Weights Weights `json:"weights" yaml:"weights"`
	// PHFalloff is the distance in pH units outside the range at which the pH score reaches 0.
	PHFalloff float64 `json:"ph_falloff" yaml:"ph_falloff"`
	// TempFalloff is the distance in °C outside the range at which the temperature score reaches 0.
	TempFalloff float64 `json:"temp_falloff" yaml:"temp_falloff"`
	// TemperatureGradient penalises in-range temperatures by their distance from the midpoint.
	TemperatureGradient bool `json:"temperature_gradient" yaml:"temperature_gradient"`
}

const (
	StrategyExtended = "extended"
	StrategySimple   = "simple"
)

// Extended is the seven-factor strategy used for crop recommendations
func Extended() Strategy {
	return Strategy{
		Name: StrategyExtended,
		Weights: Weights{
			PH:          0.15,
			Temperature: 0.15,
			Rainfall:    0.15,
			Region:      0.15,
			SoilType:    0.15,
			Irrigation:  0.15,
			Experience:  0.10,
		},
		PHFalloff:   2.0,
		TempFalloff: 10,
	}
}

// Simple is the four-factor strategy used for seed predictions
func Simple() Strategy {
	return Strategy{
		Name: StrategySimple,
		Weights: Weights{
			PH:          0.25,
			Temperature: 0.30,
			Rainfall:    0.25,
			Region:      0.20,
		},
		PHFalloff:   1.5,
		TempFalloff: 8,
	}
}

// StrategyByName returns a built-in strategy
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyExtended, "":
		return Extended(), nil
	case StrategySimple:
		return Simple(), nil
	default:
		return Strategy{}, fmt.Errorf("unknown scoring strategy: %s", name)
	}
}

// Validate checks weights and falloff constants
func (s Strategy) Validate() error {
	if err := s.Weights.Validate(); err != nil {
		return fmt.Errorf("strategy %s: %w", s.Name, err)
	}
	if !(s.PHFalloff > 0) || !(s.TempFalloff > 0) {
		return fmt.Errorf("strategy %s: falloff constants must be positive", s.Name)
	}
	return nil
}
