// Package scoring ranks crop profiles against a farmer's growing conditions.
//
// Each profile receives up to seven sub-scores in [0,1] (pH, temperature,
// rainfall, region, soil type, irrigation, experience) which are combined by a
// Strategy's weights into a confidence in [0,1]. Optional factors the farmer
// did not supply are left out and the remaining weights renormalised. The
// engine holds no mutable state and is safe for concurrent use.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

// Reference supplies the categorical lookup tables used during scoring
type Reference interface {
	Compatibility(id models.CropID) (models.Compatibility, bool)
	KnownRegion(region string) bool
}

// Engine scores profiles against condition vectors
type Engine struct {
	ref Reference
}

// NewEngine creates a scoring engine backed by ref
func NewEngine(ref Reference) *Engine {
	return &Engine{ref: ref}
}

// Options controls ranking and filtering
type Options struct {
	Strategy      Strategy
	TopN          int     // 0 means unlimited
	MinConfidence float64 // candidates below this are dropped
}

// Score computes the confidence of a single profile
func (e *Engine) Score(cv models.ConditionVector, p models.CropProfile, s Strategy) (models.ScoredCandidate, error) {
	if err := ValidateConditions(cv); err != nil {
		return models.ScoredCandidate{}, err
	}
	if err := s.Validate(); err != nil {
		return models.ScoredCandidate{}, err
	}
	return e.score(cv, p, s), nil
}

// Recommend scores every profile, sorts descending by confidence (stable, so
// ties keep catalog order), drops candidates below MinConfidence and truncates
// to TopN.
func (e *Engine) Recommend(cv models.ConditionVector, profiles []models.CropProfile, opts Options) ([]models.ScoredCandidate, error) {
	if err := ValidateConditions(cv); err != nil {
		return nil, err
	}
	if err := opts.Strategy.Validate(); err != nil {
		return nil, err
	}
	if opts.TopN < 0 {
		return nil, fmt.Errorf("topN must not be negative: %d", opts.TopN)
	}

	scored := make([]models.ScoredCandidate, 0, len(profiles))
	for _, p := range profiles {
		scored = append(scored, e.score(cv, p, opts.Strategy))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Confidence > scored[j].Confidence
	})

	kept := scored[:0]
	for _, c := range scored {
		if c.Confidence >= opts.MinConfidence {
			kept = append(kept, c)
		}
	}

	if opts.TopN > 0 && len(kept) > opts.TopN {
		kept = kept[:opts.TopN]
	}
	return kept, nil
}

func (e *Engine) score(cv models.ConditionVector, p models.CropProfile, s Strategy) models.ScoredCandidate {
	compat := defaultCompatibility
	known := func(string) bool { return false }
	if e.ref != nil {
		if rec, ok := e.ref.Compatibility(p.ID); ok {
			compat = rec
		}
		known = e.ref.KnownRegion
	}

	b := models.ScoreBreakdown{
		PH:          phScore(cv.SoilPH, p.PHRange, s.PHFalloff),
		Temperature: temperatureScore(cv.Temperature, p.TempRange, s.TempFalloff, s.TemperatureGradient),
		Rainfall:    rainfallScore(cv.Rainfall, p.Rainfall),
		Region:      regionScore(cv.Region, p.Regions, known),
		SoilType:    soilScore(cv.SoilType, compat),
		Irrigation:  irrigationScore(cv.Irrigation, compat),
		Experience:  experienceScore(cv.Experience, compat),
	}

	w := suppliedWeights(s.Weights, cv)
	confidence := 0.0
	if total := w.Sum(); total > 0 {
		confidence = clamp01((b.PH*w.PH +
			b.Temperature*w.Temperature +
			b.Rainfall*w.Rainfall +
			b.Region*w.Region +
			b.SoilType*w.SoilType +
			b.Irrigation*w.Irrigation +
			b.Experience*w.Experience) / total)
	}

	c := models.ScoredCandidate{
		CropID:      p.ID,
		CropName:    p.Name,
		Confidence:  confidence,
		Season:      p.Season,
		Description: p.Description,
		Breakdown:   b,
	}

	variety, hasVariety := SelectVariety(p.Varieties, cv)
	if hasVariety {
		c.VarietyName = variety.Name
	}
	c.Details = describe(cv, w, c, p, variety, hasVariety)
	return c
}

// suppliedWeights zeroes the weight of every optional factor the farmer left
// blank. The remaining weights are renormalised by the caller, so a missing
// soil type neither helps nor hurts a crop. Values that were given but not
// recognised keep their weight and earn the default partial credit.
func suppliedWeights(w Weights, cv models.ConditionVector) Weights {
	if cv.SoilType == "" {
		w.SoilType = 0
	}
	if cv.Irrigation == "" {
		w.Irrigation = 0
	}
	if cv.Experience == "" {
		w.Experience = 0
	}
	return w
}

func describe(cv models.ConditionVector, w Weights, c models.ScoredCandidate, p models.CropProfile, v models.Variety, hasVariety bool) string {
	var lines []string

	if hasVariety {
		line := fmt.Sprintf("%s variety with yield potential of %s.", v.Type, v.Yield)
		if p.Season != "" {
			line += fmt.Sprintf(" Best suited for %s season.", p.Season)
		}
		lines = append(lines, line)
	} else {
		if p.Description != "" {
			lines = append(lines, p.Description+".")
		}
		lines = append(lines, requirementSummary(p))
	}

	switch {
	case c.Confidence > 0.8:
		lines = append(lines, "Highly recommended for your conditions!")
	case c.Confidence > 0.6:
		lines = append(lines, "Suitable with proper management.")
	default:
		lines = append(lines, "May require additional care and management.")
	}

	if w.SoilType > 0 {
		lines = append(lines, fmt.Sprintf("Soil Compatibility: %.0f%%", c.Breakdown.SoilType*100))
	}
	if w.Irrigation > 0 {
		needs := "Challenging"
		switch cv.Irrigation {
		case models.IrrigationFull:
			needs = "Optimal"
		case models.IrrigationPartial:
			needs = "Manageable"
		}
		lines = append(lines, "Irrigation Needs: "+needs)
	}
	if w.Experience > 0 {
		level := "May require guidance"
		switch cv.Experience {
		case models.ExperienceExperienced:
			level = "Well within your expertise"
		case models.ExperienceIntermediate:
			level = "Suitable for your experience"
		}
		lines = append(lines, "Complexity Level: "+level)
	}

	return strings.Join(lines, "\n")
}

func requirementSummary(p models.CropProfile) string {
	rain := fmt.Sprintf("at least %.0f mm rainfall", p.Rainfall.Min)
	if p.Rainfall.Max > 0 {
		rain = fmt.Sprintf("%.0f-%.0f mm rainfall", p.Rainfall.Min, p.Rainfall.Max)
	}
	return fmt.Sprintf("Requires soil pH %.1f-%.1f, %.0f-%.0f°C and %s.",
		p.PHRange.Min, p.PHRange.Max, p.TempRange.Min, p.TempRange.Max, rain)
}
