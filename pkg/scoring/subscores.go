package scoring

import (
	"math"
	"strings"

	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

// Partial credit for categorical factors
const (
	regionMismatchCredit = 0.5
	regionUnknownCredit  = 0.2
	soilDefaultCredit    = 0.5
	intermediateBonus    = 0.2
)

// defaultCompatibility applies to a crop without a compatibility record
var defaultCompatibility = models.Compatibility{
	PartialIrrigation: 0.7,
	Rainfed:           0.5,
	Complexity:        0.7,
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// phScore is 1 inside the range and falls linearly to 0 at falloff units outside it
func phScore(ph float64, r models.Range, falloff float64) float64 {
	if r.Contains(ph) {
		return 1
	}
	return clamp01(1 - r.Distance(ph)/falloff)
}

// temperatureScore is 1 inside the range, optionally peaking at the midpoint,
// and falls linearly to 0 at falloff degrees outside it
func temperatureScore(t float64, r models.Range, falloff float64, gradient bool) float64 {
	if r.Contains(t) {
		half := (r.Max - r.Min) / 2
		if !gradient || half == 0 {
			return 1
		}
		return clamp01(1 - 0.5*math.Abs(t-r.Midpoint())/half)
	}
	return clamp01(1 - r.Distance(t)/falloff)
}

// rainfallScore ramps up to the minimum, gives full credit up to twice the
// minimum (or the stated maximum, if larger) and decays to 0 over a further
// four times the minimum
func rainfallScore(rain float64, req models.RainfallRequirement) float64 {
	if req.Min <= 0 {
		return 1
	}
	if rain < req.Min {
		return clamp01(rain / req.Min)
	}
	ceiling := math.Max(2*req.Min, req.Max)
	return clamp01(1 - math.Max(0, rain-ceiling)/(4*req.Min))
}

func regionScore(region string, regions []string, known func(string) bool) float64 {
	region = strings.TrimSpace(region)
	for _, r := range regions {
		if strings.EqualFold(r, region) {
			return 1
		}
	}
	if region != "" && known != nil && known(region) {
		return regionMismatchCredit
	}
	return regionUnknownCredit
}

func soilScore(soil models.SoilType, compat models.Compatibility) float64 {
	if v, ok := compat.Soil[soil]; ok {
		return clamp01(v)
	}
	return soilDefaultCredit
}

func irrigationScore(irrigation models.Irrigation, compat models.Compatibility) float64 {
	switch irrigation {
	case models.IrrigationFull:
		return 1
	case models.IrrigationPartial:
		return clamp01(compat.PartialIrrigation)
	default:
		return clamp01(compat.Rainfed)
	}
}

func experienceScore(exp models.Experience, compat models.Compatibility) float64 {
	switch exp {
	case models.ExperienceExperienced:
		return 1
	case models.ExperienceIntermediate:
		return clamp01(compat.Complexity + intermediateBonus)
	default:
		return clamp01(compat.Complexity)
	}
}
