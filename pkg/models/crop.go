package models

// CropID identifies a crop in the reference catalog
type CropID string

const (
	CropRice      CropID = "rice"
	CropWheat     CropID = "wheat"
	CropMaize     CropID = "maize"
	CropCotton    CropID = "cotton"
	CropGroundnut CropID = "groundnut"
	CropSoybean   CropID = "soybean"
	CropTomato    CropID = "tomato"
	CropChilli    CropID = "chilli"
	CropOnion     CropID = "onion"
	CropPotato    CropID = "potato"
	CropSugarcane CropID = "sugarcane"
	CropSorghum   CropID = "sorghum"
	CropCassava   CropID = "cassava"
	CropChickpea  CropID = "chickpea"
	CropSunflower CropID = "sunflower"
	CropBarley    CropID = "barley"
	CropMillet    CropID = "millet"
)

// Bucket is a coarse category for rainfall or temperature
type Bucket string

const (
	BucketLow      Bucket = "low"
	BucketMedium   Bucket = "medium"
	BucketHigh     Bucket = "high"
	BucketVeryHigh Bucket = "very high"
)

// Range is a closed interval [Min, Max]
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies within the range, bounds included
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Distance returns how far v lies outside the range, or 0 when inside
func (r Range) Distance(v float64) float64 {
	switch {
	case v < r.Min:
		return r.Min - v
	case v > r.Max:
		return v - r.Max
	default:
		return 0
	}
}

// Midpoint returns the centre of the range
func (r Range) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// RainfallRequirement describes annual rainfall needs in millimetres.
// Max is zero for profiles that only state a minimum.
type RainfallRequirement struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// VarietyConditions are the buckets a variety is bred for
type VarietyConditions struct {
	Rainfall    Bucket `json:"rainfall" yaml:"rainfall"`
	Temperature Bucket `json:"temperature" yaml:"temperature"`
}

// Variety is a named cultivar of a crop
type Variety struct {
	Name       string            `json:"name" yaml:"name"`
	Type       string            `json:"type" yaml:"type"`
	Yield      string            `json:"yield" yaml:"yield"`
	Conditions VarietyConditions `json:"conditions" yaml:"conditions"`
}

// CropProfile is the static reference record for a crop or seed
type CropProfile struct {
	ID          CropID              `json:"id" yaml:"id"`
	Name        string              `json:"name" yaml:"name"`
	Varieties   []Variety           `json:"varieties,omitempty" yaml:"varieties,omitempty"`
	PHRange     Range               `json:"ph_range" yaml:"ph_range"`
	TempRange   Range               `json:"temp_range" yaml:"temp_range"`
	Rainfall    RainfallRequirement `json:"rainfall" yaml:"rainfall"`
	Regions     []string            `json:"regions" yaml:"regions"`
	Season      string              `json:"season,omitempty" yaml:"season,omitempty"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
}

// Compatibility holds the categorical suitability of a crop.
// All values are partial-credit scores in [0,1].
type Compatibility struct {
	Soil              map[SoilType]float64 `json:"soil" yaml:"soil"`
	PartialIrrigation float64              `json:"partial_irrigation" yaml:"partial_irrigation"`
	Rainfed           float64              `json:"rainfed" yaml:"rainfed"`
	Complexity        float64              `json:"complexity" yaml:"complexity"`
}
