package models

import "strings"

// SoilType is the dominant soil class of a field
type SoilType string

const (
	SoilAlluvial SoilType = "Alluvial"
	SoilClay     SoilType = "Clay"
	SoilBlack    SoilType = "Black"
	SoilRed      SoilType = "Red"
	SoilLaterite SoilType = "Laterite"
	SoilSandy    SoilType = "Sandy"
)

// SoilTypes lists every soil class in display order
var SoilTypes = []SoilType{SoilAlluvial, SoilClay, SoilBlack, SoilRed, SoilLaterite, SoilSandy}

// ParseSoilType matches s case-insensitively. Unrecognized values are returned
// as-is so scoring can award the default partial credit.
func ParseSoilType(s string) SoilType {
	for _, st := range SoilTypes {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st
		}
	}
	return SoilType(strings.TrimSpace(s))
}

// Irrigation is the level of irrigation available to the farmer
type Irrigation string

const (
	IrrigationFull    Irrigation = "Full"
	IrrigationPartial Irrigation = "Partial"
	IrrigationRainfed Irrigation = "Rainfed"
)

// ParseIrrigation matches s case-insensitively
func ParseIrrigation(s string) Irrigation {
	for _, v := range []Irrigation{IrrigationFull, IrrigationPartial, IrrigationRainfed} {
		if strings.EqualFold(string(v), strings.TrimSpace(s)) {
			return v
		}
	}
	return Irrigation(strings.TrimSpace(s))
}

// Experience is the farmer's self-reported experience level
type Experience string

const (
	ExperienceBeginner     Experience = "Beginner"
	ExperienceIntermediate Experience = "Intermediate"
	ExperienceExperienced  Experience = "Experienced"
)

// ParseExperience matches s case-insensitively
func ParseExperience(s string) Experience {
	for _, v := range []Experience{ExperienceBeginner, ExperienceIntermediate, ExperienceExperienced} {
		if strings.EqualFold(string(v), strings.TrimSpace(s)) {
			return v
		}
	}
	return Experience(strings.TrimSpace(s))
}

// ConditionVector is the set of parameters driving one recommendation query
type ConditionVector struct {
	SoilPH      float64    `json:"soil_ph"`
	Temperature float64    `json:"temperature"`
	Rainfall    float64    `json:"rainfall"`
	Region      string     `json:"region"`
	SoilType    SoilType   `json:"soil_type,omitempty"`
	Irrigation  Irrigation `json:"irrigation,omitempty"`
	Experience  Experience `json:"experience,omitempty"`
}

// ConditionInput is the raw, unparsed form of a ConditionVector as submitted
// by a client. Numeric fields are kept as text so both JSON numbers and strings
// are accepted.
type ConditionInput struct {
	SoilPH      FlexString `json:"soilPh" yaml:"soil_ph"`
	Temperature FlexString `json:"temperature" yaml:"temperature"`
	Rainfall    FlexString `json:"rainfall" yaml:"rainfall"`
	Region      string     `json:"region" yaml:"region"`
	SoilType    string     `json:"soilType,omitempty" yaml:"soil_type,omitempty"`
	Irrigation  string     `json:"irrigationAvailable,omitempty" yaml:"irrigation,omitempty"`
	Experience  string     `json:"farmingExperience,omitempty" yaml:"experience,omitempty"`
}
