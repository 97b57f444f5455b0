package scoring

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

// ErrInvalidInput is returned for condition values that cannot be scored
var ErrInvalidInput = errors.New("invalid input")

// InputError describes the offending field of a rejected condition vector
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s=%q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidInput
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// ParseConditions converts raw client input into a validated ConditionVector.
// Numeric fields must parse as finite numbers; categorical fields are
// normalised but never rejected.
func ParseConditions(in models.ConditionInput) (models.ConditionVector, error) {
	ph, err := parseNumber("soilPh", in.SoilPH)
	if err != nil {
		return models.ConditionVector{}, err
	}
	temp, err := parseNumber("temperature", in.Temperature)
	if err != nil {
		return models.ConditionVector{}, err
	}
	rain, err := parseNumber("rainfall", in.Rainfall)
	if err != nil {
		return models.ConditionVector{}, err
	}

	cv := models.ConditionVector{
		SoilPH:      ph,
		Temperature: temp,
		Rainfall:    rain,
		Region:      in.Region,
	}
	if in.SoilType != "" {
		cv.SoilType = models.ParseSoilType(in.SoilType)
	}
	if in.Irrigation != "" {
		cv.Irrigation = models.ParseIrrigation(in.Irrigation)
	}
	if in.Experience != "" {
		cv.Experience = models.ParseExperience(in.Experience)
	}

	if err := ValidateConditions(cv); err != nil {
		return models.ConditionVector{}, err
	}
	return cv, nil
}

// ValidateConditions rejects non-finite or physically impossible values
func ValidateConditions(cv models.ConditionVector) error {
	checks := []struct {
		field string
		value float64
	}{
		{"soilPh", cv.SoilPH},
		{"temperature", cv.Temperature},
		{"rainfall", cv.Rainfall},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return &InputError{Field: c.field, Value: formatFloat(c.value), Reason: "must be a finite number"}
		}
	}
	if cv.SoilPH < 0 || cv.SoilPH > 14 {
		return &InputError{Field: "soilPh", Value: formatFloat(cv.SoilPH), Reason: "must be between 0 and 14"}
	}
	if cv.Rainfall < 0 {
		return &InputError{Field: "rainfall", Value: formatFloat(cv.Rainfall), Reason: "must not be negative"}
	}
	return nil
}

func parseNumber(field string, raw models.FlexString) (float64, error) {
	s := raw.String()
	if s == "" {
		return 0, &InputError{Field: field, Value: s, Reason: "is required"}
	}
	// ParseFloat also reads hex floats such as 0x1.8p2
	if digits := strings.TrimLeft(s, "+-"); strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, &InputError{Field: field, Value: s, Reason: "not a decimal number"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &InputError{Field: field, Value: s, Reason: "not a number"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputError{Field: field, Value: s, Reason: "must be a finite number"}
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
