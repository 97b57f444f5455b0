// Package analysis serves the photo based crop-health and soil checks and the
// per-field analytics history. No image model is connected yet: results are
// derived from the uploaded bytes so the same photo always gets the same
// answer.
package analysis

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

// ErrNoImage is returned when an analysis request carries no image data
var ErrNoImage = errors.New("no image provided")

// historyDays is the length of each field history series
const historyDays = 10

// UserGetter resolves the farmer requesting an analysis
type UserGetter interface {
	Get(id string) (*models.User, error)
}

// HealthScorer maps an image to a health score in [0,100]
type HealthScorer func(image []byte) float64

// Service runs image analyses and builds field analytics
type Service struct {
	users       UserGetter
	scoreHealth HealthScorer
	now         func() time.Time
}

// NewService creates an analysis service using FingerprintScore
func NewService(users UserGetter) *Service {
	return &Service{
		users:       users,
		scoreHealth: FingerprintScore,
		now:         time.Now,
	}
}

// WithHealthScorer replaces the health scorer
func (s *Service) WithHealthScorer(scorer HealthScorer) *Service {
	s.scoreHealth = scorer
	return s
}

// FingerprintScore derives a stable score between 70 and 100 from the image bytes
func FingerprintScore(image []byte) float64 {
	h := fnv.New32a()
	h.Write(image)
	return 70 + float64(h.Sum32()%301)/10
}

// AnalyzeHealth scores a crop photo and picks advice for the score band
func (s *Service) AnalyzeHealth(userID string, image []byte) (*models.CropHealthResult, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, ErrNoImage
	}

	score := round1(math.Max(0, math.Min(100, s.scoreHealth(image))))
	return &models.CropHealthResult{
		HealthScore:     score,
		Recommendations: healthAdvice(score),
	}, nil
}

func healthAdvice(score float64) []string {
	switch {
	case score > 90:
		return []string{
			"Crop health is excellent",
			"Continue current maintenance practices",
			"Monitor for any changes in leaf color",
		}
	case score > 70:
		return []string{
			"Crop health is good but could be improved",
			"Consider increasing watering frequency",
			"Check for signs of nutrient deficiency",
		}
	default:
		return []string{
			"Crop health needs attention",
			"Inspect for pest infestations",
			"Consider soil nutrient analysis",
		}
	}
}

// AnalyzeSoil reports nutrient levels for a soil photo
func (s *Service) AnalyzeSoil(userID string, image []byte) (*models.SoilAnalysisResult, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, ErrNoImage
	}

	return &models.SoilAnalysisResult{
		NutrientLevels: models.NutrientLevels{Nitrogen: 45, Phosphorus: 32, Potassium: 28},
		PH:             6.5,
		OrganicMatter:  3.2,
		Recommendations: []string{
			"Consider adding nitrogen-rich fertilizers",
			"Soil pH is optimal for most crops",
			"Increase organic matter through mulching",
		},
	}, nil
}

// Fields returns the user's fields with the last ten days of health, yield
// and nutrient readings, newest first. Readings are seeded by user and day so
// repeated requests agree.
func (s *Service) Fields(userID string) ([]models.Field, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}

	field := models.Field{
		ID:              "field1",
		Name:            "North Field",
		HealthHistory:   make([]models.HealthPoint, 0, historyDays),
		YieldHistory:    make([]models.YieldPoint, 0, historyDays),
		NutrientHistory: make([]models.NutrientPoint, 0, historyDays),
	}

	today := s.now().UTC()
	for i := 0; i < historyDays; i++ {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		rng := rand.New(rand.NewSource(seed(userID, field.ID, date)))

		field.HealthHistory = append(field.HealthHistory, models.HealthPoint{
			Date:  date,
			Score: round1(75 + rng.Float64()*10),
		})
		field.YieldHistory = append(field.YieldHistory, models.YieldPoint{
			Date:      date,
			Actual:    round1(80 + rng.Float64()*10),
			Predicted: round1(85 + rng.Float64()*5),
		})
		field.NutrientHistory = append(field.NutrientHistory, models.NutrientPoint{
			Date: date,
			NutrientLevels: models.NutrientLevels{
				Nitrogen:   round1(40 + rng.Float64()*10),
				Phosphorus: round1(30 + rng.Float64()*10),
				Potassium:  round1(25 + rng.Float64()*10),
			},
		})
	}

	return []models.Field{field}, nil
}

func seed(parts ...string) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		fmt.Fprintf(h, "%s\x00", p)
	}
	return int64(h.Sum64())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
