package scoring

import "github.com/agriadvisor/agriadvisor-go/pkg/models"

// RainfallBucket classifies annual rainfall in millimetres
func RainfallBucket(rain float64) models.Bucket {
	switch {
	case rain < 500:
		return models.BucketLow
	case rain < 1000:
		return models.BucketMedium
	case rain < 1500:
		return models.BucketHigh
	default:
		return models.BucketVeryHigh
	}
}

// TemperatureBucket classifies temperature in °C
func TemperatureBucket(temp float64) models.Bucket {
	switch {
	case temp < 20:
		return models.BucketLow
	case temp < 25:
		return models.BucketMedium
	case temp < 30:
		return models.BucketHigh
	default:
		return models.BucketVeryHigh
	}
}

// SelectVariety picks the variety whose condition tags match the most buckets.
// The first variety in declared order wins ties. ok is false when the list is empty.
func SelectVariety(varieties []models.Variety, cv models.ConditionVector) (best models.Variety, ok bool) {
	rain := RainfallBucket(cv.Rainfall)
	temp := TemperatureBucket(cv.Temperature)

	bestScore := -1
	for _, v := range varieties {
		score := 0
		if v.Conditions.Rainfall == rain {
			score++
		}
		if v.Conditions.Temperature == temp {
			score++
		}
		if score > bestScore {
			best, bestScore = v, score
		}
	}
	return best, bestScore >= 0
}
