package scoring

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriadvisor/agriadvisor-go/pkg/catalog"
	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

func newTestEngine() *Engine {
	return NewEngine(catalog.Default)
}

func riceProfile(t *testing.T) models.CropProfile {
	t.Helper()
	rice := catalog.Default.Crops()[0]
	require.Equal(t, models.CropRice, rice.ID)
	return rice
}

func TestScoreRiceIdealConditionsSimple(t *testing.T) {
	engine := newTestEngine()
	cv := models.ConditionVector{SoilPH: 6.5, Temperature: 25, Rainfall: 1200, Region: "Kerala"}

	c, err := engine.Score(cv, riceProfile(t), Simple())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, c.Confidence, 1e-9)
	assert.Equal(t, 1.0, c.Breakdown.PH)
	assert.Equal(t, 1.0, c.Breakdown.Temperature)
	assert.Equal(t, 1.0, c.Breakdown.Rainfall)
	assert.Equal(t, 1.0, c.Breakdown.Region)
	assert.Equal(t, "Rice", c.CropName)
	assert.Equal(t, "IR-36", c.VarietyName)
}

func TestScoreExtendedWeighting(t *testing.T) {
	engine := newTestEngine()
	cv := models.ConditionVector{
		SoilPH:      6.5,
		Temperature: 25,
		Rainfall:    1200,
		Region:      "Kerala",
		SoilType:    models.SoilClay,
		Irrigation:  models.IrrigationPartial,
		Experience:  models.ExperienceIntermediate,
	}

	c, err := engine.Score(cv, riceProfile(t), Extended())
	require.NoError(t, err)

	// 4 x 0.15 + clay 0.9 x 0.15 + partial 0.7 x 0.15 + (0.7+0.2) x 0.10
	assert.InDelta(t, 0.93, c.Confidence, 1e-9)
	assert.Contains(t, c.Details, "Soil Compatibility: 90%")
	assert.Contains(t, c.Details, "Irrigation Needs: Manageable")
	assert.Contains(t, c.Details, "Complexity Level: Suitable for your experience")
	assert.Contains(t, c.Details, "Highly recommended")
}

func TestHostileConditionsScoreNearZero(t *testing.T) {
	engine := newTestEngine()
	cv := models.ConditionVector{SoilPH: 9.0, Temperature: 5, Rainfall: 10, Region: "Unknown"}

	for _, p := range catalog.Default.AllProfiles() {
		c, err := engine.Score(cv, p, Simple())
		require.NoError(t, err)
		assert.Less(t, c.Confidence, 0.2, p.Name)
	}

	recs, err := engine.Recommend(cv, catalog.Default.AllProfiles(), Options{Strategy: Simple(), MinConfidence: 0.4})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestNearIdealConditionsScoreHigh(t *testing.T) {
	engine := newTestEngine()

	for _, p := range catalog.Default.AllProfiles() {
		cv := models.ConditionVector{
			SoilPH:      p.PHRange.Midpoint(),
			Temperature: p.TempRange.Midpoint(),
			Rainfall:    p.Rainfall.Min,
			Region:      p.Regions[0],
		}
		for _, s := range []Strategy{Simple(), Extended()} {
			c, err := engine.Score(cv, p, s)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, c.Confidence, 0.9, "%s under %s", p.Name, s.Name)
		}

		compat, ok := catalog.Default.Compatibility(p.ID)
		require.True(t, ok)
		cv.SoilType = bestSoil(compat)
		cv.Irrigation = models.IrrigationFull
		cv.Experience = models.ExperienceExperienced
		c, err := engine.Score(cv, p, Extended())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c.Confidence, 0.9, p.Name)
	}
}

func TestExtendedIgnoresOmittedOptionalFactors(t *testing.T) {
	engine := newTestEngine()
	cv := models.ConditionVector{SoilPH: 6.5, Temperature: 25, Rainfall: 1200, Region: "Kerala"}

	c, err := engine.Score(cv, riceProfile(t), Extended())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.Confidence, 1e-9)
	assert.NotContains(t, c.Details, "Soil Compatibility")
	assert.NotContains(t, c.Details, "Irrigation Needs")
	assert.NotContains(t, c.Details, "Complexity Level")

	// only irrigation given: (4 x 0.15 + rainfed 0.5 x 0.15) / 0.75
	cv.Irrigation = models.IrrigationRainfed
	c, err = engine.Score(cv, riceProfile(t), Extended())
	require.NoError(t, err)
	assert.InDelta(t, 0.675/0.75, c.Confidence, 1e-9)
	assert.Contains(t, c.Details, "Irrigation Needs: Challenging")
}

func TestExtendedUnrecognisedOptionalValuesKeepPartialCredit(t *testing.T) {
	engine := newTestEngine()
	cv := models.ConditionVector{
		SoilPH:      6.5,
		Temperature: 25,
		Rainfall:    1200,
		Region:      "Kerala",
		SoilType:    models.ParseSoilType("peat"),
		Irrigation:  models.ParseIrrigation("sprinkler"),
		Experience:  models.ParseExperience("retired"),
	}

	c, err := engine.Score(cv, riceProfile(t), Extended())
	require.NoError(t, err)
	assert.Equal(t, soilDefaultCredit, c.Breakdown.SoilType)
	// 4 x 0.15 + 0.5 x 0.15 + rainfed 0.5 x 0.15 + complexity 0.7 x 0.10
	assert.InDelta(t, 0.82, c.Confidence, 1e-9)
}

func TestRecommendConcurrentCalls(t *testing.T) {
	engine := newTestEngine()
	profiles := catalog.Default.AllProfiles()
	cv := models.ConditionVector{SoilPH: 6.4, Temperature: 26, Rainfall: 950, Region: "Karnataka", SoilType: models.SoilRed}

	want, err := engine.Recommend(cv, profiles, Options{Strategy: Extended(), TopN: 5})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				got, err := engine.Recommend(cv, profiles, Options{Strategy: Extended(), TopN: 5})
				if err != nil {
					errs <- err
					return
				}
				if !reflect.DeepEqual(want, got) {
					errs <- fmt.Errorf("concurrent result differs: %v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func bestSoil(compat models.Compatibility) models.SoilType {
	best := models.SoilTypes[0]
	for _, st := range models.SoilTypes {
		if compat.Soil[st] > compat.Soil[best] {
			best = st
		}
	}
	return best
}

func conditionGrid() []models.ConditionVector {
	var grid []models.ConditionVector
	for _, ph := range []float64{0, 4.5, 6.0, 7.2, 9.0, 14} {
		for _, temp := range []float64{-10, 5, 18, 26, 33, 48} {
			for _, rain := range []float64{0, 300, 900, 1600, 4000, 12000} {
				for _, region := range []string{"Kerala", "Punjab", "tropical", "Unknown", ""} {
					grid = append(grid, models.ConditionVector{
						SoilPH:      ph,
						Temperature: temp,
						Rainfall:    rain,
						Region:      region,
						SoilType:    models.SoilBlack,
						Irrigation:  models.IrrigationRainfed,
						Experience:  models.ExperienceBeginner,
					})
				}
			}
		}
	}
	return grid
}

func TestConfidenceBoundsAndOrdering(t *testing.T) {
	engine := newTestEngine()
	profiles := catalog.Default.AllProfiles()

	for _, s := range []Strategy{Simple(), Extended()} {
		for _, cv := range conditionGrid() {
			recs, err := engine.Recommend(cv, profiles, Options{Strategy: s})
			require.NoError(t, err)
			require.Len(t, recs, len(profiles))

			for _, r := range recs {
				assert.True(t, r.Confidence >= 0 && r.Confidence <= 1, "confidence out of range: %v", r.Confidence)
			}
			assert.True(t, sort.SliceIsSorted(recs, func(i, j int) bool {
				return recs[i].Confidence > recs[j].Confidence
			}), "results not sorted for %+v", cv)
		}
	}
}

func TestScoringIsDeterministic(t *testing.T) {
	engine := newTestEngine()
	cv := models.ConditionVector{SoilPH: 6.1, Temperature: 27.3, Rainfall: 845, Region: "Gujarat", SoilType: models.SoilRed}

	for _, p := range catalog.Default.AllProfiles() {
		first, err := engine.Score(cv, p, Extended())
		require.NoError(t, err)
		second, err := engine.Score(cv, p, Extended())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestRecommendTopN(t *testing.T) {
	engine := newTestEngine()
	cv := models.ConditionVector{SoilPH: 6.5, Temperature: 24, Rainfall: 900, Region: "Karnataka"}
	profiles := catalog.Default.Crops()
	require.Len(t, profiles, 10)

	all, err := engine.Recommend(cv, profiles, Options{Strategy: Extended()})
	require.NoError(t, err)
	top, err := engine.Recommend(cv, profiles, Options{Strategy: Extended(), TopN: 5})
	require.NoError(t, err)

	require.Len(t, top, 5)
	assert.Equal(t, all[:5], top)
}

func TestRecommendStableTies(t *testing.T) {
	engine := newTestEngine()
	a := riceProfile(t)
	a.Name = "A"
	b := riceProfile(t)
	b.Name = "B"
	cv := models.ConditionVector{SoilPH: 6.5, Temperature: 25, Rainfall: 1200, Region: "Kerala"}

	recs, err := engine.Recommend(cv, []models.CropProfile{a, b}, Options{Strategy: Simple()})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, []string{recs[0].CropName, recs[1].CropName})

	recs, err = engine.Recommend(cv, []models.CropProfile{b, a}, Options{Strategy: Simple()})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, []string{recs[0].CropName, recs[1].CropName})
}

func TestRecommendMinConfidenceFilter(t *testing.T) {
	engine := newTestEngine()
	cv := models.ConditionVector{SoilPH: 6.5, Temperature: 22, Rainfall: 700, Region: "temperate"}

	recs, err := engine.Recommend(cv, catalog.Default.Seeds(), Options{Strategy: Simple(), MinConfidence: 0.75})
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.GreaterOrEqual(t, r.Confidence, 0.75)
	}
}

func TestRecommendRejectsInvalidInput(t *testing.T) {
	engine := newTestEngine()
	profiles := catalog.Default.Crops()

	for _, cv := range []models.ConditionVector{
		{SoilPH: math.NaN(), Temperature: 25, Rainfall: 1000},
		{SoilPH: 6.5, Temperature: math.Inf(1), Rainfall: 1000},
		{SoilPH: 6.5, Temperature: 25, Rainfall: math.NaN()},
		{SoilPH: 15, Temperature: 25, Rainfall: 1000},
		{SoilPH: 6.5, Temperature: 25, Rainfall: -1},
	} {
		_, err := engine.Recommend(cv, profiles, Options{Strategy: Extended()})
		assert.True(t, errors.Is(err, ErrInvalidInput), "expected invalid input for %+v, got %v", cv, err)

		_, err = engine.Score(cv, profiles[0], Extended())
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}

func TestRecommendRejectsBadOptions(t *testing.T) {
	engine := newTestEngine()
	cv := models.ConditionVector{SoilPH: 6.5, Temperature: 25, Rainfall: 1000, Region: "Kerala"}

	bad := Simple()
	bad.Weights.Region = 0.1
	_, err := engine.Recommend(cv, catalog.Default.Crops(), Options{Strategy: bad})
	assert.Error(t, err)

	_, err = engine.Recommend(cv, catalog.Default.Crops(), Options{Strategy: Simple(), TopN: -1})
	assert.Error(t, err)
}

func TestSeedDetailsDescribeRequirements(t *testing.T) {
	engine := newTestEngine()
	cv := models.ConditionVector{SoilPH: 6.0, Temperature: 28, Rainfall: 1200, Region: "tropical"}

	c, err := engine.Score(cv, catalog.Default.Seeds()[0], Simple())
	require.NoError(t, err)
	assert.Empty(t, c.VarietyName)
	assert.Contains(t, c.Details, "Requires soil pH 5.5-6.5, 21-37°C and at least 1000 mm rainfall.")
	assert.NotContains(t, c.Details, "Soil Compatibility")
}

func TestEngineWithoutReference(t *testing.T) {
	engine := NewEngine(nil)
	cv := models.ConditionVector{SoilPH: 6.5, Temperature: 25, Rainfall: 1200, Region: "Punjab"}

	c, err := engine.Score(cv, riceProfile(t), Extended())
	require.NoError(t, err)
	assert.Equal(t, regionUnknownCredit, c.Breakdown.Region)
	assert.Equal(t, soilDefaultCredit, c.Breakdown.SoilType)
	assert.Equal(t, defaultCompatibility.Rainfed, c.Breakdown.Irrigation)
}
