package analysis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriadvisor/agriadvisor-go/pkg/metadatastore"
	"github.com/agriadvisor/agriadvisor-go/pkg/models"
	"github.com/agriadvisor/agriadvisor-go/pkg/user"
)

func setupTestService(t *testing.T) (*Service, *models.User) {
	t.Helper()

	users := user.NewService(metadatastore.NewMemoryStore())
	u, err := users.Create(&models.UserCreateRequest{
		Username: "field_owner",
		Email:    "field.owner@gmail.com",
		Phone:    "9000000002",
	})
	require.NoError(t, err)

	return NewService(users), u
}

func TestAnalyzeHealthBands(t *testing.T) {
	service, u := setupTestService(t)

	tests := []struct {
		score float64
		first string
	}{
		{95.04, "Crop health is excellent"},
		{90, "Crop health is good but could be improved"},
		{70.5, "Crop health is good but could be improved"},
		{70, "Crop health needs attention"},
		{-3, "Crop health needs attention"},
	}
	for _, tt := range tests {
		service.WithHealthScorer(func([]byte) float64 { return tt.score })

		result, err := service.AnalyzeHealth(u.ID, []byte("leaf.jpg"))
		require.NoError(t, err)
		assert.Len(t, result.Recommendations, 3)
		assert.Equal(t, tt.first, result.Recommendations[0], "score %v", tt.score)
	}

	service.WithHealthScorer(func([]byte) float64 { return 95.04 })
	result, err := service.AnalyzeHealth(u.ID, []byte("leaf.jpg"))
	require.NoError(t, err)
	assert.Equal(t, 95.0, result.HealthScore)
}

func TestAnalyzeHealthIsStablePerImage(t *testing.T) {
	service, u := setupTestService(t)
	image := []byte{0xff, 0xd8, 0xff, 0xe0, 1, 2, 3}

	first, err := service.AnalyzeHealth(u.ID, image)
	require.NoError(t, err)
	second, err := service.AnalyzeHealth(u.ID, image)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first.HealthScore, 70.0)
	assert.LessOrEqual(t, first.HealthScore, 100.0)
}

func TestAnalyzeSoil(t *testing.T) {
	service, u := setupTestService(t)

	result, err := service.AnalyzeSoil(u.ID, []byte("soil.png"))
	require.NoError(t, err)
	assert.Equal(t, models.NutrientLevels{Nitrogen: 45, Phosphorus: 32, Potassium: 28}, result.NutrientLevels)
	assert.Equal(t, 6.5, result.PH)
	assert.Equal(t, 3.2, result.OrganicMatter)
	assert.Len(t, result.Recommendations, 3)
}

func TestAnalysisErrors(t *testing.T) {
	service, u := setupTestService(t)

	_, err := service.AnalyzeHealth(u.ID, nil)
	assert.True(t, errors.Is(err, ErrNoImage))
	_, err = service.AnalyzeSoil(u.ID, []byte{})
	assert.True(t, errors.Is(err, ErrNoImage))

	_, err = service.AnalyzeHealth("ghost", []byte("leaf.jpg"))
	assert.True(t, errors.Is(err, user.ErrUserNotFound))
	_, err = service.Fields("ghost")
	assert.True(t, errors.Is(err, user.ErrUserNotFound))
}

func TestFieldsHistory(t *testing.T) {
	service, u := setupTestService(t)
	service.now = func() time.Time { return time.Date(2026, 4, 10, 15, 0, 0, 0, time.UTC) }

	fields, err := service.Fields(u.ID)
	require.NoError(t, err)
	require.Len(t, fields, 1)

	f := fields[0]
	assert.Equal(t, "North Field", f.Name)
	require.Len(t, f.HealthHistory, 10)
	require.Len(t, f.YieldHistory, 10)
	require.Len(t, f.NutrientHistory, 10)

	assert.Equal(t, "2026-04-10", f.HealthHistory[0].Date)
	assert.Equal(t, "2026-04-01", f.HealthHistory[9].Date)
	assert.Equal(t, "2026-04-01", f.NutrientHistory[9].Date)

	for i := range f.HealthHistory {
		assert.True(t, f.HealthHistory[i].Score >= 75 && f.HealthHistory[i].Score <= 85)
		assert.True(t, f.YieldHistory[i].Actual >= 80 && f.YieldHistory[i].Actual <= 90)
		assert.True(t, f.YieldHistory[i].Predicted >= 85 && f.YieldHistory[i].Predicted <= 90)
		assert.True(t, f.NutrientHistory[i].Nitrogen >= 40 && f.NutrientHistory[i].Nitrogen <= 50)
	}

	again, err := service.Fields(u.ID)
	require.NoError(t, err)
	assert.Equal(t, fields, again)
}
