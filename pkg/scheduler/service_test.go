package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/agriadvisor/agriadvisor-go/pkg/metadatastore"
	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func seedPredictions(t *testing.T, store metadatastore.MetadataStore, now time.Time) {
	t.Helper()
	for id, age := range map[string]int{"fresh": 1, "edge": 29, "stale": 31, "ancient": 400} {
		require.NoError(t, store.SavePrediction(&models.Prediction{
			ID:        id,
			UserID:    "u1",
			Type:      models.PredictionTypeSeed,
			CreatedAt: now.AddDate(0, 0, -age),
		}))
	}
}

func TestPurge(t *testing.T) {
	store := metadatastore.NewMemoryStore()
	now := time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC)
	seedPredictions(t, store, now)

	service, err := NewService(store, zap.NewNop(), "@daily", 30)
	require.NoError(t, err)
	service.now = func() time.Time { return now }

	deleted, err := service.Purge()
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	left, err := store.ListPredictionsByUser("u1")
	require.NoError(t, err)
	require.Len(t, left, 2)
	assert.Equal(t, "fresh", left[0].ID)
	assert.Equal(t, "edge", left[1].ID)
}

func TestRetentionDisabled(t *testing.T) {
	store := metadatastore.NewMemoryStore()
	now := time.Now()
	seedPredictions(t, store, now)

	service, err := NewService(store, nil, "not a schedule", 0)
	require.NoError(t, err)
	assert.False(t, service.Enabled())

	deleted, err := service.Purge()
	require.NoError(t, err)
	assert.Zero(t, deleted)

	require.NoError(t, service.Start())
	require.NoError(t, service.Stop(context.Background()))
}

func TestNewServiceValidation(t *testing.T) {
	store := metadatastore.NewMemoryStore()

	_, err := NewService(store, nil, "every tuesday", 30)
	assert.Error(t, err)

	_, err = NewService(store, nil, "@daily", -1)
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	service, err := NewService(metadatastore.NewMemoryStore(), zap.NewNop(), "*/5 * * * *", 7)
	require.NoError(t, err)

	require.NoError(t, service.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, service.Stop(ctx))
}
