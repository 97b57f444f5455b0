package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAll(t *testing.T) {
	service, err := NewService()
	require.NoError(t, err)

	all := service.List(CategoryAll)
	require.Len(t, all, 5)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, "2025-04-05", all[4].Date)

	assert.Equal(t, all, service.List(""))
}

func TestListByCategory(t *testing.T) {
	service, err := NewService()
	require.NoError(t, err)

	ai := service.List("ai in agriculture")
	require.Len(t, ai, 2)
	assert.Equal(t, "AI Revolutionizes Crop Disease Detection", ai[0].Title)
	assert.Equal(t, "Smart Irrigation Systems Save Water", ai[1].Title)

	assert.Empty(t, service.List("Weather"))
	assert.NotNil(t, service.List("Weather"))
}

func TestCategories(t *testing.T) {
	service, err := NewService()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"AI in Agriculture",
		"Sustainable Practices",
		"Market Trends",
		"Organic Farming",
	}, service.Categories())
}

func TestNewServiceFromYAMLRejectsBadFeed(t *testing.T) {
	_, err := NewServiceFromYAML([]byte("- id: 1\n  title: Untitled category\n"))
	assert.Error(t, err)

	_, err = NewServiceFromYAML([]byte("not: [a list"))
	assert.Error(t, err)
}
