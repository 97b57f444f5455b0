package news

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

// CategoryAll selects every article
const CategoryAll = "All"

//go:embed feed.yaml
var defaultFeed []byte

// Service serves the agricultural news feed
type Service struct {
	articles []models.NewsArticle
}

// NewService creates a news service over the built-in feed
func NewService() (*Service, error) {
	return NewServiceFromYAML(defaultFeed)
}

// NewServiceFromYAML creates a news service over a YAML list of articles
func NewServiceFromYAML(data []byte) (*Service, error) {
	var articles []models.NewsArticle
	if err := yaml.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to parse news feed: %w", err)
	}
	for i, a := range articles {
		if a.Title == "" || a.Category == "" {
			return nil, fmt.Errorf("news article %d: title and category are required", i)
		}
	}
	return &Service{articles: articles}, nil
}

// List returns the articles in a category, in feed order. An empty category
// or "All" returns the whole feed.
func (s *Service) List(category string) []models.NewsArticle {
	category = strings.TrimSpace(category)

	out := make([]models.NewsArticle, 0, len(s.articles))
	for _, a := range s.articles {
		if category == "" || strings.EqualFold(category, CategoryAll) || strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out
}

// Categories returns the distinct categories in feed order
func (s *Service) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range s.articles {
		if !seen[a.Category] {
			seen[a.Category] = true
			out = append(out, a.Category)
		}
	}
	return out
}
