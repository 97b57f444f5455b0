package models

// NewsArticle is an item of the agricultural news feed
type NewsArticle struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Excerpt  string `json:"excerpt" yaml:"excerpt"`
	Date     string `json:"date" yaml:"date"`
	Category string `json:"category" yaml:"category"`
	URL      string `json:"url" yaml:"url"`
}
