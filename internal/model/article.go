package model

import (
	"strings"
	"time"
)

// Category is the fixed set of verticals an article is filed under.
type Category string

const (
	CategoryPolitics   Category = "Politics"
	CategoryEconomy    Category = "Economy"
	CategoryTechnology Category = "Technology"
	CategorySports     Category = "Sports"
	CategoryCulture    Category = "Culture"
	CategoryHealth     Category = "Health"
)

// Categories returns every known category.
func Categories() []Category {
	return []Category{
		CategoryPolitics,
		CategoryEconomy,
		CategoryTechnology,
		CategorySports,
		CategoryCulture,
		CategoryHealth,
	}
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// Article is the canonical unit of content served to the reader UI.
type Article struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content,omitempty"`
	Category   Category `json:"category"`
	ImageURL   string   `json:"imageUrl"`
	Date       string   `json:"date"`
	Author     string   `json:"author"`
	Source     string   `json:"source"`
	SourceURL  string   `json:"sourceUrl"`
	IsBreaking bool     `json:"isBreaking"`
}

// Envelope is a cached article batch together with its write time.
// Envelopes older than the cache TTL are treated as stale and ignored.
type Envelope struct {
	Articles  []Article `json:"articles"`
	Timestamp time.Time `json:"timestamp"`
}

// Headline is a single entry of the breaking-news ticker.
type Headline struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}
