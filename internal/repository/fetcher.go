package repository

import "context"

// Item is a raw feed entry as delivered by a feed source, before
// normalization. Description frequently contains embedded HTML.
type Item struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	PubDate     string    `json:"pubDate"`
	Author      string    `json:"author"`
	Thumbnail   string    `json:"thumbnail"`
	Enclosure   Enclosure `json:"enclosure"`
}

// Enclosure carries the media attachment of a feed entry, if any.
type Enclosure struct {
	Link string `json:"link"`
}

// Image returns the best available image candidate for the item. The
// normalizer still decides whether the candidate is usable.
func (i Item) Image() string {
	if i.Thumbnail != "" {
		return i.Thumbnail
	}
	return i.Enclosure.Link
}

// Fetcher retrieves the raw items of a single feed. Implementations
// return an error for any failure mode (network, HTTP status, payload);
// callers treat every error as "no results from this source".
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]Item, error)
}
