package repository

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// DirectFetcher parses RSS/Atom feeds straight from the publisher,
// bypassing the conversion proxy. Deployments that cannot depend on a
// third-party proxy select it with FEED_FETCH_MODE=direct.
type DirectFetcher struct {
	parser *gofeed.Parser
}

// NewDirectFetcher creates a direct feed fetcher.
func NewDirectFetcher() *DirectFetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = "globalpulse-news-api/1.0"
	return &DirectFetcher{parser: parser}
}

// Fetch downloads and parses one feed, mapping entries into the same
// raw Item shape the proxy produces.
func (d *DirectFetcher) Fetch(ctx context.Context, feedURL string) ([]Item, error) {
	feed, err := d.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		items = append(items, fromGofeedItem(entry))
	}
	return items, nil
}

func fromGofeedItem(entry *gofeed.Item) Item {
	item := Item{
		Title:       entry.Title,
		Description: entry.Description,
		Link:        entry.Link,
		PubDate:     entry.Published,
	}
	if item.Description == "" {
		item.Description = entry.Content
	}
	if entry.PublishedParsed != nil {
		item.PubDate = entry.PublishedParsed.UTC().Format("2006-01-02 15:04:05")
	} else if entry.UpdatedParsed != nil {
		item.PubDate = entry.UpdatedParsed.UTC().Format("2006-01-02 15:04:05")
	}
	if len(entry.Authors) > 0 && entry.Authors[0] != nil {
		item.Author = entry.Authors[0].Name
	}
	if entry.Image != nil {
		item.Thumbnail = entry.Image.URL
	}
	for _, enc := range entry.Enclosures {
		if enc != nil && enc.URL != "" {
			item.Enclosure.Link = enc.URL
			break
		}
	}
	return item
}
