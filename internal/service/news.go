package service

import (
	"context"
	"log"

	"github.com/globalpulse/news-api/internal/model"
)

// DefaultBatchSize is the front-page batch size when the client does
// not ask for a specific count.
const DefaultBatchSize = 12

// News is the facade the transport layer talks to. It combines the
// cached front-page batch with the live feed the poller maintains.
type News struct {
	cache      *Cache
	aggregator *Aggregator
	live       *LiveFeed
}

// NewNews wires the news facade.
func NewNews(cache *Cache, aggregator *Aggregator, live *LiveFeed) *News {
	return &News{
		cache:      cache,
		aggregator: aggregator,
		live:       live,
	}
}

// Home returns the front page: polled live articles first, then the
// cached batch. Live articles whose title already appears in the batch
// are dropped so the page never shows the same story twice.
func (n *News) Home(ctx context.Context, count int) []model.Article {
	if count <= 0 {
		count = DefaultBatchSize
	}

	batch := n.cache.Get(ctx, count)

	seen := make(map[string]bool, len(batch))
	for _, a := range batch {
		seen[a.Title] = true
	}

	var out []model.Article
	for _, a := range n.live.Snapshot() {
		if !seen[a.Title] {
			out = append(out, a)
		}
	}
	return append(out, batch...)
}

// PollOnce runs one incremental poll tick: fetch a single fresh
// article and prepend it to the live feed unless its title is already
// displayed. Returns the article and whether it was accepted.
func (n *News) PollOnce(ctx context.Context) (*model.Article, bool) {
	article, err := n.aggregator.FetchOne(ctx)
	if err != nil {
		log.Printf("⚠️ Poll tick failed: %v", err)
		return nil, false
	}

	if !n.live.Prepend(*article) {
		log.Printf("🔁 Poll tick: duplicate title skipped: %s", article.Title)
		return article, false
	}

	log.Printf("🔥 Poll tick: new article: %s", article.Title)
	return article, true
}

// Category returns the aggregated listing for one category.
func (n *News) Category(ctx context.Context, category model.Category) []model.Article {
	return n.aggregator.FetchCategory(ctx, category)
}

// Headlines returns the breaking-news ticker lines.
func (n *News) Headlines(ctx context.Context) []model.Headline {
	return n.aggregator.Headlines(ctx)
}

// Refresh forces a synchronous batch fetch, replacing the cached
// envelope.
func (n *News) Refresh(ctx context.Context, count int) []model.Article {
	if count <= 0 {
		count = DefaultBatchSize
	}
	return n.cache.Refresh(ctx, count)
}
