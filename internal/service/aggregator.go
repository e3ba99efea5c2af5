package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/globalpulse/news-api/internal/feed"
	"github.com/globalpulse/news-api/internal/model"
	"github.com/globalpulse/news-api/internal/repository"
)

const (
	categoryFeedLimit  = 8
	categoryItemLimit  = 5
	tickerSourceSample = 2
	tickerItemLimit    = 3
	tickerHeadlineCap  = 5
)

// Aggregator fans fetches out across the feed registry and assembles
// normalized article sets for each read surface.
type Aggregator struct {
	registry   *feed.Registry
	fetcher    repository.Fetcher
	normalizer *Normalizer
}

// NewAggregator wires an aggregator over the given registry and fetcher.
func NewAggregator(registry *feed.Registry, fetcher repository.Fetcher) *Aggregator {
	return &Aggregator{
		registry:   registry,
		fetcher:    fetcher,
		normalizer: NewNormalizer(),
	}
}

// FetchBatch pulls the newest item from up to count randomly chosen
// sources concurrently. Failed sources are skipped, never fatal; the
// result is shuffled so no publisher owns the top of the page.
func (a *Aggregator) FetchBatch(ctx context.Context, count int) []model.Article {
	sources := a.registry.Sample(count)

	type result struct {
		source feed.Source
		items  []repository.Item
		err    error
	}

	results := make(chan result, len(sources))
	for _, src := range sources {
		go func(src feed.Source) {
			items, err := a.fetcher.Fetch(ctx, src.URL)
			results <- result{source: src, items: items, err: err}
		}(src)
	}

	var articles []model.Article
	for i := 0; i < len(sources); i++ {
		res := <-results
		if res.err != nil {
			log.Printf("⚠️ Feed %s failed: %v", res.source.Name, res.err)
			continue
		}
		if len(res.items) == 0 {
			continue
		}
		articles = append(articles, a.normalizer.Batch(res.items[0], res.source))
	}

	rand.Shuffle(len(articles), func(i, j int) {
		articles[i], articles[j] = articles[j], articles[i]
	})

	log.Printf("📰 Batch fetch: %d/%d sources delivered", len(articles), len(sources))
	return articles
}

// FetchCategory pulls up to five items from each of up to eight sources
// filed under the category, in registry order.
func (a *Aggregator) FetchCategory(ctx context.Context, category model.Category) []model.Article {
	sources := a.registry.ByCategory(category)
	if len(sources) > categoryFeedLimit {
		sources = sources[:categoryFeedLimit]
	}

	var articles []model.Article
	for _, src := range sources {
		items, err := a.fetcher.Fetch(ctx, src.URL)
		if err != nil {
			log.Printf("⚠️ Category feed %s failed: %v", src.Name, err)
			continue
		}
		if len(items) > categoryItemLimit {
			items = items[:categoryItemLimit]
		}
		for i, item := range items {
			articles = append(articles, a.normalizer.CategoryItem(item, src, i))
		}
	}
	return articles
}

// FetchOne pulls a single fresh article from one random source and one
// random item within it. The incremental poller lives on this.
func (a *Aggregator) FetchOne(ctx context.Context) (*model.Article, error) {
	src := a.registry.Random()

	items, err := a.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", src.Name, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("feed %s returned no items", src.Name)
	}

	item := items[rand.Intn(len(items))]
	article := a.normalizer.Poll(item, src)
	return &article, nil
}

// Headlines samples two wire feeds and returns up to five shuffled
// ticker lines, each carrying its source name.
func (a *Aggregator) Headlines(ctx context.Context) []model.Headline {
	sources := a.registry.TickerSample(tickerSourceSample)

	type result struct {
		headlines []model.Headline
	}

	results := make(chan result, len(sources))
	for _, src := range sources {
		go func(src feed.Source) {
			var headlines []model.Headline
			items, err := a.fetcher.Fetch(ctx, src.URL)
			if err != nil {
				log.Printf("⚠️ Ticker feed %s failed: %v", src.Name, err)
				results <- result{}
				return
			}
			if len(items) > tickerItemLimit {
				items = items[:tickerItemLimit]
			}
			for _, item := range items {
				title := StripTags(item.Title)
				if title == "" {
					title = "Breaking News"
				}
				url := item.Link
				if url == "" {
					url = "#"
				}
				headlines = append(headlines, model.Headline{
					Title:  fmt.Sprintf("🔴 %s: %s", src.Name, title),
					URL:    url,
					Source: src.Name,
				})
			}
			results <- result{headlines: headlines}
		}(src)
	}

	var headlines []model.Headline
	for i := 0; i < len(sources); i++ {
		res := <-results
		headlines = append(headlines, res.headlines...)
	}

	rand.Shuffle(len(headlines), func(i, j int) {
		headlines[i], headlines[j] = headlines[j], headlines[i]
	})
	if len(headlines) > tickerHeadlineCap {
		headlines = headlines[:tickerHeadlineCap]
	}
	return headlines
}
