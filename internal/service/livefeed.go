package service

import (
	"sync"

	"github.com/globalpulse/news-api/internal/model"
)

// liveFeedCap bounds the displayed list so a long-running poller does
// not grow it without limit.
const liveFeedCap = 100

// LiveFeed is the mutable front-page list the incremental poller
// prepends into. It is safe for concurrent use.
type LiveFeed struct {
	mu       sync.Mutex
	articles []model.Article
}

// NewLiveFeed creates an empty live feed.
func NewLiveFeed() *LiveFeed {
	return &LiveFeed{}
}

// Replace swaps the whole displayed list, as after a batch fetch.
func (l *LiveFeed) Replace(articles []model.Article) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.articles = make([]model.Article, len(articles))
	copy(l.articles, articles)
}

// Prepend puts the article at the head of the list unless an article
// with the exact same title is already displayed. Title comparison is
// deliberately strict; near-duplicates from different publishers stay.
func (l *LiveFeed) Prepend(article model.Article) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.articles {
		if existing.Title == article.Title {
			return false
		}
	}

	l.articles = append([]model.Article{article}, l.articles...)
	if len(l.articles) > liveFeedCap {
		l.articles = l.articles[:liveFeedCap]
	}
	return true
}

// Snapshot returns a copy of the displayed list.
func (l *LiveFeed) Snapshot() []model.Article {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Article, len(l.articles))
	copy(out, l.articles)
	return out
}

// Len reports the number of displayed articles.
func (l *LiveFeed) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.articles)
}
