package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/globalpulse/news-api/internal/model"
)

// ErrNotFound reports that no article is stored under the requested ID.
var ErrNotFound = errors.New("article not found")

// ArticleStore persists individual articles under their share ID so
// that share links keep resolving after the feed batch rotates away.
type ArticleStore interface {
	Get(ctx context.Context, id string) (*model.Article, error)
	Put(ctx context.Context, article model.Article) error
	Close() error
}

// MemoryStore is a process-local ArticleStore. It backs development
// and test setups where no bucket is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	articles map[string]model.Article
}

// NewMemoryStore creates an empty in-memory article store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{articles: make(map[string]model.Article)}
}

// Get returns the stored article or ErrNotFound.
func (m *MemoryStore) Get(_ context.Context, id string) (*model.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	article, ok := m.articles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &article, nil
}

// Put stores the article under its ID, replacing any previous copy.
func (m *MemoryStore) Put(_ context.Context, article model.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.articles[article.ID] = article
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error { return nil }
