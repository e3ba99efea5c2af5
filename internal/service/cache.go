package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/globalpulse/news-api/internal/model"
)

// DefaultCacheTTL bounds how long a cached front-page batch is served.
const DefaultCacheTTL = 5 * time.Minute

// refreshTimeout bounds the detached background refresh.
const refreshTimeout = 2 * time.Minute

// EnvelopeStore persists the cached front-page batch between reads.
type EnvelopeStore interface {
	Load() (*model.Envelope, bool)
	Save(env model.Envelope) error
}

// MemoryEnvelopeStore keeps the cached batch in process memory.
type MemoryEnvelopeStore struct {
	mu  sync.RWMutex
	env *model.Envelope
}

// NewMemoryEnvelopeStore creates an empty envelope store.
func NewMemoryEnvelopeStore() *MemoryEnvelopeStore {
	return &MemoryEnvelopeStore{}
}

// Load returns the stored envelope, if any.
func (m *MemoryEnvelopeStore) Load() (*model.Envelope, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.env == nil {
		return nil, false
	}
	env := *m.env
	return &env, true
}

// Save replaces the stored envelope.
func (m *MemoryEnvelopeStore) Save(env model.Envelope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.env = &env
	return nil
}

// Cache serves the front-page batch from a TTL-bounded store. A cache
// hit returns instantly while a detached refresh replaces the stored
// batch for the next reader; a miss fetches synchronously.
type Cache struct {
	store EnvelopeStore
	fetch func(ctx context.Context, count int) []model.Article
	ttl   time.Duration
	now   func() time.Time
}

// NewCache wires a cache over the store and fetch function.
func NewCache(store EnvelopeStore, fetch func(ctx context.Context, count int) []model.Article, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		store: store,
		fetch: fetch,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns up to count front-page articles, preferring the cache.
func (c *Cache) Get(ctx context.Context, count int) []model.Article {
	if env, ok := c.store.Load(); ok && len(env.Articles) > 0 && c.now().Sub(env.Timestamp) < c.ttl {
		go c.refresh(count)
		return env.Articles
	}

	articles := c.fetch(ctx, count)
	c.save(articles)
	return articles
}

// Refresh bypasses the cache, fetches a fresh batch synchronously and
// stores it.
func (c *Cache) Refresh(ctx context.Context, count int) []model.Article {
	articles := c.fetch(ctx, count)
	c.save(articles)
	return articles
}

// refresh runs detached from the request that triggered it, so it
// carries its own deadline instead of the caller's context.
func (c *Cache) refresh(count int) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	articles := c.fetch(ctx, count)
	if len(articles) == 0 {
		return
	}
	c.save(articles)
}

func (c *Cache) save(articles []model.Article) {
	if len(articles) == 0 {
		return
	}
	if err := c.store.Save(model.Envelope{Articles: articles, Timestamp: c.now()}); err != nil {
		log.Printf("⚠️ Cache save failed: %v", err)
	}
}
