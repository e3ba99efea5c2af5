package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/globalpulse/news-api/internal/model"
)

func TestMemoryStore(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		store := NewMemoryStore()
		article := model.Article{
			ID:       "abc12345",
			Title:    "Stored headline",
			Category: model.CategoryTechnology,
		}

		if err := store.Put(context.Background(), article); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := store.Get(context.Background(), "abc12345")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Title != "Stored headline" {
			t.Errorf("Title = %q, want Stored headline", got.Title)
		}
	})

	t.Run("missing ID returns ErrNotFound", func(t *testing.T) {
		store := NewMemoryStore()
		_, err := store.Get(context.Background(), "nope")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("put replaces existing article", func(t *testing.T) {
		store := NewMemoryStore()
		store.Put(context.Background(), model.Article{ID: "x", Title: "old"})
		store.Put(context.Background(), model.Article{ID: "x", Title: "new"})

		got, err := store.Get(context.Background(), "x")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Title != "new" {
			t.Errorf("Title = %q, want new", got.Title)
		}
	})

	t.Run("concurrent access", func(t *testing.T) {
		store := NewMemoryStore()
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				store.Put(context.Background(), model.Article{ID: "shared", Title: "t"})
			}()
			go func() {
				defer wg.Done()
				store.Get(context.Background(), "shared")
			}()
		}
		wg.Wait()
	})
}
