package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/globalpulse/news-api/internal/model"
)

// TestGCSStoreIntegration runs against a real bucket and is skipped
// unless TEST_GCS_BUCKET is set.
func TestGCSStoreIntegration(t *testing.T) {
	bucket := os.Getenv("TEST_GCS_BUCKET")
	if bucket == "" {
		t.Skip("TEST_GCS_BUCKET not set, skipping integration test")
	}

	ctx := context.Background()
	store, err := NewGCSStore(ctx, bucket)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	defer store.Close()

	article := model.Article{
		ID:       "inttest1",
		Title:    "Integration test article",
		Category: model.CategoryTechnology,
	}

	if err := store.Put(ctx, article); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, "inttest1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != article.Title {
		t.Errorf("Title = %q, want %q", got.Title, article.Title)
	}

	if _, err := store.Get(ctx, "definitely-missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGCSObjectKey(t *testing.T) {
	store := &GCSStore{bucket: "b"}
	if got := store.objectKey("abc12345"); got != "articles/abc12345.json" {
		t.Errorf("objectKey = %q", got)
	}
}
