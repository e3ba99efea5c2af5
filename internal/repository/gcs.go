package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/globalpulse/news-api/internal/model"
)

// GCSStore persists articles as JSON objects in a Cloud Storage bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore connects to Cloud Storage and binds the given bucket.
// Extra client options are accepted so tests can point at a fake server.
func NewGCSStore(ctx context.Context, bucket string, opts ...option.ClientOption) (*GCSStore, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

func (g *GCSStore) objectKey(id string) string {
	return fmt.Sprintf("articles/%s.json", id)
}

// Get loads and decodes the article object, mapping a missing object to
// ErrNotFound.
func (g *GCSStore) Get(ctx context.Context, id string) (*model.Article, error) {
	reader, err := g.client.Bucket(g.bucket).Object(g.objectKey(id)).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("opening article object: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading article object: %w", err)
	}

	var article model.Article
	if err := json.Unmarshal(data, &article); err != nil {
		return nil, fmt.Errorf("decoding article object: %w", err)
	}
	return &article, nil
}

// Put writes the article as a JSON object keyed by its ID.
func (g *GCSStore) Put(ctx context.Context, article model.Article) error {
	data, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("encoding article: %w", err)
	}

	writer := g.client.Bucket(g.bucket).Object(g.objectKey(article.ID)).NewWriter(ctx)
	writer.ContentType = "application/json"
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("writing article object: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalizing article object: %w", err)
	}
	return nil
}

// Close releases the underlying storage client.
func (g *GCSStore) Close() error {
	return g.client.Close()
}
