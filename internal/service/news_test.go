package service

import (
	"context"
	"errors"
	"testing"

	"github.com/globalpulse/news-api/internal/feed"
	"github.com/globalpulse/news-api/internal/model"
	"github.com/globalpulse/news-api/internal/repository"
)

func newsFixture(fetcher repository.Fetcher, sources []feed.Source) *News {
	registry := feed.NewRegistryWith(sources)
	aggregator := NewAggregator(registry, fetcher)
	cache := NewCache(NewMemoryEnvelopeStore(), aggregator.FetchBatch, DefaultCacheTTL)
	return NewNews(cache, aggregator, NewLiveFeed())
}

func TestNewsHome(t *testing.T) {
	sources := []feed.Source{
		{Name: "One", URL: "https://one.test/rss", Category: model.CategoryPolitics},
		{Name: "Two", URL: "https://two.test/rss", Category: model.CategoryEconomy},
	}
	fetcher := newFakeFetcher()
	fetcher.byURL["https://one.test/rss"] = []repository.Item{{Title: "one lead"}}
	fetcher.byURL["https://two.test/rss"] = []repository.Item{{Title: "two lead"}}

	t.Run("serves the batch", func(t *testing.T) {
		news := newsFixture(fetcher, sources)
		articles := news.Home(context.Background(), 2)
		if len(articles) != 2 {
			t.Fatalf("got %d articles, want 2", len(articles))
		}
	})

	t.Run("live articles come first", func(t *testing.T) {
		news := newsFixture(fetcher, sources)
		news.live.Prepend(model.Article{ID: "live", Title: "fresh wire story"})

		articles := news.Home(context.Background(), 2)
		if len(articles) != 3 {
			t.Fatalf("got %d articles, want 3", len(articles))
		}
		if articles[0].Title != "fresh wire story" {
			t.Errorf("head = %q, want the live article", articles[0].Title)
		}
	})

	t.Run("live duplicates of batch titles are dropped", func(t *testing.T) {
		news := newsFixture(fetcher, sources)
		news.live.Prepend(model.Article{ID: "dup", Title: "one lead"})

		articles := news.Home(context.Background(), 2)
		if len(articles) != 2 {
			t.Fatalf("got %d articles, want 2 (duplicate dropped)", len(articles))
		}
	})

	t.Run("non-positive count uses the default", func(t *testing.T) {
		news := newsFixture(fetcher, sources)
		articles := news.Home(context.Background(), 0)
		// Two sources exist, so the default of twelve caps at two.
		if len(articles) != 2 {
			t.Fatalf("got %d articles, want 2", len(articles))
		}
	})
}

func TestNewsPollOnce(t *testing.T) {
	sources := []feed.Source{
		{Name: "Solo", URL: "https://solo.test/rss", Category: model.CategoryPolitics},
	}

	t.Run("new article is accepted", func(t *testing.T) {
		fetcher := newFakeFetcher()
		fetcher.byURL["https://solo.test/rss"] = []repository.Item{{Title: "breaking item"}}
		news := newsFixture(fetcher, sources)

		article, accepted := news.PollOnce(context.Background())
		if !accepted {
			t.Fatal("fresh article should be accepted")
		}
		if article.Title != "breaking item" {
			t.Errorf("Title = %q", article.Title)
		}
		if news.live.Len() != 1 {
			t.Errorf("live feed Len = %d, want 1", news.live.Len())
		}
	})

	t.Run("duplicate title is rejected", func(t *testing.T) {
		fetcher := newFakeFetcher()
		fetcher.byURL["https://solo.test/rss"] = []repository.Item{{Title: "breaking item"}}
		news := newsFixture(fetcher, sources)

		news.PollOnce(context.Background())
		_, accepted := news.PollOnce(context.Background())
		if accepted {
			t.Error("second poll of the same title must be rejected")
		}
		if news.live.Len() != 1 {
			t.Errorf("live feed Len = %d, want 1", news.live.Len())
		}
	})

	t.Run("fetch failure yields no article", func(t *testing.T) {
		fetcher := newFakeFetcher()
		fetcher.errs["https://solo.test/rss"] = errors.New("down")
		news := newsFixture(fetcher, sources)

		article, accepted := news.PollOnce(context.Background())
		if article != nil || accepted {
			t.Error("failed poll must yield nothing")
		}
	})
}

type fakeAssistant struct {
	reply string
	err   error
	got   string
}

func (f *fakeAssistant) Ask(_ context.Context, message string) (string, error) {
	f.got = message
	return f.reply, f.err
}

func TestChatAsk(t *testing.T) {
	t.Run("forwards and returns the reply", func(t *testing.T) {
		assistant := &fakeAssistant{reply: "here is context"}
		chat := NewChat(assistant)

		reply, err := chat.Ask(context.Background(), "  what happened?  ")
		if err != nil {
			t.Fatalf("Ask failed: %v", err)
		}
		if reply != "here is context" {
			t.Errorf("reply = %q", reply)
		}
		if assistant.got != "what happened?" {
			t.Errorf("forwarded message = %q, want it trimmed", assistant.got)
		}
	})

	t.Run("empty message rejected", func(t *testing.T) {
		chat := NewChat(&fakeAssistant{})
		if _, err := chat.Ask(context.Background(), "   "); !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("err = %v, want ErrEmptyMessage", err)
		}
	})

	t.Run("nil assistant is unavailable", func(t *testing.T) {
		chat := NewChat(nil)
		if _, err := chat.Ask(context.Background(), "hello"); !errors.Is(err, ErrChatUnavailable) {
			t.Errorf("err = %v, want ErrChatUnavailable", err)
		}
	})

	t.Run("backend errors are wrapped", func(t *testing.T) {
		backendErr := errors.New("quota exceeded")
		chat := NewChat(&fakeAssistant{err: backendErr})
		if _, err := chat.Ask(context.Background(), "hello"); !errors.Is(err, backendErr) {
			t.Errorf("err = %v, want wrapped backend error", err)
		}
	})
}
