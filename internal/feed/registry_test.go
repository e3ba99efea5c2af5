package feed

import (
	"strings"
	"testing"

	"github.com/globalpulse/news-api/internal/model"
)

func TestDefaultRegistry(t *testing.T) {
	registry := NewRegistry()

	if registry.Len() < 30 {
		t.Errorf("Len = %d, want a broad source table", registry.Len())
	}

	t.Run("every category is represented", func(t *testing.T) {
		for _, c := range model.Categories() {
			if len(registry.ByCategory(c)) == 0 {
				t.Errorf("no sources filed under %s", c)
			}
		}
	})

	t.Run("all URLs are absolute", func(t *testing.T) {
		for _, s := range registry.sources {
			if !strings.HasPrefix(s.URL, "http") {
				t.Errorf("source %s has non-absolute URL %q", s.Name, s.URL)
			}
		}
	})

	t.Run("ticker sources exist", func(t *testing.T) {
		if got := registry.TickerSample(2); len(got) != 2 {
			t.Errorf("TickerSample(2) returned %d sources", len(got))
		}
	})
}

func TestRegistrySample(t *testing.T) {
	sources := []Source{
		{Name: "A", URL: "https://a.test/rss", Category: model.CategoryPolitics},
		{Name: "B", URL: "https://b.test/rss", Category: model.CategoryEconomy},
		{Name: "C", URL: "https://c.test/rss", Category: model.CategorySports},
	}
	registry := NewRegistryWith(sources)

	t.Run("caps at the table size", func(t *testing.T) {
		if got := registry.Sample(10); len(got) != 3 {
			t.Errorf("Sample(10) returned %d sources, want 3", len(got))
		}
	})

	t.Run("returns distinct sources", func(t *testing.T) {
		got := registry.Sample(3)
		seen := make(map[string]bool)
		for _, s := range got {
			if seen[s.Name] {
				t.Errorf("source %s sampled twice", s.Name)
			}
			seen[s.Name] = true
		}
	})

	t.Run("does not mutate the table", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			registry.Sample(3)
		}
		if registry.sources[0].Name != "A" || registry.sources[2].Name != "C" {
			t.Error("sampling must shuffle a copy, not the table")
		}
	})
}

func TestRegistryByCategory(t *testing.T) {
	sources := []Source{
		{Name: "A", URL: "https://a.test/rss", Category: model.CategoryHealth},
		{Name: "B", URL: "https://b.test/rss", Category: model.CategoryHealth},
		{Name: "C", URL: "https://c.test/rss", Category: model.CategorySports},
	}
	registry := NewRegistryWith(sources)

	health := registry.ByCategory(model.CategoryHealth)
	if len(health) != 2 {
		t.Fatalf("got %d health sources, want 2", len(health))
	}
	if registry.ByCategory(model.CategoryCulture) != nil {
		t.Error("empty category should return nil")
	}
}

func TestRegistryRandom(t *testing.T) {
	sources := []Source{
		{Name: "Only", URL: "https://only.test/rss", Category: model.CategoryPolitics},
	}
	registry := NewRegistryWith(sources)
	if got := registry.Random(); got.Name != "Only" {
		t.Errorf("Random() = %q, want Only", got.Name)
	}
}
