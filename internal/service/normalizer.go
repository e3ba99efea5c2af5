package service

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/globalpulse/news-api/internal/feed"
	"github.com/globalpulse/news-api/internal/model"
	"github.com/globalpulse/news-api/internal/repository"
)

// tagPattern removes markup embedded in feed titles and descriptions.
// Feeds ship fragments, not documents, so a tag pattern is enough and a
// full HTML parse is not worth the weight.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// categoryImages holds curated fallback images per category, used when
// a feed item carries no usable image of its own.
var categoryImages = map[model.Category][]string{
	model.CategoryPolitics: {
		"https://images.unsplash.com/photo-1529107386315-e1a2ed48a620?auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1541872703-74c5e44368f9?auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1555848962-6e79363ec58f?auto=format&fit=crop&q=80",
	},
	model.CategoryEconomy: {
		"https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1590283603385-17ffb3a7f29f?auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1526304640581-d334cdbbf45e?auto=format&fit=crop&q=80",
	},
	model.CategoryTechnology: {
		"https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1485827404703-89b55fcc595e?auto=format&fit=crop&q=80",
	},
	model.CategorySports: {
		"https://images.unsplash.com/photo-1461896836934-ffe607ba8211?auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1579952363873-27f3bade9f55?auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1574629810360-7efbbe195018?auto=format&fit=crop&q=80",
	},
	model.CategoryCulture: {
		"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1499364615650-ec38552f4f34?auto=format&fit=crop&q=80",
	},
	model.CategoryHealth: {
		"https://images.unsplash.com/photo-1576091160550-2173dba999ef?auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1505751172876-fa1923c5c528?auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1559757148-5c350d0d3c56?auto=format&fit=crop&q=80",
	},
}

// pubDateFormats lists the publish-date layouts seen across feeds. The
// first entry is the proxy's canonical layout.
var pubDateFormats = []string{
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
}

// Normalizer converts raw feed items into presentation-ready articles.
// The randomness hooks are swapped out in tests.
type Normalizer struct {
	now       func() time.Time
	randFloat func() float64
	randIntn  func(n int) int
}

// NewNormalizer creates a normalizer using the wall clock and the
// shared random source.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		now:       time.Now,
		randFloat: rand.Float64,
		randIntn:  rand.Intn,
	}
}

// StripTags removes markup from feed text.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// ShareID derives the stable 8-character ID an article is shared and
// stored under. The hash walks UTF-16 code units so IDs match the ones
// already minted by the web client for the same titles.
func ShareID(title string) string {
	var hash int32
	for _, u := range utf16.Encode([]rune(title)) {
		hash = hash<<5 - hash + int32(u)
	}
	v := int64(hash)
	if v < 0 {
		v = -v
	}
	id := strconv.FormatInt(v, 36)
	if len(id) > 8 {
		id = id[:8]
	}
	for len(id) < 8 {
		id += "0"
	}
	return id
}

// EphemeralID mints a unique per-fetch article ID. These IDs change on
// every fetch; stable share IDs come from ShareID.
func (n *Normalizer) EphemeralID(prefix string, tokenLen int) string {
	return fmt.Sprintf("%s-%d-%s", prefix, n.now().UnixMilli(), n.randToken(tokenLen))
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func (n *Normalizer) randToken(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteByte(base36[n.randIntn(len(base36))])
	}
	return b.String()
}

// RelativeTime renders a publish date as reader-facing age text.
// Dates that cannot be parsed read as "Just now".
func (n *Normalizer) RelativeTime(pubDate string) string {
	var parsed time.Time
	var err error
	for _, layout := range pubDateFormats {
		parsed, err = time.Parse(layout, pubDate)
		if err == nil {
			break
		}
	}
	if err != nil {
		return "Just now"
	}

	diff := n.now().Sub(parsed)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	default:
		return parsed.Format("Jan 2, 3:04 PM")
	}
}

// FallbackImage returns the item's own image when it looks like real
// article art, otherwise a curated image for the category. Publisher
// logos and icons are rejected as article art.
func (n *Normalizer) FallbackImage(category model.Category, candidate string) string {
	if candidate != "" && strings.HasPrefix(candidate, "http") &&
		!strings.Contains(candidate, "logo") && !strings.Contains(candidate, "icon") {
		return candidate
	}
	pool, ok := categoryImages[category]
	if !ok {
		pool = categoryImages[model.CategoryTechnology]
	}
	return pool[n.randIntn(len(pool))]
}

// normalizeOptions carries the per-surface differences between the
// front-page batch, the incremental poll, and category browsing.
type normalizeOptions struct {
	id              string
	titleFallback   string
	excerptFallback string
	excerptLimit    int
	breaking        bool
}

func (n *Normalizer) normalize(item repository.Item, src feed.Source, opts normalizeOptions) model.Article {
	title := StripTags(item.Title)
	if title == "" {
		title = opts.titleFallback
	}

	excerpt := opts.excerptFallback
	if item.Description != "" {
		stripped := []rune(StripTags(item.Description))
		if len(stripped) > opts.excerptLimit {
			stripped = stripped[:opts.excerptLimit]
		}
		excerpt = string(stripped) + "..."
	}

	sourceURL := item.Link
	if sourceURL == "" {
		sourceURL = "#"
	}

	return model.Article{
		ID:         opts.id,
		Title:      title,
		Excerpt:    excerpt,
		Category:   src.Category,
		ImageURL:   n.FallbackImage(src.Category, item.Image()),
		Date:       n.RelativeTime(item.PubDate),
		Author:     src.Name,
		Source:     src.Name,
		SourceURL:  sourceURL,
		IsBreaking: opts.breaking,
	}
}

// Batch normalizes one front-page item. Roughly a third of batch
// articles are flagged as breaking to keep the front page lively.
func (n *Normalizer) Batch(item repository.Item, src feed.Source) model.Article {
	return n.normalize(item, src, normalizeOptions{
		id:              n.EphemeralID("batch", 9),
		titleFallback:   "Latest News",
		excerptFallback: "Breaking update.",
		excerptLimit:    200,
		breaking:        n.randFloat() > 0.7,
	})
}

// Poll normalizes one incrementally polled item. Polled items always
// surface as breaking.
func (n *Normalizer) Poll(item repository.Item, src feed.Source) model.Article {
	return n.normalize(item, src, normalizeOptions{
		id:              n.EphemeralID("rss", 9),
		titleFallback:   "Breaking News",
		excerptFallback: "Latest update from trusted sources.",
		excerptLimit:    200,
		breaking:        true,
	})
}

// CategoryItem normalizes one item for a category listing. The index
// keeps IDs unique inside a single page of results.
func (n *Normalizer) CategoryItem(item repository.Item, src feed.Source, index int) model.Article {
	return n.normalize(item, src, normalizeOptions{
		id:              fmt.Sprintf("cat-%d-%d-%s", n.now().UnixMilli(), index, n.randToken(5)),
		titleFallback:   "News Update",
		excerptFallback: "Read more.",
		excerptLimit:    180,
		breaking:        false,
	})
}
