package feed

import (
	"math/rand"

	"github.com/globalpulse/news-api/internal/model"
)

// Source is one RSS publisher endpoint with its category tag.
// Adding or removing a source is a configuration change only; the
// pipeline never special-cases individual publishers.
type Source struct {
	Name     string
	URL      string
	Category model.Category
}

// defaultSources covers the world/politics, economy, technology, sports,
// health and culture verticals the front page draws from.
var defaultSources = []Source{
	// International English
	{Name: "BBC World", URL: "http://feeds.bbci.co.uk/news/world/rss.xml", Category: model.CategoryPolitics},
	{Name: "BBC Business", URL: "http://feeds.bbci.co.uk/news/business/rss.xml", Category: model.CategoryEconomy},
	{Name: "BBC Tech", URL: "http://feeds.bbci.co.uk/news/technology/rss.xml", Category: model.CategoryTechnology},
	{Name: "The Guardian", URL: "https://www.theguardian.com/world/rss", Category: model.CategoryPolitics},
	{Name: "Reuters Top", URL: "https://www.reutersagency.com/feed/?best-topics=business-finance&post_type=best", Category: model.CategoryEconomy},
	{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml", Category: model.CategoryPolitics},
	{Name: "NPR News", URL: "https://feeds.npr.org/1001/rss.xml", Category: model.CategoryPolitics},
	{Name: "The New York Times", URL: "https://rss.nytimes.com/services/xml/rss/nyt/World.xml", Category: model.CategoryPolitics},
	{Name: "Axios Main", URL: "https://www.axios.com/feeds/feed.rss", Category: model.CategoryPolitics},
	{Name: "Axios Econ", URL: "https://api.axios.com/feed/", Category: model.CategoryEconomy},

	// Technology
	{Name: "TechCrunch", URL: "https://techcrunch.com/feed/", Category: model.CategoryTechnology},
	{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml", Category: model.CategoryTechnology},
	{Name: "Wired", URL: "https://www.wired.com/feed/rss", Category: model.CategoryTechnology},
	{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/index", Category: model.CategoryTechnology},

	// Sports
	{Name: "ESPN", URL: "https://www.espn.com/espn/rss/news", Category: model.CategorySports},
	{Name: "BBC Sport", URL: "http://feeds.bbci.co.uk/sport/rss.xml", Category: model.CategorySports},
	{Name: "Sky Sports", URL: "https://www.skysports.com/rss/12040", Category: model.CategorySports},
	{Name: "Marca", URL: "https://e00-marca.uecdn.es/rss/portada.xml", Category: model.CategorySports},
	{Name: "AS", URL: "https://as.com/rss/tags/ultimas_noticias.xml", Category: model.CategorySports},

	// Magazines and culture
	{Name: "The Economist", URL: "https://www.economist.com/the-world-this-week/rss.xml", Category: model.CategoryEconomy},
	{Name: "TIME Magazine", URL: "https://time.com/feed/", Category: model.CategoryCulture},
	{Name: "Forbes", URL: "https://www.forbes.com/business/feed/", Category: model.CategoryEconomy},
	{Name: "National Geographic", URL: "https://www.nationalgeographic.com/feed/", Category: model.CategoryCulture},

	// Health and medicine
	{Name: "WHO News", URL: "https://www.who.int/rss-feeds/news-english.xml", Category: model.CategoryHealth},
	{Name: "Medical News Today", URL: "https://www.medicalnewstoday.com/newsfeeds/rss", Category: model.CategoryHealth},
	{Name: "WebMD", URL: "https://rssfeeds.webmd.com/rss/rss.aspx?RSSSource=RSS_PUBLIC", Category: model.CategoryHealth},
	{Name: "Health.com", URL: "https://www.health.com/syndication/rss", Category: model.CategoryHealth},
	{Name: "Healthline", URL: "https://www.healthline.com/rss/health-news", Category: model.CategoryHealth},
	{Name: "NatGeo Science", URL: "https://www.nationalgeographic.com/rss/index.xml", Category: model.CategoryCulture},

	// Research and medical journals
	{Name: "ScienceDaily Health", URL: "https://www.sciencedaily.com/rss/health_medicine.xml", Category: model.CategoryHealth},
	{Name: "Mayo Clinic", URL: "https://newsnetwork.mayoclinic.org/feed/", Category: model.CategoryHealth},
	{Name: "Harvard Health", URL: "https://www.health.harvard.edu/rss/staying-healthy.xml", Category: model.CategoryHealth},
	{Name: "Psychology Today", URL: "https://www.psychologytoday.com/us/feed/news", Category: model.CategoryHealth},
	{Name: "New Scientist Health", URL: "https://www.newscientist.com/subject/health/feed/", Category: model.CategoryHealth},
	{Name: "CNN Health", URL: "http://rss.cnn.com/rss/cnn_health.rss", Category: model.CategoryHealth},
	{Name: "NYT Health", URL: "https://rss.nytimes.com/services/xml/rss/nyt/Health.xml", Category: model.CategoryHealth},
	{Name: "BBC Health", URL: "http://feeds.bbci.co.uk/news/health/rss.xml", Category: model.CategoryHealth},
	{Name: "NPR Health", URL: "https://feeds.npr.org/1128/rss.xml", Category: model.CategoryHealth},

	// Economy
	{Name: "CNBC", URL: "https://www.cnbc.com/id/100003114/device/rss/rss.html", Category: model.CategoryEconomy},
	{Name: "Financial Times", URL: "https://www.ft.com/world?format=rss", Category: model.CategoryEconomy},
}

// defaultTickerSources are the high-frequency wire feeds sampled for the
// breaking-news ticker.
var defaultTickerSources = []Source{
	{Name: "BBC", URL: "http://feeds.bbci.co.uk/news/world/rss.xml", Category: model.CategoryPolitics},
	{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml", Category: model.CategoryPolitics},
	{Name: "CNN", URL: "http://rss.cnn.com/rss/edition_world.rss", Category: model.CategoryPolitics},
	{Name: "Reuters", URL: "https://www.reutersagency.com/feed/?taxonomy=best-topics&post_type=best", Category: model.CategoryPolitics},
}

// Registry holds the configured feed sources and answers sampling queries.
type Registry struct {
	sources []Source
	ticker  []Source
}

// NewRegistry returns a registry backed by the default source table.
func NewRegistry() *Registry {
	return &Registry{sources: defaultSources, ticker: defaultTickerSources}
}

// NewRegistryWith builds a registry over the given sources. The same
// sources serve the ticker; tests and single-tenant deployments use this.
func NewRegistryWith(sources []Source) *Registry {
	return &Registry{sources: sources, ticker: sources}
}

// Len reports the number of configured sources.
func (r *Registry) Len() int { return len(r.sources) }

// Sample returns up to n sources in shuffled order.
func (r *Registry) Sample(n int) []Source {
	shuffled := make([]Source, len(r.sources))
	copy(shuffled, r.sources)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Random returns one source picked uniformly at random.
func (r *Registry) Random() Source {
	return r.sources[rand.Intn(len(r.sources))]
}

// ByCategory returns every source filed under the given category.
func (r *Registry) ByCategory(c model.Category) []Source {
	var out []Source
	for _, s := range r.sources {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out
}

// TickerSample returns up to n ticker sources in shuffled order.
func (r *Registry) TickerSample(n int) []Source {
	shuffled := make([]Source, len(r.ticker))
	copy(shuffled, r.ticker)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
