package application

import (
	"context"
	"log"

	"github.com/globalpulse/news-api/internal/feed"
	"github.com/globalpulse/news-api/internal/infrastructure"
	"github.com/globalpulse/news-api/internal/repository"
	"github.com/globalpulse/news-api/internal/service"
	"github.com/globalpulse/news-api/internal/transport/handler"
)

// App wires every dependency of the service and exposes the handlers
// the router mounts.
type App struct {
	Config *infrastructure.Config
	News   *service.News
	Chat   *service.Chat

	NewsHandler     *handler.NewsHandler
	CategoryHandler *handler.CategoryHandler
	TickerHandler   *handler.TickerHandler
	ArticleHandler  *handler.ArticleHandler
	ChatHandler     *handler.ChatHandler
	RefreshHandler  *handler.RefreshHandler
	HealthHandler   *handler.HealthHandler

	store repository.ArticleStore
}

// New builds the application from environment configuration.
func New() (*App, error) {
	config, err := infrastructure.Load()
	if err != nil {
		return nil, err
	}

	var fetcher repository.Fetcher
	switch config.FetchMode {
	case infrastructure.FetchModeDirect:
		fetcher = repository.NewDirectFetcher()
		log.Println("📡 Feed fetcher: direct")
	default:
		fetcher = repository.NewProxyFetcher(config.ProxyBaseURL)
		log.Println("📡 Feed fetcher: proxy")
	}

	registry := feed.NewRegistry()
	aggregator := service.NewAggregator(registry, fetcher)
	cache := service.NewCache(service.NewMemoryEnvelopeStore(), aggregator.FetchBatch, config.CacheTTL)
	news := service.NewNews(cache, aggregator, service.NewLiveFeed())

	var store repository.ArticleStore
	if config.GCSBucket != "" {
		store, err = repository.NewGCSStore(context.Background(), config.GCSBucket)
		if err != nil {
			return nil, err
		}
		log.Printf("🗄️ Article store: gs://%s", config.GCSBucket)
	} else {
		store = repository.NewMemoryStore()
		log.Println("🗄️ Article store: in-memory")
	}

	var assistant service.Assistant
	if config.GeminiAPIKey != "" {
		assistant = repository.NewGeminiClient(config.GeminiAPIKey, config.GeminiModel)
		log.Printf("🤖 Chat assistant: %s", config.GeminiModel)
	} else {
		log.Println("🤖 Chat assistant: disabled (no API key)")
	}
	chat := service.NewChat(assistant)

	return &App{
		Config:          config,
		News:            news,
		Chat:            chat,
		NewsHandler:     handler.NewNewsHandler(news),
		CategoryHandler: handler.NewCategoryHandler(news),
		TickerHandler:   handler.NewTickerHandler(news),
		ArticleHandler:  handler.NewArticleHandler(store),
		ChatHandler:     handler.NewChatHandler(chat),
		RefreshHandler:  handler.NewRefreshHandler(news),
		HealthHandler:   handler.NewHealthHandler(),
		store:           store,
	}, nil
}

// Close releases held resources.
func (a *App) Close() {
	if err := a.store.Close(); err != nil {
		log.Printf("⚠️ Closing article store: %v", err)
	}
}
