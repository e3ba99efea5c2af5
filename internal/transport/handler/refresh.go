package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/globalpulse/news-api/internal/model"
	"github.com/globalpulse/news-api/internal/transport/response"
)

// Refresher forces a synchronous rebuild of the cached batch.
type Refresher interface {
	Refresh(ctx context.Context, count int) []model.Article
}

// RefreshHandler rebuilds the front-page cache on demand.
type RefreshHandler struct {
	news Refresher
}

// NewRefreshHandler creates the refresh handler.
func NewRefreshHandler(news Refresher) *RefreshHandler {
	return &RefreshHandler{news: news}
}

func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count := parseCount(r.URL.Query().Get("count"))

	articles := h.news.Refresh(r.Context(), count)
	log.Printf("🔄 Forced refresh: %d articles", len(articles))
	response.WriteSuccess(w, "cache refreshed", map[string]int{"articles": len(articles)})
}
