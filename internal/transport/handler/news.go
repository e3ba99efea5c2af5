package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/globalpulse/news-api/internal/model"
	"github.com/globalpulse/news-api/internal/transport/response"
)

// maxBatchSize caps how many sources a single request may fan out to.
const maxBatchSize = 40

// NewsReader is the slice of the news facade the read handlers need.
type NewsReader interface {
	Home(ctx context.Context, count int) []model.Article
	Category(ctx context.Context, category model.Category) []model.Article
	Headlines(ctx context.Context) []model.Headline
}

// NewsHandler serves the front-page batch.
type NewsHandler struct {
	news NewsReader
}

// NewNewsHandler creates the front-page handler.
func NewNewsHandler(news NewsReader) *NewsHandler {
	return &NewsHandler{news: news}
}

func (h *NewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count := parseCount(r.URL.Query().Get("count"))

	articles := h.news.Home(r.Context(), count)
	log.Printf("📰 Front page served: %d articles", len(articles))
	response.WriteSuccess(w, "", articles)
}

// CategoryHandler serves one category listing.
type CategoryHandler struct {
	news NewsReader
}

// NewCategoryHandler creates the category handler.
func NewCategoryHandler(news NewsReader) *CategoryHandler {
	return &CategoryHandler{news: news}
}

func (h *CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["category"]

	category, ok := model.ParseCategory(name)
	if !ok {
		response.WriteBadRequest(w, "unknown category: "+name)
		return
	}

	articles := h.news.Category(r.Context(), category)
	response.WriteSuccess(w, "", articles)
}

// TickerHandler serves the breaking-news ticker lines.
type TickerHandler struct {
	news NewsReader
}

// NewTickerHandler creates the ticker handler.
func NewTickerHandler(news NewsReader) *TickerHandler {
	return &TickerHandler{news: news}
}

func (h *TickerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	headlines := h.news.Headlines(r.Context())
	response.WriteSuccess(w, "", headlines)
}

func parseCount(raw string) int {
	if raw == "" {
		return 0
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count <= 0 {
		return 0
	}
	if count > maxBatchSize {
		return maxBatchSize
	}
	return count
}
