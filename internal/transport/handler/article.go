package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/globalpulse/news-api/internal/model"
	"github.com/globalpulse/news-api/internal/repository"
	"github.com/globalpulse/news-api/internal/service"
	"github.com/globalpulse/news-api/internal/transport/response"
)

// ArticleHandler resolves and persists shareable articles.
type ArticleHandler struct {
	store repository.ArticleStore
}

// NewArticleHandler creates the article handler over the given store.
func NewArticleHandler(store repository.ArticleStore) *ArticleHandler {
	return &ArticleHandler{store: store}
}

// Get serves one stored article by share ID.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	article, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.WriteNotFound(w, "article not found")
			return
		}
		log.Printf("⚠️ Article lookup failed for %s: %v", id, err)
		response.WriteInternalError(w, "failed to load article")
		return
	}

	response.WriteSuccess(w, "", article)
}

// Put stores a shareable article. A missing ID is derived from the
// title so clients do not have to compute the hash themselves.
func (h *ArticleHandler) Put(w http.ResponseWriter, r *http.Request) {
	var article model.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		response.WriteBadRequest(w, "invalid article payload")
		return
	}

	if article.Title == "" {
		response.WriteBadRequest(w, "article title is required")
		return
	}
	if article.ID == "" {
		article.ID = service.ShareID(article.Title)
	}

	if err := h.store.Put(r.Context(), article); err != nil {
		log.Printf("⚠️ Article save failed for %s: %v", article.ID, err)
		response.WriteInternalError(w, "failed to save article")
		return
	}

	response.WriteSuccess(w, "article saved", map[string]string{"id": article.ID})
}
