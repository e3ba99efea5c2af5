package server

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/globalpulse/news-api/internal/application"
	"github.com/globalpulse/news-api/internal/transport/middleware"
)

// NewRouter mounts every endpoint of the API. CORS and logging wrap
// the whole router so preflight requests are answered before routing.
func NewRouter(app *application.App) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	auth := middleware.Auth(app.Config.AdminToken)

	api.Handle("/news", app.NewsHandler).Methods("GET")
	api.Handle("/news/category/{category}", app.CategoryHandler).Methods("GET")
	api.Handle("/ticker", app.TickerHandler).Methods("GET")
	api.HandleFunc("/articles/{id}", app.ArticleHandler.Get).Methods("GET")
	api.HandleFunc("/articles", app.ArticleHandler.Put).Methods("POST")
	api.Handle("/chat", app.ChatHandler).Methods("POST")
	api.Handle("/refresh", auth(app.RefreshHandler)).Methods("POST")
	api.Handle("/health", app.HealthHandler).Methods("GET")

	return middleware.CORS(middleware.Logging(r))
}

// CreateHandler creates the main HTTP handler for the application
func CreateHandler() (http.Handler, func(), error) {
	app, err := application.New()
	if err != nil {
		log.Printf("Error creating application: %v\nStack:\n%s", err, debug.Stack())
		return nil, nil, err
	}

	cleanup := func() {
		app.Close()
	}

	return NewRouter(app), cleanup, nil
}

// HandleRequest handles a single HTTP request (for Cloud Functions)
func HandleRequest(w http.ResponseWriter, r *http.Request) {
	handler, cleanup, err := CreateHandler()
	if err != nil {
		log.Printf("Failed to create handler: %v\nStack:\n%s", err, debug.Stack())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cleanup()

	handler.ServeHTTP(w, r)
}
