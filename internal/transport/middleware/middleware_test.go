package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	t.Run("adds headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CORS(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/news", nil))

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Allow-Origin = %q, want *", got)
		}
	})

	t.Run("answers preflight without calling next", func(t *testing.T) {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		rec := httptest.NewRecorder()
		CORS(next).ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/api/v1/news", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if called {
			t.Error("preflight must not reach the handler")
		}
	})
}

func TestAuth(t *testing.T) {
	t.Run("valid bearer token passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/refresh", nil)
		req.Header.Set("Authorization", "Bearer secret")

		rec := httptest.NewRecorder()
		Auth("secret")(okHandler()).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("missing token rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Auth("secret")(okHandler()).ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/refresh", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/refresh", nil)
		req.Header.Set("Authorization", "Bearer wrong")

		rec := httptest.NewRecorder()
		Auth("secret")(okHandler()).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("empty configured token leaves the endpoint open", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Auth("")(okHandler()).ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/refresh", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}

func TestLoggingPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	Logging(next).ServeHTTP(rec, httptest.NewRequest("GET", "/x", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}
