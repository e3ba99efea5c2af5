package handler

import (
	"net/http"
	"time"

	"github.com/globalpulse/news-api/internal/transport/response"
)

// Version is stamped into health responses.
const Version = "1.0.0"

// HealthHandler answers liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates the health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, response.Response{
		Status: "ok",
		Data: map[string]interface{}{
			"timestamp": time.Now().Unix(),
			"version":   Version,
		},
	})
}
