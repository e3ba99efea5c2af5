package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/globalpulse/news-api/internal/service"
	"github.com/globalpulse/news-api/internal/transport/response"
)

// ChatAsker answers a single reader question.
type ChatAsker interface {
	Ask(ctx context.Context, message string) (string, error)
}

// ChatHandler forwards reader questions to the assistant.
type ChatHandler struct {
	chat ChatAsker
}

// NewChatHandler creates the chat handler.
func NewChatHandler(chat ChatAsker) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatReply struct {
	Reply string `json:"reply"`
}

func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "invalid chat payload")
		return
	}

	reply, err := h.chat.Ask(r.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChatUnavailable):
			response.WriteUnavailable(w, "chat assistant is not configured")
		case errors.Is(err, service.ErrEmptyMessage):
			response.WriteBadRequest(w, "message is required")
		default:
			log.Printf("⚠️ Chat request failed: %v", err)
			response.WriteInternalError(w, "assistant request failed")
		}
		return
	}

	response.WriteSuccess(w, "", chatReply{Reply: reply})
}
