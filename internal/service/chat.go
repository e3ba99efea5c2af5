package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrChatUnavailable reports that no assistant backend is configured.
var ErrChatUnavailable = errors.New("chat assistant is not configured")

// ErrEmptyMessage reports a chat request without a message.
var ErrEmptyMessage = errors.New("message is empty")

// Assistant answers a single user message.
type Assistant interface {
	Ask(ctx context.Context, message string) (string, error)
}

// Chat validates reader questions and passes them to the assistant
// backend.
type Chat struct {
	assistant Assistant
}

// NewChat wires the chat service. A nil assistant leaves the service
// in place but answering every request with ErrChatUnavailable.
func NewChat(assistant Assistant) *Chat {
	return &Chat{assistant: assistant}
}

// Ask forwards the message and returns the assistant's reply.
func (c *Chat) Ask(ctx context.Context, message string) (string, error) {
	if c.assistant == nil {
		return "", ErrChatUnavailable
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	reply, err := c.assistant.Ask(ctx, message)
	if err != nil {
		return "", fmt.Errorf("asking assistant: %w", err)
	}
	return reply, nil
}
