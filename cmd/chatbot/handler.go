package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/dileep-u-k/restaurant-chatbot/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"
)

// Replier produces one answer for one guest message.
type Replier interface {
	Reply(ctx context.Context, message string) (api.ChatResponse, error)
}

// ChatHandler serves POST /chat.
type ChatHandler struct {
	assistant Replier
	logger    *log.Logger
}

func NewChatHandler(assistant Replier, logger *log.Logger) *ChatHandler {
	return &ChatHandler{assistant: assistant, logger: logger}
}

// HandleChat validates the message, asks the assistant and maps every
// failure to the fixed generic error body.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req api.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrMessageRequired})
		return
	}
	message, ok := req.Message.(string)
	if !ok || strings.TrimSpace(message) == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrMessageRequired})
		return
	}

	resp, err := h.assistant.Reply(c.Request.Context(), message)
	if err != nil {
		h.logger.Error().Err(err).Str("request_id", requestID(c)).Msg("chat request failed")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrServer})
		return
	}

	h.logger.Debug().
		Str("request_id", requestID(c)).
		Str("source", string(resp.Source)).
		Int("answer_len", len(resp.Answer)).
		Msg("chat answered")
	c.JSON(http.StatusOK, resp)
}
