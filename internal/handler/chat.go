package handler

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/bizledger/api-server-go/internal/errors"
	"github.com/bizledger/api-server-go/internal/middleware"
	"github.com/bizledger/api-server-go/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// POST /api/chat/send-message
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, apperrors.Unauthorized("Not authenticated"))
		return
	}

	var req service.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Invalid request body"))
		return
	}

	msg, err := h.chatService.Send(r.Context(), userID, req)
	if err != nil {
		logServerError(err, "send message failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "Message sent successfully",
		"newMessage": msg,
	})
}

// GET /api/chat/messages
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, apperrors.Unauthorized("Not authenticated"))
		return
	}

	limit, offset := parsePagination(r)
	messages, err := h.chatService.List(r.Context(), userID, limit, offset)
	if err != nil {
		logServerError(err, "list messages failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"messages": messages,
	})
}
