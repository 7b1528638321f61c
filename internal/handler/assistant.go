package handler

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/bizledger/api-server-go/internal/errors"
	"github.com/bizledger/api-server-go/internal/service"
)

type AssistantHandler struct {
	assistantService *service.AssistantService
}

type askRequest struct {
	Prompt string `json:"prompt"`
}

func NewAssistantHandler(assistantService *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// POST /api/assistant/ask
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Invalid request body"))
		return
	}

	reply, err := h.assistantService.Ask(r.Context(), req.Prompt)
	if err != nil {
		logServerError(err, "assistant request failed")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(reply)
}
