package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"momentum-backend/internal/models"
)

type assistantService interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type ChatHandler struct {
	assistant assistantService
}

func NewChatHandler(assistant assistantService) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// Chat resolves one user message into assistant text plus app actions.
// An empty message is accepted; the fallback reply covers it.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	// No vision model is wired up; reject instead of silently dropping the image.
	if req.HasImage() {
		writeJSON(w, http.StatusBadRequest, errorResp("IMAGE_UNSUPPORTED", "Image attachments are not supported", r))
		return
	}

	resp, err := h.assistant.Chat(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
