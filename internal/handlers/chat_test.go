package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"momentum-backend/internal/models"
	"momentum-backend/internal/services"
)

type fakeAssistant struct {
	resp *models.ChatResponse
	err  error

	gotReq models.ChatRequest
}

func (f *fakeAssistant) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	f.gotReq = req
	return f.resp, f.err
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return resp
}

func TestChatHandlerSuccess(t *testing.T) {
	assistant := &fakeAssistant{resp: &models.ChatResponse{
		Message: "✅ Action completed successfully!",
		Actions: []models.Action{{"type": "startTimer", "minutes": float64(25)}},
	}}
	h := NewChatHandler(assistant)

	rec := postChat(t, h, `{"message":"start a timer","conversationHistory":[]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp models.ChatResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(resp.Actions) != 1 || resp.Actions[0]["type"] != "startTimer" {
		t.Errorf("actions = %v", resp.Actions)
	}
	if assistant.gotReq.Message != "start a timer" {
		t.Errorf("forwarded message = %q", assistant.gotReq.Message)
	}
}

func TestChatHandlerInvalidBody(t *testing.T) {
	h := NewChatHandler(&fakeAssistant{})

	rec := postChat(t, h, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q", resp.Error.Code)
	}
}

func TestChatHandlerRejectsImage(t *testing.T) {
	assistant := &fakeAssistant{resp: &models.ChatResponse{Message: "ok"}}
	h := NewChatHandler(assistant)

	rec := postChat(t, h, `{"message":"what is this?","image":{"data":"aGk=","mimeType":"image/png"}}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error.Code != "IMAGE_UNSUPPORTED" {
		t.Errorf("code = %q, want IMAGE_UNSUPPORTED", resp.Error.Code)
	}
}

func TestChatHandlerNullImageAccepted(t *testing.T) {
	assistant := &fakeAssistant{resp: &models.ChatResponse{Message: "hi", Actions: []models.Action{}}}
	h := NewChatHandler(assistant)

	rec := postChat(t, h, `{"message":"hello","image":null}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestChatHandlerServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not configured", &services.ConfigError{Message: "GEMINI_API_KEY not configured"}, http.StatusInternalServerError, "NOT_CONFIGURED"},
		{"provider failure", &services.ProviderError{Message: "quota exceeded"}, http.StatusInternalServerError, "PROVIDER_ERROR"},
		{"rate limited", &services.RateLimitError{Message: "slow down"}, http.StatusTooManyRequests, "RATE_LIMITED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewChatHandler(&fakeAssistant{err: tt.err})

			rec := postChat(t, h, `{"message":"hi"}`)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if resp := decodeError(t, rec); resp.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
		})
	}
}
