package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/calendar/v3"

	"momentum-backend/internal/services"
)

type fakeCalendar struct {
	alreadyDeleted bool
	err            error

	gotEventID string
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, accessToken string, in services.CalendarEventInput) (*services.CreatedEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.CreatedEvent{EventID: "ev-1", Link: "https://calendar.example/ev-1"}, nil
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, accessToken, eventID string) (bool, error) {
	f.gotEventID = eventID
	return f.alreadyDeleted, f.err
}

func (f *fakeCalendar) ListEvents(ctx context.Context, accessToken, timeMin, timeMax string) ([]*calendar.Event, error) {
	return nil, f.err
}

func (f *fakeCalendar) UpdateEvent(ctx context.Context, accessToken, eventID string, patch services.CalendarEventPatch) (*services.CreatedEvent, error) {
	return nil, f.err
}

func (f *fakeCalendar) CreateEventsBatch(ctx context.Context, accessToken string, inputs []services.CalendarEventInput) ([]services.BatchEventResult, error) {
	return nil, f.err
}

func postCalendar(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/calendar/delete_event", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestCalendarDeleteEvent(t *testing.T) {
	tests := []struct {
		name           string
		alreadyDeleted bool
		wantMessage    string
	}{
		{"existing event", false, "Event deleted"},
		{"already removed upstream", true, "Event already deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeCalendar{alreadyDeleted: tt.alreadyDeleted}
			h := NewCalendarHandler(svc)

			rec := postCalendar(t, h.DeleteEvent, `{"eventId":"ev-9","access_token":"tok"}`)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
			}
			if svc.gotEventID != "ev-9" {
				t.Errorf("deleted event id = %q, want ev-9", svc.gotEventID)
			}

			var resp map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if resp["message"] != tt.wantMessage {
				t.Errorf("message = %q, want %q", resp["message"], tt.wantMessage)
			}
		})
	}
}

func TestCalendarDeleteEventExpiredToken(t *testing.T) {
	svc := &fakeCalendar{err: &services.UnauthorizedError{Message: "Google token expired"}}
	h := NewCalendarHandler(svc)

	rec := postCalendar(t, h.DeleteEvent, `{"eventId":"ev-9","access_token":"stale"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error.Code != "UNAUTHORIZED" {
		t.Errorf("code = %q, want UNAUTHORIZED", resp.Error.Code)
	}
}

func TestCalendarDeleteEventProviderFailure(t *testing.T) {
	svc := &fakeCalendar{err: &services.ProviderError{Message: "backend error"}}
	h := NewCalendarHandler(svc)

	rec := postCalendar(t, h.DeleteEvent, `{"eventId":"ev-9","access_token":"tok"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Error.Code != "PROVIDER_ERROR" {
		t.Errorf("code = %q, want PROVIDER_ERROR", resp.Error.Code)
	}
	if resp.Error.Message != "backend error" {
		t.Errorf("message = %q, want the underlying message", resp.Error.Message)
	}
}
