package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"google.golang.org/api/calendar/v3"

	"momentum-backend/internal/models"
	"momentum-backend/internal/services"
)

type calendarService interface {
	CreateEvent(ctx context.Context, accessToken string, in services.CalendarEventInput) (*services.CreatedEvent, error)
	DeleteEvent(ctx context.Context, accessToken, eventID string) (bool, error)
	ListEvents(ctx context.Context, accessToken, timeMin, timeMax string) ([]*calendar.Event, error)
	UpdateEvent(ctx context.Context, accessToken, eventID string, patch services.CalendarEventPatch) (*services.CreatedEvent, error)
	CreateEventsBatch(ctx context.Context, accessToken string, inputs []services.CalendarEventInput) ([]services.BatchEventResult, error)
}

type CalendarHandler struct {
	calendarService calendarService
}

func NewCalendarHandler(calendarService calendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

func (h *CalendarHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CalendarEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	created, err := h.calendarService.CreateEvent(r.Context(), req.AccessToken, services.CalendarEventInput{
		Summary:     req.Summary,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Recurrence:  req.Recurrence,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Event created",
		"eventId": created.EventID,
		"link":    created.Link,
	})
}

func (h *CalendarHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	alreadyDeleted, err := h.calendarService.DeleteEvent(r.Context(), req.AccessToken, req.EventID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	message := "Event deleted"
	if alreadyDeleted {
		message = "Event already deleted"
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *CalendarHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	var req models.ListEventsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	events, err := h.calendarService.ListEvents(r.Context(), req.AccessToken, req.TimeMin, req.TimeMax)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (h *CalendarHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	updated, err := h.calendarService.UpdateEvent(r.Context(), req.AccessToken, req.EventID, services.CalendarEventPatch{
		Summary:     req.Summary,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Recurrence:  req.Recurrence,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Event updated",
		"eventId": updated.EventID,
		"link":    updated.Link,
	})
}

func (h *CalendarHandler) CreateEventsBatch(w http.ResponseWriter, r *http.Request) {
	var req models.BatchCreateEventsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	resp := models.BatchCreateEventsResponse{
		Created: []models.BatchCreatedEvent{},
		Errors:  []models.BatchEventError{},
	}

	if len(req.Events) == 0 {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	inputs := make([]services.CalendarEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = services.CalendarEventInput{
			Summary:     e.Summary,
			Description: e.Description,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			Recurrence:  e.Recurrence,
		}
	}

	// All events in one batch belong to the same user; the first token wins.
	results, err := h.calendarService.CreateEventsBatch(r.Context(), req.Events[0].AccessToken, inputs)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	for _, res := range results {
		if res.Err != nil {
			resp.Errors = append(resp.Errors, models.BatchEventError{Index: res.Index, Error: res.Err.Error()})
			continue
		}
		resp.Created = append(resp.Created, models.BatchCreatedEvent{Index: res.Index, EventID: res.EventID, Summary: res.Summary})
	}

	writeJSON(w, http.StatusOK, resp)
}
