package services

import (
	"context"
	"errors"
	"log"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// defaultTimeZone matches what the frontend has always assumed for events.
const defaultTimeZone = "America/Sao_Paulo"

// CalendarService proxies Google Calendar calls made with a user-supplied
// OAuth access token. It performs no orchestration beyond one batch loop.
type CalendarService struct{}

func NewCalendarService() *CalendarService {
	return &CalendarService{}
}

func (s *CalendarService) client(ctx context.Context, accessToken string) (*calendar.Service, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, &ProviderError{Message: err.Error()}
	}
	return svc, nil
}

type CalendarEventInput struct {
	Summary     string
	Description string
	StartTime   string
	EndTime     string
	Recurrence  []string
}

type CreatedEvent struct {
	EventID string `json:"eventId"`
	Link    string `json:"link"`
}

func buildEvent(in CalendarEventInput) *calendar.Event {
	event := &calendar.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start:       &calendar.EventDateTime{DateTime: in.StartTime, TimeZone: defaultTimeZone},
		End:         &calendar.EventDateTime{DateTime: in.EndTime, TimeZone: defaultTimeZone},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: 10},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}
	if len(in.Recurrence) > 0 {
		event.Recurrence = in.Recurrence
	}
	return event
}

func (s *CalendarService) CreateEvent(ctx context.Context, accessToken string, in CalendarEventInput) (*CreatedEvent, error) {
	svc, err := s.client(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	created, err := svc.Events.Insert("primary", buildEvent(in)).Context(ctx).Do()
	if err != nil {
		return nil, translateGoogleError(err)
	}

	return &CreatedEvent{EventID: created.Id, Link: created.HtmlLink}, nil
}

// DeleteEvent is idempotent from the caller's perspective: a 410 from Google
// means the event is already gone, which is a success.
func (s *CalendarService) DeleteEvent(ctx context.Context, accessToken, eventID string) (alreadyDeleted bool, err error) {
	svc, err := s.client(ctx, accessToken)
	if err != nil {
		return false, err
	}

	err = svc.Events.Delete("primary", eventID).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusGone {
			return true, nil
		}
		return false, translateGoogleError(err)
	}

	return false, nil
}

func (s *CalendarService) ListEvents(ctx context.Context, accessToken, timeMin, timeMax string) ([]*calendar.Event, error) {
	svc, err := s.client(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	call := svc.Events.List("primary").SingleEvents(true).OrderBy("startTime").Context(ctx)
	if timeMin != "" {
		call = call.TimeMin(timeMin)
	}
	if timeMax != "" {
		call = call.TimeMax(timeMax)
	}

	result, err := call.Do()
	if err != nil {
		return nil, translateGoogleError(err)
	}

	return result.Items, nil
}

type CalendarEventPatch struct {
	Summary     *string
	Description *string
	StartTime   string
	EndTime     string
	Recurrence  []string
}

func (s *CalendarService) UpdateEvent(ctx context.Context, accessToken, eventID string, patch CalendarEventPatch) (*CreatedEvent, error) {
	svc, err := s.client(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	event := &calendar.Event{}
	if patch.Summary != nil {
		event.Summary = *patch.Summary
		event.ForceSendFields = append(event.ForceSendFields, "Summary")
	}
	if patch.Description != nil {
		event.Description = *patch.Description
		event.ForceSendFields = append(event.ForceSendFields, "Description")
	}
	if patch.StartTime != "" {
		event.Start = &calendar.EventDateTime{DateTime: patch.StartTime, TimeZone: defaultTimeZone}
	}
	if patch.EndTime != "" {
		event.End = &calendar.EventDateTime{DateTime: patch.EndTime, TimeZone: defaultTimeZone}
	}
	if patch.Recurrence != nil {
		event.Recurrence = patch.Recurrence
	}

	updated, err := svc.Events.Patch("primary", eventID, event).Context(ctx).Do()
	if err != nil {
		return nil, translateGoogleError(err)
	}

	return &CreatedEvent{EventID: updated.Id, Link: updated.HtmlLink}, nil
}

type BatchEventResult struct {
	Index   int
	EventID string
	Summary string
	Err     error
}

// CreateEventsBatch inserts events one by one. There is no atomic batch
// insert in the Calendar API; per-item failures are collected, not fatal.
func (s *CalendarService) CreateEventsBatch(ctx context.Context, accessToken string, inputs []CalendarEventInput) ([]BatchEventResult, error) {
	svc, err := s.client(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	results := make([]BatchEventResult, 0, len(inputs))
	for i, in := range inputs {
		created, err := svc.Events.Insert("primary", buildEvent(in)).Context(ctx).Do()
		if err != nil {
			log.Printf("calendar: batch insert %d failed: %v", i, err)
			results = append(results, BatchEventResult{Index: i, Err: translateGoogleError(err)})
			continue
		}
		results = append(results, BatchEventResult{Index: i, EventID: created.Id, Summary: created.Summary})
	}

	return results, nil
}

// translateGoogleError maps a Google API failure into the service error
// taxonomy. An expired or revoked access token is the caller's problem (401);
// everything else surfaces with the underlying message.
func translateGoogleError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusUnauthorized {
		return &UnauthorizedError{Message: "Google token expired"}
	}
	return &ProviderError{Message: err.Error()}
}
