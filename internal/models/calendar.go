package models

// CalendarEventRequest mirrors the payload the frontend sends when creating
// an event. Times are RFC 3339 strings; the Google access token rides along
// in the body the same way the app's other proxy calls carry it.
type CalendarEventRequest struct {
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	AccessToken string   `json:"access_token"`
	Recurrence  []string `json:"recurrence,omitempty"`
}

type DeleteEventRequest struct {
	EventID     string `json:"eventId"`
	AccessToken string `json:"access_token"`
}

type ListEventsRequest struct {
	AccessToken string `json:"access_token"`
	TimeMin     string `json:"timeMin,omitempty"`
	TimeMax     string `json:"timeMax,omitempty"`
}

type UpdateEventRequest struct {
	EventID     string   `json:"eventId"`
	AccessToken string   `json:"access_token"`
	Summary     *string  `json:"summary"`
	Description *string  `json:"description"`
	StartTime   string   `json:"start_time,omitempty"`
	EndTime     string   `json:"end_time,omitempty"`
	Recurrence  []string `json:"recurrence"`
}

type BatchCreateEventsRequest struct {
	Events []CalendarEventRequest `json:"events"`
}

type BatchCreatedEvent struct {
	Index   int    `json:"index"`
	EventID string `json:"eventId"`
	Summary string `json:"summary"`
}

type BatchEventError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type BatchCreateEventsResponse struct {
	Created []BatchCreatedEvent `json:"created"`
	Errors  []BatchEventError   `json:"errors"`
}
