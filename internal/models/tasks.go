package models

// TaskItem is a Google Tasks insert payload.
type TaskItem struct {
	Title       string `json:"title"`
	Notes       string `json:"notes,omitempty"`
	Due         string `json:"due,omitempty"` // RFC 3339 timestamp
	Status      string `json:"status,omitempty"`
	AccessToken string `json:"access_token"`
}

type DeleteTaskRequest struct {
	TaskID      string `json:"task_id"`
	AccessToken string `json:"access_token"`
}

type ListTasksRequest struct {
	AccessToken string `json:"access_token"`
}

type UpdateTaskRequest struct {
	TaskID      string  `json:"task_id"`
	AccessToken string  `json:"access_token"`
	Title       *string `json:"title"`
	Notes       *string `json:"notes"`
	Status      *string `json:"status"` // "needsAction" or "completed"
}
