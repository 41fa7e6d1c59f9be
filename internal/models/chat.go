package models

import (
	"bytes"
	"encoding/json"
)

// ChatMessage represents a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the assistant chat endpoint.
type ChatRequest struct {
	Message             string           `json:"message"`
	ConversationHistory []ChatMessage    `json:"conversationHistory"`
	Context             *ContextSnapshot `json:"context"`
	Image               json.RawMessage  `json:"image"`
}

// HasImage reports whether the request carries a non-null image attachment.
func (r *ChatRequest) HasImage() bool {
	return len(r.Image) > 0 && !bytes.Equal(bytes.TrimSpace(r.Image), []byte("null"))
}

// ChatResponse is the assistant's reply: free-form text plus the actions
// the client application should execute, in model order.
type ChatResponse struct {
	Message string   `json:"message"`
	Actions []Action `json:"actions"`
}

// Action is one resolved function call in the app's canonical shape. The
// "type" key identifies the action; the remaining keys are the canonical
// fields for that action type.
type Action map[string]any

// ContextSnapshot is a read-only view of the user's current app data,
// rendered into the assistant's instructions. It is never mutated.
type ContextSnapshot struct {
	Tasks       []ContextTask     `json:"tasks"`
	KanbanTasks []ContextKanban   `json:"kanbanTasks"`
	Schedules   []ContextSchedule `json:"schedules"`
}

type ContextTask struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type ContextKanban struct {
	Title  string `json:"title"`
	Column string `json:"column"` // todo, in-progress, done
}

type ContextSchedule struct {
	Title      string            `json:"title"`
	Activities []json.RawMessage `json:"activities"`
}
