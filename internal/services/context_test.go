package services

import (
	"encoding/json"
	"strings"
	"testing"

	"momentum-backend/internal/models"
)

func TestRenderContextEmptySnapshot(t *testing.T) {
	got := RenderContext(&models.ContextSnapshot{})

	for _, sentence := range []string{noGoalsSentence, noKanbanSentence, noSchedulesSentence} {
		if !strings.Contains(got, sentence) {
			t.Errorf("empty snapshot missing %q in:\n%s", sentence, got)
		}
	}
	if !strings.Contains(got, "📊 CURRENT USER CONTEXT:") {
		t.Errorf("missing context header in:\n%s", got)
	}
}

func TestRenderContextPopulated(t *testing.T) {
	snapshot := &models.ContextSnapshot{
		Tasks: []models.ContextTask{
			{Title: "Finish report", Completed: false},
			{Title: "Send invoice", Completed: true},
		},
		KanbanTasks: []models.ContextKanban{
			{Title: "Design review", Column: "in-progress"},
			{Title: "Release notes", Column: "todo"},
			{Title: "Old ticket", Column: "done"},
		},
		Schedules: []models.ContextSchedule{
			{Title: "Study Plan", Activities: []json.RawMessage{
				json.RawMessage(`{}`), json.RawMessage(`{}`),
			}},
		},
	}

	got := RenderContext(snapshot)

	checks := []string{
		"- ⏳ Finish report",
		"- ✅ Send invoice",
		"- Design review (In Progress)",
		"- Release notes (To Do)",
		"- Old ticket (Done)",
		"- Study Plan (2 activities)",
	}
	for _, want := range checks {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	for _, sentence := range []string{noGoalsSentence, noKanbanSentence, noSchedulesSentence} {
		if strings.Contains(got, sentence) {
			t.Errorf("populated snapshot should not contain %q", sentence)
		}
	}
}

func TestKanbanColumnLabel(t *testing.T) {
	tests := []struct {
		column string
		want   string
	}{
		{"todo", "To Do"},
		{"in-progress", "In Progress"},
		{"done", "Done"},
		{"anything-else", "Done"},
	}
	for _, tt := range tests {
		if got := kanbanColumnLabel(tt.column); got != tt.want {
			t.Errorf("kanbanColumnLabel(%q) = %q, want %q", tt.column, got, tt.want)
		}
	}
}
