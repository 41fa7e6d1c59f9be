package services

import (
	"strings"

	"github.com/google/generative-ai-go/genai"

	"momentum-backend/internal/models"
)

// NormalizeHistory turns an arbitrary client-supplied message history into a
// valid alternating conversation log:
//
//  1. blank turns are dropped;
//  2. runs of consecutive same-role turns collapse to the first turn of the run;
//  3. leading non-user turns are dropped until the log starts with a user turn;
//  4. a trailing user turn is dropped — it has no paired reply yet, the live
//     message is sent separately.
//
// The function is pure and idempotent.
func NormalizeHistory(history []models.ChatMessage) []models.ChatMessage {
	kept := make([]models.ChatMessage, 0, len(history))
	haveLast := false
	lastUser := false

	for _, msg := range history {
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}

		isUser := msg.Role == "user"
		if haveLast && isUser == lastUser {
			continue
		}

		kept = append(kept, msg)
		haveLast = true
		lastUser = isUser
	}

	// Trim leading non-user turns
	for len(kept) > 0 && kept[0].Role != "user" {
		kept = kept[1:]
	}

	if len(kept) > 0 && kept[len(kept)-1].Role == "user" {
		kept = kept[:len(kept)-1]
	}

	return kept
}

// historyContents converts a normalized history into Gemini chat contents.
// Any non-user role maps to the model role.
func historyContents(history []models.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "model"
		if msg.Role == "user" {
			role = "user"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}
