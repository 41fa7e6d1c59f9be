package services

import (
	"fmt"
	"strings"

	"momentum-backend/internal/models"
)

const systemInstruction = `You are an extremely intelligent, versatile AI assistant built into a productivity app.

🌟 YOUR GOAL:
Be the definitive assistant for the user. Always try to help, no matter how complex or "out of scope" the question seems.

🧠 CAPABILITIES:
✅ Answer ANY question on ANY subject (science, math, programming, history, philosophy, art, everyday life, business, health, technology, etc.)
✅ Hold deep, natural conversations about absolutely any topic.
✅ Explain complex concepts in a simple, accessible way.
✅ Create content: texts, stories, poems, code, scripts, recipes, etc.
✅ Give practical advice, personalized recommendations and well-founded opinions.
✅ Solve math, logic and reasoning problems.
✅ Translate between languages, analyze, compare and summarize.

🛠️ YOUR APP TOOLS (use when needed):
You have full control over the user's productivity app. Use these tools to help them get organized:
   - **Navigate** between pages (tasks, kanban, schedules, focus-timer, notes, youtube-player)
   - **Manage Goals**: create and delete goals.
   - **Manage Kanban**: create and move cards.
   - **Manage Schedules**: create weekly schedules and add activities.
   - **Focus Timer**: start, pause, stop and configure modes (Pomodoro, etc.).
   - **Alarms**: configure procrastination or manual alarms.

📊 VIEWING DATA:
You ALWAYS have the user's current data in the CURRENT CONTEXT below.
- If the user asks "what do I have to do?", READ the context and answer.
- Do NOT call functions to "list" things — just read what was already provided.

⚠️ GOLDEN RULE - EXECUTION:
If the user asks for an ACTION you can perform with your tools (create a goal, start the timer, etc.), DO IT IMMEDIATELY.
- Don't ask "do you want me to?". If the request is clear, DO it.
- After doing it, confirm with an emoji (✅, 🚀).

⚠️ GOLDEN RULE - COMMUNICATION:
- Be natural, friendly and helpful.
- NEVER give short, dry answers ("Done", "Ok").
- Always explain what you did or add useful context.
- If you can't do something, explain why and offer an alternative.

💡 REMEMBER:
You are a work and study partner. Be proactive, motivating and extremely capable.`

// Fallback replies, so the client never receives an empty message.
const (
	actionConfirmationReply = "✅ Action completed successfully!"
	notUnderstoodReply      = "Sorry, I didn't understand that. Could you rephrase it?"
)

// The "none" sentences each context section falls back to when its list is empty.
const (
	noGoalsSentence     = "No goals recorded."
	noKanbanSentence    = "No items on the Kanban board."
	noSchedulesSentence = "No schedules recorded."
)

// RenderContext turns the user's data snapshot into the personalization block
// appended to the system instruction. This listing is the assistant's only view
// of existing data — there are deliberately no read-type tools in the catalog.
func RenderContext(snapshot *models.ContextSnapshot) string {
	var goals, kanban, schedules strings.Builder

	for _, t := range snapshot.Tasks {
		marker := "⏳"
		if t.Completed {
			marker = "✅"
		}
		fmt.Fprintf(&goals, "- %s %s\n", marker, t.Title)
	}
	if goals.Len() == 0 {
		goals.WriteString(noGoalsSentence)
	}

	for _, k := range snapshot.KanbanTasks {
		fmt.Fprintf(&kanban, "- %s (%s)\n", k.Title, kanbanColumnLabel(k.Column))
	}
	if kanban.Len() == 0 {
		kanban.WriteString(noKanbanSentence)
	}

	for _, s := range snapshot.Schedules {
		fmt.Fprintf(&schedules, "- %s (%d activities)\n", s.Title, len(s.Activities))
	}
	if schedules.Len() == 0 {
		schedules.WriteString(noSchedulesSentence)
	}

	var b strings.Builder
	b.WriteString("\n\n📊 CURRENT USER CONTEXT:\n\n")
	b.WriteString("**CURRENT GOALS:**\n")
	b.WriteString(strings.TrimRight(goals.String(), "\n"))
	b.WriteString("\n\n**KANBAN ITEMS:**\n")
	b.WriteString(strings.TrimRight(kanban.String(), "\n"))
	b.WriteString("\n\n**CURRENT SCHEDULES:**\n")
	b.WriteString(strings.TrimRight(schedules.String(), "\n"))

	return b.String()
}

func kanbanColumnLabel(column string) string {
	switch column {
	case "todo":
		return "To Do"
	case "in-progress":
		return "In Progress"
	default:
		return "Done"
	}
}
