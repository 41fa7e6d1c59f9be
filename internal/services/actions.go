package services

import "momentum-backend/internal/models"

// actionRule maps one raw function call's arguments into the canonical action
// the client executes. Each rule builds a fresh record, so no wire-format key
// ever leaks through.
type actionRule func(args map[string]any) models.Action

// actionRules has exactly one entry per catalog tool name.
var actionRules = map[string]actionRule{
	"navigate": func(a map[string]any) models.Action {
		return models.Action{"type": "openPage", "page": a["pagina"]}
	},
	"createGoal": func(a map[string]any) models.Action {
		return models.Action{"type": "createTask", "title": a["titulo"]}
	},
	"deleteGoal": func(a map[string]any) models.Action {
		return models.Action{"type": "deleteTask", "titleOrId": a["titulo_ou_id"]}
	},
	"createKanbanCard": func(a map[string]any) models.Action {
		return models.Action{"type": "createKanbanItem", "title": a["titulo"], "column": a["coluna"]}
	},
	"moveKanbanCard": func(a map[string]any) models.Action {
		return models.Action{"type": "moveKanbanItem", "titleOrId": a["titulo_ou_id"], "newColumn": a["nova_coluna"]}
	},
	"createWeeklySchedule": func(a map[string]any) models.Action {
		return models.Action{
			"type": "createSchedule",
			"schedule": map[string]any{
				"title":       stringField(a, "New Schedule", "titulo"),
				"description": stringField(a, "", "descricao"),
				"activities":  normalizeActivities(a["atividades"]),
			},
		}
	},
	"addScheduleActivities": func(a map[string]any) models.Action {
		return models.Action{"type": "addActivitiesToSchedule", "activities": normalizeActivities(a["atividades"])}
	},
	"configureProcrastinationAlarm": func(a map[string]any) models.Action {
		return models.Action{"type": "setAlarm", "enabled": a["ativado"], "minutes": a["tempo"]}
	},
	"createManualAlarm": func(a map[string]any) models.Action {
		return models.Action{"type": "createManualAlarm", "title": a["titulo"], "minutes": a["tempo"]}
	},
	"startFocusTimer": func(a map[string]any) models.Action {
		return models.Action{"type": "startTimer", "minutes": a["minutos"]}
	},
	"pauseFocusTimer": func(a map[string]any) models.Action {
		return models.Action{"type": "pauseTimer"}
	},
	"stopFocusTimer": func(a map[string]any) models.Action {
		return models.Action{"type": "stopTimer"}
	},
	"setTimerMode": func(a map[string]any) models.Action {
		start := a["iniciar"]
		if start == nil {
			start = false
		}
		return models.Action{"type": "setTimerMode", "mode": a["modo"], "start": start}
	},
	"toggleTimerLoop": func(a map[string]any) models.Action {
		return models.Action{"type": "toggleTimerLoop", "enabled": a["ativado"]}
	},
}

// normalizeActivities sanitizes the raw activity list of a schedule call.
// Malformed entries degrade to an all-defaults activity rather than failing
// the whole action.
func normalizeActivities(v any) []map[string]any {
	items, _ := v.([]any)
	activities := make([]map[string]any, 0, len(items))
	for _, item := range items {
		raw, _ := item.(map[string]any)
		activities = append(activities, normalizeActivity(raw))
	}
	return activities
}

// normalizeActivity fills every activity field, accepting either the wire
// spelling or the canonical one (first non-absent wins).
func normalizeActivity(raw map[string]any) map[string]any {
	return map[string]any{
		"title":       stringField(raw, "Untitled Activity", "titulo", "title"),
		"description": stringField(raw, "", "descricao", "description"),
		"day_of_week": intField(raw, 0, "dia_da_semana", "day_of_week"),
		"start_time":  stringField(raw, "09:00", "hora_inicio", "start_time"),
		"end_time":    stringField(raw, "10:00", "hora_fim", "end_time"),
	}
}

func stringField(raw map[string]any, fallback string, keys ...string) string {
	for _, key := range keys {
		if s, ok := raw[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// intField reads a numeric field. Gemini argument values arrive as float64.
func intField(raw map[string]any, fallback int, keys ...string) int {
	for _, key := range keys {
		switch n := raw[key].(type) {
		case float64:
			return int(n)
		case int:
			return n
		}
	}
	return fallback
}
