package services

import "github.com/google/generative-ai-go/genai"

// assistantTools is the catalog of app actions the model may request. It is
// built once and never mutated. Parameter keys keep the spellings the app has
// always used on the wire; the action rules in actions.go rename them to the
// canonical fields the client consumes — every catalog name must have exactly
// one rule there.
var assistantTools = []*genai.Tool{
	{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        "navigate",
				Description: "Navigates to a specific page of the productivity app",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"pagina": {
							Type:        genai.TypeString,
							Enum:        []string{"tasks", "kanban", "schedules", "focus-timer", "notes", "youtube-player"},
							Description: "Name of the page to open",
						},
					},
					Required: []string{"pagina"},
				},
			},
			{
				Name:        "createGoal",
				Description: "Creates a new goal on the user's goal list",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"titulo": {
							Type:        genai.TypeString,
							Description: "Title of the goal",
						},
					},
					Required: []string{"titulo"},
				},
			},
			{
				Name:        "deleteGoal",
				Description: "Deletes a specific goal from the user's goal list",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"titulo_ou_id": {
							Type:        genai.TypeString,
							Description: "Title or ID of the goal to delete",
						},
					},
					Required: []string{"titulo_ou_id"},
				},
			},
			{
				Name:        "createKanbanCard",
				Description: "Adds a new card to the Kanban board",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"titulo": {
							Type:        genai.TypeString,
							Description: "Title of the Kanban card",
						},
						"coluna": {
							Type:        genai.TypeString,
							Enum:        []string{"todo", "in-progress", "done"},
							Description: "Column the card should be added to",
						},
					},
					Required: []string{"titulo", "coluna"},
				},
			},
			{
				Name:        "moveKanbanCard",
				Description: "Moves a Kanban card from one column to another",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"titulo_ou_id": {
							Type:        genai.TypeString,
							Description: "Title or ID of the card to move",
						},
						"nova_coluna": {
							Type:        genai.TypeString,
							Enum:        []string{"todo", "in-progress", "done"},
							Description: "Destination column",
						},
					},
					Required: []string{"titulo_ou_id", "nova_coluna"},
				},
			},
			{
				Name:        "createWeeklySchedule",
				Description: "Creates a new weekly schedule with activities organized by day of the week",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"titulo": {
							Type:        genai.TypeString,
							Description: "Title of the schedule",
						},
						"descricao": {
							Type:        genai.TypeString,
							Description: "Optional description of the schedule",
						},
						"atividades": {
							Type:        genai.TypeArray,
							Description: "List of schedule activities",
							Items:       activitySchema,
						},
					},
					Required: []string{"titulo", "atividades"},
				},
			},
			{
				Name:        "addScheduleActivities",
				Description: "Adds new activities to the most recent existing schedule",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"atividades": {
							Type:        genai.TypeArray,
							Description: "List of activities to add",
							Items:       activitySchema,
						},
					},
					Required: []string{"atividades"},
				},
			},
			{
				Name:        "configureProcrastinationAlarm",
				Description: "Configures the procrastination alarm",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"ativado": {
							Type:        genai.TypeBoolean,
							Description: "Whether the alarm should be enabled",
						},
						"tempo": {
							Type:        genai.TypeNumber,
							Description: "Minutes of inactivity before the alarm fires",
						},
					},
					Required: []string{"ativado", "tempo"},
				},
			},
			{
				Name:        "createManualAlarm",
				Description: "Creates a manual alarm",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"titulo": {
							Type:        genai.TypeString,
							Description: "Title of the alarm",
						},
						"tempo": {
							Type:        genai.TypeNumber,
							Description: "Minutes until the alarm goes off",
						},
					},
					Required: []string{"titulo", "tempo"},
				},
			},
			{
				Name:        "startFocusTimer",
				Description: "Starts the focus timer",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"minutos": {
							Type:        genai.TypeNumber,
							Description: "Duration in minutes",
						},
					},
				},
			},
			{
				Name:        "pauseFocusTimer",
				Description: "Pauses the focus timer",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: map[string]*genai.Schema{},
				},
			},
			{
				Name:        "stopFocusTimer",
				Description: "Stops the focus timer",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: map[string]*genai.Schema{},
				},
			},
			{
				Name:        "setTimerMode",
				Description: "Sets the focus timer mode",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"modo": {
							Type:        genai.TypeString,
							Enum:        []string{"pomodoro", "short", "long", "custom"},
							Description: "Timer mode",
						},
						"iniciar": {
							Type:        genai.TypeBoolean,
							Description: "Whether to start immediately",
						},
					},
					Required: []string{"modo"},
				},
			},
			{
				Name:        "toggleTimerLoop",
				Description: "Turns the timer loop on or off",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"ativado": {
							Type:        genai.TypeBoolean,
							Description: "Whether looping should be enabled",
						},
					},
					Required: []string{"ativado"},
				},
			},
		},
	},
}

var activitySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"titulo": {
			Type:        genai.TypeString,
			Description: "Name of the activity",
		},
		"descricao": {
			Type:        genai.TypeString,
			Description: "Description of the activity",
		},
		"dia_da_semana": {
			Type:        genai.TypeNumber,
			Description: "Day of the week (0=Sunday, 1=Monday, 2=Tuesday, 3=Wednesday, 4=Thursday, 5=Friday, 6=Saturday)",
		},
		"hora_inicio": {
			Type:        genai.TypeString,
			Description: "Start time (HH:MM format)",
		},
		"hora_fim": {
			Type:        genai.TypeString,
			Description: "End time (HH:MM format)",
		},
	},
	Required: []string{"titulo", "dia_da_semana"},
}

// catalogNames returns the declared tool names in catalog order.
func catalogNames() []string {
	var names []string
	for _, tool := range assistantTools {
		for _, decl := range tool.FunctionDeclarations {
			names = append(names, decl.Name)
		}
	}
	return names
}
