package handlers

import (
	"encoding/json"
	"net/http"

	"momentum-backend/internal/models"
	"momentum-backend/internal/services"
)

type TasksHandler struct {
	tasksService *services.TasksService
}

func NewTasksHandler(tasksService *services.TasksService) *TasksHandler {
	return &TasksHandler{tasksService: tasksService}
}

func (h *TasksHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.TaskItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	taskID, err := h.tasksService.CreateTask(r.Context(), req.AccessToken, services.TaskInput{
		Title:  req.Title,
		Notes:  req.Notes,
		Due:    req.Due,
		Status: req.Status,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"taskId": taskID, "status": "success"})
}

func (h *TasksHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := h.tasksService.DeleteTask(r.Context(), req.AccessToken, req.TaskID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (h *TasksHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	var req models.ListTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	items, err := h.tasksService.ListTasks(r.Context(), req.AccessToken)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tasks": items})
}

func (h *TasksHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	updated, err := h.tasksService.UpdateTask(r.Context(), req.AccessToken, req.TaskID, req.Title, req.Notes, req.Status)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "task": updated})
}
