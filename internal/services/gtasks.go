package services

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

// defaultTaskList is Google Tasks' alias for the user's primary list.
const defaultTaskList = "@default"

// TasksService proxies Google Tasks calls made with a user-supplied OAuth
// access token.
type TasksService struct{}

func NewTasksService() *TasksService {
	return &TasksService{}
}

func (s *TasksService) client(ctx context.Context, accessToken string) (*tasks.Service, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := tasks.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, &ProviderError{Message: err.Error()}
	}
	return svc, nil
}

type TaskInput struct {
	Title  string
	Notes  string
	Due    string
	Status string
}

func (s *TasksService) CreateTask(ctx context.Context, accessToken string, in TaskInput) (string, error) {
	svc, err := s.client(ctx, accessToken)
	if err != nil {
		return "", err
	}

	status := in.Status
	if status == "" {
		status = "needsAction"
	}

	task := &tasks.Task{
		Title:  in.Title,
		Notes:  in.Notes,
		Status: status,
	}
	if in.Due != "" {
		task.Due = in.Due
	}

	created, err := svc.Tasks.Insert(defaultTaskList, task).Context(ctx).Do()
	if err != nil {
		return "", translateGoogleError(err)
	}

	return created.Id, nil
}

func (s *TasksService) DeleteTask(ctx context.Context, accessToken, taskID string) error {
	svc, err := s.client(ctx, accessToken)
	if err != nil {
		return err
	}

	if err := svc.Tasks.Delete(defaultTaskList, taskID).Context(ctx).Do(); err != nil {
		return translateGoogleError(err)
	}
	return nil
}

func (s *TasksService) ListTasks(ctx context.Context, accessToken string) ([]*tasks.Task, error) {
	svc, err := s.client(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	result, err := svc.Tasks.List(defaultTaskList).ShowCompleted(true).ShowHidden(true).Context(ctx).Do()
	if err != nil {
		return nil, translateGoogleError(err)
	}

	return result.Items, nil
}

// UpdateTask reads the task first so unspecified fields are preserved.
func (s *TasksService) UpdateTask(ctx context.Context, accessToken, taskID string, title, notes, status *string) (*tasks.Task, error) {
	svc, err := s.client(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	task, err := svc.Tasks.Get(defaultTaskList, taskID).Context(ctx).Do()
	if err != nil {
		return nil, translateGoogleError(err)
	}

	if title != nil && *title != "" {
		task.Title = *title
	}
	if notes != nil && *notes != "" {
		task.Notes = *notes
	}
	if status != nil && *status != "" {
		task.Status = *status
	}

	updated, err := svc.Tasks.Update(defaultTaskList, taskID, task).Context(ctx).Do()
	if err != nil {
		return nil, translateGoogleError(err)
	}

	return updated, nil
}
