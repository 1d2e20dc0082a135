package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// TaskService exposes owner-scoped task operations.
type TaskService interface {
	List(ctx context.Context, userID int64) ([]model.Task, error)
	Get(ctx context.Context, id, userID int64) (*model.Task, error)
	Create(ctx context.Context, userID int64, in model.TaskInput) (*model.Task, error)
	Update(ctx context.Context, id, userID int64, in model.TaskInput) (*model.Task, error)
	Delete(ctx context.Context, id, userID int64) (*model.Task, error)
}

type taskService struct {
	repo repository.TaskRepository
	now  func() time.Time
}

// NewTaskService builds a TaskService on repo.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo, now: time.Now}
}

// List returns every task owned by userID. Owning none is reported as
// apperrors.ErrNoTasksFound rather than an empty slice.
func (s *taskService) List(ctx context.Context, userID int64) ([]model.Task, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, apperrors.ErrNoTasksFound
	}
	return tasks, nil
}

func (s *taskService) Get(ctx context.Context, id, userID int64) (*model.Task, error) {
	return s.findOwned(ctx, id, userID)
}

// Create stores a new task for userID stamped with the server clock.
func (s *taskService) Create(ctx context.Context, userID int64, in model.TaskInput) (*model.Task, error) {
	task := &model.Task{
		UserID:    userID,
		CreatedAt: s.now().UTC(),
	}
	task.Apply(in)

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Update replaces the editable fields of a task owned by userID.
func (s *taskService) Update(ctx context.Context, id, userID int64, in model.TaskInput) (*model.Task, error) {
	task, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	task.Apply(in)
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}
	return task, nil
}

// Delete removes a task owned by userID and returns it as it was.
func (s *taskService) Delete(ctx context.Context, id, userID int64) (*model.Task, error) {
	task, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return nil, fmt.Errorf("delete task %d: %w", id, err)
	}
	return task, nil
}

// findOwned reports a missing task and one owned by someone else identically.
func (s *taskService) findOwned(ctx context.Context, id, userID int64) (*model.Task, error) {
	task, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	return task, nil
}
