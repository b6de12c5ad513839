package task

import (
	"context"
	"time"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/auth"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/task"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/validator"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type TaskServiceImpl struct {
	db *database.DB
	task.TaskRepository
}

func NewTaskService(db *database.DB, taskRepository task.TaskRepository) task.TaskService {
	return &TaskServiceImpl{
		db:             db,
		TaskRepository: taskRepository,
	}
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	priority := task.PriorityMedium
	if req.Priority != nil {
		priority = *req.Priority
	}

	created, err := s.TaskRepository.Create(ctx, task.Task{
		UserID:      identity.UserID,
		Title:       req.Title,
		Description: req.Description,
		Status:      task.StatusPending,
		Priority:    priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return created.ToResponse(), nil
}

// Get implements task.TaskService.
func (s *TaskServiceImpl) Get(ctx context.Context, id string) (task.TaskResponse, error) {
	if !validator.IsValidUUID(id) {
		return task.TaskResponse{}, task.ErrTaskNotFound
	}

	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	found, err := s.TaskRepository.GetByIDAndUser(ctx, id, identity.UserID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return found.ToResponse(), nil
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, filter task.ListTasksFilter) (task.ListTasksResponse, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return task.ListTasksResponse{}, err
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	tasks, total, err := s.TaskRepository.ListByUser(ctx, identity.UserID, filter)
	if err != nil {
		return task.ListTasksResponse{}, err
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, t.ToResponse())
	}

	return task.ListTasksResponse{
		Tasks: responses,
		Pagination: task.Pagination{
			Total:  total,
			Limit:  filter.Limit,
			Offset: filter.Offset,
		},
	}, nil
}

// Update implements task.TaskService.
func (s *TaskServiceImpl) Update(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	current, err := s.TaskRepository.GetByIDAndUser(ctx, req.ID, identity.UserID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.Description != nil {
		current.Description = req.Description
	}
	if req.Priority != nil {
		current.Priority = *req.Priority
	}
	if req.DueDate != nil {
		current.DueDate = req.DueDate
	}
	if req.Status != nil {
		oldStatus := current.Status
		current.Status = *req.Status

		// completed_at tracks the transition into completed, nothing else.
		if *req.Status == task.StatusCompleted && oldStatus != task.StatusCompleted {
			now := time.Now()
			current.CompletedAt = &now
		} else if *req.Status != task.StatusCompleted {
			current.CompletedAt = nil
		}
	}

	updated, err := s.TaskRepository.Update(ctx, current)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return updated.ToResponse(), nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return task.ErrTaskNotFound
	}

	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return err
	}

	return s.TaskRepository.Delete(ctx, id, identity.UserID)
}
