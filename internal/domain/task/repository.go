package task

import "context"

// TaskRepository defines data access for tasks. Every method filters by the
// owning user, so a task owned by someone else behaves exactly like a task
// that does not exist.
type TaskRepository interface {
	// Create inserts a new task
	Create(ctx context.Context, newTask Task) (Task, error)

	// GetByIDAndUser retrieves a task by ID scoped to its owner
	GetByIDAndUser(ctx context.Context, id string, userID string) (Task, error)

	// Update persists changed fields of an owned task
	Update(ctx context.Context, updated Task) (Task, error)

	// Delete removes an owned task; ErrTaskNotFound when nothing matched
	Delete(ctx context.Context, id string, userID string) error

	// ListByUser retrieves tasks with filters and pagination plus the total
	// count for the filtered set
	ListByUser(ctx context.Context, userID string, filter ListTasksFilter) ([]Task, int64, error)
}
