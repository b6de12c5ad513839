package task

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a user-owned work item. CompletedAt is set exactly when Status
// transitions into completed and cleared when it transitions away.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description *string
	Status      string
	Priority    string
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ValidStatuses() []string {
	return []string{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}
}

func ValidPriorities() []string {
	return []string{PriorityLow, PriorityMedium, PriorityHigh}
}
