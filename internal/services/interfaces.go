package services

import (
	"context"

	"todo-manager/internal/domain"
)

// Section is one rendered priority group
type Section struct {
	Priority domain.Priority `json:"priority"`
	Title    string          `json:"title"`
	Tasks    []domain.Task   `json:"tasks"`
}

// TaskEdit describes a full edit of a task. Nil fields keep their current value.
type TaskEdit struct {
	Title    *string
	Priority *domain.Priority
	Status   *domain.Status
}

// TaskStore loads and saves the flat task list
type TaskStore interface {
	// Load returns the persisted tasks. A missing key yields an empty list
	// and records missing required fields are skipped.
	Load(ctx context.Context) ([]domain.Task, error)
	// Save overwrites the persisted list with tasks.
	Save(ctx context.Context, tasks []domain.Task) error
}

// TaskService is the presentation-facing workflow over a TaskCollection.
// Every successful mutation is persisted through the TaskStore.
type TaskService interface {
	// Read operations
	Sections(ctx context.Context) ([]Section, error)
	GetTask(ctx context.Context, priority domain.Priority, index int) (domain.Task, error)
	RowActions(ctx context.Context, priority domain.Priority, index int) ([]domain.Action, error)

	// Mutations
	AddTask(ctx context.Context, title string, priority domain.Priority, status domain.Status) (domain.Task, error)
	CompleteTask(ctx context.Context, priority domain.Priority, index int) error
	PlanTask(ctx context.Context, priority domain.Priority, index int) error
	SelectTask(ctx context.Context, priority domain.Priority, index int) (domain.Action, error)
	EditTask(ctx context.Context, priority domain.Priority, index int, edit TaskEdit) (domain.Task, error)
	MoveTask(ctx context.Context, fromPriority domain.Priority, fromIndex int, toPriority domain.Priority, toIndex int) error
	RemoveTask(ctx context.Context, priority domain.Priority, index int) (domain.Task, error)
}
