package domain

import (
	"fmt"
	"strings"
)

// Priority selects the section a task is listed under.
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityImportant
)

// Status tracks whether a task is still to be done.
type Status int

const (
	StatusPlanned Status = iota
	StatusCompleted
)

// String returns the persisted encoding of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityImportant:
		return "important"
	case PriorityNormal:
		return "normal"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// IsValid reports whether p is one of the recognized priorities.
func (p Priority) IsValid() bool {
	return p == PriorityNormal || p == PriorityImportant
}

// ParsePriority parses a user supplied priority name.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "important", "i":
		return PriorityImportant, nil
	case "normal", "n", "current":
		return PriorityNormal, nil
	default:
		return PriorityNormal, fmt.Errorf("unknown priority %q", s)
	}
}

// String returns the persisted encoding of the status.
func (s Status) String() string {
	switch s {
	case StatusPlanned:
		return "planned"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// IsValid reports whether s is one of the recognized statuses.
func (s Status) IsValid() bool {
	return s == StatusPlanned || s == StatusCompleted
}

// ParseStatus parses a user supplied status name.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "planned", "p":
		return StatusPlanned, nil
	case "completed", "done", "c":
		return StatusCompleted, nil
	default:
		return StatusPlanned, fmt.Errorf("unknown status %q", s)
	}
}

// Task represents a to-do item.
type Task struct {
	Title    string
	Priority Priority
	Status   Status
}

// NewTask creates a planned task with the given title and priority.
func NewTask(title string, priority Priority) Task {
	return Task{
		Title:    title,
		Priority: priority,
		Status:   StatusPlanned,
	}
}

// IsValid checks if the task has a title and recognized enum values.
func (t Task) IsValid() bool {
	return t.Title != "" && t.Priority.IsValid() && t.Status.IsValid()
}

// IsCompleted reports whether the task has been done.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
