package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	task := NewTask("Buy bread", PriorityNormal)
	assert.Equal(t, Task{Title: "Buy bread", Priority: PriorityNormal, Status: StatusPlanned}, task)
	assert.False(t, task.IsCompleted())
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{
			name:     "valid planned task",
			task:     Task{Title: "Wash cat", Priority: PriorityImportant, Status: StatusPlanned},
			expected: true,
		},
		{
			name:     "empty title",
			task:     Task{Title: "", Priority: PriorityNormal},
			expected: false,
		},
		{
			name:     "unknown priority",
			task:     Task{Title: "x", Priority: Priority(7)},
			expected: false,
		},
		{
			name:     "unknown status",
			task:     Task{Title: "x", Status: Status(7)},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestPriority_String(t *testing.T) {
	assert.Equal(t, "important", PriorityImportant.String())
	assert.Equal(t, "normal", PriorityNormal.String())
	assert.Equal(t, "priority(5)", Priority(5).String())
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input    string
		expected Priority
		wantErr  bool
	}{
		{"important", PriorityImportant, false},
		{"Important", PriorityImportant, false},
		{"i", PriorityImportant, false},
		{"normal", PriorityNormal, false},
		{"current", PriorityNormal, false},
		{" n ", PriorityNormal, false},
		{"urgent", PriorityNormal, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected Status
		wantErr  bool
	}{
		{"planned", StatusPlanned, false},
		{"completed", StatusCompleted, false},
		{"done", StatusCompleted, false},
		{"C", StatusCompleted, false},
		{"archived", StatusPlanned, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
