package cli

import (
	"bytes"
	"context"
	"testing"

	"todo-manager/internal/config"
	"todo-manager/internal/domain"
	"todo-manager/internal/services"
)

// memoryTaskStore keeps the saved list in memory
type memoryTaskStore struct {
	tasks []domain.Task
	saves int
}

func (m *memoryTaskStore) Load(ctx context.Context) ([]domain.Task, error) {
	return append([]domain.Task(nil), m.tasks...), nil
}

func (m *memoryTaskStore) Save(ctx context.Context, tasks []domain.Task) error {
	m.tasks = append([]domain.Task(nil), tasks...)
	m.saves++
	return nil
}

func sampleTasks() []domain.Task {
	return []domain.Task{
		{Title: "Buy bread", Priority: domain.PriorityNormal, Status: domain.StatusPlanned},
		{Title: "Pay debt", Priority: domain.PriorityImportant, Status: domain.StatusCompleted},
		{Title: "Wash cat", Priority: domain.PriorityImportant, Status: domain.StatusPlanned},
	}
}

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Display.Color = false
	return cfg
}

func setupTestApp(t *testing.T, tasks []domain.Task) (*App, *bytes.Buffer, *memoryTaskStore) {
	t.Helper()
	store := &memoryTaskStore{tasks: tasks}
	cfg := testConfig()
	out := &bytes.Buffer{}
	return NewAppWithOutput(services.NewTaskService(store, cfg), cfg, out), out, store
}
