package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-manager/internal/domain"
)

func titlesOf(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

func TestAddCommand_Execute(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     string
		expected domain.Task
		wantErr  string
	}{
		{
			name:     "joins title words into Current",
			args:     []string{"add", "Feed", "the", "fish"},
			want:     "Added \"Feed the fish\" to Current\n",
			expected: domain.Task{Title: "Feed the fish", Priority: domain.PriorityNormal, Status: domain.StatusPlanned},
		},
		{
			name:     "important flag",
			args:     []string{"add", "--important", "Call", "bank"},
			want:     "Added \"Call bank\" to Important\n",
			expected: domain.Task{Title: "Call bank", Priority: domain.PriorityImportant, Status: domain.StatusPlanned},
		},
		{
			name:     "short flags after title",
			args:     []string{"add", "Old", "chore", "-i", "-c"},
			want:     "Added \"Old chore\" to Important\n",
			expected: domain.Task{Title: "Old chore", Priority: domain.PriorityImportant, Status: domain.StatusCompleted},
		},
		{
			name:    "missing title",
			args:    []string{"add", "--important"},
			wantErr: "usage: todo add",
		},
		{
			name:    "blank title",
			args:    []string{"add", "   "},
			wantErr: "failed to add task: title is required",
		},
		{
			name:    "unknown flag",
			args:    []string{"add", "--urgent", "x"},
			wantErr: "unknown flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out, store := setupTestApp(t, sampleTasks())

			err := app.Run(context.Background(), tt.args)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Zero(t, store.saves)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
			assert.Contains(t, store.tasks, tt.expected)
		})
	}
}

func TestAddCommand_FlagsResetBetweenRuns(t *testing.T) {
	app, _, store := setupTestApp(t, nil)
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, []string{"add", "-i", "first"}))
	require.NoError(t, app.Run(ctx, []string{"add", "second"}))

	assert.Equal(t, []domain.Task{
		{Title: "first", Priority: domain.PriorityImportant, Status: domain.StatusPlanned},
		{Title: "second", Priority: domain.PriorityNormal, Status: domain.StatusPlanned},
	}, store.tasks)
}

func TestDoneAndUndoCommands(t *testing.T) {
	app, out, store := setupTestApp(t, sampleTasks())
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, []string{"done", "normal", "1"}))
	assert.Equal(t, "Completed \"Buy bread\"\n", out.String())
	assert.Equal(t, domain.StatusCompleted, store.tasks[2].Status)

	err := app.Run(ctx, []string{"done", "normal", "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to complete task: cannot mark completed: task is completed")
	assert.Equal(t, 1, store.saves)

	out.Reset()
	require.NoError(t, app.Run(ctx, []string{"undo", "important", "2"}))
	assert.Equal(t, "Planned \"Pay debt\"\n", out.String())
	assert.Equal(t, []string{"Wash cat", "Pay debt", "Buy bread"}, titlesOf(store.tasks))
	assert.Equal(t, domain.StatusPlanned, store.tasks[1].Status)

	err = app.Run(ctx, []string{"undo", "important", "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to plan task")
}

func TestRowAddressing(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown section", []string{"done", "someday", "1"}, "section: must be important or normal"},
		{"row zero", []string{"done", "normal", "0"}, "row: must be a positive row number"},
		{"row not a number", []string{"rm", "normal", "first"}, "row: must be a positive row number"},
		{"row past end", []string{"rm", "normal", "2"}, "failed to delete task: task not found"},
		{"missing row", []string{"undo", "normal"}, "usage: todo undo <section> <row>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, store := setupTestApp(t, sampleTasks())

			err := app.Run(context.Background(), tt.args)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Zero(t, store.saves)
		})
	}
}

func TestSelectCommand_Execute(t *testing.T) {
	app, out, store := setupTestApp(t, sampleTasks())
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, []string{"select", "i", "1"}))
	assert.Equal(t, "complete \"Wash cat\"\n", out.String())
	assert.Equal(t, domain.StatusCompleted, store.tasks[0].Status)

	err := app.Run(ctx, []string{"select", "i", "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select task: cannot select task: task is completed")
}

func TestEditCommand_Execute(t *testing.T) {
	t.Run("title only", func(t *testing.T) {
		app, out, store := setupTestApp(t, sampleTasks())

		require.NoError(t, app.Run(context.Background(), []string{"edit", "normal", "1", "--title", "Buy rye bread"}))

		assert.Equal(t, "Updated \"Buy rye bread\" in Current\n", out.String())
		assert.Contains(t, store.tasks, domain.Task{Title: "Buy rye bread", Priority: domain.PriorityNormal, Status: domain.StatusPlanned})
	})

	t.Run("priority and status", func(t *testing.T) {
		app, out, store := setupTestApp(t, sampleTasks())

		require.NoError(t, app.Run(context.Background(), []string{"edit", "normal", "1", "-p", "important", "-s", "done"}))

		assert.Equal(t, "Updated \"Buy bread\" in Important\n", out.String())
		assert.Equal(t, []string{"Wash cat", "Pay debt", "Buy bread"}, titlesOf(store.tasks))
		assert.Equal(t, domain.PriorityImportant, store.tasks[2].Priority)
		assert.Equal(t, domain.StatusCompleted, store.tasks[2].Status)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		app, _, store := setupTestApp(t, sampleTasks())

		err := app.Run(context.Background(), []string{"edit", "normal", "1", "--title", ""})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to edit task: title is required")
		assert.Zero(t, store.saves)
	})

	t.Run("no fields", func(t *testing.T) {
		app, _, _ := setupTestApp(t, sampleTasks())

		err := app.Run(context.Background(), []string{"edit", "normal", "1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "give at least one of --title, --priority or --status")
	})

	t.Run("bad status", func(t *testing.T) {
		app, _, _ := setupTestApp(t, sampleTasks())

		err := app.Run(context.Background(), []string{"edit", "normal", "1", "--status", "someday"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status: must be planned or completed")
	})
}

func TestMoveCommand_Execute(t *testing.T) {
	app, out, store := setupTestApp(t, sampleTasks())
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, []string{"move", "normal", "1", "important", "1"}))
	assert.Equal(t, "Moved \"Buy bread\" to Important row 1\n", out.String())
	assert.Equal(t, []string{"Buy bread", "Wash cat", "Pay debt"}, titlesOf(store.tasks))
	assert.Equal(t, domain.PriorityImportant, store.tasks[0].Priority)

	out.Reset()
	require.NoError(t, app.Run(ctx, []string{"move", "important", "3", "important", "1"}))
	assert.Equal(t, []string{"Pay debt", "Buy bread", "Wash cat"}, titlesOf(store.tasks))

	err := app.Run(ctx, []string{"move", "important", "1", "normal", "2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to move task: position not found")
	assert.Equal(t, 2, store.saves)
}

func TestRemoveCommand_Execute(t *testing.T) {
	app, out, store := setupTestApp(t, sampleTasks())

	require.NoError(t, app.Run(context.Background(), []string{"rm", "important", "1"}))

	assert.Equal(t, "Deleted \"Wash cat\"\n", out.String())
	assert.Equal(t, []string{"Pay debt", "Buy bread"}, titlesOf(store.tasks))
}

func TestActionsCommand_Execute(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"planned row", []string{"actions", "important", "1"}, "complete\nedit\ndelete\n"},
		{"completed row", []string{"actions", "important", "2"}, "plan\nedit\ndelete\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out, store := setupTestApp(t, sampleTasks())

			require.NoError(t, app.Run(context.Background(), tt.args))

			assert.Equal(t, tt.want, out.String())
			assert.Zero(t, store.saves)
		})
	}
}
