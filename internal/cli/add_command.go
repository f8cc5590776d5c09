package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"todo-manager/internal/domain"
)

// AddCommand handles the add command
type AddCommand struct {
	app       *App
	important bool
	completed bool
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// BindFlags registers --important and --completed
func (c *AddCommand) BindFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&c.important, "important", "i", false, "Add to the Important section")
	flags.BoolVarP(&c.completed, "completed", "c", false, "Add the task already completed")
}

// Execute adds a task whose title is the joined arguments
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	priority := domain.PriorityNormal
	if c.important {
		priority = domain.PriorityImportant
	}
	status := domain.StatusPlanned
	if c.completed {
		status = domain.StatusCompleted
	}

	task, err := c.app.service.AddTask(ctx, strings.Join(args, " "), priority, status)
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.app.out, "Added %q to %s\n", task.Title, c.app.renderer.SectionTitle(task.Priority))
	return nil
}
