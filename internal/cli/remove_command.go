package cli

import (
	"context"
	"fmt"
)

// RemoveCommand handles the rm command
type RemoveCommand struct {
	app *App
}

// NewRemoveCommand creates a new rm command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{app: app}
}

// Execute deletes the addressed task
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	ref, err := parseRowRef(args[0], args[1])
	if err != nil {
		return c.app.errorHandler.Handle("delete task", err)
	}

	task, err := c.app.service.RemoveTask(ctx, ref.priority, ref.index)
	if err != nil {
		return c.app.errorHandler.Handle("delete task", err)
	}

	fmt.Fprintf(c.app.out, "Deleted %q\n", task.Title)
	return nil
}
