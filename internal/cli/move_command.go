package cli

import (
	"context"
	"fmt"
)

// MoveCommand handles the move command
type MoveCommand struct {
	app *App
}

// NewMoveCommand creates a new move command handler
func NewMoveCommand(app *App) *MoveCommand {
	return &MoveCommand{app: app}
}

// Execute moves a row to the given destination row. The destination row
// number counts the section after the task has been taken out of it.
func (c *MoveCommand) Execute(ctx context.Context, args []string) error {
	from, err := parseRowRef(args[0], args[1])
	if err != nil {
		return c.app.errorHandler.Handle("move task", err)
	}
	to, err := parseRowRef(args[2], args[3])
	if err != nil {
		return c.app.errorHandler.Handle("move task", err)
	}

	task, err := c.app.service.GetTask(ctx, from.priority, from.index)
	if err != nil {
		return c.app.errorHandler.Handle("move task", err)
	}
	if err := c.app.service.MoveTask(ctx, from.priority, from.index, to.priority, to.index); err != nil {
		return c.app.errorHandler.Handle("move task", err)
	}

	fmt.Fprintf(c.app.out, "Moved %q to %s row %d\n", task.Title, c.app.renderer.SectionTitle(to.priority), to.index+1)
	return nil
}
