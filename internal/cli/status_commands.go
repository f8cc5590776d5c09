package cli

import (
	"context"
	"fmt"
)

// DoneCommand handles the done command
type DoneCommand struct {
	app *App
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app}
}

// Execute marks the addressed task completed
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	ref, err := parseRowRef(args[0], args[1])
	if err != nil {
		return c.app.errorHandler.Handle("complete task", err)
	}

	task, err := c.app.service.GetTask(ctx, ref.priority, ref.index)
	if err != nil {
		return c.app.errorHandler.Handle("complete task", err)
	}
	if err := c.app.service.CompleteTask(ctx, ref.priority, ref.index); err != nil {
		return c.app.errorHandler.Handle("complete task", err)
	}

	fmt.Fprintf(c.app.out, "Completed %q\n", task.Title)
	return nil
}

// UndoCommand handles the undo command
type UndoCommand struct {
	app *App
}

// NewUndoCommand creates a new undo command handler
func NewUndoCommand(app *App) *UndoCommand {
	return &UndoCommand{app: app}
}

// Execute marks the addressed task planned again
func (c *UndoCommand) Execute(ctx context.Context, args []string) error {
	ref, err := parseRowRef(args[0], args[1])
	if err != nil {
		return c.app.errorHandler.Handle("plan task", err)
	}

	task, err := c.app.service.GetTask(ctx, ref.priority, ref.index)
	if err != nil {
		return c.app.errorHandler.Handle("plan task", err)
	}
	if err := c.app.service.PlanTask(ctx, ref.priority, ref.index); err != nil {
		return c.app.errorHandler.Handle("plan task", err)
	}

	fmt.Fprintf(c.app.out, "Planned %q\n", task.Title)
	return nil
}

// SelectCommand handles the select command, the equivalent of tapping a row
type SelectCommand struct {
	app *App
}

// NewSelectCommand creates a new select command handler
func NewSelectCommand(app *App) *SelectCommand {
	return &SelectCommand{app: app}
}

// Execute applies the selection action of the addressed row
func (c *SelectCommand) Execute(ctx context.Context, args []string) error {
	ref, err := parseRowRef(args[0], args[1])
	if err != nil {
		return c.app.errorHandler.Handle("select task", err)
	}

	task, err := c.app.service.GetTask(ctx, ref.priority, ref.index)
	if err != nil {
		return c.app.errorHandler.Handle("select task", err)
	}
	action, err := c.app.service.SelectTask(ctx, ref.priority, ref.index)
	if err != nil {
		return c.app.errorHandler.Handle("select task", err)
	}

	fmt.Fprintf(c.app.out, "%s %q\n", action, task.Title)
	return nil
}
