package cli

import (
	"context"
	"fmt"
)

// ActionsCommand handles the actions command
type ActionsCommand struct {
	app *App
}

// NewActionsCommand creates a new actions command handler
func NewActionsCommand(app *App) *ActionsCommand {
	return &ActionsCommand{app: app}
}

// Execute prints one available action per line
func (c *ActionsCommand) Execute(ctx context.Context, args []string) error {
	ref, err := parseRowRef(args[0], args[1])
	if err != nil {
		return c.app.errorHandler.Handle("list actions", err)
	}

	actions, err := c.app.service.RowActions(ctx, ref.priority, ref.index)
	if err != nil {
		return c.app.errorHandler.Handle("list actions", err)
	}

	for _, action := range actions {
		fmt.Fprintln(c.app.out, action)
	}
	return nil
}
