package cli

import (
	"context"
	"fmt"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute prints every section in order
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	sections, err := c.app.service.Sections(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}
	fmt.Fprint(c.app.out, c.app.renderer.Sections(sections))
	return nil
}
