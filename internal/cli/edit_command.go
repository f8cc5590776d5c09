package cli

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"todo-manager/internal/domain"
	"todo-manager/internal/errors"
	"todo-manager/internal/services"
)

// EditCommand handles the edit command
type EditCommand struct {
	app      *App
	flags    *pflag.FlagSet
	title    string
	priority string
	status   string
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// BindFlags registers --title, --priority and --status
func (c *EditCommand) BindFlags(flags *pflag.FlagSet) {
	c.flags = flags
	flags.StringVarP(&c.title, "title", "t", "", "New title")
	flags.StringVarP(&c.priority, "priority", "p", "", "New priority: important or normal")
	flags.StringVarP(&c.status, "status", "s", "", "New status: planned or completed")
}

// Execute replaces the fields that were given on the command line
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	ref, err := parseRowRef(args[0], args[1])
	if err != nil {
		return c.app.errorHandler.Handle("edit task", err)
	}

	edit, err := c.buildEdit()
	if err != nil {
		return c.app.errorHandler.Handle("edit task", err)
	}

	task, err := c.app.service.EditTask(ctx, ref.priority, ref.index, edit)
	if err != nil {
		return c.app.errorHandler.Handle("edit task", err)
	}

	fmt.Fprintf(c.app.out, "Updated %q in %s\n", task.Title, c.app.renderer.SectionTitle(task.Priority))
	return nil
}

func (c *EditCommand) changed(name string) bool {
	return c.flags != nil && c.flags.Changed(name)
}

func (c *EditCommand) buildEdit() (services.TaskEdit, error) {
	var edit services.TaskEdit

	if c.changed("title") {
		title := c.title
		edit.Title = &title
	}
	if c.changed("priority") {
		priority, err := domain.ParsePriority(c.priority)
		if err != nil {
			return edit, errors.NewInvalidInputError("priority", c.priority, "must be important or normal")
		}
		edit.Priority = &priority
	}
	if c.changed("status") {
		status, err := domain.ParseStatus(c.status)
		if err != nil {
			return edit, errors.NewInvalidInputError("status", c.status, "must be planned or completed")
		}
		edit.Status = &status
	}

	if edit.Title == nil && edit.Priority == nil && edit.Status == nil {
		return edit, errors.NewInvalidInputError("flags", "", "give at least one of --title, --priority or --status")
	}
	return edit, nil
}
