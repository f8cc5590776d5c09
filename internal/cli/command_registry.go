package cli

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"todo-manager/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// FlagBinder is implemented by commands that accept flags
type FlagBinder interface {
	BindFlags(flags *pflag.FlagSet)
}

// CommandSpec describes how a command is invoked
type CommandSpec struct {
	Name    string
	Usage   string
	Short   string
	Long    string
	MinArgs int
	MaxArgs int // -1 for unbounded
	Command Command
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]CommandSpec
}

// NewCommandRegistry creates a registry with every to-do command
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]CommandSpec),
	}

	registry.Register(CommandSpec{
		Name:    "list",
		Usage:   "list",
		Short:   "List tasks by section",
		Long:    "Print the Important and Current sections. Row numbers are the ones other commands take.",
		MaxArgs: 0,
		Command: NewListCommand(app),
	})
	registry.Register(CommandSpec{
		Name:    "add",
		Usage:   "add [--important] [--completed] <title...>",
		Short:   "Add a task",
		Long:    "Add a task to the Current section, or to Important with --important.",
		MinArgs: 1,
		MaxArgs: -1,
		Command: NewAddCommand(app),
	})
	registry.Register(CommandSpec{
		Name:    "done",
		Usage:   "done <section> <row>",
		Short:   "Mark a planned task completed",
		MinArgs: 2,
		MaxArgs: 2,
		Command: NewDoneCommand(app),
	})
	registry.Register(CommandSpec{
		Name:    "undo",
		Usage:   "undo <section> <row>",
		Short:   "Mark a completed task planned again",
		MinArgs: 2,
		MaxArgs: 2,
		Command: NewUndoCommand(app),
	})
	registry.Register(CommandSpec{
		Name:    "select",
		Usage:   "select <section> <row>",
		Short:   "Select a row (completes a planned task)",
		MinArgs: 2,
		MaxArgs: 2,
		Command: NewSelectCommand(app),
	})
	registry.Register(CommandSpec{
		Name:    "edit",
		Usage:   "edit <section> <row> [--title T] [--priority P] [--status S]",
		Short:   "Edit a task",
		Long:    "Replace the title, priority or status of a task. Fields that are not given keep their value.",
		MinArgs: 2,
		MaxArgs: 2,
		Command: NewEditCommand(app),
	})
	registry.Register(CommandSpec{
		Name:    "move",
		Usage:   "move <section> <row> <to-section> <to-row>",
		Short:   "Move a task to another position",
		Long: `Move a task to a position in the same or another section. The list is not
re-sorted afterwards, so a completed task may sit above a planned one.

The position only lasts until the list is loaded again. Every todo command
loads the list from storage and sorts each section with planned tasks first,
so the next command shows a completed task back below the planned ones.`,
		MinArgs: 4,
		MaxArgs: 4,
		Command: NewMoveCommand(app),
	})
	registry.Register(CommandSpec{
		Name:    "rm",
		Usage:   "rm <section> <row>",
		Short:   "Delete a task",
		MinArgs: 2,
		MaxArgs: 2,
		Command: NewRemoveCommand(app),
	})
	registry.Register(CommandSpec{
		Name:    "actions",
		Usage:   "actions <section> <row>",
		Short:   "Show the actions available for a row",
		MinArgs: 2,
		MaxArgs: 2,
		Command: NewActionsCommand(app),
	})

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(spec CommandSpec) {
	r.commands[spec.Name] = spec
}

// Get returns the CommandSpec registered under name
func (r *CommandRegistry) Get(name string) (CommandSpec, bool) {
	spec, ok := r.commands[name]
	return spec, ok
}

// Names returns the registered command names in alphabetical order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute parses flags for the named command and runs it
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	spec, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}

	if binder, ok := spec.Command.(FlagBinder); ok {
		flags := pflag.NewFlagSet(commandName, pflag.ContinueOnError)
		flags.SetOutput(io.Discard)
		binder.BindFlags(flags)
		if err := flags.Parse(args); err != nil {
			return errors.NewInvalidInputError("flags", strings.Join(args, " "), err.Error())
		}
		args = flags.Args()
	}

	if err := spec.CheckArgs(args); err != nil {
		return err
	}
	return spec.Command.Execute(ctx, args)
}

// CheckArgs validates the positional argument count
func (s CommandSpec) CheckArgs(args []string) error {
	if len(args) < s.MinArgs || (s.MaxArgs >= 0 && len(args) > s.MaxArgs) {
		return errUsage("todo " + s.Usage)
	}
	return nil
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	usages := make([]string, 0, len(r.commands))
	for _, name := range r.Names() {
		usages = append(usages, "todo "+r.commands[name].Usage)
	}
	return strings.Join(usages, " or ")
}
