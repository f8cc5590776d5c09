package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"todo-manager/internal/config"
	"todo-manager/internal/logging"
	"todo-manager/internal/services"
)

// ServiceFactory builds the task service once configuration is final. The
// returned close func releases whatever the service holds open.
type ServiceFactory func(cfg *config.Config) (services.TaskService, func() error, error)

// defaultCommand runs when todo is invoked without a subcommand
const defaultCommand = "list"

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	app     *App
	config  *config.Config
	factory ServiceFactory
	closer  func() error
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, factory ServiceFactory, out io.Writer) *RootCommand {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	root := &RootCommand{
		app:     NewAppWithOutput(nil, cfg, out),
		config:  cfg,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A command-line to-do list with Important and Current sections",
		Long: `todo keeps a to-do list split into two sections, Important and Current.
Inside each section planned tasks are listed before completed ones.

EXAMPLES:
  todo add "Buy bread"                     # Add to Current
  todo add --important "Pay debt"          # Add to Important
  todo list                                # Show both sections with row numbers
  todo                                     # Same as todo list
  todo done important 1                    # Complete the first Important task
  todo undo important 2                    # Plan a completed task again
  todo edit normal 1 --priority important  # Move a task to Important via edit
  todo move normal 2 important 1           # Reorder without re-sorting
  todo rm normal 3                         # Delete a task
  todo actions important 1                 # Show what can be done with a row

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  The config file is TOML, read from $TODO_CONFIG or ~/.todo/config.toml.

  Storage:
    TODO_STORAGE_DIR                       Storage directory (default: ~/.todo)
    TODO_STORAGE_FILENAME                  Database filename (default: todo.db)
    TODO_STORAGE_KEY                       Key the list is stored under (default: tasks)
    TODO_STORAGE_QUERY_TIMEOUT             Query timeout (default: 10s)
    TODO_STORAGE_WRITE_TIMEOUT             Write timeout (default: 5s)

  Validation:
    TODO_VALIDATION_TITLE_MIN              Min title length (default: 1)
    TODO_VALIDATION_TITLE_MAX              Max title length (default: 255)

  Display:
    TODO_DISPLAY_IMPORTANT_TITLE           Important section title (default: Important)
    TODO_DISPLAY_NORMAL_TITLE              Normal section title (default: Current)
    TODO_DISPLAY_COLOR                     Colored output (default: true, NO_COLOR disables)

  Application:
    TODO_APP_TIMEOUT                       Command timeout (default: 30s)
    TODO_APP_VERBOSE                       Debug logging (default: false)
    TODO_DEBUG                             Debug logging to stderr when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.prepare(cmd)
		},
		// a bare "todo" shows the list
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), root.getAppTimeout())
			defer cancel()

			return root.app.Run(ctx, append([]string{defaultCommand}, args...))
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx as the parent of every command context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, mainly for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Close releases the service built for the last run
func (r *RootCommand) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer()
	r.closer = nil
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("storage-dir", "", "Storage directory (overrides TODO_STORAGE_DIR)")
	flags.String("storage-filename", "", "Database filename (overrides TODO_STORAGE_FILENAME)")
	flags.String("storage-key", "", "Key the list is stored under (overrides TODO_STORAGE_KEY)")
	flags.Duration("query-timeout", 0, "Storage query timeout (overrides TODO_STORAGE_QUERY_TIMEOUT)")
	flags.Duration("write-timeout", 0, "Storage write timeout (overrides TODO_STORAGE_WRITE_TIMEOUT)")

	flags.Int("title-min-length", 0, "Minimum title length (overrides TODO_VALIDATION_TITLE_MIN)")
	flags.Int("title-max-length", 0, "Maximum title length (overrides TODO_VALIDATION_TITLE_MAX)")

	flags.Bool("no-color", false, "Disable colored output (overrides TODO_DISPLAY_COLOR)")

	flags.Duration("app-timeout", 0, "Command timeout (overrides TODO_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable debug logging (overrides TODO_APP_VERBOSE)")
}

// addSubcommands mirrors every registered command as a cobra subcommand
func (r *RootCommand) addSubcommands() {
	registry := r.app.Registry()
	for _, name := range registry.Names() {
		spec, _ := registry.Get(name)

		sub := &cobra.Command{
			Use:   spec.Usage,
			Short: spec.Short,
			Long:  spec.Long,
			Args: func(cmd *cobra.Command, args []string) error {
				return r.app.errorHandler.HandleSimple(spec.CheckArgs(args))
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
				defer cancel()

				return spec.Command.Execute(ctx, args)
			},
		}
		if binder, ok := spec.Command.(FlagBinder); ok {
			binder.BindFlags(sub.Flags())
		}
		r.cmd.AddCommand(sub)
	}
}

// prepare applies flag overrides and builds the service before a subcommand runs
func (r *RootCommand) prepare(cmd *cobra.Command) error {
	overrides, err := r.getConfigFromFlags(cmd)
	if err != nil {
		return err
	}
	if err := config.ApplyOverrides(r.config, overrides); err != nil {
		return err
	}
	logging.SetVerbose(r.config.Application.Verbose)
	r.app.SetConfig(r.config)

	if r.factory == nil {
		return fmt.Errorf("no task service configured")
	}
	if err := r.Close(); err != nil {
		logging.Warnf("closing previous task service: %v", err)
	}
	service, closer, err := r.factory(r.config)
	if err != nil {
		return r.app.errorHandler.Handle("open task list", err)
	}
	r.app.SetService(service)
	r.closer = closer
	return nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// getConfigFromFlags collects an override for every flag the user set
func (r *RootCommand) getConfigFromFlags(cmd *cobra.Command) (*config.ConfigOverrides, error) {
	if r.config == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}

	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("storage-dir") {
		v, _ := flags.GetString("storage-dir")
		overrides.StorageDir = &v
	}
	if flags.Changed("storage-filename") {
		v, _ := flags.GetString("storage-filename")
		overrides.StorageFilename = &v
	}
	if flags.Changed("storage-key") {
		v, _ := flags.GetString("storage-key")
		overrides.StorageKey = &v
	}
	if flags.Changed("query-timeout") {
		v, _ := flags.GetDuration("query-timeout")
		overrides.QueryTimeout = &v
	}
	if flags.Changed("write-timeout") {
		v, _ := flags.GetDuration("write-timeout")
		overrides.WriteTimeout = &v
	}
	if flags.Changed("title-min-length") {
		v, _ := flags.GetInt("title-min-length")
		overrides.TitleMinLength = &v
	}
	if flags.Changed("title-max-length") {
		v, _ := flags.GetInt("title-max-length")
		overrides.TitleMaxLength = &v
	}
	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		color := !noColor
		overrides.Color = &color
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides, nil
}
