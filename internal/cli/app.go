package cli

import (
	"context"
	"io"

	"todo-manager/internal/config"
	"todo-manager/internal/services"
)

// App represents the main CLI application
type App struct {
	service      services.TaskService
	config       *config.Config
	out          io.Writer
	renderer     *Renderer
	errorHandler *ErrorHandler
	registry     *CommandRegistry
}

// NewAppWithOutput creates a CLI application writing to out
func NewAppWithOutput(service services.TaskService, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		service:      service,
		config:       cfg,
		out:          out,
		renderer:     NewRenderer(cfg.Display, out),
		errorHandler: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.errorHandler.HandleSimple(errUsage(a.registry.GetUsage()))
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

// SetService replaces the task service the commands talk to
func (a *App) SetService(service services.TaskService) {
	a.service = service
}

// SetConfig replaces the configuration and rebuilds the renderer
func (a *App) SetConfig(cfg *config.Config) {
	a.config = cfg
	a.renderer = NewRenderer(cfg.Display, a.out)
}

// Registry returns the registered commands
func (a *App) Registry() *CommandRegistry {
	return a.registry
}
