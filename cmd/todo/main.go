package main

import (
	"context"
	"fmt"
	"os"

	"todo-manager/internal/cli"
	"todo-manager/internal/config"
	"todo-manager/internal/logging"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	env := getEnvironment()
	logging.Debugf("starting in %s environment", env)
	factory := NewServiceFactory(env)

	root := cli.NewRootCommand(cfg, factory.Create, os.Stdout)
	err = root.ExecuteContext(context.Background())
	if closeErr := root.Close(); closeErr != nil {
		logging.Warnf("closing task list: %v", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
