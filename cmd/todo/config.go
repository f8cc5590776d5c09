package main

import (
	"fmt"
	"os"

	"todo-manager/internal/api"
	"todo-manager/internal/config"
	"todo-manager/internal/services"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// ServiceFactory creates task services backed by the store that suits the environment
type ServiceFactory struct {
	env Environment
}

// NewServiceFactory creates a new service factory for the given environment
func NewServiceFactory(env Environment) *ServiceFactory {
	return &ServiceFactory{env: env}
}

// Create builds the task service for cfg. The returned func closes the store.
func (f *ServiceFactory) Create(cfg *config.Config) (services.TaskService, func() error, error) {
	var (
		a   api.API
		err error
	)

	switch f.env {
	case Development:
		a, err = f.createDevelopmentAPI(cfg)
	case Testing:
		a, err = f.createTestingAPI(cfg)
	default:
		a, err = f.createProductionAPI(cfg)
	}
	if err != nil {
		return nil, nil, err
	}
	return a, a.Close, nil
}

// createDevelopmentAPI keeps the database in the working directory
func (f *ServiceFactory) createDevelopmentAPI(cfg *config.Config) (api.API, error) {
	devCfg := *cfg
	devCfg.Storage.Dir = "."

	a, err := api.NewFromConfig(&devCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development store: %w", err)
	}
	return a, nil
}

// createTestingAPI uses an in-memory database that is discarded on exit
func (f *ServiceFactory) createTestingAPI(cfg *config.Config) (api.API, error) {
	repo, err := config.CreateTestRepository()
	if err != nil {
		return nil, err
	}

	a, err := api.New(repo, cfg)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to initialize testing store: %w", err)
	}
	return a, nil
}

// createProductionAPI uses the configured storage directory
func (f *ServiceFactory) createProductionAPI(cfg *config.Config) (api.API, error) {
	a, err := api.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	return a, nil
}

// getEnvironment determines the current environment from TODO_ENV
func getEnvironment() Environment {
	switch Environment(os.Getenv("TODO_ENV")) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}
