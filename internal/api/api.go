package api

import (
	"todo-manager/internal/config"
	"todo-manager/internal/repository/sqlite"
	"todo-manager/internal/services"
)

// API is the single entry point the presentation layer talks to. It owns
// the key-value repository the task service is built on.
type API interface {
	services.TaskService

	// Close releases the underlying repository
	Close() error
}

type apiImpl struct {
	services.TaskService

	repo sqlite.Repository
}

// New wires the task store and task service over repo using cfg.
func New(repo sqlite.Repository, cfg *config.Config) (API, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	store, err := services.NewKeyValueTaskStore(repo, cfg.Storage.Key)
	if err != nil {
		return nil, err
	}
	return &apiImpl{
		TaskService: services.NewTaskService(store, cfg),
		repo:        repo,
	}, nil
}

// NewFromConfig opens the repository described by cfg and wires the API over it.
func NewFromConfig(cfg *config.Config) (API, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, err
	}

	a, err := New(repo, cfg)
	if err != nil {
		repo.Close()
		return nil, err
	}
	return a, nil
}

func (a *apiImpl) Close() error {
	return a.repo.Close()
}
