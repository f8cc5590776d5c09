package services

import (
	"context"
	"strings"

	"todo-manager/internal/config"
	"todo-manager/internal/domain"
	"todo-manager/internal/errors"
	"todo-manager/internal/logging"
	"todo-manager/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store         TaskStore
	collection    *domain.TaskCollection
	taskValidator *validation.TaskValidator
	titles        map[domain.Priority]string
	loaded        bool
}

// NewTaskService creates a TaskService over store. The collection is loaded
// from the store on first use.
func NewTaskService(store TaskStore, cfg *config.Config) TaskService {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &taskServiceImpl{
		store:         store,
		collection:    domain.NewTaskCollection(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
		titles: map[domain.Priority]string{
			domain.PriorityImportant: cfg.Display.ImportantTitle,
			domain.PriorityNormal:    cfg.Display.NormalTitle,
		},
	}
}

func (t *taskServiceImpl) ensureLoaded(ctx context.Context) error {
	if t.loaded {
		return nil
	}
	tasks, err := t.store.Load(ctx)
	if err != nil {
		return err
	}
	t.collection.Load(tasks)
	t.loaded = true
	for _, p := range t.collection.Priorities() {
		logging.Debugf("loaded %d %s tasks sorted by %v", t.collection.CountInGroup(p), p, t.collection.Statuses())
	}
	return nil
}

func (t *taskServiceImpl) save(ctx context.Context) error {
	return t.store.Save(ctx, t.collection.Tasks())
}

// mutate loads the collection, applies op and saves on success
func (t *taskServiceImpl) mutate(ctx context.Context, op func() error) error {
	if err := t.ensureLoaded(ctx); err != nil {
		return err
	}
	if err := op(); err != nil {
		logging.Debugf("soft failure: %v", err)
		return err
	}
	return t.save(ctx)
}

func (t *taskServiceImpl) validateTitle(title string) (string, error) {
	trimmed, err := t.taskValidator.GetValidTitle(title)
	if err != nil {
		return "", errors.NewValidationError("invalid task title", err)
	}
	return trimmed, nil
}

// Sections returns the groups in section order with their display titles
func (t *taskServiceImpl) Sections(ctx context.Context) ([]Section, error) {
	if err := t.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	sections := make([]Section, 0, t.collection.CountGroups())
	for _, p := range t.collection.Priorities() {
		sections = append(sections, Section{
			Priority: p,
			Title:    t.titles[p],
			Tasks:    t.collection.Group(p),
		})
	}
	return sections, nil
}

// GetTask returns the task at index in the group for priority
func (t *taskServiceImpl) GetTask(ctx context.Context, priority domain.Priority, index int) (domain.Task, error) {
	if err := t.ensureLoaded(ctx); err != nil {
		return domain.Task{}, err
	}
	return t.collection.TaskAt(priority, index)
}

// RowActions lists the actions offered for a row
func (t *taskServiceImpl) RowActions(ctx context.Context, priority domain.Priority, index int) ([]domain.Action, error) {
	task, err := t.GetTask(ctx, priority, index)
	if err != nil {
		return nil, err
	}
	return domain.RowActions(task), nil
}

// AddTask validates the new task and adds it to its group
func (t *taskServiceImpl) AddTask(ctx context.Context, title string, priority domain.Priority, status domain.Status) (domain.Task, error) {
	task := domain.NewTask(strings.TrimSpace(title), priority)
	task.Status = status
	if err := t.taskValidator.ValidateTask(task); err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task", err)
	}

	if err := t.mutate(ctx, func() error { return t.collection.Add(priority, task) }); err != nil {
		return domain.Task{}, err
	}

	logging.Debugf("added task %s", task)
	return task, nil
}

// CompleteTask marks a planned task completed
func (t *taskServiceImpl) CompleteTask(ctx context.Context, priority domain.Priority, index int) error {
	return t.mutate(ctx, func() error { return t.collection.MarkCompleted(priority, index) })
}

// PlanTask reopens a completed task
func (t *taskServiceImpl) PlanTask(ctx context.Context, priority domain.Priority, index int) error {
	return t.mutate(ctx, func() error { return t.collection.MarkPlanned(priority, index) })
}

// SelectTask applies the selection gesture to a row
func (t *taskServiceImpl) SelectTask(ctx context.Context, priority domain.Priority, index int) (domain.Action, error) {
	var action domain.Action
	err := t.mutate(ctx, func() error {
		task, err := t.collection.TaskAt(priority, index)
		if err != nil {
			return err
		}
		a, ok := domain.SelectAction(task)
		if !ok {
			return errors.NewPreconditionFailedError("select task", "task is "+task.Status.String())
		}
		action = a
		return t.collection.MarkCompleted(priority, index)
	})
	if err != nil {
		return "", err
	}
	return action, nil
}

// EditTask replaces the fields set in edit and keeps the rest
func (t *taskServiceImpl) EditTask(ctx context.Context, priority domain.Priority, index int, edit TaskEdit) (domain.Task, error) {
	current, err := t.GetTask(ctx, priority, index)
	if err != nil {
		return domain.Task{}, err
	}

	updated := current
	if edit.Title != nil {
		if updated.Title, err = t.validateTitle(*edit.Title); err != nil {
			return domain.Task{}, err
		}
	}
	if edit.Priority != nil {
		updated.Priority = *edit.Priority
	}
	if edit.Status != nil {
		updated.Status = *edit.Status
	}

	err = t.mutate(ctx, func() error {
		return t.collection.Replace(priority, index, updated.Title, updated.Priority, updated.Status)
	})
	if err != nil {
		return domain.Task{}, err
	}
	return updated, nil
}

// MoveTask relocates a task without re-sorting the destination group
func (t *taskServiceImpl) MoveTask(ctx context.Context, fromPriority domain.Priority, fromIndex int, toPriority domain.Priority, toIndex int) error {
	return t.mutate(ctx, func() error {
		return t.collection.Move(fromPriority, fromIndex, toPriority, toIndex)
	})
}

// RemoveTask deletes a task and returns it
func (t *taskServiceImpl) RemoveTask(ctx context.Context, priority domain.Priority, index int) (domain.Task, error) {
	var removed domain.Task
	err := t.mutate(ctx, func() error {
		var err error
		removed, err = t.collection.Remove(priority, index)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}
	return removed, nil
}
