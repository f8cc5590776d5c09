package domain

import (
	"fmt"
	"slices"

	"todo-manager/internal/errors"
)

// DefaultPriorityOrder is the order sections are listed in.
var DefaultPriorityOrder = []Priority{PriorityImportant, PriorityNormal}

// DefaultStatusOrder is the order tasks are sorted in within a section.
var DefaultStatusOrder = []Status{StatusPlanned, StatusCompleted}

// TaskCollection owns the in-memory task list, partitioned into one ordered
// group per priority.
//
// Every mutator except Move and Remove leaves the groups it touched sorted by
// status order. Move deliberately keeps the position the caller asked for so
// a manual reorder is not undone. Failed operations leave the collection
// unchanged and return a not_found or precondition_failed *errors.AppError.
type TaskCollection struct {
	groups     map[Priority][]Task
	priorities []Priority
	statuses   []Status
}

// NewTaskCollection creates an empty collection with the default orders.
func NewTaskCollection() *TaskCollection {
	c := &TaskCollection{
		groups:     make(map[Priority][]Task, len(DefaultPriorityOrder)),
		priorities: slices.Clone(DefaultPriorityOrder),
		statuses:   slices.Clone(DefaultStatusOrder),
	}
	for _, p := range c.priorities {
		c.groups[p] = []Task{}
	}
	return c
}

// Load replaces the collection contents with tasks, grouped by priority in
// input order and then sorted by status.
func (c *TaskCollection) Load(tasks []Task) {
	for _, p := range c.priorities {
		c.groups[p] = []Task{}
	}
	for _, task := range tasks {
		group, ok := c.groups[task.Priority]
		if !ok {
			continue
		}
		c.groups[task.Priority] = append(group, task)
	}
	for _, p := range c.priorities {
		c.sortGroup(p)
	}
}

// Priorities returns the section order.
func (c *TaskCollection) Priorities() []Priority {
	return slices.Clone(c.priorities)
}

// Statuses returns the status sort order.
func (c *TaskCollection) Statuses() []Status {
	return slices.Clone(c.statuses)
}

// CountGroups returns the number of recognized priority groups, empty or not.
func (c *TaskCollection) CountGroups() int {
	return len(c.priorities)
}

// CountInGroup returns the number of tasks with the given priority.
func (c *TaskCollection) CountInGroup(p Priority) int {
	return len(c.groups[p])
}

// Group returns a copy of the tasks in the given group.
func (c *TaskCollection) Group(p Priority) []Task {
	return slices.Clone(c.groups[p])
}

// Tasks returns every task as a flat list, groups in priority order.
func (c *TaskCollection) Tasks() []Task {
	var all []Task
	for _, p := range c.priorities {
		all = append(all, c.groups[p]...)
	}
	return all
}

// TaskAt returns the task at index in the given group.
func (c *TaskCollection) TaskAt(p Priority, index int) (Task, error) {
	if err := c.checkIndex(p, index); err != nil {
		return Task{}, err
	}
	return c.groups[p][index], nil
}

// MarkCompleted completes a planned task and re-sorts its group.
func (c *TaskCollection) MarkCompleted(p Priority, index int) error {
	return c.transition(p, index, StatusPlanned, StatusCompleted, "mark completed")
}

// MarkPlanned reopens a completed task and re-sorts its group.
func (c *TaskCollection) MarkPlanned(p Priority, index int) error {
	return c.transition(p, index, StatusCompleted, StatusPlanned, "mark planned")
}

func (c *TaskCollection) transition(p Priority, index int, from, to Status, operation string) error {
	if err := c.checkIndex(p, index); err != nil {
		return err
	}
	task := &c.groups[p][index]
	if task.Status != from {
		return errors.NewPreconditionFailedError(operation, fmt.Sprintf("task is %s", task.Status))
	}
	task.Status = to
	c.sortGroup(p)
	return nil
}

// Replace overwrites the task at index with a full edit. A priority change
// moves the task to the end of the destination group before sorting.
func (c *TaskCollection) Replace(p Priority, index int, title string, newPriority Priority, newStatus Status) error {
	if err := c.checkIndex(p, index); err != nil {
		return err
	}
	if _, ok := c.groups[newPriority]; !ok {
		return errors.NewNotFoundError("priority group", newPriority.String())
	}
	if !newStatus.IsValid() {
		return errors.NewInvalidInputError("status", newStatus, "unrecognized status")
	}

	task := c.groups[p][index]
	task.Title = title
	task.Status = newStatus

	if newPriority == p {
		c.groups[p][index] = task
		c.sortGroup(p)
		return nil
	}

	c.groups[p] = slices.Delete(c.groups[p], index, index+1)
	task.Priority = newPriority
	c.groups[newPriority] = append(c.groups[newPriority], task)
	c.sortGroup(p)
	c.sortGroup(newPriority)
	return nil
}

// Move relocates a task to toIndex in the destination group without sorting.
// Within one group toIndex addresses the list after removal.
func (c *TaskCollection) Move(fromPriority Priority, fromIndex int, toPriority Priority, toIndex int) error {
	if err := c.checkIndex(fromPriority, fromIndex); err != nil {
		return err
	}
	dest, ok := c.groups[toPriority]
	if !ok {
		return errors.NewNotFoundError("priority group", toPriority.String())
	}
	limit := len(dest)
	if toPriority == fromPriority {
		limit--
	}
	if toIndex < 0 || toIndex > limit {
		return errors.NewNotFoundError("position", fmt.Sprintf("%s/%d", toPriority, toIndex))
	}

	task := c.groups[fromPriority][fromIndex]
	c.groups[fromPriority] = slices.Delete(c.groups[fromPriority], fromIndex, fromIndex+1)
	task.Priority = toPriority
	c.groups[toPriority] = slices.Insert(c.groups[toPriority], toIndex, task)
	return nil
}

// Remove deletes the task at index and returns it.
func (c *TaskCollection) Remove(p Priority, index int) (Task, error) {
	if err := c.checkIndex(p, index); err != nil {
		return Task{}, err
	}
	task := c.groups[p][index]
	c.groups[p] = slices.Delete(c.groups[p], index, index+1)
	return task, nil
}

// Add appends task to the group for p, overriding task.Priority, and sorts
// the group.
func (c *TaskCollection) Add(p Priority, task Task) error {
	group, ok := c.groups[p]
	if !ok {
		return errors.NewNotFoundError("priority group", p.String())
	}
	task.Priority = p
	c.groups[p] = append(group, task)
	c.sortGroup(p)
	return nil
}

func (c *TaskCollection) checkIndex(p Priority, index int) error {
	group, ok := c.groups[p]
	if !ok || index < 0 || index >= len(group) {
		return errors.NewNotFoundError("task", fmt.Sprintf("%s/%d", p, index))
	}
	return nil
}

func (c *TaskCollection) sortGroup(p Priority) {
	slices.SortStableFunc(c.groups[p], c.compareStatus)
}

func (c *TaskCollection) compareStatus(a, b Task) int {
	return c.statusRank(a.Status) - c.statusRank(b.Status)
}

func (c *TaskCollection) statusRank(s Status) int {
	if i := slices.Index(c.statuses, s); i >= 0 {
		return i
	}
	return len(c.statuses)
}
