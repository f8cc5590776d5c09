package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todo-manager/internal/domain"
	"todo-manager/internal/errors"
	"todo-manager/internal/logging"
	"todo-manager/internal/repository/sqlite"
)

const taskRecordSchemaURL = "todo://schemas/task-record.json"

const taskRecordSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["title", "type", "status"],
	"properties": {
		"title":  {"type": "string"},
		"type":   {"type": "string"},
		"status": {"type": "string"}
	}
}`

// keyValueTaskStore persists tasks as a JSON array of flat records under a
// single key of the key-value repository.
type keyValueTaskStore struct {
	repo   sqlite.Repository
	key    string
	mapper *domain.TaskMapper
	schema *jsonschema.Schema
}

// NewKeyValueTaskStore creates a TaskStore that reads and writes key in repo
func NewKeyValueTaskStore(repo sqlite.Repository, key string) (TaskStore, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errors.NewInvalidInputError("key", key, "storage key cannot be empty")
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(taskRecordSchemaURL, strings.NewReader(taskRecordSchema)); err != nil {
		return nil, fmt.Errorf("add task record schema: %w", err)
	}
	schema, err := compiler.Compile(taskRecordSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile task record schema: %w", err)
	}

	return &keyValueTaskStore{
		repo:   repo,
		key:    key,
		mapper: domain.NewTaskMapper(),
		schema: schema,
	}, nil
}

// Load decodes the stored list, skipping records that fail the record schema
func (s *keyValueTaskStore) Load(ctx context.Context) ([]domain.Task, error) {
	entry, err := s.repo.GetValue(ctx, s.key)
	if errors.IsNotFound(err) {
		logging.Debugf("no tasks stored under %q", s.key)
		return []domain.Task{}, nil
	}
	if err != nil {
		return nil, err
	}

	var raw []interface{}
	if err := json.Unmarshal([]byte(entry.Value), &raw); err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeMalformedRecord,
			fmt.Sprintf("stored value under %q is not a record list", s.key))
	}

	tasks := make([]domain.Task, 0, len(raw))
	for i, item := range raw {
		if err := s.schema.Validate(item); err != nil {
			logging.Debugln("skipped record", "error", errors.NewMalformedRecordError(i, err))
			continue
		}
		// the schema guarantees every required field
		task, _ := s.mapper.FromRecord(toTaskRecord(item.(map[string]interface{})))
		tasks = append(tasks, task)
	}

	logging.Debugf("loaded %d of %d stored tasks", len(tasks), len(raw))
	return tasks, nil
}

// Save encodes tasks in order and overwrites the stored list
func (s *keyValueTaskStore) Save(ctx context.Context, tasks []domain.Task) error {
	data, err := json.Marshal(s.mapper.ToRecords(tasks))
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeInvalidInput, "failed to encode tasks")
	}

	if err := s.repo.PutValue(ctx, &sqlite.Entry{Key: s.key, Value: string(data)}); err != nil {
		return err
	}

	logging.Debugf("saved %d tasks under %q", len(tasks), s.key)
	return nil
}

// toTaskRecord keeps the string fields of a schema-checked object
func toTaskRecord(obj map[string]interface{}) domain.TaskRecord {
	record := make(domain.TaskRecord, len(obj))
	for k, v := range obj {
		if s, ok := v.(string); ok {
			record[k] = s
		}
	}
	return record
}
