package domain

// Field names of a persisted task record.
const (
	RecordKeyTitle  = "title"
	RecordKeyType   = "type"
	RecordKeyStatus = "status"
)

// TaskRecord is the flat persisted form of a Task.
type TaskRecord map[string]string

// TaskMapper handles conversion between domain tasks and persisted records.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a Task to its flat record.
func (m *TaskMapper) ToRecord(task Task) TaskRecord {
	priority := "normal"
	if task.Priority == PriorityImportant {
		priority = "important"
	}
	status := "planned"
	if task.Status == StatusCompleted {
		status = "completed"
	}
	return TaskRecord{
		RecordKeyTitle:  task.Title,
		RecordKeyType:   priority,
		RecordKeyStatus: status,
	}
}

// FromRecord converts a record to a Task. ok is false when a required field
// is missing. Unrecognized priorities decode as normal and unrecognized
// statuses as planned.
func (m *TaskMapper) FromRecord(record TaskRecord) (task Task, ok bool) {
	title, hasTitle := record[RecordKeyTitle]
	priority, hasType := record[RecordKeyType]
	status, hasStatus := record[RecordKeyStatus]
	if !hasTitle || !hasType || !hasStatus {
		return Task{}, false
	}

	task = Task{Title: title, Priority: PriorityNormal, Status: StatusPlanned}
	if priority == "important" {
		task.Priority = PriorityImportant
	}
	if status == "completed" {
		task.Status = StatusCompleted
	}
	return task, true
}

// ToRecords converts a slice of Tasks to records.
func (m *TaskMapper) ToRecords(tasks []Task) []TaskRecord {
	records := make([]TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}
