package validation

import (
	"todo-manager/internal/config"
	"todo-manager/internal/domain"
)

// TaskValidator provides validation for task input coming from the
// presentation layer.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidatorWithConfig creates a task validator using configured
// limits. A nil cfg uses the defaults.
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateTitle validates a task title for creation or edit
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()
	trimmed := tv.validator.TrimAndValidateString(title)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidTitleLength(trimmed) {
		validationError.AddInvalidLengthError("title", trimmed, tv.validator.TitleMinLength(), tv.validator.TitleMaxLength())
	}

	if !tv.validator.IsValidTitle(trimmed) {
		validationError.AddInvalidCharacterError("title", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTask validates a complete task
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if err := tv.ValidateTitle(task.Title); err != nil {
		if titleErr, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, titleErr.GetFieldErrors("title")...)
		}
	}
	if !task.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", task.Priority, "must be important or normal")
	}
	if !task.Status.IsValid() {
		validationError.AddInvalidValueError("status", task.Status, "must be planned or completed")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidTitle returns the trimmed title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}
