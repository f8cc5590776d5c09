package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-manager/internal/config"
	"todo-manager/internal/domain"
)

func TestTaskValidator_ValidateTitle(t *testing.T) {
	validator := NewTaskValidatorWithConfig(nil)

	tests := []struct {
		name        string
		input       string
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid title", "Pay debt", false, ""},
		{"Empty title", "", true, ErrorTypeRequired},
		{"Whitespace only", "   ", true, ErrorTypeRequired},
		{"Too long title", strings.Repeat("a", 256), true, ErrorTypeInvalidLength},
		{"Valid long title", strings.Repeat("a", 255), false, ""},
		{"Control characters", "Pay\ndebt", true, ErrorTypeInvalidCharacter},
		{"Punctuation allowed", "Task@#$% (important)!", false, ""},
		{"Non-ASCII allowed", "Помыть кота", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTitle(tt.input)

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.errorType, validationErr.Errors[0].Type)
		})
	}
}

func TestTaskValidator_ValidateTitleWithConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TitleMaxLength = 5
	validator := NewTaskValidatorWithConfig(cfg)

	assert.NoError(t, validator.ValidateTitle("short"))

	err := validator.ValidateTitle("too long")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 5")
}

func TestTaskValidator_ValidateTask(t *testing.T) {
	validator := NewTaskValidatorWithConfig(nil)

	assert.NoError(t, validator.ValidateTask(domain.Task{Title: "Pay debt"}))
	assert.NoError(t, validator.ValidateTask(domain.Task{
		Title:    "Wash cat",
		Priority: domain.PriorityImportant,
		Status:   domain.StatusCompleted,
	}))

	err := validator.ValidateTask(domain.Task{Title: "", Priority: domain.Priority(9), Status: domain.Status(9)})
	require.Error(t, err)
	validationErr := err.(*ValidationError)
	assert.Len(t, validationErr.Errors, 3)
	assert.Len(t, validationErr.GetFieldErrors("priority"), 1)
	assert.Len(t, validationErr.GetFieldErrors("status"), 1)
}

func TestTaskValidator_GetValidTitle(t *testing.T) {
	validator := NewTaskValidatorWithConfig(nil)

	title, err := validator.GetValidTitle("  Pay debt  ")
	require.NoError(t, err)
	assert.Equal(t, "Pay debt", title)

	title, err = validator.GetValidTitle("  ")
	assert.Error(t, err)
	assert.Empty(t, title)
}
