package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	ve := NewValidationError()
	assert.Equal(t, "validation error", ve.Error())

	ve.AddRequiredError("title")
	assert.Equal(t, "title: title is required", ve.Error())

	ve.AddInvalidValueError("status", "x", "must be planned or completed")
	assert.Contains(t, ve.Error(), "2 validation errors")
	assert.Contains(t, ve.Error(), "status has invalid value")
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddRequiredError("title")
	assert.True(t, ve.HasErrors())
}

func TestValidationError_AddInvalidLengthError(t *testing.T) {
	ve := NewValidationError()
	ve.AddInvalidLengthError("title", "abc", 5, 10)

	assert.Len(t, ve.Errors, 1)
	assert.Equal(t, ErrorTypeInvalidLength, ve.Errors[0].Type)
	assert.Equal(t, "title must be between 5 and 10 characters long", ve.Errors[0].Message)
	assert.Equal(t, "abc", ve.Errors[0].Value)
}

func TestValidationError_AddInvalidCharacterError(t *testing.T) {
	ve := NewValidationError()
	ve.AddInvalidCharacterError("title", "a\tb")

	assert.Equal(t, ErrorTypeInvalidCharacter, ve.Errors[0].Type)
	assert.Equal(t, "title contains invalid characters", ve.Errors[0].Message)
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("title")
	ve.AddInvalidValueError("priority", 7, "out of range")
	ve.AddInvalidCharacterError("title", "\n")

	assert.Len(t, ve.GetFieldErrors("title"), 2)
	assert.Len(t, ve.GetFieldErrors("priority"), 1)
	assert.Empty(t, ve.GetFieldErrors("status"))
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	assert.Equal(t, "Input validation failed", ve.GetUserFriendlyMessage())

	ve.AddRequiredError("title")
	assert.Equal(t, "title is required", ve.GetUserFriendlyMessage())

	ve.AddInvalidCharacterError("title", "\n")
	assert.Equal(t,
		"Multiple validation errors occurred:\n- title is required\n- title contains invalid characters",
		ve.GetUserFriendlyMessage())
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError()))
	assert.False(t, IsValidationError(errors.New("plain")))
	assert.False(t, IsValidationError(nil))
}
