package cli

import (
	stderrors "errors"
	"fmt"

	"todo-manager/internal/errors"
	"todo-manager/internal/logging"
	"todo-manager/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle turns err into the message shown for a failed operation.
// Soft failures leave the list untouched and are only traced at debug
// level. Other failures hide their cause from the user message, so the
// cause is logged as a warning together with the error code.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case eh.IsSoftFailure(err):
		logging.Debugf("%s left the list unchanged: %v", operation, err)
	case errors.ShouldLogError(err):
		logging.Warnf("%s failed [%s]: %v", operation, eh.GetErrorCode(err), err)
	}
	return fmt.Errorf("failed to %s: %s", operation, eh.message(err))
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	return stderrors.New(eh.message(err))
}

func (eh *ErrorHandler) message(err error) string {
	if eh.IsValidationError(err) {
		var validationErr *validation.ValidationError
		if stderrors.As(err, &validationErr) {
			return validationErr.GetUserFriendlyMessage()
		}
	}
	return errors.GetUserMessage(err)
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	return validation.IsValidationError(err) || errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsSoftFailure reports refusals caused by the current state of the list,
// such as a row past the end or completing a completed task.
func (eh *ErrorHandler) IsSoftFailure(err error) bool {
	return errors.IsNotFound(err) || errors.IsPreconditionFailed(err)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
