package errors

import (
	"errors"
	"fmt"
)

// newError builds an AppError of the given type with the type's default
// code. kv is a flat list of context keys and values.
func newError(t ErrorType, cause error, message string, kv ...interface{}) *AppError {
	e := &AppError{
		Type:    t,
		Message: message,
		Code:    typeTable[t].code,
		Cause:   cause,
		Context: make(map[string]interface{}, len(kv)/2),
	}
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			e.Context[key] = kv[i+1]
		}
	}
	return e
}

func NewValidationError(message string, cause error) *AppError {
	return newError(ErrorTypeValidation, cause, message)
}

// NewNotFoundError reports a missing resource, such as a row reference past
// the end of a section.
func NewNotFoundError(resource string, identifier string) *AppError {
	return newError(ErrorTypeNotFound, nil,
		fmt.Sprintf("%s not found: %s", resource, identifier),
		"resource", resource, "identifier", identifier)
}

// NewPreconditionFailedError reports an operation requested on a task whose
// current state does not allow it.
func NewPreconditionFailedError(operation string, reason string) *AppError {
	return newError(ErrorTypePreconditionFailed, nil,
		fmt.Sprintf("cannot %s: %s", operation, reason),
		"operation", operation, "reason", reason)
}

// NewMalformedRecordError describes a persisted record at position index
// that could not be decoded.
func NewMalformedRecordError(index int, cause error) *AppError {
	return newError(ErrorTypeMalformedRecord, cause,
		fmt.Sprintf("malformed record at position %d", index),
		"index", index)
}

func NewDatabaseError(operation string, cause error) *AppError {
	return newError(ErrorTypeDatabase, cause,
		"database operation failed: "+operation,
		"operation", operation)
}

func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return newError(ErrorTypeInvalidInput, nil,
		fmt.Sprintf("invalid input for %s: %s", field, reason),
		"field", field, "value", value, "reason", reason)
}

func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return newError(ErrorTypeTimeout, nil,
		"operation timed out: "+operation,
		"operation", operation, "timeout", timeout)
}

// WrapError wraps err under errorType. The code is the type name.
func WrapError(err error, errorType ErrorType, message string) *AppError {
	e := newError(errorType, err, message)
	e.Code = errorType.String()
	return e
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func IsErrorType(err error, errorType ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.IsType(errorType)
}

func IsNotFound(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

func IsPreconditionFailed(err error) bool {
	return IsErrorType(err, ErrorTypePreconditionFailed)
}

// GetUserMessage returns the message to show for err. Soft failures keep
// their own message; storage and timeout failures get a generic one.
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.displayMessage()
	}
	return err.Error()
}

func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError is false for soft failures.
func ShouldLogError(err error) bool {
	appErr, ok := AsAppError(err)
	return !ok || !appErr.Type.Soft()
}
