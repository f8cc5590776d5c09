package errors

import (
	"fmt"
)

// ErrorType classifies an AppError.
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypePreconditionFailed
	ErrorTypeMalformedRecord
	ErrorTypeDatabase
	ErrorTypeInvalidInput
	ErrorTypeTimeout
)

type typeInfo struct {
	name string
	code string
	// soft failures are caused by the caller and carry a message fit for display
	soft bool
	// shown instead of the message for hard failures
	display string
}

var typeTable = map[ErrorType]typeInfo{
	ErrorTypeValidation:         {name: "validation", code: "VALIDATION_FAILED", soft: true},
	ErrorTypeNotFound:           {name: "not_found", code: "NOT_FOUND", soft: true},
	ErrorTypePreconditionFailed: {name: "precondition_failed", code: "PRECONDITION_FAILED", soft: true},
	ErrorTypeInvalidInput:       {name: "invalid_input", code: "INVALID_INPUT", soft: true},
	ErrorTypeMalformedRecord:    {name: "malformed_record", code: "MALFORMED_RECORD", display: "Stored task data is malformed."},
	ErrorTypeDatabase:           {name: "database", code: "DATABASE_ERROR", display: "A storage error occurred. Please try again."},
	ErrorTypeTimeout:            {name: "timeout", code: "TIMEOUT", display: "The operation timed out. Please try again."},
}

const fallbackDisplay = "An unexpected error occurred. Please try again."

func (et ErrorType) String() string {
	if info, ok := typeTable[et]; ok {
		return info.name
	}
	return "unknown"
}

// Soft reports whether errors of this type are expected outcomes of a
// caller's request rather than faults of the program or its storage.
func (et ErrorType) Soft() bool {
	return typeTable[et].soft
}

// AppError is the structured error returned across package boundaries.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	msg := e.Type.String() + ": " + e.Message
	if e.Cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (caused by: %v)", msg, e.Cause)
}

func (e *AppError) Unwrap() error { return e.Cause }

// Is matches another AppError with the same type and code, so sentinel
// values work with errors.Is.
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	return ok && other.Type == e.Type && other.Code == e.Code
}

func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// displayMessage is what a user should see for this error.
func (e *AppError) displayMessage() string {
	info, known := typeTable[e.Type]
	switch {
	case !known:
		return fallbackDisplay
	case info.soft:
		return e.Message
	default:
		return info.display
	}
}
