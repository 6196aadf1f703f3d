package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// ToolFaultError is raised when a tool fails outside its structured result,
// e.g. undecodable parameters or a panic.
type ToolFaultError struct {
	ErrorMessage
	Tool string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewToolFaultError(tool string, cause any) *ToolFaultError {
	return &ToolFaultError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprint(cause)},
		Tool:         tool,
	}
}
