package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// NotFoundError is returned when a requested record does not exist.
type NotFoundError struct {
	ErrorMessage
}

// ValidationError covers bad user input: wrong file type, missing chart
// columns, unknown color schemes, insufficient numeric columns.
type ValidationError struct {
	ErrorMessage
}

// ParseError covers malformed or undecodable tabular input.
type ParseError struct {
	ErrorMessage
	Cause error
}

// RenderError is an unexpected failure inside a rendering strategy.
type RenderError struct {
	ErrorMessage
	Cause error
}

// DatabaseError wraps storage failures with the attempted operation.
type DatabaseError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

func (e *DatabaseError) Unwrap() error { return e.Cause }

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

func NewParseError(message string, cause error) *ParseError {
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return &ParseError{
		ErrorMessage: ErrorMessage{Message: message},
		Cause:        cause,
	}
}

func (e *ParseError) Unwrap() error { return e.Cause }

func NewRenderError(message string, cause error) *RenderError {
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return &RenderError{
		ErrorMessage: ErrorMessage{Message: message},
		Cause:        cause,
	}
}

func (e *RenderError) Unwrap() error { return e.Cause }

func NewDatabaseError(operation, message string, cause error) *DatabaseError {
	return &DatabaseError{
		Operation: operation,
		Message:   message,
		Cause:     cause,
	}
}
