// Package errors provides structured error handling for the toolbox recompute service.
// It defines error types with codes, messages, causes, and contextual information
// so that failures keep their origin as they travel from drivers to the dispatcher.
package errors

import (
	"log/slog"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

// Error code constants for categorizing application errors.
const (
	ErrCodeDatabase    ErrorCode = "DATABASE_ERROR"
	ErrCodeQueue       ErrorCode = "QUEUE_ERROR"
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeExternalAPI ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeTimeout     ErrorCode = "TIMEOUT_ERROR"
	ErrCodeUnknown     ErrorCode = "UNKNOWN_ERROR"
)

// LogError logs an error with structured logging and context.
// AppContextError values contribute their code and context attributes.
func LogError(logger *slog.Logger, err error, operation string) {
	// Handle nil logger gracefully (e.g., during tests)
	if logger == nil || err == nil {
		return
	}

	switch e := err.(type) {
	case *AppContextError:
		args := []interface{}{
			"operation", operation,
			"error_code", e.Code,
			"error_message", e.Message,
			"layer", e.Layer,
			"component", e.Component,
		}
		for key, value := range e.Context {
			args = append(args, key, value)
		}
		if e.Cause != nil {
			args = append(args, "cause", e.Cause.Error())
		}
		logger.Error("application error occurred", args...)
	default:
		logger.Error("unknown error occurred",
			"operation", operation,
			"error", err.Error(),
		)
	}
}
