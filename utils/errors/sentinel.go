package errors

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors usable with errors.Is. Gateways wrap them in an
// AppContextError so callers get both the classification and the context.
var (
	ErrDatabaseUnavailable        = errors.New("database unavailable")
	ErrQueueUnavailable           = errors.New("task queue unavailable")
	ErrExternalServiceUnavailable = errors.New("external service unavailable")
	ErrOperationTimeout           = errors.New("operation timeout")
	ErrInvalidInput               = errors.New("invalid input")
)

// IsDatabaseError checks if an error represents a database-related problem
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseUnavailable)
}

// IsQueueError checks if an error represents a task queue problem
func IsQueueError(err error) bool {
	return errors.Is(err, ErrQueueUnavailable)
}

// IsExternalServiceError checks if an error represents an external service issue
func IsExternalServiceError(err error) bool {
	return errors.Is(err, ErrExternalServiceUnavailable)
}

// IsTimeoutError checks if an error represents a timeout condition
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrOperationTimeout)
}

// IsValidationError checks if an error represents invalid input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsTransient reports whether err is a collaborator failure (storage, queue,
// registry or timeout). Transient failures are propagated, never retried here.
func IsTransient(err error) bool {
	return IsDatabaseError(err) ||
		IsQueueError(err) ||
		IsExternalServiceError(err) ||
		IsTimeoutError(err)
}

func wrapSentinel(sentinel, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %w", sentinel, cause)
	}
	return fmt.Errorf("%w", sentinel)
}

// NewDatabaseUnavailableError creates an AppContextError that wraps ErrDatabaseUnavailable
// while keeping cause in the chain.
func NewDatabaseUnavailableError(layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(
		string(ErrCodeDatabase),
		"database unavailable",
		layer,
		component,
		operation,
		wrapSentinel(ErrDatabaseUnavailable, cause),
		context,
	)
}

// NewQueueUnavailableError creates an AppContextError that wraps ErrQueueUnavailable
func NewQueueUnavailableError(layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(
		string(ErrCodeQueue),
		"task queue unavailable",
		layer,
		component,
		operation,
		wrapSentinel(ErrQueueUnavailable, cause),
		context,
	)
}

// NewExternalServiceUnavailableError creates an AppContextError that wraps ErrExternalServiceUnavailable
func NewExternalServiceUnavailableError(layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(
		string(ErrCodeExternalAPI),
		"external service unavailable",
		layer,
		component,
		operation,
		wrapSentinel(ErrExternalServiceUnavailable, cause),
		context,
	)
}

// NewOperationTimeoutError creates an AppContextError that wraps ErrOperationTimeout
func NewOperationTimeoutError(layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(
		string(ErrCodeTimeout),
		"operation timeout",
		layer,
		component,
		operation,
		wrapSentinel(ErrOperationTimeout, cause),
		context,
	)
}

// NewInvalidInputError creates an AppContextError that wraps ErrInvalidInput
func NewInvalidInputError(message, layer, component, operation string, context map[string]interface{}) *AppContextError {
	return NewAppContextError(
		string(ErrCodeValidation),
		message,
		layer,
		component,
		operation,
		fmt.Errorf("%w", ErrInvalidInput),
		context,
	)
}

// ClassifyDatabaseError returns an operation timeout when cause is a missed
// deadline and a database unavailable error otherwise.
func ClassifyDatabaseError(layer, component, operation string, cause error, details map[string]interface{}) *AppContextError {
	if errors.Is(cause, context.DeadlineExceeded) {
		return NewOperationTimeoutError(layer, component, operation, cause, details)
	}
	return NewDatabaseUnavailableError(layer, component, operation, cause, details)
}

// ClassifyQueueError is ClassifyDatabaseError for the task queue.
func ClassifyQueueError(layer, component, operation string, cause error, details map[string]interface{}) *AppContextError {
	if errors.Is(cause, context.DeadlineExceeded) {
		return NewOperationTimeoutError(layer, component, operation, cause, details)
	}
	return NewQueueUnavailableError(layer, component, operation, cause, details)
}

// ClassifyExternalServiceError is ClassifyDatabaseError for registry calls.
func ClassifyExternalServiceError(layer, component, operation string, cause error, details map[string]interface{}) *AppContextError {
	if errors.Is(cause, context.DeadlineExceeded) {
		return NewOperationTimeoutError(layer, component, operation, cause, details)
	}
	return NewExternalServiceUnavailableError(layer, component, operation, cause, details)
}
