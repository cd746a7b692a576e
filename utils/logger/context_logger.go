package logger

import (
	"context"
	"log/slog"
	"time"
)

type ContextKey string

const (
	TickKey      ContextKey = "tick"
	TaskKey      ContextKey = "task"
	OperationKey ContextKey = "operation"
)

type ContextLogger struct {
	logger *slog.Logger
}

func NewContextLogger(logger *slog.Logger) *ContextLogger {
	return &ContextLogger{logger: logger}
}

// WithContext adds context values to log entries
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	args := make([]any, 0)

	if tick, ok := ctx.Value(TickKey).(string); ok {
		args = append(args, "tick", tick)
	}

	if task, ok := ctx.Value(TaskKey).(string); ok {
		args = append(args, "task", task)
	}

	if operation, ok := ctx.Value(OperationKey).(string); ok {
		args = append(args, "operation", operation)
	}

	return cl.logger.With(args...)
}

// WithTick stamps ctx with the tick timestamp so every log line of the tick carries it.
func WithTick(ctx context.Context, now time.Time) context.Context {
	return context.WithValue(ctx, TickKey, now.UTC().Format(time.RFC3339))
}

// WithOperation stamps ctx with the operation in progress, such as a dispatcher action.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, OperationKey, operation)
}

// WithTask stamps ctx with the task name being handled.
func WithTask(ctx context.Context, task string) context.Context {
	return context.WithValue(ctx, TaskKey, task)
}

func (cl *ContextLogger) LogDuration(ctx context.Context, operation string, duration time.Duration) {
	cl.WithContext(WithOperation(ctx, operation)).InfoContext(ctx, "operation completed",
		"duration_ms", duration.Milliseconds(),
	)
}

func (cl *ContextLogger) LogError(ctx context.Context, operation string, err error) {
	cl.WithContext(WithOperation(ctx, operation)).ErrorContext(ctx, "operation failed",
		"error", err,
	)
}
