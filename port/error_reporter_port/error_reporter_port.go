package error_reporter_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=error_reporter_port.go -destination=../../mocks/mock_error_reporter_port.go -package=mocks

// ErrorReporter receives failures that must reach operators.
type ErrorReporter interface {
	Report(ctx context.Context, err error)
}
