package enqueue_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=enqueue_port.go -destination=../../mocks/mock_enqueue_port.go -package=mocks

// Enqueuer hands a named task to the background job queue.
type Enqueuer interface {
	Enqueue(ctx context.Context, taskName string, payload any) error
}
