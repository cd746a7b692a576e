package ignore_port

import (
	"context"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen -source=ignore_port.go -destination=../../mocks/mock_ignore_port.go -package=mocks

type IgnoreExpirer interface {
	ExpireIgnores(ctx context.Context, now time.Time) (int64, error)
}
