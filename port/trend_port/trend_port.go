package trend_port

import (
	"context"
	"time"

	"toolbox/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=trend_port.go -destination=../../mocks/mock_trend_port.go -package=mocks

type TrendRepository interface {
	// Replace atomically swaps the stored ranking for date with ranking.
	Replace(ctx context.Context, date time.Time, ranking []domain.TrendEntry) error
	// RankingFor returns the stored ranking for date by ascending position. limit <= 0 returns all entries.
	RankingFor(ctx context.Context, date time.Time, limit int) ([]domain.TrendEntry, error)
}
