package recompute_trends_usecase

import (
	"context"
	"time"

	"toolbox/domain"
	"toolbox/port/trend_port"
	"toolbox/utils/logger"
	"toolbox/utils/metrics"
)

// TrendComputer is satisfied by *trend_ranking_usecase.TrendRanker.
type TrendComputer interface {
	Compute(ctx context.Context, date time.Time) ([]domain.TrendEntry, error)
}

type RecomputeTrendsUsecase struct {
	ranker TrendComputer
	repo   trend_port.TrendRepository
}

func NewRecomputeTrendsUsecase(ranker TrendComputer, repo trend_port.TrendRepository) *RecomputeTrendsUsecase {
	return &RecomputeTrendsUsecase{ranker: ranker, repo: repo}
}

// Execute recomputes the ranking for date and replaces the stored one. It returns the number of entries written.
func (u *RecomputeTrendsUsecase) Execute(ctx context.Context, date time.Time) (int, error) {
	day := domain.DateOf(date)
	start := time.Now()

	ranking, err := u.ranker.Compute(ctx, day)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to compute trends", "date", domain.FormatDate(day), "error", err)
		return 0, err
	}

	if err := u.repo.Replace(ctx, day, ranking); err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to replace trends", "date", domain.FormatDate(day), "error", err)
		return 0, err
	}

	metrics.SetTrendEntries(len(ranking))
	logger.Logger.InfoContext(ctx, "Trends recomputed",
		"date", domain.FormatDate(day),
		"entries", len(ranking),
		"duration_ms", time.Since(start).Milliseconds())

	return len(ranking), nil
}
