package fetch_trends_usecase

import (
	"context"
	"time"

	"toolbox/domain"
	"toolbox/port/trend_port"
	"toolbox/utils/logger"
)

// MaxLimit caps how many entries a single read may return.
const MaxLimit = 500

type FetchTrendsUsecase struct {
	repo trend_port.TrendRepository
}

func NewFetchTrendsUsecase(repo trend_port.TrendRepository) *FetchTrendsUsecase {
	return &FetchTrendsUsecase{repo: repo}
}

// Execute returns the stored ranking for date. limit <= 0 or above MaxLimit is clamped to MaxLimit.
func (u *FetchTrendsUsecase) Execute(ctx context.Context, date time.Time, limit int) ([]domain.TrendEntry, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = MaxLimit
	}

	entries, err := u.repo.RankingFor(ctx, date, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch trends", "date", domain.FormatDate(date), "error", err)
		return nil, err
	}

	logger.Logger.InfoContext(ctx, "trends fetched", "date", domain.FormatDate(date), "count", len(entries))
	return entries, nil
}
