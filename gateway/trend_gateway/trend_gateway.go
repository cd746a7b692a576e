package trend_gateway

import (
	"context"
	"time"

	"toolbox/domain"
	"toolbox/driver/toolbox_db"
	"toolbox/utils/errors"
	"toolbox/utils/logger"
)

// TrendGateway implements trend_port.TrendRepository.
type TrendGateway struct {
	repo *toolbox_db.ToolboxDBRepository
}

func NewTrendGateway(pool toolbox_db.PgxIface) *TrendGateway {
	return &TrendGateway{repo: toolbox_db.NewToolboxDBRepository(pool)}
}

// Replace rejects a malformed ranking before opening a transaction.
func (g *TrendGateway) Replace(ctx context.Context, date time.Time, ranking []domain.TrendEntry) error {
	day := domain.DateOf(date)
	if err := domain.ValidateRanking(day, ranking); err != nil {
		return errors.NewInvalidInputError(err.Error(), "gateway", "TrendGateway", "Replace", map[string]interface{}{
			"date":    domain.FormatDate(day),
			"entries": len(ranking),
		})
	}

	if err := g.repo.ReplaceTrends(ctx, day, ranking); err != nil {
		dbErr := errors.ClassifyDatabaseError("gateway", "TrendGateway", "Replace", err, map[string]interface{}{
			"date":    domain.FormatDate(day),
			"entries": len(ranking),
		})
		errors.LogError(logger.Logger, dbErr, "replace_trends")
		return dbErr
	}
	return nil
}

func (g *TrendGateway) RankingFor(ctx context.Context, date time.Time, limit int) ([]domain.TrendEntry, error) {
	day := domain.DateOf(date)
	entries, err := g.repo.FetchTrends(ctx, day, limit)
	if err != nil {
		dbErr := errors.ClassifyDatabaseError("gateway", "TrendGateway", "RankingFor", err, map[string]interface{}{
			"date":  domain.FormatDate(day),
			"limit": limit,
		})
		errors.LogError(logger.Logger, dbErr, "fetch_trends")
		return nil, dbErr
	}
	return entries, nil
}
