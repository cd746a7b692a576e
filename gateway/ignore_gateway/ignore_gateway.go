package ignore_gateway

import (
	"context"
	"time"

	"toolbox/driver/toolbox_db"
	"toolbox/utils/errors"
	"toolbox/utils/logger"
)

type IgnoreGateway struct {
	repo *toolbox_db.ToolboxDBRepository
}

func NewIgnoreGateway(pool toolbox_db.PgxIface) *IgnoreGateway {
	return &IgnoreGateway{repo: toolbox_db.NewToolboxDBRepository(pool)}
}

// ExpireIgnores deletes ignore entries that expired at or before now.
func (g *IgnoreGateway) ExpireIgnores(ctx context.Context, now time.Time) (int64, error) {
	deleted, err := g.repo.DeleteExpiredIgnores(ctx, now)
	if err != nil {
		dbErr := errors.ClassifyDatabaseError("gateway", "IgnoreGateway", "ExpireIgnores", err, map[string]interface{}{
			"now": now.UTC().Format(time.RFC3339),
		})
		errors.LogError(logger.Logger, dbErr, "expire_ignores")
		return 0, dbErr
	}

	logger.Logger.InfoContext(ctx, "Expired ignore entries", "deleted", deleted)
	return deleted, nil
}
