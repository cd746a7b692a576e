package release_gateway

import (
	"context"
	"time"

	"toolbox/driver/toolbox_db"
	"toolbox/utils/errors"
	"toolbox/utils/logger"
)

// ReleaseGateway implements release_port.ReleaseInfo and release_port.ReleaseRefreshPort.
type ReleaseGateway struct {
	repo *toolbox_db.ToolboxDBRepository
}

func NewReleaseGateway(pool toolbox_db.PgxIface) *ReleaseGateway {
	return &ReleaseGateway{repo: toolbox_db.NewToolboxDBRepository(pool)}
}

func (g *ReleaseGateway) LatestRelease(ctx context.Context, packageID string) (time.Time, bool, error) {
	released, ok, err := g.repo.FetchLatestRelease(ctx, packageID)
	if err != nil {
		dbErr := errors.ClassifyDatabaseError("gateway", "ReleaseGateway", "LatestRelease", err, map[string]interface{}{
			"package_id": packageID,
		})
		errors.LogError(logger.Logger, dbErr, "fetch_latest_release")
		return time.Time{}, false, dbErr
	}
	return released, ok, nil
}

func (g *ReleaseGateway) StaleReleases(ctx context.Context, checkedBefore time.Time, limit int) ([]string, error) {
	ids, err := g.repo.FetchStaleReleases(ctx, checkedBefore, limit)
	if err != nil {
		dbErr := errors.ClassifyDatabaseError("gateway", "ReleaseGateway", "StaleReleases", err, map[string]interface{}{
			"checked_before": checkedBefore.Format(time.RFC3339),
			"limit":          limit,
		})
		errors.LogError(logger.Logger, dbErr, "fetch_stale_releases")
		return nil, dbErr
	}
	return ids, nil
}

func (g *ReleaseGateway) StoreRelease(ctx context.Context, packageID string, releasedOn *time.Time, checkedAt time.Time) error {
	if err := g.repo.UpsertRelease(ctx, packageID, releasedOn, checkedAt); err != nil {
		dbErr := errors.ClassifyDatabaseError("gateway", "ReleaseGateway", "StoreRelease", err, map[string]interface{}{
			"package_id": packageID,
		})
		errors.LogError(logger.Logger, dbErr, "store_release")
		return dbErr
	}
	return nil
}
