package snapshot_gateway

import (
	"context"
	"time"

	"toolbox/driver/toolbox_db"
	"toolbox/utils/errors"
	"toolbox/utils/logger"
)

// SnapshotGateway implements snapshot_port.SnapshotStore on PostgreSQL.
type SnapshotGateway struct {
	repo *toolbox_db.ToolboxDBRepository
}

func NewSnapshotGateway(pool toolbox_db.PgxIface) *SnapshotGateway {
	return &SnapshotGateway{repo: toolbox_db.NewToolboxDBRepository(pool)}
}

func (g *SnapshotGateway) DownloadsAt(ctx context.Context, packageID string, date time.Time) (int64, bool, error) {
	downloads, ok, err := g.repo.FetchDownloadsAt(ctx, packageID, date)
	if err != nil {
		dbErr := errors.ClassifyDatabaseError("gateway", "SnapshotGateway", "DownloadsAt", err, map[string]interface{}{
			"package_id": packageID,
			"date":       date.Format("2006-01-02"),
		})
		errors.LogError(logger.Logger, dbErr, "fetch_downloads_at")
		return 0, false, dbErr
	}
	return downloads, ok, nil
}

func (g *SnapshotGateway) PackagesObservedBy(ctx context.Context, date time.Time) ([]string, error) {
	ids, err := g.repo.FetchPackagesObservedBy(ctx, date)
	if err != nil {
		dbErr := errors.ClassifyDatabaseError("gateway", "SnapshotGateway", "PackagesObservedBy", err, map[string]interface{}{
			"date": date.Format("2006-01-02"),
		})
		errors.LogError(logger.Logger, dbErr, "fetch_packages_observed_by")
		return nil, dbErr
	}
	return ids, nil
}
