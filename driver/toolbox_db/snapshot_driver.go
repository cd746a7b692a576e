package toolbox_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const downloadsAtQuery = `
	SELECT total_downloads FROM download_snapshots
	WHERE package_id = $1 AND date <= $2
	ORDER BY date DESC
	LIMIT 1
`

const packagesObservedByQuery = `
	SELECT DISTINCT package_id FROM download_snapshots
	WHERE date <= $1
	ORDER BY package_id
`

// FetchDownloadsAt returns the cumulative downloads of the snapshot nearest at-or-before date.
func (r *ToolboxDBRepository) FetchDownloadsAt(ctx context.Context, packageID string, date time.Time) (int64, bool, error) {
	if r.pool == nil {
		return 0, false, errNoPool
	}

	var downloads int64
	err := r.pool.QueryRow(ctx, downloadsAtQuery, packageID, date).Scan(&downloads)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("fetch downloads for %s: %w", packageID, err)
	}
	return downloads, true, nil
}

func (r *ToolboxDBRepository) FetchPackagesObservedBy(ctx context.Context, date time.Time) ([]string, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	rows, err := r.pool.Query(ctx, packagesObservedByQuery, date)
	if err != nil {
		return nil, fmt.Errorf("query observed packages: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan observed package: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate observed packages: %w", err)
	}
	return ids, nil
}
