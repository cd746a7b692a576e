package toolbox_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const latestReleaseQuery = `SELECT latest_release_on FROM releases WHERE package_id = $1`

const staleReleasesQuery = `
	SELECT package_id FROM releases
	WHERE checked_at IS NULL OR checked_at < $1
	ORDER BY checked_at NULLS FIRST, package_id
	LIMIT $2
`

const storeReleaseQuery = `
	INSERT INTO releases (package_id, latest_release_on, checked_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (package_id) DO UPDATE SET
		latest_release_on = EXCLUDED.latest_release_on,
		checked_at = EXCLUDED.checked_at
`

// FetchLatestRelease returns ok=false when the package has no release row or a NULL release date.
func (r *ToolboxDBRepository) FetchLatestRelease(ctx context.Context, packageID string) (time.Time, bool, error) {
	if r.pool == nil {
		return time.Time{}, false, errNoPool
	}

	var releasedOn *time.Time
	err := r.pool.QueryRow(ctx, latestReleaseQuery, packageID).Scan(&releasedOn)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("fetch latest release for %s: %w", packageID, err)
	}
	if releasedOn == nil {
		return time.Time{}, false, nil
	}
	return *releasedOn, true, nil
}

func (r *ToolboxDBRepository) FetchStaleReleases(ctx context.Context, checkedBefore time.Time, limit int) ([]string, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	rows, err := r.pool.Query(ctx, staleReleasesQuery, checkedBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("query stale releases: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan stale release: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stale releases: %w", err)
	}
	return ids, nil
}

// UpsertRelease stores the checked release date. A nil releasedOn records that the registry has no release.
func (r *ToolboxDBRepository) UpsertRelease(ctx context.Context, packageID string, releasedOn *time.Time, checkedAt time.Time) error {
	if r.pool == nil {
		return errNoPool
	}

	if _, err := r.pool.Exec(ctx, storeReleaseQuery, packageID, releasedOn, checkedAt); err != nil {
		return fmt.Errorf("upsert release for %s: %w", packageID, err)
	}
	return nil
}
