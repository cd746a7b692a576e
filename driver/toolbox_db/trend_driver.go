package toolbox_db

import (
	"context"
	"fmt"
	"time"

	"toolbox/domain"
)

const deleteTrendsForDateQuery = `DELETE FROM trends WHERE date = $1`

// insertTrendsQuery inserts the whole ranking in one statement from parallel arrays.
const insertTrendsQuery = `
	INSERT INTO trends (date, package_id, position)
	SELECT $1::date, p.package_id, p.position
	FROM unnest($2::text[], $3::int[]) AS p(package_id, position)
`

const fetchTrendsQuery = `
	SELECT date, package_id, position FROM trends
	WHERE date = $1
	ORDER BY position
`

const fetchTrendsLimitQuery = `
	SELECT date, package_id, position FROM trends
	WHERE date = $1
	ORDER BY position
	LIMIT $2
`

// ReplaceTrends deletes every trend row for date and inserts ranking in a single transaction.
func (r *ToolboxDBRepository) ReplaceTrends(ctx context.Context, date time.Time, ranking []domain.TrendEntry) error {
	if r.pool == nil {
		return errNoPool
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, deleteTrendsForDateQuery, date); err != nil {
		return fmt.Errorf("delete trends for %s: %w", domain.FormatDate(date), err)
	}

	if len(ranking) > 0 {
		packageIDs := make([]string, len(ranking))
		positions := make([]int32, len(ranking))
		for i, entry := range ranking {
			packageIDs[i] = entry.PackageID
			positions[i] = int32(entry.Position)
		}
		if _, err := tx.Exec(ctx, insertTrendsQuery, date, packageIDs, positions); err != nil {
			return fmt.Errorf("insert trends for %s: %w", domain.FormatDate(date), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *ToolboxDBRepository) FetchTrends(ctx context.Context, date time.Time, limit int) ([]domain.TrendEntry, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	query, args := fetchTrendsQuery, []any{date}
	if limit > 0 {
		query, args = fetchTrendsLimitQuery, []any{date, limit}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query trends: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.TrendEntry, 0)
	for rows.Next() {
		var entry domain.TrendEntry
		if err := rows.Scan(&entry.Date, &entry.PackageID, &entry.Position); err != nil {
			return nil, fmt.Errorf("scan trend: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trends: %w", err)
	}
	return entries, nil
}
