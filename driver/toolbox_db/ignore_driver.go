package toolbox_db

import (
	"context"
	"fmt"
	"time"
)

const expireIgnoresQuery = `DELETE FROM github_ignores WHERE expires_at <= $1`

func (r *ToolboxDBRepository) DeleteExpiredIgnores(ctx context.Context, now time.Time) (int64, error) {
	if r.pool == nil {
		return 0, errNoPool
	}

	tag, err := r.pool.Exec(ctx, expireIgnoresQuery, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired ignores: %w", err)
	}
	return tag.RowsAffected(), nil
}
