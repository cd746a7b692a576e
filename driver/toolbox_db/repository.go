package toolbox_db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of *pgxpool.Pool used by the repository. pgxmock pools satisfy it.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

var errNoPool = errors.New("database connection not available")

type ToolboxDBRepository struct {
	pool PgxIface
}

func NewToolboxDBRepository(pool PgxIface) *ToolboxDBRepository {
	return &ToolboxDBRepository{pool: pool}
}

// Ping checks that the database answers a trivial query.
func (r *ToolboxDBRepository) Ping(ctx context.Context) error {
	if r.pool == nil {
		return errNoPool
	}
	_, err := r.pool.Exec(ctx, "SELECT 1")
	return err
}
