package snapshot_port

import (
	"context"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen -source=snapshot_port.go -destination=../../mocks/mock_snapshot_port.go -package=mocks

// SnapshotStore reads cumulative download counts.
type SnapshotStore interface {
	// DownloadsAt returns the snapshot nearest at-or-before date. ok is false when
	// the package has no snapshot on or before date.
	DownloadsAt(ctx context.Context, packageID string, date time.Time) (downloads int64, ok bool, err error)
	// PackagesObservedBy lists, ascending, every package with a snapshot on or before date.
	PackagesObservedBy(ctx context.Context, date time.Time) ([]string, error)
}
