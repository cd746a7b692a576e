package release_port

import (
	"context"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen -source=release_port.go -destination=../../mocks/mock_release_port.go -package=mocks

// ReleaseInfo reads the most recent release date of a package.
type ReleaseInfo interface {
	LatestRelease(ctx context.Context, packageID string) (time.Time, bool, error)
}

// ReleaseRefreshPort lists and updates release rows that are due for a check.
type ReleaseRefreshPort interface {
	StaleReleases(ctx context.Context, checkedBefore time.Time, limit int) ([]string, error)
	StoreRelease(ctx context.Context, packageID string, releasedOn *time.Time, checkedAt time.Time) error
}

// RegistryPort asks the upstream package registry for release metadata.
type RegistryPort interface {
	// LatestReleaseDate returns ok=false when the registry does not know the package.
	LatestReleaseDate(ctx context.Context, packageID string) (time.Time, bool, error)
}
