package refresh_releases_usecase

import (
	"context"
	"time"

	"toolbox/port/release_port"
	"toolbox/utils/logger"
)

type RefreshReleasesUsecase struct {
	store      release_port.ReleaseRefreshPort
	registry   release_port.RegistryPort
	staleAfter time.Duration
	batchSize  int
	now        func() time.Time
}

func NewRefreshReleasesUsecase(store release_port.ReleaseRefreshPort, registry release_port.RegistryPort, staleAfter time.Duration, batchSize int) *RefreshReleasesUsecase {
	return &RefreshReleasesUsecase{
		store:      store,
		registry:   registry,
		staleAfter: staleAfter,
		batchSize:  batchSize,
		now:        time.Now,
	}
}

// Execute refreshes up to one batch of release rows not checked within staleAfter.
// It stops at the first failure and returns how many rows were refreshed before it.
func (u *RefreshReleasesUsecase) Execute(ctx context.Context) (int, error) {
	now := u.now().UTC()

	ids, err := u.store.StaleReleases(ctx, now.Add(-u.staleAfter), u.batchSize)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}

		released, ok, err := u.registry.LatestReleaseDate(ctx, id)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "Failed to fetch release from registry", "package_id", id, "error", err)
			return refreshed, err
		}

		var releasedOn *time.Time
		if ok {
			releasedOn = &released
		}
		if err := u.store.StoreRelease(ctx, id, releasedOn, now); err != nil {
			return refreshed, err
		}
		refreshed++
	}

	logger.Logger.InfoContext(ctx, "Releases refreshed", "stale", len(ids), "refreshed", refreshed)
	return refreshed, nil
}
