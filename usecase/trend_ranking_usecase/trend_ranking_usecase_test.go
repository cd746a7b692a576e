package trend_ranking_usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"toolbox/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var target = time.Date(2018, 1, 3, 0, 0, 0, 0, time.UTC)

// fakeCatalog serves snapshots with nearest at-or-before lookup and release dates.
type fakeCatalog struct {
	snapshots   map[string][]domain.DownloadSnapshot
	releases    map[string]time.Time
	snapshotErr error
	releaseErr  error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		snapshots: map[string][]domain.DownloadSnapshot{},
		releases:  map[string]time.Time{},
	}
}

func (f *fakeCatalog) addSnapshot(id string, date time.Time, downloads int64) {
	f.snapshots[id] = append(f.snapshots[id], domain.DownloadSnapshot{PackageID: id, Date: date, TotalDownloads: downloads})
}

// addWindow records snapshots at D-8w, D-4w and D.
func (f *fakeCatalog) addWindow(id string, baseline, mid, current int64) {
	f.addSnapshot(id, target.AddDate(0, 0, -56), baseline)
	f.addSnapshot(id, target.AddDate(0, 0, -28), mid)
	f.addSnapshot(id, target, current)
}

func (f *fakeCatalog) DownloadsAt(_ context.Context, id string, date time.Time) (int64, bool, error) {
	if f.snapshotErr != nil {
		return 0, false, f.snapshotErr
	}
	var best *domain.DownloadSnapshot
	for i, s := range f.snapshots[id] {
		if s.Date.After(date) {
			continue
		}
		if best == nil || s.Date.After(best.Date) {
			best = &f.snapshots[id][i]
		}
	}
	if best == nil {
		return 0, false, nil
	}
	return best.TotalDownloads, true, nil
}

func (f *fakeCatalog) PackagesObservedBy(_ context.Context, date time.Time) ([]string, error) {
	if f.snapshotErr != nil {
		return nil, f.snapshotErr
	}
	var ids []string
	for id, snaps := range f.snapshots {
		for _, s := range snaps {
			if !s.Date.After(date) {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids, nil
}

func (f *fakeCatalog) LatestRelease(_ context.Context, id string) (time.Time, bool, error) {
	if f.releaseErr != nil {
		return time.Time{}, false, f.releaseErr
	}
	r, ok := f.releases[id]
	return r, ok, nil
}

func packageIDs(ranking []domain.TrendEntry) []string {
	ids := make([]string, len(ranking))
	for i, e := range ranking {
		ids[i] = e.PackageID
	}
	return ids
}

func TestTrendRanker_RelativeGrowthBeatsVolume(t *testing.T) {
	catalog := newFakeCatalog()
	recent := target.AddDate(0, -3, 0)
	catalog.addWindow("a", 10000, 30000, 100000)
	catalog.addWindow("c", 1000, 5000, 50000)
	catalog.releases["a"] = recent
	catalog.releases["c"] = recent

	ranking, err := NewTrendRanker(catalog, catalog, 0).Compute(context.Background(), target)
	require.NoError(t, err)

	assert.Equal(t, []domain.TrendEntry{
		{Date: target, PackageID: "c", Position: 1},
		{Date: target, PackageID: "a", Position: 2},
	}, ranking)
}

func TestTrendRanker_MissingSnapshotExcludes(t *testing.T) {
	recent := target.AddDate(0, -1, 0)

	tests := []struct {
		name  string
		setup func(f *fakeCatalog)
	}{
		{
			name: "no baseline",
			setup: func(f *fakeCatalog) {
				f.addSnapshot("big", target.AddDate(0, 0, -28), 1)
				f.addSnapshot("big", target, 1_000_000_000)
			},
		},
		{
			name: "only recent snapshots",
			setup: func(f *fakeCatalog) {
				// Nothing at or before D-4w, so both earlier lookups come back empty.
				f.addSnapshot("big", target.AddDate(0, 0, -10), 1)
				f.addSnapshot("big", target, 1_000_000_000)
			},
		},
		{
			name: "observed only after target",
			setup: func(f *fakeCatalog) {
				f.addSnapshot("big", target.AddDate(0, 0, 1), 1)
				f.addSnapshot("big", target.AddDate(0, 0, 2), 1_000_000_000)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := newFakeCatalog()
			tt.setup(catalog)
			catalog.releases["big"] = recent

			ranking, err := NewTrendRanker(catalog, catalog, 365).Compute(context.Background(), target)
			require.NoError(t, err)
			assert.NotContains(t, packageIDs(ranking), "big")
		})
	}
}

func TestTrendRanker_NearestEarlierSnapshotIsUsed(t *testing.T) {
	catalog := newFakeCatalog()
	// Sampling points fall between observations; the nearest earlier one counts.
	catalog.addSnapshot("gap", target.AddDate(0, 0, -60), 10)
	catalog.addSnapshot("gap", target.AddDate(0, 0, -30), 20)
	catalog.addSnapshot("gap", target.AddDate(0, 0, -1), 100)
	catalog.releases["gap"] = target.AddDate(0, 0, -5)

	ranking, err := NewTrendRanker(catalog, catalog, 365).Compute(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, []string{"gap"}, packageIDs(ranking))
}

func TestTrendRanker_ReleaseEligibility(t *testing.T) {
	tests := []struct {
		name     string
		release  *time.Time
		eligible bool
	}{
		{name: "three months old", release: ptr(target.AddDate(0, -3, 0)), eligible: true},
		{name: "released on target date", release: ptr(target.Add(15 * time.Hour)), eligible: true},
		{name: "exactly at window edge", release: ptr(target.AddDate(0, 0, -365)), eligible: true},
		{name: "older than window", release: ptr(target.AddDate(0, 0, -366))},
		{name: "after target date", release: ptr(target.AddDate(0, 0, 1))},
		{name: "no release information"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := newFakeCatalog()
			catalog.addWindow("pkg", 10, 20, 30)
			if tt.release != nil {
				catalog.releases["pkg"] = *tt.release
			}

			ranking, err := NewTrendRanker(catalog, catalog, 365).Compute(context.Background(), target)
			require.NoError(t, err)
			assert.Equal(t, tt.eligible, len(ranking) == 1)
		})
	}
}

func TestTrendRanker_ZeroBaselineAndTies(t *testing.T) {
	catalog := newFakeCatalog()
	released := target.AddDate(0, 0, -10)
	for _, id := range []string{"zeta", "alpha", "zero", "mid"} {
		catalog.releases[id] = released
	}
	catalog.addWindow("zeta", 10, 50, 100)  // 10x
	catalog.addWindow("alpha", 20, 80, 200) // 10x, ties with zeta
	catalog.addWindow("zero", 0, 0, 40)     // baseline floored to 1: 40x
	catalog.addWindow("mid", 10, 10, 20)    // 2x

	ranking, err := NewTrendRanker(catalog, catalog, 365).Compute(context.Background(), target)
	require.NoError(t, err)

	assert.Equal(t, []string{"zero", "alpha", "zeta", "mid"}, packageIDs(ranking))
	for i, e := range ranking {
		assert.Equal(t, i+1, e.Position)
		assert.Equal(t, target, e.Date)
	}
	require.NoError(t, domain.ValidateRanking(target, ranking))
}

func TestTrendRanker_Deterministic(t *testing.T) {
	catalog := newFakeCatalog()
	for _, id := range []string{"d", "b", "a", "c"} {
		catalog.addWindow(id, 5, 5, 5)
		catalog.releases[id] = target
	}
	ranker := NewTrendRanker(catalog, catalog, 365)

	first, err := ranker.Compute(context.Background(), target)
	require.NoError(t, err)
	second, err := ranker.Compute(context.Background(), target)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a", "b", "c", "d"}, packageIDs(first))
}

func TestTrendRanker_EmptyCatalog(t *testing.T) {
	catalog := newFakeCatalog()

	ranking, err := NewTrendRanker(catalog, catalog, 365).Compute(context.Background(), target)
	require.NoError(t, err)
	assert.Empty(t, ranking)
}

func TestTrendRanker_PropagatesCollaboratorErrors(t *testing.T) {
	storeErr := errors.New("snapshot store unreachable")
	releaseErr := errors.New("release source unreachable")

	t.Run("snapshot store", func(t *testing.T) {
		catalog := newFakeCatalog()
		catalog.snapshotErr = storeErr

		_, err := NewTrendRanker(catalog, catalog, 365).Compute(context.Background(), target)
		assert.Same(t, storeErr, err)
	})

	t.Run("release info", func(t *testing.T) {
		catalog := newFakeCatalog()
		catalog.addWindow("pkg", 1, 2, 3)
		catalog.releaseErr = releaseErr

		_, err := NewTrendRanker(catalog, catalog, 365).Compute(context.Background(), target)
		assert.Same(t, releaseErr, err)
	})
}

func ptr(t time.Time) *time.Time {
	return &t
}

func TestTrendRanker_ComputeRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	catalog := newFakeCatalog()
	catalog.addWindow("a", 10, 20, 40)
	catalog.releases["a"] = target.AddDate(0, -1, 0)
	ranker := NewTrendRanker(catalog, catalog, 0)

	_, err := ranker.Compute(context.Background(), target)
	require.NoError(t, err)

	catalog.snapshotErr = errors.New("snapshot store down")
	_, err = ranker.Compute(context.Background(), target)
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "TrendRanker.Compute", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("date", "2018-01-03"))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("eligible", 1))
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
