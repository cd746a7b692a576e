package trend_ranking_usecase

import (
	"cmp"
	"context"
	"slices"
	"time"

	"toolbox/domain"
	"toolbox/port/release_port"
	"toolbox/port/snapshot_port"
	"toolbox/utils/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const DefaultReleaseWindowDays = 365

const tracerName = "toolbox/trend_ranking"

// TrendRanker computes the trend ranking for a date from download snapshots and release dates.
// It never writes.
type TrendRanker struct {
	snapshots         snapshot_port.SnapshotStore
	releases          release_port.ReleaseInfo
	releaseWindowDays int
}

func NewTrendRanker(snapshots snapshot_port.SnapshotStore, releases release_port.ReleaseInfo, releaseWindowDays int) *TrendRanker {
	if releaseWindowDays <= 0 {
		releaseWindowDays = DefaultReleaseWindowDays
	}
	return &TrendRanker{
		snapshots:         snapshots,
		releases:          releases,
		releaseWindowDays: releaseWindowDays,
	}
}

type candidate struct {
	packageID string
	score     float64
}

// Compute returns the full ranking for date, most trending first.
//
// A package is eligible when its latest release falls within the release
// window ending on date and it has snapshots at date, four weeks and eight
// weeks earlier. The score is downloads at date divided by downloads eight
// weeks earlier, with a zero baseline counted as one. Equal scores are
// ordered by package id. Ineligible packages are left out without error.
func (r *TrendRanker) Compute(ctx context.Context, date time.Time) ([]domain.TrendEntry, error) {
	day := domain.DateOf(date)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "TrendRanker.Compute",
		trace.WithAttributes(attribute.String("date", domain.FormatDate(day))))
	defer span.End()

	ranking, err := r.rank(ctx, day)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("eligible", len(ranking)))
	return ranking, nil
}

func (r *TrendRanker) rank(ctx context.Context, day time.Time) ([]domain.TrendEntry, error) {
	earliestRelease := day.AddDate(0, 0, -r.releaseWindowDays)

	ids, err := r.snapshots.PackagesObservedBy(ctx, day)
	if err != nil {
		return nil, err
	}
	ids = slices.Clone(ids)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	candidates := make([]candidate, 0, len(ids))
	for _, id := range ids {
		released, ok, err := r.releases.LatestRelease(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		releasedOn := domain.DateOf(released)
		if releasedOn.Before(earliestRelease) || releasedOn.After(day) {
			continue
		}

		current, baseline, ok, err := r.windowDownloads(ctx, id, day)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		candidates = append(candidates, candidate{packageID: id, score: growth(current, baseline)})
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.packageID, b.packageID)
	})

	ranking := make([]domain.TrendEntry, len(candidates))
	for i, c := range candidates {
		ranking[i] = domain.TrendEntry{Date: day, PackageID: c.packageID, Position: i + 1}
	}

	logger.Logger.InfoContext(ctx, "Trend ranking computed",
		"date", domain.FormatDate(day),
		"observed", len(ids),
		"eligible", len(ranking))

	return ranking, nil
}

// windowDownloads reads the three sampling points. ok is false if any is missing.
func (r *TrendRanker) windowDownloads(ctx context.Context, id string, day time.Time) (current, baseline int64, ok bool, err error) {
	current, ok, err = r.snapshots.DownloadsAt(ctx, id, day)
	if err != nil || !ok {
		return 0, 0, false, err
	}
	if _, ok, err = r.snapshots.DownloadsAt(ctx, id, day.Add(-domain.MidWindowOffset)); err != nil || !ok {
		return 0, 0, false, err
	}
	baseline, ok, err = r.snapshots.DownloadsAt(ctx, id, day.Add(-domain.FullWindowOffset))
	if err != nil || !ok {
		return 0, 0, false, err
	}
	return current, baseline, true, nil
}

func growth(current, baseline int64) float64 {
	return float64(current) / float64(max(baseline, 1))
}
