package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for civil dates.
const DateLayout = "2006-01-02"

// Sampling offsets relative to the target date.
const (
	MidWindowOffset  = 4 * 7 * 24 * time.Hour
	FullWindowOffset = 8 * 7 * 24 * time.Hour
)

// TrendEntry is one row of the persisted ranking for a date. Position 1 is the most trending.
type TrendEntry struct {
	Date      time.Time `json:"date"`
	PackageID string    `json:"package_id"`
	Position  int       `json:"position"`
}

type DownloadSnapshot struct {
	PackageID      string    `json:"package_id"`
	Date           time.Time `json:"date"`
	TotalDownloads int64     `json:"total_downloads"`
}

type ReleaseInfo struct {
	PackageID         string     `json:"package_id"`
	LatestReleaseDate *time.Time `json:"latest_release_date"`
	CheckedAt         *time.Time `json:"checked_at"`
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, s, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}

// ValidateRanking checks that every entry belongs to date, that positions are
// exactly 1..n in slice order and that no package is repeated.
func ValidateRanking(date time.Time, ranking []TrendEntry) error {
	day := DateOf(date)
	seen := make(map[string]struct{}, len(ranking))
	for i, entry := range ranking {
		if !DateOf(entry.Date).Equal(day) {
			return fmt.Errorf("%w: entry %d has %s, want %s", ErrRankingDateMismatch, i, FormatDate(entry.Date), FormatDate(day))
		}
		if entry.Position != i+1 {
			return fmt.Errorf("%w: entry %d has position %d", ErrRankingPositionGap, i, entry.Position)
		}
		if _, dup := seen[entry.PackageID]; dup {
			return fmt.Errorf("%w: %s", ErrRankingDuplicatePackage, entry.PackageID)
		}
		seen[entry.PackageID] = struct{}{}
	}
	return nil
}
