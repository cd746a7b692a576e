package recompute_trends_usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"toolbox/domain"
	"toolbox/gateway/trend_gateway"
	"toolbox/mocks"
	"toolbox/usecase/trend_ranking_usecase"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var day = time.Date(2018, 1, 3, 0, 0, 0, 0, time.UTC)

type stubRanker struct {
	ranking []domain.TrendEntry
	err     error
	dates   []time.Time
}

func (s *stubRanker) Compute(_ context.Context, date time.Time) ([]domain.TrendEntry, error) {
	s.dates = append(s.dates, date)
	return s.ranking, s.err
}

func TestRecomputeTrendsUsecase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTrendRepository(ctrl)

	ranking := []domain.TrendEntry{
		{Date: day, PackageID: "c", Position: 1},
		{Date: day, PackageID: "a", Position: 2},
	}
	ranker := &stubRanker{ranking: ranking}

	repo.EXPECT().Replace(gomock.Any(), day, ranking).Return(nil)

	n, err := NewRecomputeTrendsUsecase(ranker, repo).Execute(context.Background(), day.Add(4*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []time.Time{day}, ranker.dates)
}

func TestRecomputeTrendsUsecase_EmptyRankingStillClearsDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTrendRepository(ctrl)

	repo.EXPECT().Replace(gomock.Any(), day, gomock.Len(0)).Return(nil)

	n, err := NewRecomputeTrendsUsecase(&stubRanker{}, repo).Execute(context.Background(), day)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRecomputeTrendsUsecase_ComputeErrorSkipsReplace(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTrendRepository(ctrl)
	computeErr := errors.New("snapshot store unreachable")

	_, err := NewRecomputeTrendsUsecase(&stubRanker{err: computeErr}, repo).Execute(context.Background(), day)
	assert.Same(t, computeErr, err)
}

func TestRecomputeTrendsUsecase_ReplaceErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTrendRepository(ctrl)
	replaceErr := errors.New("commit failed")

	repo.EXPECT().Replace(gomock.Any(), day, gomock.Any()).Return(replaceErr)

	_, err := NewRecomputeTrendsUsecase(&stubRanker{}, repo).Execute(context.Background(), day)
	assert.Same(t, replaceErr, err)
}

// memoryTrends keeps rankings per date, replacing a date wholesale.
type memoryTrends struct {
	byDate map[string][]domain.TrendEntry
}

func (m *memoryTrends) Replace(_ context.Context, date time.Time, ranking []domain.TrendEntry) error {
	m.byDate[domain.FormatDate(date)] = append([]domain.TrendEntry(nil), ranking...)
	return nil
}

func (m *memoryTrends) RankingFor(_ context.Context, date time.Time, _ int) ([]domain.TrendEntry, error) {
	return m.byDate[domain.FormatDate(date)], nil
}

func TestRecomputeTrendsUsecase_IdempotentAndScopedToDate(t *testing.T) {
	sibling := day.AddDate(0, 0, -7)
	siblingRanking := []domain.TrendEntry{{Date: sibling, PackageID: "old", Position: 1}}
	store := &memoryTrends{byDate: map[string][]domain.TrendEntry{
		domain.FormatDate(day):     {{Date: day, PackageID: "stale", Position: 1}},
		domain.FormatDate(sibling): siblingRanking,
	}}
	ranker := &stubRanker{ranking: []domain.TrendEntry{
		{Date: day, PackageID: "c", Position: 1},
		{Date: day, PackageID: "a", Position: 2},
	}}
	usecase := NewRecomputeTrendsUsecase(ranker, store)

	_, err := usecase.Execute(context.Background(), day)
	require.NoError(t, err)
	first, _ := store.RankingFor(context.Background(), day, 0)

	_, err = usecase.Execute(context.Background(), day)
	require.NoError(t, err)
	second, _ := store.RankingFor(context.Background(), day, 0)

	assert.Equal(t, first, second)
	assert.Equal(t, ranker.ranking, second)
	kept, _ := store.RankingFor(context.Background(), sibling, 0)
	assert.Equal(t, siblingRanking, kept)
}

// catalog serves download snapshots with nearest at-or-before lookup and release dates.
type catalog struct {
	snapshots map[string]map[time.Time]int64
	releases  map[string]time.Time
}

func (c *catalog) add(id string, date time.Time, downloads int64) {
	if c.snapshots[id] == nil {
		c.snapshots[id] = map[time.Time]int64{}
	}
	c.snapshots[id][date] = downloads
}

func (c *catalog) DownloadsAt(_ context.Context, id string, date time.Time) (int64, bool, error) {
	var best time.Time
	found := false
	for at := range c.snapshots[id] {
		if !at.After(date) && (!found || at.After(best)) {
			best, found = at, true
		}
	}
	if !found {
		return 0, false, nil
	}
	return c.snapshots[id][best], true, nil
}

func (c *catalog) PackagesObservedBy(_ context.Context, date time.Time) ([]string, error) {
	var ids []string
	for id, snaps := range c.snapshots {
		for at := range snaps {
			if !at.After(date) {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids, nil
}

func (c *catalog) LatestRelease(_ context.Context, id string) (time.Time, bool, error) {
	released, ok := c.releases[id]
	return released, ok, nil
}

func TestRecomputeTrendsUsecase_RankerAndGatewayRecomputeIsIdempotent(t *testing.T) {
	sibling := day.AddDate(0, 0, -7)
	c := &catalog{snapshots: map[string]map[time.Time]int64{}, releases: map[string]time.Time{}}
	for _, date := range []time.Time{sibling, day} {
		c.add("a", date.AddDate(0, 0, -56), 10000)
		c.add("a", date.AddDate(0, 0, -28), 30000)
		c.add("c", date.AddDate(0, 0, -56), 1000)
		c.add("c", date.AddDate(0, 0, -28), 5000)
	}
	c.add("a", day, 100000)
	c.add("c", day, 50000)
	c.add("stale", day.AddDate(0, 0, -56), 1)
	c.add("stale", day.AddDate(0, 0, -28), 2)
	c.add("stale", day, 1000)
	c.add("fresh", day, 500)
	c.releases["a"] = day.AddDate(0, -3, 0)
	c.releases["c"] = day.AddDate(0, -3, 0)
	c.releases["stale"] = day.AddDate(-2, 0, 0)
	c.releases["fresh"] = day.AddDate(0, 0, -1)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// Both runs must issue the same statements, and only for day.
	for range 2 {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM trends WHERE date").
			WithArgs(day).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec("INSERT INTO trends").
			WithArgs(day, []string{"c", "a"}, []int32{1, 2}).
			WillReturnResult(pgxmock.NewResult("INSERT", 2))
		mock.ExpectCommit()
	}

	ranker := trend_ranking_usecase.NewTrendRanker(c, c, 0)
	usecase := NewRecomputeTrendsUsecase(ranker, trend_gateway.NewTrendGateway(mock))

	first, err := usecase.Execute(context.Background(), day.Add(4*time.Hour))
	require.NoError(t, err)
	second, err := usecase.Execute(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, 2, first)
	assert.Equal(t, first, second)
	require.NoError(t, mock.ExpectationsWereMet())
}
