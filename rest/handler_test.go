package rest

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"toolbox/config"
	"toolbox/di"
	"toolbox/domain"
	"toolbox/mocks"
	"toolbox/usecase/fetch_trends_usecase"
	"toolbox/utils/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

var day = time.Date(2018, 1, 3, 0, 0, 0, 0, time.UTC)

func setupServer(t *testing.T, repo *mocks.MockTrendRepository, checkers ...di.ReadinessChecker) *echo.Echo {
	t.Helper()

	e := echo.New()
	container := &di.ApplicationComponents{
		FetchTrendsUsecase: fetch_trends_usecase.NewFetchTrendsUsecase(repo),
		ReadinessCheckers:  checkers,
	}
	RegisterRoutes(e, container, config.TelemetryConfig{})
	return e
}

func doGet(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFetchTrends(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTrendRepository(ctrl)
	e := setupServer(t, repo)

	repo.EXPECT().RankingFor(gomock.Any(), day, 2).Return([]domain.TrendEntry{
		{Date: day, PackageID: "c", Position: 1},
		{Date: day, PackageID: "a", Position: 2},
	}, nil)

	rec := doGet(e, "/v1/trends/2018-01-03?limit=2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2018-01-03","entries":[{"package_id":"c","position":1},{"package_id":"a","position":2}]}`, rec.Body.String())
}

func TestFetchTrends_DefaultLimitAndEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTrendRepository(ctrl)
	e := setupServer(t, repo)

	repo.EXPECT().RankingFor(gomock.Any(), day, fetch_trends_usecase.MaxLimit).Return([]domain.TrendEntry{}, nil)

	rec := doGet(e, "/v1/trends/2018-01-03")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2018-01-03","entries":[]}`, rec.Body.String())
}

func TestFetchTrends_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "malformed date", path: "/v1/trends/2018-13-40"},
		{name: "non numeric limit", path: "/v1/trends/2018-01-03?limit=ten"},
		{name: "zero limit", path: "/v1/trends/2018-01-03?limit=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			e := setupServer(t, mocks.NewMockTrendRepository(ctrl))

			rec := doGet(e, tt.path)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body errors.HTTPContextResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(errors.ErrCodeValidation), body.Code)
		})
	}
}

func TestFetchTrends_DatabaseUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTrendRepository(ctrl)
	e := setupServer(t, repo)

	repo.EXPECT().RankingFor(gomock.Any(), day, gomock.Any()).Return(nil,
		errors.NewDatabaseUnavailableError("gateway", "TrendGateway", "RankingFor", stderrors.New("timeout"), nil))

	rec := doGet(e, "/v1/trends/2018-01-03")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), string(errors.ErrCodeDatabase))
}

func TestFetchTrends_UnclassifiedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTrendRepository(ctrl)
	e := setupServer(t, repo)

	repo.EXPECT().RankingFor(gomock.Any(), day, gomock.Any()).Return(nil, stderrors.New("boom"))

	rec := doGet(e, "/v1/trends/2018-01-03")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestHealth(t *testing.T) {
	ok := di.ReadinessChecker{Name: "database", Check: func(context.Context) error { return nil }}
	down := di.ReadinessChecker{Name: "redis", Check: func(context.Context) error { return stderrors.New("dial tcp: refused") }}

	t.Run("healthy", func(t *testing.T) {
		e := setupServer(t, nil, ok)
		rec := doGet(e, "/v1/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy","checks":{"database":"ok"}}`, rec.Body.String())
	})

	t.Run("unhealthy", func(t *testing.T) {
		e := setupServer(t, nil, ok, down)
		rec := doGet(e, "/v1/health")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"redis":"dial tcp: refused"`)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	e := setupServer(t, nil)
	rec := doGet(e, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "go_goroutines"))
}

func TestRegisterRoutes_TracesRequestsWhenTelemetryEnabled(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	e := echo.New()
	RegisterRoutes(e, &di.ApplicationComponents{
		ReadinessCheckers: []di.ReadinessChecker{
			{Name: "database", Check: func(context.Context) error { return nil }},
		},
	}, config.TelemetryConfig{Enabled: true, ServiceName: "toolbox"})

	rec := doGet(e, "/v1/health")
	require.Equal(t, http.StatusOK, rec.Code)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
}
