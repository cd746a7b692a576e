package di

import (
	"context"

	"toolbox/config"
	"toolbox/consumer"
	"toolbox/domain"
	"toolbox/driver/redis_queue"
	"toolbox/driver/registry_client"
	"toolbox/driver/toolbox_db"
	"toolbox/gateway/enqueue_gateway"
	"toolbox/gateway/error_reporter_gateway"
	"toolbox/gateway/ignore_gateway"
	"toolbox/gateway/registry_gateway"
	"toolbox/gateway/release_gateway"
	"toolbox/gateway/snapshot_gateway"
	"toolbox/gateway/trend_gateway"
	"toolbox/job"
	"toolbox/usecase/fetch_trends_usecase"
	"toolbox/usecase/recompute_trends_usecase"
	"toolbox/usecase/refresh_releases_usecase"
	"toolbox/usecase/trend_ranking_usecase"
	"toolbox/utils/logger"
)

// ReadinessChecker checks one backing service for the health endpoint.
type ReadinessChecker struct {
	Name  string
	Check func(ctx context.Context) error
}

type ApplicationComponents struct {
	Dispatcher             *job.Dispatcher
	TickScheduler          *job.TickScheduler
	TaskConsumer           *consumer.TaskConsumer
	TrendRanker            *trend_ranking_usecase.TrendRanker
	RecomputeTrendsUsecase *recompute_trends_usecase.RecomputeTrendsUsecase
	FetchTrendsUsecase     *fetch_trends_usecase.FetchTrendsUsecase
	RefreshReleasesUsecase *refresh_releases_usecase.RefreshReleasesUsecase
	ToolboxDBRepository    *toolbox_db.ToolboxDBRepository
	RedisDriver            *redis_queue.RedisDriver
	ReadinessCheckers      []ReadinessChecker
}

func NewApplicationComponents(pool toolbox_db.PgxIface, redisDriver *redis_queue.RedisDriver, cfg *config.Config) *ApplicationComponents {
	snapshotGatewayImpl := snapshot_gateway.NewSnapshotGateway(pool)
	releaseGatewayImpl := release_gateway.NewReleaseGateway(pool)
	trendGatewayImpl := trend_gateway.NewTrendGateway(pool)
	ignoreGatewayImpl := ignore_gateway.NewIgnoreGateway(pool)

	trendRanker := trend_ranking_usecase.NewTrendRanker(snapshotGatewayImpl, releaseGatewayImpl, cfg.Trends.ReleaseWindowDays)
	recomputeTrendsUsecase := recompute_trends_usecase.NewRecomputeTrendsUsecase(trendRanker, trendGatewayImpl)
	fetchTrendsUsecase := fetch_trends_usecase.NewFetchTrendsUsecase(trendGatewayImpl)

	registryClient := registry_client.NewClient(cfg.Releases.RegistryURL, cfg.Releases.RegistryRPS, cfg.Releases.RequestTimeout)
	registryGatewayImpl := registry_gateway.NewRegistryGateway(registryClient)
	refreshReleasesUsecase := refresh_releases_usecase.NewRefreshReleasesUsecase(
		releaseGatewayImpl, registryGatewayImpl, cfg.Releases.StaleAfter, cfg.Releases.BatchSize,
	)

	enqueueGatewayImpl := enqueue_gateway.NewEnqueueGateway(redisDriver)
	errorReporterGatewayImpl := error_reporter_gateway.NewErrorReporterGateway(logger.Logger)
	dispatcher := job.NewDispatcher(job.DefaultSchedule(enqueueGatewayImpl, ignoreGatewayImpl), errorReporterGatewayImpl)
	tickScheduler := job.NewTickScheduler(dispatcher, cfg.Scheduler.Interval, cfg.Scheduler.TickTimeout, cfg.Scheduler.RunOnStart)

	taskConsumer := consumer.NewTaskConsumer(redisDriver.Client(), consumer.Config{
		GroupName:    cfg.Redis.ConsumerGroup,
		ConsumerName: cfg.Redis.ConsumerName,
		BatchSize:    cfg.Redis.BatchSize,
		BlockTimeout: cfg.Redis.BlockTimeout,
		ClaimMinIdle: cfg.Redis.ClaimMinIdle,
	}, logger.Logger)
	taskConsumer.Register(domain.TaskRecomputeTrends, consumer.RecomputeTrendsHandler(recomputeTrendsUsecase))
	taskConsumer.Register(domain.TaskRefreshReleases, consumer.RefreshReleasesHandler(refreshReleasesUsecase))

	toolboxDBRepository := toolbox_db.NewToolboxDBRepository(pool)

	return &ApplicationComponents{
		Dispatcher:             dispatcher,
		TickScheduler:          tickScheduler,
		TaskConsumer:           taskConsumer,
		TrendRanker:            trendRanker,
		RecomputeTrendsUsecase: recomputeTrendsUsecase,
		FetchTrendsUsecase:     fetchTrendsUsecase,
		RefreshReleasesUsecase: refreshReleasesUsecase,
		ToolboxDBRepository:    toolboxDBRepository,
		RedisDriver:            redisDriver,
		ReadinessCheckers: []ReadinessChecker{
			{Name: "database", Check: toolboxDBRepository.Ping},
			{Name: "redis", Check: redisDriver.Ping},
		},
	}
}
