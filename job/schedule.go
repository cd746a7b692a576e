package job

import (
	"context"
	"time"

	"toolbox/domain"
	"toolbox/port/enqueue_port"
	"toolbox/port/ignore_port"
)

// Action names of the default schedule.
const (
	ActionRemoteUpdateScheduler    = "remote_update_scheduler"
	ActionCatalogImport            = "catalog_import"
	ActionDownloadStatsPersistence = "download_stats_persistence"
	ActionGithubIgnoreExpire       = "github_ignore_expire"
	ActionRegistrySync             = "registry_sync"
	ActionSelectiveExport          = "selective_export"
	ActionTrendRecompute           = "trend_recompute"
)

// EnqueueAction returns an action that hands task to the queue. payload may be nil
// for tasks without arguments.
func EnqueueAction(enqueuer enqueue_port.Enqueuer, task string, payload func(now time.Time) any) ActionFunc {
	return func(ctx context.Context, now time.Time) error {
		var body any
		if payload != nil {
			body = payload(now)
		}
		return enqueuer.Enqueue(ctx, task, body)
	}
}

// ExpireIgnoresAction deletes expired ignore entries directly.
func ExpireIgnoresAction(ignores ignore_port.IgnoreExpirer) ActionFunc {
	return func(ctx context.Context, now time.Time) error {
		_, err := ignores.ExpireIgnores(ctx, now)
		return err
	}
}

func trendPayload(now time.Time) any {
	return domain.RecomputeTrendsPayload{Date: domain.FormatDate(now)}
}

// DefaultSchedule is the production action table in execution order.
func DefaultSchedule(enqueuer enqueue_port.Enqueuer, ignores ignore_port.IgnoreExpirer) []ScheduledAction {
	return []ScheduledAction{
		{Name: ActionRemoteUpdateScheduler, Rule: domain.Hourly, Run: EnqueueAction(enqueuer, domain.TaskRefreshReleases, nil)},
		{Name: ActionCatalogImport, Rule: domain.Hourly, Run: EnqueueAction(enqueuer, domain.TaskCatalogImport, nil)},
		{Name: ActionDownloadStatsPersistence, Rule: domain.Hourly, Run: EnqueueAction(enqueuer, domain.TaskPersistDownloads, nil)},
		{Name: ActionGithubIgnoreExpire, Rule: domain.Hourly, Run: ExpireIgnoresAction(ignores)},
		{Name: ActionRegistrySync, Rule: domain.DailyAtMidnight, Run: EnqueueAction(enqueuer, domain.TaskRegistrySync, nil)},
		{Name: ActionSelectiveExport, Rule: domain.EveryFourHours, Run: EnqueueAction(enqueuer, domain.TaskSelectiveExport, nil)},
		{Name: ActionTrendRecompute, Rule: domain.EveryFourHours, Run: EnqueueAction(enqueuer, domain.TaskRecomputeTrends, trendPayload)},
	}
}
