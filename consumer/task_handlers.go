package consumer

import (
	"context"
	"encoding/json"
	"time"

	"toolbox/domain"
	"toolbox/utils/errors"
	"toolbox/utils/logger"
)

// TrendRecomputer is satisfied by *recompute_trends_usecase.RecomputeTrendsUsecase.
type TrendRecomputer interface {
	Execute(ctx context.Context, date time.Time) (int, error)
}

// ReleaseRefresher is satisfied by *refresh_releases_usecase.RefreshReleasesUsecase.
type ReleaseRefresher interface {
	Execute(ctx context.Context) (int, error)
}

// RecomputeTrendsHandler handles trends.recompute tasks.
func RecomputeTrendsHandler(usecase TrendRecomputer) HandlerFunc {
	return func(ctx context.Context, task *domain.Task) error {
		var payload domain.RecomputeTrendsPayload
		if err := json.Unmarshal(task.Payload, &payload); err != nil {
			return errors.NewInvalidInputError("malformed trends.recompute payload", "consumer", "RecomputeTrendsHandler", "HandleTask", map[string]interface{}{
				"task_id": task.ID,
				"error":   err.Error(),
			})
		}
		date, err := payload.TargetDate()
		if err != nil {
			return errors.NewInvalidInputError(err.Error(), "consumer", "RecomputeTrendsHandler", "HandleTask", map[string]interface{}{
				"task_id": task.ID,
			})
		}

		n, err := usecase.Execute(ctx, date)
		if err != nil {
			return err
		}
		logger.Logger.InfoContext(ctx, "trends.recompute handled", "task_id", task.ID, "date", payload.Date, "entries", n)
		return nil
	}
}

// RefreshReleasesHandler handles releases.refresh tasks. The payload is ignored.
func RefreshReleasesHandler(usecase ReleaseRefresher) HandlerFunc {
	return func(ctx context.Context, task *domain.Task) error {
		n, err := usecase.Execute(ctx)
		if err != nil {
			return err
		}
		logger.Logger.InfoContext(ctx, "releases.refresh handled", "task_id", task.ID, "refreshed", n)
		return nil
	}
}
