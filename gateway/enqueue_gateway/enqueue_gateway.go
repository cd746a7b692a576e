package enqueue_gateway

import (
	"context"
	"encoding/json"
	"time"

	"toolbox/domain"
	"toolbox/utils/errors"
	"toolbox/utils/logger"
	"toolbox/utils/metrics"

	"github.com/google/uuid"
)

// TaskPublisher writes a task envelope to the queue.
type TaskPublisher interface {
	Publish(ctx context.Context, task *domain.Task) (string, error)
}

// EnqueueGateway implements enqueue_port.Enqueuer on Redis Streams.
type EnqueueGateway struct {
	publisher TaskPublisher
	now       func() time.Time
}

func NewEnqueueGateway(publisher TaskPublisher) *EnqueueGateway {
	return &EnqueueGateway{publisher: publisher, now: time.Now}
}

// Enqueue encodes payload as JSON and publishes it under taskName. A nil payload is sent as {}.
func (g *EnqueueGateway) Enqueue(ctx context.Context, taskName string, payload any) error {
	if payload == nil {
		payload = domain.EmptyPayload{}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.NewInvalidInputError("task payload is not JSON encodable", "gateway", "EnqueueGateway", "Enqueue", map[string]interface{}{
			"task":  taskName,
			"error": err.Error(),
		})
	}

	task := &domain.Task{
		ID:         uuid.NewString(),
		Name:       taskName,
		Payload:    body,
		EnqueuedAt: g.now().UTC(),
	}

	messageID, err := g.publisher.Publish(ctx, task)
	if err != nil {
		metrics.RecordEnqueue(taskName, "error")
		queueErr := errors.ClassifyQueueError("gateway", "EnqueueGateway", "Enqueue", err, map[string]interface{}{
			"task":    taskName,
			"task_id": task.ID,
		})
		errors.LogError(logger.Logger, queueErr, "enqueue_task")
		return queueErr
	}

	metrics.RecordEnqueue(taskName, "success")
	logger.Logger.InfoContext(ctx, "Task enqueued",
		"task", taskName,
		"task_id", task.ID,
		"message_id", messageID)
	return nil
}
