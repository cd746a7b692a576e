// Package consumer runs queued background tasks from Redis Streams.
package consumer

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"

	"toolbox/domain"
	"toolbox/driver/redis_queue"
	"toolbox/utils/errors"
	"toolbox/utils/logger"
	"toolbox/utils/metrics"
)

// Config holds consumer configuration.
type Config struct {
	// GroupName is the consumer group shared by all workers.
	GroupName string
	// ConsumerName identifies this worker within the group.
	ConsumerName string
	// BatchSize is the number of messages read per stream at once.
	BatchSize int64
	// BlockTimeout is how long a read waits for messages. Negative values do not block.
	BlockTimeout time.Duration
	// ClaimMinIdle is how long a delivered message must sit unacknowledged
	// before this worker claims it again.
	ClaimMinIdle time.Duration
}

func DefaultConfig() Config {
	return Config{
		GroupName:    "toolbox-workers",
		ConsumerName: "toolbox-worker-1",
		BatchSize:    10,
		BlockTimeout: 5 * time.Second,
		ClaimMinIdle: 5 * time.Minute,
	}
}

// TaskHandler runs one task.
type TaskHandler interface {
	HandleTask(ctx context.Context, task *domain.Task) error
}

// HandlerFunc adapts a function to TaskHandler.
type HandlerFunc func(ctx context.Context, task *domain.Task) error

func (f HandlerFunc) HandleTask(ctx context.Context, task *domain.Task) error {
	return f(ctx, task)
}

// TaskConsumer reads the streams of every registered task through a consumer group.
// Handled messages are acknowledged. Failed ones stay pending and are claimed
// again once they have been idle for ClaimMinIdle. Validation failures can
// never succeed and are acknowledged and dropped.
type TaskConsumer struct {
	client   *redis.Client
	config   Config
	handlers map[string]TaskHandler
	logger   *slog.Logger
	backoff  *backoff.ExponentialBackOff
}

func NewTaskConsumer(client *redis.Client, config Config, log *slog.Logger) *TaskConsumer {
	if log == nil {
		log = slog.Default()
	}
	return &TaskConsumer{
		client:   client,
		config:   config,
		handlers: make(map[string]TaskHandler),
		logger:   log,
		backoff:  newReadBackoff(),
	}
}

func newReadBackoff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 30 * time.Second
	bo.Multiplier = 2
	return bo
}

// Register routes tasks named task to handler.
func (c *TaskConsumer) Register(task string, handler TaskHandler) {
	c.handlers[task] = handler
}

// Handler returns the handler registered for task, or an error wrapping
// domain.ErrUnknownTask.
func (c *TaskConsumer) Handler(task string) (TaskHandler, error) {
	handler, ok := c.handlers[task]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTask, task)
	}
	return handler, nil
}

// Tasks returns the registered task names in sorted order.
func (c *TaskConsumer) Tasks() []string {
	tasks := make([]string, 0, len(c.handlers))
	for name := range c.handlers {
		tasks = append(tasks, name)
	}
	slices.Sort(tasks)
	return tasks
}

// EnsureGroups creates the consumer group on every registered task stream.
func (c *TaskConsumer) EnsureGroups(ctx context.Context) error {
	driver := redis_queue.NewRedisDriver(c.client, 0)
	for _, task := range c.Tasks() {
		if err := driver.CreateConsumerGroup(ctx, task, c.config.GroupName); err != nil {
			return errors.ClassifyQueueError("consumer", "TaskConsumer", "EnsureGroups", err, map[string]interface{}{
				"task": task,
			})
		}
	}
	return nil
}

// Run consumes until ctx is cancelled. Read errors are retried with exponential backoff.
func (c *TaskConsumer) Run(ctx context.Context) error {
	if len(c.handlers) == 0 {
		c.logger.Info("no task handlers registered, consumer not starting")
		return nil
	}
	if err := c.EnsureGroups(ctx); err != nil {
		return err
	}

	c.logger.Info("starting task consumer",
		"tasks", c.Tasks(),
		"group", c.config.GroupName,
		"consumer", c.config.ConsumerName,
	)

	for {
		if ctx.Err() != nil {
			c.logger.Info("task consumer stopping")
			return nil
		}

		if _, err := c.ProcessOnce(ctx); err != nil {
			if ctx.Err() != nil {
				continue
			}
			delay := c.backoff.NextBackOff()
			if delay == backoff.Stop {
				delay = c.backoff.MaxInterval
			}
			c.logger.Error("error reading tasks", "error", err, "retry_in", delay)
			select {
			case <-ctx.Done():
			case <-time.After(delay):
			}
			continue
		}
		c.backoff.Reset()
	}
}

// ProcessOnce first retries pending messages that have been idle for at least
// ClaimMinIdle, then performs a single read of new messages across all task
// streams. It returns the number of messages handled successfully.
func (c *TaskConsumer) ProcessOnce(ctx context.Context) (int, error) {
	handled, err := c.reclaimPending(ctx)
	if err != nil {
		return handled, err
	}

	tasks := c.Tasks()
	streams := make([]string, 0, 2*len(tasks))
	for _, task := range tasks {
		streams = append(streams, redis_queue.StreamKeyFor(task))
	}
	for range tasks {
		streams = append(streams, ">")
	}

	result, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.config.GroupName,
		Consumer: c.config.ConsumerName,
		Streams:  streams,
		Count:    c.config.BatchSize,
		Block:    c.config.BlockTimeout,
	}).Result()
	if err == redis.Nil {
		return handled, nil
	}
	if err != nil {
		return handled, err
	}

	for _, stream := range result {
		for _, message := range stream.Messages {
			if c.handleMessage(ctx, stream.Stream, message) {
				handled++
			}
		}
	}
	return handled, nil
}

// reclaimPending takes over messages that failed earlier or whose worker died.
func (c *TaskConsumer) reclaimPending(ctx context.Context) (int, error) {
	handled := 0
	for _, task := range c.Tasks() {
		stream := redis_queue.StreamKeyFor(task)
		messages, _, err := c.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   stream,
			Group:    c.config.GroupName,
			Consumer: c.config.ConsumerName,
			MinIdle:  c.config.ClaimMinIdle,
			Start:    "0-0",
			Count:    c.config.BatchSize,
		}).Result()
		if err != nil {
			return handled, err
		}

		for _, message := range messages {
			c.logger.Info("retrying pending task", "stream", stream, "message_id", message.ID)
			if c.handleMessage(ctx, stream, message) {
				handled++
			}
		}
	}
	return handled, nil
}

func (c *TaskConsumer) handleMessage(ctx context.Context, stream string, message redis.XMessage) bool {
	task, err := redis_queue.TaskFromValues(message.Values)
	if err != nil {
		c.logger.Error("dropping malformed task", "stream", stream, "message_id", message.ID, "error", err)
		c.ack(ctx, stream, message.ID)
		return false
	}

	handler, err := c.Handler(task.Name)
	if err != nil {
		c.logger.Error("dropping task without handler", "message_id", message.ID, "error", err)
		c.ack(ctx, stream, message.ID)
		return false
	}

	taskCtx := logger.WithTask(ctx, task.Name)
	if err := handler.HandleTask(taskCtx, task); err != nil {
		metrics.RecordTaskHandled(task.Name, "error")
		errors.LogError(c.logger, err, task.Name)
		if errors.IsValidationError(err) {
			c.ack(ctx, stream, message.ID)
		}
		return false
	}

	metrics.RecordTaskHandled(task.Name, "success")
	c.ack(ctx, stream, message.ID)
	return true
}

func (c *TaskConsumer) ack(ctx context.Context, stream, id string) {
	if err := c.client.XAck(ctx, stream, c.config.GroupName, id).Err(); err != nil {
		c.logger.Error("failed to acknowledge task", "stream", stream, "message_id", id, "error", err)
	}
}
