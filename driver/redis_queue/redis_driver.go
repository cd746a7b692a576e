// Package redis_queue stores background tasks on Redis Streams, one stream per task name.
package redis_queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"toolbox/domain"
)

const streamPrefix = "toolbox:tasks:"

const enqueuedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// StreamKeyFor returns the stream that carries tasks named task.
func StreamKeyFor(task string) string {
	return streamPrefix + task
}

type RedisDriver struct {
	client *redis.Client
	maxLen int64
}

// NewRedisDriverWithURL creates a driver from a redis:// URL. maxLen > 0 caps each stream approximately.
func NewRedisDriverWithURL(url string, maxLen int64) (*RedisDriver, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	return &RedisDriver{client: redis.NewClient(opts), maxLen: maxLen}, nil
}

func NewRedisDriver(client *redis.Client, maxLen int64) *RedisDriver {
	return &RedisDriver{client: client, maxLen: maxLen}
}

// Client exposes the underlying client for stream consumers sharing the connection.
func (d *RedisDriver) Client() *redis.Client {
	return d.client
}

func (d *RedisDriver) Close() error {
	return d.client.Close()
}

func (d *RedisDriver) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// Publish appends task to its stream and returns the stream message ID.
func (d *RedisDriver) Publish(ctx context.Context, task *domain.Task) (string, error) {
	if task == nil {
		return "", errors.New("task is nil")
	}
	if task.Name == "" {
		return "", errors.New("task name is empty")
	}

	args := &redis.XAddArgs{
		Stream: StreamKeyFor(task.Name),
		Values: taskToValues(task),
	}
	if d.maxLen > 0 {
		args.MaxLen = d.maxLen
		args.Approx = true
	}

	id, err := d.client.XAdd(ctx, args).Result()
	if err != nil {
		return "", fmt.Errorf("xadd %s: %w", args.Stream, err)
	}
	return id, nil
}

// CreateConsumerGroup creates group on the task stream, creating the stream if needed.
func (d *RedisDriver) CreateConsumerGroup(ctx context.Context, task, group string) error {
	err := d.client.XGroupCreateMkStream(ctx, StreamKeyFor(task), group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create consumer group %s: %w", group, err)
	}
	return nil
}

func taskToValues(task *domain.Task) map[string]interface{} {
	payload := "{}"
	if len(task.Payload) > 0 {
		payload = string(task.Payload)
	}
	return map[string]interface{}{
		"task_id":     task.ID,
		"task_name":   task.Name,
		"payload":     payload,
		"enqueued_at": task.EnqueuedAt.UTC().Format(enqueuedAtLayout),
	}
}

// TaskFromValues decodes a stream entry written by Publish.
func TaskFromValues(values map[string]interface{}) (*domain.Task, error) {
	name, _ := values["task_name"].(string)
	if name == "" {
		return nil, errors.New("missing task_name")
	}

	task := &domain.Task{Name: name}
	task.ID, _ = values["task_id"].(string)

	if payload, ok := values["payload"].(string); ok && payload != "" {
		if !json.Valid([]byte(payload)) {
			return nil, fmt.Errorf("task %s has malformed payload", name)
		}
		task.Payload = json.RawMessage(payload)
	}

	if raw, ok := values["enqueued_at"].(string); ok && raw != "" {
		enqueuedAt, err := time.Parse(enqueuedAtLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("parse enqueued_at: %w", err)
		}
		task.EnqueuedAt = enqueuedAt
	}

	return task, nil
}
