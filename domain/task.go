package domain

import (
	"encoding/json"
	"time"
)

// Task names understood by the worker queue.
const (
	TaskRefreshReleases  = "releases.refresh"
	TaskCatalogImport    = "catalog.import"
	TaskPersistDownloads = "downloads.persist"
	TaskRegistrySync     = "registry.sync"
	TaskSelectiveExport  = "database.selective_export"
	TaskRecomputeTrends  = "trends.recompute"
)

// Task is the envelope stored on the queue.
type Task struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

type RecomputeTrendsPayload struct {
	Date string `json:"date"`
}

// TargetDate parses the payload date.
func (p RecomputeTrendsPayload) TargetDate() (time.Time, error) {
	return ParseDate(p.Date)
}

type EmptyPayload struct{}
