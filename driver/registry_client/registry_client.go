// Package registry_client talks to the RubyGems.org JSON API.
package registry_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"toolbox/utils/logger"

	"golang.org/x/time/rate"
)

var ErrGemNotFound = errors.New("gem not found")

const userAgent = "toolbox-recompute/1.0"

// GemInfo is the subset of /api/v1/gems/<name>.json the service reads.
type GemInfo struct {
	Name             string    `json:"name"`
	Version          string    `json:"version"`
	Downloads        int64     `json:"downloads"`
	VersionCreatedAt time.Time `json:"version_created_at"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient paces requests at rps requests per second. rps <= 0 disables pacing.
func NewClient(baseURL string, rps float64, timeout time.Duration) *Client {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// FetchGem returns ErrGemNotFound when the registry answers 404.
func (c *Client) FetchGem(ctx context.Context, name string) (*GemInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v1/gems/%s.json", c.baseURL, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch gem %s: %w", name, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Logger.DebugContext(ctx, "Failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrGemNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch gem %s: status %d: %s", name, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var info GemInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode gem %s: %w", name, err)
	}
	return &info, nil
}
