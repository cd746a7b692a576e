package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateRedisConfig(&config.Redis); err != nil {
		return fmt.Errorf("redis config validation failed: %w", err)
	}

	if err := validateSchedulerConfig(&config.Scheduler); err != nil {
		return fmt.Errorf("scheduler config validation failed: %w", err)
	}

	if config.Trends.ReleaseWindowDays < 1 {
		return fmt.Errorf("trends config validation failed: release window must be at least 1 day, got %d", config.Trends.ReleaseWindowDays)
	}

	if err := validateReleasesConfig(&config.Releases); err != nil {
		return fmt.Errorf("releases config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateTelemetryConfig(&config.Telemetry); err != nil {
		return fmt.Errorf("telemetry config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 || config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got read=%v write=%v idle=%v",
			config.ReadTimeout, config.WriteTimeout, config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.Host == "" {
		return fmt.Errorf("host is required")
	}

	if config.MaxConns < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConns)
	}

	if config.MinConns < 0 || config.MinConns > config.MaxConns {
		return fmt.Errorf("min connections must be between 0 and %d, got %d", config.MaxConns, config.MinConns)
	}

	if config.ConnectTimeout <= 0 {
		return fmt.Errorf("connect timeout must be positive, got %v", config.ConnectTimeout)
	}

	return nil
}

func validateRedisConfig(config *RedisConfig) error {
	if !strings.HasPrefix(config.URL, "redis://") && !strings.HasPrefix(config.URL, "rediss://") {
		return fmt.Errorf("url must use redis:// or rediss://, got %q", config.URL)
	}

	if config.ConsumerGroup == "" || config.ConsumerName == "" {
		return fmt.Errorf("consumer group and consumer name are required")
	}

	if config.BatchSize < 1 {
		return fmt.Errorf("batch size must be at least 1, got %d", config.BatchSize)
	}

	if config.ClaimMinIdle < time.Second {
		return fmt.Errorf("claim min idle must be at least 1s, got %v", config.ClaimMinIdle)
	}

	return nil
}

func validateSchedulerConfig(config *SchedulerConfig) error {
	if config.Interval < time.Hour || config.Interval%time.Hour != 0 {
		return fmt.Errorf("interval must be a whole number of hours, got %v", config.Interval)
	}

	if config.TickTimeout <= 0 || config.TickTimeout > config.Interval {
		return fmt.Errorf("tick timeout must be positive and no longer than the interval, got %v", config.TickTimeout)
	}

	return nil
}

func validateReleasesConfig(config *ReleasesConfig) error {
	if config.StaleAfter < time.Minute {
		return fmt.Errorf("stale after must be at least 1m, got %v", config.StaleAfter)
	}

	if config.BatchSize < 1 {
		return fmt.Errorf("batch size must be at least 1, got %d", config.BatchSize)
	}

	u, err := url.Parse(config.RegistryURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("registry url is invalid: %q", config.RegistryURL)
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", config.RequestTimeout)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", config.Level)
	}

	switch strings.ToLower(config.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q", config.Format)
	}

	return nil
}

func validateTelemetryConfig(config *TelemetryConfig) error {
	if !config.Enabled {
		return nil
	}

	if config.ServiceName == "" {
		return fmt.Errorf("service name is required when telemetry is enabled")
	}

	u, err := url.Parse(config.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint must be an absolute http(s) URL, got %q", config.Endpoint)
	}

	if config.SampleRatio < 0 || config.SampleRatio > 1 {
		return fmt.Errorf("sample ratio must be between 0 and 1, got %v", config.SampleRatio)
	}

	return nil
}
