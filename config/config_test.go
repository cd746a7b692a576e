package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEnvVars = []string{
	"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
	"DB_MAX_CONNS", "DB_MIN_CONNS", "DB_MAX_CONN_LIFETIME", "DB_CONNECT_TIMEOUT",
	"REDIS_URL", "REDIS_STREAM_MAX_LEN", "REDIS_CONSUMER_GROUP", "REDIS_CONSUMER_NAME",
	"REDIS_BATCH_SIZE", "REDIS_BLOCK_TIMEOUT", "REDIS_CLAIM_MIN_IDLE",
	"SCHEDULER_ENABLED", "SCHEDULER_INTERVAL", "SCHEDULER_TICK_TIMEOUT", "SCHEDULER_RUN_ON_START",
	"TREND_RELEASE_WINDOW_DAYS",
	"RELEASE_REFRESH_STALE_AFTER", "RELEASE_REFRESH_BATCH", "RELEASE_REGISTRY_URL",
	"RELEASE_REGISTRY_RPS", "RELEASE_REGISTRY_TIMEOUT",
	"LOG_LEVEL", "LOG_FORMAT",
	"OTEL_ENABLED", "OTEL_SERVICE_NAME", "SERVICE_VERSION", "DEPLOYMENT_ENV",
	"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_TRACE_SAMPLE_RATIO",
}

// clearTestEnv blanks every variable the loader reads; blank values fall back to defaults.
func clearTestEnv(t *testing.T) {
	t.Helper()
	for _, env := range testEnvVars {
		t.Setenv(env, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearTestEnv(t)

	config, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, ServerConfig{
		Port:         9300,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}, config.Server)
	assert.Equal(t, "localhost", config.Database.Host)
	assert.Equal(t, 10, config.Database.MaxConns)
	assert.Equal(t, "redis://localhost:6379", config.Redis.URL)
	assert.Equal(t, int64(10000), config.Redis.StreamMaxLen)
	assert.Equal(t, 5*time.Minute, config.Redis.ClaimMinIdle)
	assert.Equal(t, SchedulerConfig{
		Enabled:     true,
		Interval:    time.Hour,
		TickTimeout: 5 * time.Minute,
		RunOnStart:  false,
	}, config.Scheduler)
	assert.Equal(t, 365, config.Trends.ReleaseWindowDays)
	assert.Equal(t, ReleasesConfig{
		StaleAfter:     24 * time.Hour,
		BatchSize:      100,
		RegistryURL:    "https://rubygems.org",
		RegistryRPS:    5,
		RequestTimeout: 15 * time.Second,
	}, config.Releases)
	assert.Equal(t, LoggingConfig{Level: "info", Format: "json"}, config.Logging)
	assert.Equal(t, TelemetryConfig{
		Enabled:        false,
		ServiceName:    "toolbox",
		ServiceVersion: "0.0.0",
		Environment:    "development",
		Endpoint:       "http://localhost:4318",
		SampleRatio:    0.1,
	}, config.Telemetry)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	clearTestEnv(t)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("TREND_RELEASE_WINDOW_DAYS", "180")
	t.Setenv("RELEASE_REGISTRY_RPS", "0.5")
	t.Setenv("SCHEDULER_RUN_ON_START", "true")
	t.Setenv("REDIS_BLOCK_TIMEOUT", "250ms")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SCHEDULER_INTERVAL", "2h")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://otel-collector:4318")
	t.Setenv("OTEL_TRACE_SAMPLE_RATIO", "1")

	config, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, 180, config.Trends.ReleaseWindowDays)
	assert.Equal(t, 0.5, config.Releases.RegistryRPS)
	assert.True(t, config.Scheduler.RunOnStart)
	assert.Equal(t, 250*time.Millisecond, config.Redis.BlockTimeout)
	assert.Equal(t, "text", config.Logging.Format)
	assert.Equal(t, 2*time.Hour, config.Scheduler.Interval)
	assert.True(t, config.Telemetry.Enabled)
	assert.Equal(t, "http://otel-collector:4318", config.Telemetry.Endpoint)
	assert.Equal(t, 1.0, config.Telemetry.SampleRatio)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unparseable integer",
			env:     map[string]string{"SERVER_PORT": "nine"},
			wantErr: "invalid integer value for SERVER_PORT",
		},
		{
			name:    "unparseable duration",
			env:     map[string]string{"RELEASE_REFRESH_STALE_AFTER": "daily"},
			wantErr: "invalid duration value for RELEASE_REFRESH_STALE_AFTER",
		},
		{
			name:    "unparseable boolean",
			env:     map[string]string{"SCHEDULER_ENABLED": "sometimes"},
			wantErr: "invalid boolean value for SCHEDULER_ENABLED",
		},
		{
			name:    "port out of range",
			env:     map[string]string{"SERVER_PORT": "70000"},
			wantErr: "server config validation failed",
		},
		{
			name:    "min above max connections",
			env:     map[string]string{"DB_MIN_CONNS": "20"},
			wantErr: "database config validation failed",
		},
		{
			name:    "non redis url",
			env:     map[string]string{"REDIS_URL": "http://localhost:6379"},
			wantErr: "redis config validation failed",
		},
		{
			name:    "claim min idle below one second",
			env:     map[string]string{"REDIS_CLAIM_MIN_IDLE": "10ms"},
			wantErr: "redis config validation failed",
		},
		{
			name:    "sub hour interval",
			env:     map[string]string{"SCHEDULER_INTERVAL": "1m"},
			wantErr: "interval must be a whole number of hours",
		},
		{
			name:    "fractional hour interval",
			env:     map[string]string{"SCHEDULER_INTERVAL": "90m"},
			wantErr: "interval must be a whole number of hours",
		},
		{
			name:    "tick timeout longer than interval",
			env:     map[string]string{"SCHEDULER_TICK_TIMEOUT": "2h"},
			wantErr: "scheduler config validation failed",
		},
		{
			name:    "zero release window",
			env:     map[string]string{"TREND_RELEASE_WINDOW_DAYS": "0"},
			wantErr: "trends config validation failed",
		},
		{
			name:    "relative registry url",
			env:     map[string]string{"RELEASE_REGISTRY_URL": "rubygems.org"},
			wantErr: "releases config validation failed",
		},
		{
			name:    "telemetry endpoint without scheme",
			env:     map[string]string{"OTEL_ENABLED": "true", "OTEL_EXPORTER_OTLP_ENDPOINT": "otel-collector:4318"},
			wantErr: "telemetry config validation failed",
		},
		{
			name:    "telemetry sample ratio above one",
			env:     map[string]string{"OTEL_ENABLED": "true", "OTEL_TRACE_SAMPLE_RATIO": "2"},
			wantErr: "telemetry config validation failed",
		},
		{
			name:    "unknown log level",
			env:     map[string]string{"LOG_LEVEL": "verbose"},
			wantErr: "logging config validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTestEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := NewConfig()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), "got %q", err.Error())
		})
	}
}
