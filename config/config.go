package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Redis     RedisConfig     `json:"redis"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Trends    TrendsConfig    `json:"trends"`
	Releases  ReleasesConfig  `json:"releases"`
	Logging   LoggingConfig   `json:"logging"`
	Telemetry TelemetryConfig `json:"telemetry"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	Host           string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port           string        `json:"port" env:"DB_PORT" default:"5432"`
	User           string        `json:"user" env:"DB_USER" default:"toolbox"`
	Password       string        `json:"-" env:"DB_PASSWORD"`
	Name           string        `json:"name" env:"DB_NAME" default:"toolbox"`
	SSLMode        string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConns       int           `json:"max_conns" env:"DB_MAX_CONNS" default:"10"`
	MinConns       int           `json:"min_conns" env:"DB_MIN_CONNS" default:"1"`
	MaxConnLife    time.Duration `json:"max_conn_life" env:"DB_MAX_CONN_LIFETIME" default:"1h"`
	ConnectTimeout time.Duration `json:"connect_timeout" env:"DB_CONNECT_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	URL           string        `json:"url" env:"REDIS_URL" default:"redis://localhost:6379"`
	StreamMaxLen  int64         `json:"stream_max_len" env:"REDIS_STREAM_MAX_LEN" default:"10000"`
	ConsumerGroup string        `json:"consumer_group" env:"REDIS_CONSUMER_GROUP" default:"toolbox-workers"`
	ConsumerName  string        `json:"consumer_name" env:"REDIS_CONSUMER_NAME" default:"toolbox-worker-1"`
	BatchSize     int64         `json:"batch_size" env:"REDIS_BATCH_SIZE" default:"10"`
	BlockTimeout  time.Duration `json:"block_timeout" env:"REDIS_BLOCK_TIMEOUT" default:"5s"`
	ClaimMinIdle  time.Duration `json:"claim_min_idle" env:"REDIS_CLAIM_MIN_IDLE" default:"5m"`
}

// SchedulerConfig controls the in-process tick. Interval must be a whole number of hours.
type SchedulerConfig struct {
	Enabled     bool          `json:"enabled" env:"SCHEDULER_ENABLED" default:"true"`
	Interval    time.Duration `json:"interval" env:"SCHEDULER_INTERVAL" default:"1h"`
	TickTimeout time.Duration `json:"tick_timeout" env:"SCHEDULER_TICK_TIMEOUT" default:"5m"`
	RunOnStart  bool          `json:"run_on_start" env:"SCHEDULER_RUN_ON_START" default:"false"`
}

type TrendsConfig struct {
	ReleaseWindowDays int `json:"release_window_days" env:"TREND_RELEASE_WINDOW_DAYS" default:"365"`
}

type ReleasesConfig struct {
	StaleAfter     time.Duration `json:"stale_after" env:"RELEASE_REFRESH_STALE_AFTER" default:"24h"`
	BatchSize      int           `json:"batch_size" env:"RELEASE_REFRESH_BATCH" default:"100"`
	RegistryURL    string        `json:"registry_url" env:"RELEASE_REGISTRY_URL" default:"https://rubygems.org"`
	RegistryRPS    float64       `json:"registry_rps" env:"RELEASE_REGISTRY_RPS" default:"5"`
	RequestTimeout time.Duration `json:"request_timeout" env:"RELEASE_REGISTRY_TIMEOUT" default:"15s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// TelemetryConfig gates OpenTelemetry export. Traces and logs go to the
// OTLP/HTTP collector at Endpoint only when Enabled is set.
type TelemetryConfig struct {
	Enabled        bool    `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	ServiceName    string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"toolbox"`
	ServiceVersion string  `json:"service_version" env:"SERVICE_VERSION" default:"0.0.0"`
	Environment    string  `json:"environment" env:"DEPLOYMENT_ENV" default:"development"`
	Endpoint       string  `json:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	SampleRatio    float64 `json:"sample_ratio" env:"OTEL_TRACE_SAMPLE_RATIO" default:"0.1"`
}

// NewConfig loads configuration from the environment, reading a .env file first when one exists.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
