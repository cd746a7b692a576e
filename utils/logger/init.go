package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
)

var Logger *slog.Logger

func init() {
	// Usable before InitLogger runs (package tests, early startup errors).
	Logger = slog.Default()
}

// InitLogger builds the process logger from a level name ("debug", "info",
// "warn", "error") and a format ("json" or "text"), installs it as the slog
// default and returns it. With exportOTel set, records are also sent to the
// global OpenTelemetry logger provider, so InitProvider must run first.
func InitLogger(level, format string, exportOTel bool) *slog.Logger {
	Logger = slog.New(NewMultiHandler(handlersFor(os.Stdout, level, format, exportOTel)...))
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "level", level, "format", format, "otel", exportOTel)

	return Logger
}

// ParseLevel maps a configuration level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func handlersFor(w io.Writer, level, format string, exportOTel bool) []slog.Handler {
	handlers := []slog.Handler{handlerFor(w, ParseLevel(level), format)}
	if exportOTel {
		handlers = append(handlers, otelslog.NewHandler("toolbox",
			otelslog.WithLoggerProvider(global.GetLoggerProvider())))
	}
	return handlers
}

func handlerFor(w io.Writer, level slog.Level, format string) slog.Handler {
	options := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "text") {
		return slog.NewTextHandler(w, options)
	}
	return slog.NewJSONHandler(w, options)
}
