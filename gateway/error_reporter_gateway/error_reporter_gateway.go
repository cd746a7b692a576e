package error_reporter_gateway

import (
	"context"
	"errors"
	"log/slog"

	"toolbox/utils/logger"
	"toolbox/utils/metrics"

	appErrors "toolbox/utils/errors"
)

// ErrorReporterGateway implements error_reporter_port.ErrorReporter by logging
// the failure and counting it by error code.
type ErrorReporterGateway struct {
	logger *slog.Logger
}

func NewErrorReporterGateway(log *slog.Logger) *ErrorReporterGateway {
	if log == nil {
		log = slog.Default()
	}
	return &ErrorReporterGateway{logger: log}
}

func (g *ErrorReporterGateway) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}

	metrics.RecordReportedError(errorCode(err))

	log := logger.NewContextLogger(g.logger).WithContext(ctx)
	appErrors.LogError(log, err, "report")
}

func errorCode(err error) string {
	var contextErr *appErrors.AppContextError
	if errors.As(err, &contextErr) {
		return contextErr.Code
	}
	return string(appErrors.ErrCodeUnknown)
}
