package job

import (
	"context"
	"time"

	"toolbox/domain"
	"toolbox/port/error_reporter_port"
	appErrors "toolbox/utils/errors"
	"toolbox/utils/logger"
	"toolbox/utils/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "toolbox/job"

// ActionFunc performs one maintenance action for the tick at now.
type ActionFunc func(ctx context.Context, now time.Time) error

// ScheduledAction pairs an action with the rule deciding when it is due.
type ScheduledAction struct {
	Name string
	Rule domain.RecurrenceRule
	Run  ActionFunc
}

// Dispatcher runs the due actions of an ordered schedule for a tick.
type Dispatcher struct {
	actions  []ScheduledAction
	reporter error_reporter_port.ErrorReporter
}

// NewDispatcher copies actions. A nil reporter falls back to logging the failure.
func NewDispatcher(actions []ScheduledAction, reporter error_reporter_port.ErrorReporter) *Dispatcher {
	if reporter == nil {
		reporter = logReporter{}
	}
	return &Dispatcher{
		actions:  append([]ScheduledAction(nil), actions...),
		reporter: reporter,
	}
}

type logReporter struct{}

func (logReporter) Report(ctx context.Context, err error) {
	appErrors.LogError(logger.NewContextLogger(logger.Logger).WithContext(ctx), err, "tick")
}

// DueActions returns the actions due at now in registration order.
func (d *Dispatcher) DueActions(now time.Time) []ScheduledAction {
	due := make([]ScheduledAction, 0, len(d.actions))
	for _, a := range d.actions {
		if a.Rule.IsDue(now) {
			due = append(due, a)
		}
	}
	return due
}

// Tick runs every action due at now, one after another. The first failing
// action is reported once and its error is returned unchanged; actions after
// it are not run.
func (d *Dispatcher) Tick(ctx context.Context, now time.Time) error {
	due := d.DueActions(now)

	ctx = logger.WithTick(ctx, now)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Dispatcher.Tick", trace.WithAttributes(
		attribute.String("tick", now.UTC().Format(time.RFC3339)),
		attribute.Int("due", len(due)),
	))
	defer span.End()

	contextLogger := logger.NewContextLogger(logger.Logger)
	contextLogger.WithContext(ctx).InfoContext(ctx, "Tick started", "due", len(due))

	for _, a := range due {
		if err := d.runAction(ctx, contextLogger, a, now); err != nil {
			span.SetStatus(codes.Error, a.Name+" failed")
			metrics.RecordTick("error")
			d.reporter.Report(ctx, err)
			return err
		}
	}

	metrics.RecordTick("success")
	return nil
}

func (d *Dispatcher) runAction(ctx context.Context, contextLogger *logger.ContextLogger, a ScheduledAction, now time.Time) error {
	ctx = logger.WithOperation(ctx, a.Name)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "action "+a.Name, trace.WithAttributes(
		attribute.String("action", a.Name),
		attribute.String("rule", a.Rule.Name()),
	))
	defer span.End()

	start := time.Now()
	err := a.Run(ctx, now)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.RecordAction(a.Name, "error", elapsed.Seconds())
		contextLogger.LogError(ctx, a.Name, err)
		return err
	}

	metrics.RecordAction(a.Name, "success", elapsed.Seconds())
	contextLogger.LogDuration(ctx, a.Name, elapsed)
	return nil
}
