package job

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Ticker is satisfied by *Dispatcher.
type Ticker interface {
	Tick(ctx context.Context, now time.Time) error
}

// TickScheduler calls a Ticker at every interval boundary of the wall clock
// (the top of each hour for an hourly interval) until its context is cancelled.
type TickScheduler struct {
	ticker     Ticker
	interval   time.Duration
	timeout    time.Duration
	runOnStart bool
	now        func() time.Time
	wg         sync.WaitGroup
}

func NewTickScheduler(ticker Ticker, interval, timeout time.Duration, runOnStart bool) *TickScheduler {
	return &TickScheduler{
		ticker:     ticker,
		interval:   interval,
		timeout:    timeout,
		runOnStart: runOnStart,
		now:        time.Now,
	}
}

// Start launches the tick loop in a goroutine.
func (s *TickScheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

func (s *TickScheduler) run(ctx context.Context) {
	defer s.wg.Done()

	if s.runOnStart {
		s.executeTick(ctx)
	}

	for {
		timer := time.NewTimer(untilNextBoundary(s.now(), s.interval))
		select {
		case <-ctx.Done():
			timer.Stop()
			slog.InfoContext(ctx, "tick scheduler stopping")
			return
		case <-timer.C:
			s.executeTick(ctx)
		}
	}
}

func (s *TickScheduler) executeTick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	tickCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// The dispatcher has already reported the failure.
	if err := s.ticker.Tick(tickCtx, s.now()); err != nil {
		slog.ErrorContext(ctx, "tick failed", "error", err)
	}
}

// Shutdown blocks until the tick loop has returned.
func (s *TickScheduler) Shutdown() {
	s.wg.Wait()
}

func untilNextBoundary(now time.Time, interval time.Duration) time.Duration {
	return now.Truncate(interval).Add(interval).Sub(now)
}
