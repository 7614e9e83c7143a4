// Package scheduler drives periodic reconciliation passes.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"flashsale-scheduler/internal/usecase/commands"
)

// Runner runs one pass immediately on Start and then one per tick until Stop.
type Runner struct {
	reconciler commands.Reconciler
	interval   time.Duration
	logger     *slog.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	passes   atomic.Uint64
	failures atomic.Uint64
}

func NewRunner(reconciler commands.Reconciler, interval time.Duration, logger *slog.Logger) *Runner {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Runner{
		reconciler: reconciler,
		interval:   interval,
		logger:     logger,
	}
}

// Start is a no-op when the runner is already running.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.loop(loopCtx, r.done)

	r.logger.Info("scheduler started", "interval", r.interval)
}

// Stop cancels the loop and waits for an in-flight pass to finish or ctx to expire.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		r.logger.Info("scheduler stopped", "passes", r.passes.Load(), "failures", r.failures.Load())
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Passes returns the number of completed passes, failed ones included.
func (r *Runner) Passes() uint64 {
	return r.passes.Load()
}

func (r *Runner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		r.runOnce(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	defer r.passes.Add(1)

	result, err := r.reconciler.RunPass(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		r.failures.Add(1)
		r.logger.Error("reconciliation pass failed", "error", err)
		return
	}
	if result.SchedulesChanged || result.CatalogChanged {
		r.logger.Debug("reconciliation pass applied changes",
			"started", result.Started,
			"ended", result.Ended,
			"schedules_changed", result.SchedulesChanged,
			"catalog_changed", result.CatalogChanged,
		)
	}
}
