package commands

import (
	"context"
	"log/slog"
	"sync"

	"flashsale-scheduler/internal/domain/notification"
	"flashsale-scheduler/internal/domain/reconcile"
	"flashsale-scheduler/internal/pkg/clock"
	"flashsale-scheduler/internal/pkg/errs"
	"flashsale-scheduler/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
)

// MutateFunc derives a new snapshot from the current one. Returned events are published
// before those of the reconciliation pass that follows.
type MutateFunc func(current shared.Snapshot) (shared.Snapshot, []notification.Event, error)

type PassResult struct {
	Started          int
	Ended            int
	SchedulesChanged bool
	CatalogChanged   bool
}

// Reconciler is the only writer of the snapshot store. Passes and mutations never overlap.
type Reconciler interface {
	RunPass(ctx context.Context) (PassResult, error)
	Mutate(ctx context.Context, fn MutateFunc) (shared.Snapshot, error)
	Snapshot(ctx context.Context) (shared.Snapshot, error)
}

type reconcilerImpl struct {
	mu       sync.Mutex
	store    shared.SnapshotStore
	notifier shared.Notifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReconciler(store shared.SnapshotStore, notifier shared.Notifier, clock clock.Clock, logger *slog.Logger) Reconciler {
	return &reconcilerImpl{
		store:    store,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

func (r *reconcilerImpl) RunPass(ctx context.Context) (PassResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.store.Load(ctx)
	if err != nil {
		return PassResult{}, errs.Wrap(err, "load snapshot")
	}
	_, result, err := r.passLocked(ctx, current)
	return result, err
}

func (r *reconcilerImpl) Mutate(ctx context.Context, fn MutateFunc) (shared.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.store.Load(ctx)
	if err != nil {
		return shared.Snapshot{}, errs.Wrap(err, "load snapshot")
	}

	next, events, err := fn(current)
	if err != nil {
		return shared.Snapshot{}, err
	}

	if err := r.save(ctx, next, !cmp.Equal(current.Schedules, next.Schedules), !cmp.Equal(current.Catalog, next.Catalog)); err != nil {
		return shared.Snapshot{}, err
	}
	if len(events) > 0 {
		r.notifier.Publish(ctx, events...)
	}

	reconciled, _, err := r.passLocked(ctx, next)
	if err != nil {
		// The mutation itself is already stored; the next tick retries the pass.
		r.logger.Warn("reconciliation after mutation failed", "error", err)
		return next, nil
	}
	return reconciled, nil
}

func (r *reconcilerImpl) Snapshot(ctx context.Context) (shared.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, err := r.store.Load(ctx)
	if err != nil {
		return shared.Snapshot{}, errs.Wrap(err, "load snapshot")
	}
	return snap, nil
}

func (r *reconcilerImpl) passLocked(ctx context.Context, current shared.Snapshot) (shared.Snapshot, PassResult, error) {
	res := reconcile.Reconcile(r.clock.Now(), current.Schedules, current.Catalog)
	next := shared.Snapshot{Schedules: res.Schedules, Catalog: res.Catalog}

	if err := r.save(ctx, next, res.SchedulesChanged, res.CatalogChanged); err != nil {
		return current, PassResult{}, err
	}

	result := PassResult{
		SchedulesChanged: res.SchedulesChanged,
		CatalogChanged:   res.CatalogChanged,
	}
	for _, e := range res.Events {
		switch e.Kind {
		case notification.KindSaleStarted:
			result.Started++
		case notification.KindSaleEnded:
			result.Ended++
		}
	}
	if len(res.Events) > 0 {
		r.notifier.Publish(ctx, res.Events...)
		r.logger.Info("schedule transitions applied", "started", result.Started, "ended", result.Ended)
	}

	return next, result, nil
}

// save writes the whole snapshot in one store call when either half changed, so a failure
// leaves the previous statuses in place and the next pass detects the same transitions.
// Callers publish events after it succeeds.
func (r *reconcilerImpl) save(ctx context.Context, next shared.Snapshot, schedulesChanged, catalogChanged bool) error {
	if !schedulesChanged && !catalogChanged {
		return nil
	}
	if err := r.store.SaveSnapshot(ctx, next); err != nil {
		return errs.Wrap(err, "save snapshot")
	}
	return nil
}
