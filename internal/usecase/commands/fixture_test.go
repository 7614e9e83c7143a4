//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"flashsale-scheduler/internal/domain/notification"
	"flashsale-scheduler/internal/domain/product"
	"flashsale-scheduler/internal/domain/schedule"
	"flashsale-scheduler/internal/infra/marketplace"
	"flashsale-scheduler/internal/infra/memstore"
	"flashsale-scheduler/internal/infra/notifier"
	"flashsale-scheduler/internal/pkg/clock"
	"flashsale-scheduler/internal/usecase/commands"
	"flashsale-scheduler/internal/usecase/shared"
	"flashsale-scheduler/tests/common/builder"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	store      *memstore.Store
	hub        *notifier.Hub
	clock      *clock.MockClock
	logger     *slog.Logger
	reconciler commands.Reconciler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(builder.BaseTime)
	store := memstore.NewStore(marketplace.DemoCatalog())
	hub := notifier.NewHub(100, time.Hour, clk, logger)

	return &fixture{
		store:      store,
		hub:        hub,
		clock:      clk,
		logger:     logger,
		reconciler: commands.NewReconciler(store, hub, clk, logger),
	}
}

func (f *fixture) seedSchedules(t *testing.T, items ...schedule.Schedule) {
	t.Helper()
	require.NoError(t, f.store.SaveSchedules(context.Background(), schedule.NewSet(items...)))
}

func (f *fixture) snapshot(t *testing.T) shared.Snapshot {
	t.Helper()
	snap, err := f.store.Load(context.Background())
	require.NoError(t, err)
	return snap
}

func (f *fixture) product(t *testing.T, id string) product.Product {
	t.Helper()
	p, ok := f.snapshot(t).Catalog.Find(id)
	require.True(t, ok, "product %s missing", id)
	return p
}

// failingOnceStore rejects the first snapshot write and delegates everything else.
type failingOnceStore struct {
	*memstore.Store
	err    error
	failed bool
}

func (s *failingOnceStore) SaveSnapshot(ctx context.Context, snap shared.Snapshot) error {
	if !s.failed {
		s.failed = true
		return s.err
	}
	return s.Store.SaveSnapshot(ctx, snap)
}

func (f *fixture) kinds() []notification.Kind {
	active := f.hub.Active()
	out := make([]notification.Kind, len(active))
	for i, n := range active {
		out[i] = n.Kind
	}
	return out
}
