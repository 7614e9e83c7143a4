//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"flashsale-scheduler/internal/domain/notification"
	"flashsale-scheduler/internal/domain/schedule"
	"flashsale-scheduler/internal/infra/marketplace"
	"flashsale-scheduler/internal/usecase/commands"
	"flashsale-scheduler/internal/usecase/shared"
	"flashsale-scheduler/tests/common/builder"
	sharedmock "flashsale-scheduler/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReconciler_RunPass(t *testing.T) {
	ctx := context.Background()

	t.Run("success: due schedule starts once and ends once", func(t *testing.T) {
		f := newFixture(t)
		sale := builder.NewScheduleBuilder().
			WithWindow(builder.BaseTime.Add(time.Minute), builder.BaseTime.Add(time.Hour)).
			WithPercentage(20).
			Build()
		f.seedSchedules(t, sale)

		result, err := f.reconciler.RunPass(ctx)
		require.NoError(t, err)
		assert.Zero(t, result.Started)
		assert.False(t, result.CatalogChanged)

		f.clock.Add(time.Minute)
		result, err = f.reconciler.RunPass(ctx)
		require.NoError(t, err)
		assert.Equal(t, commands.PassResult{Started: 1, SchedulesChanged: true, CatalogChanged: true}, result)
		assert.True(t, f.product(t, "MLM-1001").CurrentPrice().Equal(decimal.NewFromInt(5200)))

		result, err = f.reconciler.RunPass(ctx)
		require.NoError(t, err)
		assert.Equal(t, commands.PassResult{}, result, "second pass at the same instant is a no-op")

		f.clock.Add(time.Hour)
		result, err = f.reconciler.RunPass(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Ended)
		assert.True(t, f.product(t, "MLM-1001").CurrentPrice().Equal(decimal.NewFromInt(6500)))

		assert.Equal(t, []notification.Kind{notification.KindSaleStarted, notification.KindSaleEnded}, f.kinds())
	})

	t.Run("error: load failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t)
		store := sharedmock.NewMockSnapshotStore(ctrl)
		loadErr := errors.New("connection refused")
		store.EXPECT().Load(gomock.Any()).Return(shared.Snapshot{}, loadErr)

		r := commands.NewReconciler(store, f.hub, f.clock, f.logger)
		_, err := r.RunPass(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, loadErr)
		assert.Empty(t, f.hub.Active())
	})

	t.Run("error: failed save publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t)
		store := sharedmock.NewMockSnapshotStore(ctrl)
		sale := builder.NewScheduleBuilder().WithPercentage(20).Build()
		store.EXPECT().Load(gomock.Any()).Return(shared.Snapshot{
			Schedules: schedule.NewSet(sale),
			Catalog:   marketplace.DemoCatalog(),
		}, nil)
		store.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		r := commands.NewReconciler(store, f.hub, f.clock, f.logger)
		_, err := r.RunPass(ctx)

		require.Error(t, err)
		assert.Empty(t, f.hub.Active(), "transition events must wait for a stored snapshot")
	})

	t.Run("success: transition lost to a failed save is emitted by the next pass", func(t *testing.T) {
		f := newFixture(t)
		store := &failingOnceStore{Store: f.store, err: errors.New("catalog write failed")}
		r := commands.NewReconciler(store, f.hub, f.clock, f.logger)
		sale := builder.NewScheduleBuilder().
			WithWindow(builder.BaseTime.Add(time.Minute), builder.BaseTime.Add(time.Hour)).
			WithPercentage(20).
			Build()
		f.seedSchedules(t, sale)
		f.clock.Add(time.Minute)

		_, err := r.RunPass(ctx)
		require.Error(t, err)
		stored, ok := f.snapshot(t).Schedules.Find(sale.ID())
		require.True(t, ok)
		assert.Equal(t, schedule.StatusPending, stored.Status(), "failed save must not persist the new status")
		assert.True(t, f.product(t, "MLM-1001").CurrentPrice().Equal(decimal.NewFromInt(6500)))

		result, err := r.RunPass(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Started)
		assert.Equal(t, []notification.Kind{notification.KindSaleStarted}, f.kinds())
		assert.True(t, f.product(t, "MLM-1001").CurrentPrice().Equal(decimal.NewFromInt(5200)))

		_, err = r.RunPass(ctx)
		require.NoError(t, err)
		assert.Len(t, f.kinds(), 1, "the start is reported exactly once")
	})
}

func TestReconciler_Mutate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: mutation events precede pass events", func(t *testing.T) {
		f := newFixture(t)
		sale := builder.NewScheduleBuilder().WithFixed(4999).Build()

		snap, err := f.reconciler.Mutate(ctx, func(current shared.Snapshot) (shared.Snapshot, []notification.Event, error) {
			return shared.Snapshot{Schedules: current.Schedules.Insert(sale), Catalog: current.Catalog},
				[]notification.Event{notification.ScheduleCreated(sale.ID(), sale.ProductID(), f.clock.Now())},
				nil
		})
		require.NoError(t, err)

		stored, ok := snap.Schedules.Find(sale.ID())
		require.True(t, ok)
		assert.Equal(t, schedule.StatusActive, stored.Status())
		assert.Equal(t, []notification.Kind{notification.KindScheduleCreated, notification.KindSaleStarted}, f.kinds())
		assert.True(t, f.product(t, "MLM-1001").CurrentPrice().Equal(decimal.NewFromInt(4999)))
	})

	t.Run("error: rejected mutation leaves the store untouched", func(t *testing.T) {
		f := newFixture(t)
		before, err := f.store.Load(ctx)
		require.NoError(t, err)

		rejection := errors.New("rejected")
		_, err = f.reconciler.Mutate(ctx, func(shared.Snapshot) (shared.Snapshot, []notification.Event, error) {
			return shared.Snapshot{}, []notification.Event{notification.Warning("x", "y", f.clock.Now())}, rejection
		})

		require.ErrorIs(t, err, rejection)
		after, err := f.store.Load(ctx)
		require.NoError(t, err)
		assert.True(t, before.Catalog.Equal(after.Catalog))
		assert.Zero(t, after.Schedules.Len())
		assert.Empty(t, f.hub.Active())
	})

	t.Run("success: failed follow-up pass still returns the stored mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t)
		store := sharedmock.NewMockSnapshotStore(ctrl)
		sale := builder.NewScheduleBuilder().WithPercentage(10).Build()

		gomock.InOrder(
			store.EXPECT().Load(gomock.Any()).Return(shared.Snapshot{Schedules: schedule.NewSet(), Catalog: marketplace.DemoCatalog()}, nil),
			store.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(nil),
			store.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(errors.New("timeout")),
		)

		r := commands.NewReconciler(store, f.hub, f.clock, f.logger)
		snap, err := r.Mutate(ctx, func(current shared.Snapshot) (shared.Snapshot, []notification.Event, error) {
			return shared.Snapshot{Schedules: current.Schedules.Insert(sale), Catalog: current.Catalog}, nil, nil
		})

		require.NoError(t, err)
		stored, ok := snap.Schedules.Find(sale.ID())
		require.True(t, ok)
		assert.Equal(t, schedule.StatusPending, stored.Status(), "status is settled by the next tick")
	})
}
