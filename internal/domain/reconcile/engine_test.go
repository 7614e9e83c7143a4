//go:build unit

package reconcile_test

import (
	"testing"
	"time"

	"flashsale-scheduler/internal/domain/notification"
	"flashsale-scheduler/internal/domain/product"
	"flashsale-scheduler/internal/domain/reconcile"
	"flashsale-scheduler/internal/domain/schedule"
	"flashsale-scheduler/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0    = builder.BaseTime
	start = t0.Add(10 * time.Minute)
	end   = t0.Add(20 * time.Minute)
)

func catalogOf(price int64) product.Catalog {
	return builder.MustCatalog(builder.NewProductBuilder().WithID("P1").WithTitle("Headphones").WithOriginalPrice(price).MustBuild())
}

func priceOf(t *testing.T, c product.Catalog, id string) decimal.Decimal {
	t.Helper()
	p, ok := c.Find(id)
	require.True(t, ok)
	return p.CurrentPrice()
}

func eventKinds(events []notification.Event) []notification.Kind {
	kinds := make([]notification.Kind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func TestReconcile_StatusDerivation(t *testing.T) {
	sc := builder.NewScheduleBuilder().WithProductID("P1").WithWindow(start, end).Build()

	tests := []struct {
		name string
		now  time.Time
		want schedule.Status
	}{
		{name: "before start is pending", now: start.Add(-time.Millisecond), want: schedule.StatusPending},
		{name: "exactly at start is active", now: start, want: schedule.StatusActive},
		{name: "inside window is active", now: start.Add(5 * time.Minute), want: schedule.StatusActive},
		{name: "exactly at end is active", now: end, want: schedule.StatusActive},
		{name: "after end is completed", now: end.Add(time.Millisecond), want: schedule.StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := reconcile.Reconcile(tt.now, schedule.NewSet(sc), catalogOf(1000))
			items := res.Schedules.Items()
			require.Len(t, items, 1)
			assert.Equal(t, tt.want, items[0].Status())
			assert.Equal(t, tt.want == schedule.StatusActive, items[0].IsActive())
		})
	}
}

func TestReconcile_Idempotence(t *testing.T) {
	schedules := schedule.NewSet(
		builder.NewScheduleBuilder().WithProductID("P1").WithWindow(start, end).WithPercentage(20).Build(),
		builder.NewScheduleBuilder().WithProductID("P1").WithWindow(t0.Add(-time.Hour), t0.Add(-time.Minute)).WithStatus(schedule.StatusActive).Build(),
	)
	now := start.Add(time.Minute)

	first := reconcile.Reconcile(now, schedules, catalogOf(1000))
	require.NotEmpty(t, first.Events)
	assert.True(t, first.SchedulesChanged)
	assert.True(t, first.CatalogChanged)

	second := reconcile.Reconcile(now, first.Schedules, first.Catalog)
	assert.Empty(t, second.Events)
	assert.False(t, second.SchedulesChanged)
	assert.False(t, second.CatalogChanged)
	if diff := cmp.Diff(first.Schedules, second.Schedules); diff != "" {
		t.Errorf("schedules mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first.Catalog, second.Catalog); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcile_TransitionEventsExactlyOnce(t *testing.T) {
	id := uuid.New()
	schedules := schedule.NewSet(builder.NewScheduleBuilder().WithID(id).WithProductID("P1").WithWindow(start, end).Build())
	catalog := catalogOf(1000)

	var all []notification.Event
	for now := t0; !now.After(end.Add(time.Minute)); now = now.Add(5 * time.Second) {
		res := reconcile.Reconcile(now, schedules, catalog)
		all = append(all, res.Events...)
		schedules, catalog = res.Schedules, res.Catalog
	}

	require.Equal(t, []notification.Kind{notification.KindSaleStarted, notification.KindSaleEnded}, eventKinds(all))
	for _, e := range all {
		assert.Equal(t, id, e.ScheduleID)
		assert.Equal(t, "P1", e.ProductID)
		assert.Contains(t, e.Message, "Headphones")
	}
	assert.Equal(t, notification.SeveritySuccess, all[0].Severity)
	assert.Equal(t, notification.SeverityInfo, all[1].Severity)
}

func TestReconcile_PendingToCompletedEmitsNothing(t *testing.T) {
	schedules := schedule.NewSet(builder.NewScheduleBuilder().WithProductID("P1").WithWindow(start, end).Build())

	res := reconcile.Reconcile(end.Add(time.Hour), schedules, catalogOf(1000))

	assert.Empty(t, res.Events)
	assert.Equal(t, schedule.StatusCompleted, res.Schedules.Items()[0].Status())
	assert.True(t, priceOf(t, res.Catalog, "P1").Equal(decimal.NewFromInt(1000)))
}

func TestReconcile_PriceReversion(t *testing.T) {
	schedules := schedule.NewSet(builder.NewScheduleBuilder().WithProductID("P1").WithWindow(start, end).WithPercentage(20).Build())

	active := reconcile.Reconcile(start, schedules, catalogOf(1000))
	assert.True(t, priceOf(t, active.Catalog, "P1").Equal(decimal.NewFromInt(800)))

	after := reconcile.Reconcile(end.Add(time.Second), active.Schedules, active.Catalog)
	assert.True(t, priceOf(t, after.Catalog, "P1").Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, []notification.Kind{notification.KindSaleEnded}, eventKinds(after.Events))
}

func TestReconcile_PercentageRounding(t *testing.T) {
	tests := []struct {
		name     string
		original int64
		percent  string
		want     int64
	}{
		{name: "exact", original: 1000, percent: "20", want: 800},
		{name: "rounds half up", original: 999, percent: "50", want: 500},
		{name: "rounds down below half", original: 1001, percent: "33", want: 671},
		{name: "zero percent keeps price", original: 6500, percent: "0", want: 6500},
		{name: "hundred percent is free", original: 6500, percent: "100", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := decimal.RequireFromString(tt.percent)
			sc := builder.NewScheduleBuilder().WithProductID("P1").WithWindow(start, end).Build()
			sc = schedule.ReconstructSchedule(sc.ID(), sc.ProductID(), sc.Window(), schedule.ReconstructAdjustment(schedule.TypePercentage, v), sc.Status(), sc.CreatedAt())

			res := reconcile.Reconcile(start, schedule.NewSet(sc), catalogOf(tt.original))
			got := priceOf(t, res.Catalog, "P1")
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestReconcile_FixedExactness(t *testing.T) {
	schedules := schedule.NewSet(builder.NewScheduleBuilder().WithProductID("P1").WithWindow(start, end).WithFixed(1234).Build())

	res := reconcile.Reconcile(start.Add(time.Second), schedules, catalogOf(1000))

	assert.True(t, priceOf(t, res.Catalog, "P1").Equal(decimal.NewFromInt(1234)))
}

func TestReconcile_OverlapLastInStoreOrderWins(t *testing.T) {
	early := builder.NewScheduleBuilder().WithProductID("P1").WithWindow(start, end).WithPercentage(10).Build()
	late := builder.NewScheduleBuilder().WithProductID("P1").WithWindow(start.Add(time.Minute), end).WithPercentage(50).Build()
	now := start.Add(2 * time.Minute)

	t.Run("later start wins", func(t *testing.T) {
		res := reconcile.Reconcile(now, schedule.NewSet(late, early), catalogOf(1000))
		assert.True(t, priceOf(t, res.Catalog, "P1").Equal(decimal.NewFromInt(500)))
	})

	t.Run("ties keep insertion order", func(t *testing.T) {
		a := builder.NewScheduleBuilder().WithProductID("P1").WithWindow(start, end).WithFixed(700).Build()
		b := builder.NewScheduleBuilder().WithProductID("P1").WithWindow(start, end).WithFixed(600).Build()

		ab := reconcile.Reconcile(now, schedule.NewSet(a, b), catalogOf(1000))
		ba := reconcile.Reconcile(now, schedule.NewSet(b, a), catalogOf(1000))

		assert.True(t, priceOf(t, ab.Catalog, "P1").Equal(decimal.NewFromInt(600)))
		assert.True(t, priceOf(t, ba.Catalog, "P1").Equal(decimal.NewFromInt(700)))
	})
}

func TestReconcile_DeletionRevertsPrice(t *testing.T) {
	sc := builder.NewScheduleBuilder().WithProductID("P1").WithWindow(start, end).WithPercentage(20).Build()
	active := reconcile.Reconcile(start, schedule.NewSet(sc), catalogOf(1000))
	require.True(t, priceOf(t, active.Catalog, "P1").Equal(decimal.NewFromInt(800)))

	remaining, err := active.Schedules.Remove(sc.ID())
	require.NoError(t, err)

	res := reconcile.Reconcile(start.Add(time.Second), remaining, active.Catalog)
	assert.True(t, priceOf(t, res.Catalog, "P1").Equal(decimal.NewFromInt(1000)))
	assert.Empty(t, res.Events)
}

func TestReconcile_DanglingProduct(t *testing.T) {
	sc := builder.NewScheduleBuilder().WithProductID("GONE").WithWindow(start, end).WithFixed(1).Build()
	catalog := catalogOf(1000)

	res := reconcile.Reconcile(start, schedule.NewSet(sc), catalog)

	require.Len(t, res.Events, 1)
	assert.Equal(t, notification.KindSaleStarted, res.Events[0].Kind)
	assert.Contains(t, res.Events[0].Message, reconcile.PlaceholderTitle)
	assert.Equal(t, schedule.StatusActive, res.Schedules.Items()[0].Status())
	assert.True(t, priceOf(t, res.Catalog, "P1").Equal(decimal.NewFromInt(1000)))
	assert.False(t, res.CatalogChanged)
}

func TestReconcile_InvertedWindowNeverActivates(t *testing.T) {
	sc := builder.NewScheduleBuilder().WithProductID("P1").WithWindow(end, start).WithFixed(1).Build()

	for _, now := range []time.Time{start, start.Add(5 * time.Minute), end} {
		res := reconcile.Reconcile(now, schedule.NewSet(sc), catalogOf(1000))
		assert.False(t, res.Schedules.Items()[0].IsActive())
		assert.True(t, priceOf(t, res.Catalog, "P1").Equal(decimal.NewFromInt(1000)))
		assert.Empty(t, res.Events)
	}
}

func TestReconcile_PausedProductStillPriced(t *testing.T) {
	catalog := builder.MustCatalog(builder.NewProductBuilder().WithID("P1").WithStatus("paused").WithOriginalPrice(1000).MustBuild())
	sc := builder.NewScheduleBuilder().WithProductID("P1").WithWindow(start, end).WithPercentage(20).Build()

	res := reconcile.Reconcile(start, schedule.NewSet(sc), catalog)

	p, ok := res.Catalog.Find("P1")
	require.True(t, ok)
	assert.True(t, p.CurrentPrice().Equal(decimal.NewFromInt(800)))
	assert.Equal(t, product.StatusPaused, p.Status())
}

func TestReconcile_InputsUntouched(t *testing.T) {
	sc := builder.NewScheduleBuilder().WithProductID("P1").WithWindow(start, end).WithPercentage(20).Build()
	schedules := schedule.NewSet(sc)
	catalog := catalogOf(1000)

	_ = reconcile.Reconcile(start, schedules, catalog)

	assert.Equal(t, schedule.StatusPending, schedules.Items()[0].Status())
	assert.True(t, priceOf(t, catalog, "P1").Equal(decimal.NewFromInt(1000)))
}

func TestReconcile_StalePriceResetWithoutRules(t *testing.T) {
	catalog := builder.MustCatalog(builder.NewProductBuilder().WithID("P1").WithOriginalPrice(1000).WithCurrentPrice(10).MustBuild())

	res := reconcile.Reconcile(t0, schedule.NewSet(), catalog)

	assert.True(t, res.CatalogChanged)
	assert.True(t, priceOf(t, res.Catalog, "P1").Equal(decimal.NewFromInt(1000)))
}
