//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"flashsale-scheduler/internal/domain/schedule"
	"flashsale-scheduler/internal/infra/memstore"
	"flashsale-scheduler/internal/usecase/queries"
	"flashsale-scheduler/internal/usecase/shared"
	"flashsale-scheduler/tests/common/builder"
	sharedmock "flashsale-scheduler/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type processingSet map[string]bool

func (p processingSet) IsProcessing(productID string) bool { return p[productID] }

func newDashboardStore(t *testing.T, schedules ...schedule.Schedule) *memstore.Store {
	t.Helper()
	catalog := builder.MustCatalog(
		builder.NewProductBuilder().WithID("p-1").WithTitle("Wireless Headphones").WithStock(12).WithOriginalPrice(6500).WithCurrentPrice(5200).MustBuild(),
		builder.NewProductBuilder().WithID("p-2").WithTitle("Coffee Maker").WithStock(20).WithOriginalPrice(1800).WithCurrentPrice(1800).MustBuild(),
		builder.NewProductBuilder().WithID("p-3").WithTitle("Gaming Headset").WithStock(3).WithOriginalPrice(3000).WithCurrentPrice(3000).WithStatus("paused").MustBuild(),
	)
	store := memstore.NewStore(catalog)
	require.NoError(t, store.SaveSchedules(context.Background(), schedule.NewSet(schedules...)))
	return store
}

func ids(views []queries.ProductView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func TestDashboardQueries_ListProducts(t *testing.T) {
	ctx := context.Background()
	active := builder.NewScheduleBuilder().WithProductID("p-1").WithStatus(schedule.StatusActive).Build()
	q := queries.NewDashboardQueries(newDashboardStore(t, active), processingSet{"p-3": true})

	tests := []struct {
		name   string
		filter queries.ProductFilter
		want   []string
	}{
		{name: "no filter keeps catalog order", filter: queries.ProductFilter{}, want: []string{"p-1", "p-2", "p-3"}},
		{name: "search is case-insensitive", filter: queries.ProductFilter{Search: "  HEAD "}, want: []string{"p-1", "p-3"}},
		{name: "paused only", filter: queries.ProductFilter{Status: queries.StatusFilterPaused}, want: []string{"p-3"}},
		{name: "active only", filter: queries.ProductFilter{Status: queries.StatusFilterActive}, want: []string{"p-1", "p-2"}},
		{name: "price ascending uses current price", filter: queries.ProductFilter{Sort: queries.SortPriceAsc}, want: []string{"p-2", "p-3", "p-1"}},
		{name: "price descending", filter: queries.ProductFilter{Sort: queries.SortPriceDesc}, want: []string{"p-1", "p-3", "p-2"}},
		{name: "stock ascending", filter: queries.ProductFilter{Sort: queries.SortStockAsc}, want: []string{"p-3", "p-1", "p-2"}},
		{name: "stock descending", filter: queries.ProductFilter{Sort: queries.SortStockDesc}, want: []string{"p-2", "p-1", "p-3"}},
		{name: "no match", filter: queries.ProductFilter{Search: "drone"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := q.ListProducts(ctx, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(views))
		})
	}

	t.Run("view carries prices and flags", func(t *testing.T) {
		views, err := q.ListProducts(ctx, queries.ProductFilter{})
		require.NoError(t, err)

		first := views[0]
		assert.Equal(t, "Wireless Headphones", first.Title)
		assert.Equal(t, 12, first.Stock)
		assert.Equal(t, "active", first.Status)
		assert.True(t, first.OriginalPrice.Equal(decimal.NewFromInt(6500)))
		assert.True(t, first.CurrentPrice.Equal(decimal.NewFromInt(5200)))
		assert.True(t, first.IsActiveSale)
		assert.False(t, first.IsProcessing)

		assert.False(t, views[1].IsActiveSale)
		assert.True(t, views[2].IsProcessing)
	})
}

func TestDashboardQueries_Stats(t *testing.T) {
	store := newDashboardStore(t,
		builder.NewScheduleBuilder().WithProductID("p-1").WithStatus(schedule.StatusActive).Build(),
		builder.NewScheduleBuilder().WithProductID("p-2").Build(),
		builder.NewScheduleBuilder().WithProductID("p-2").WithWindow(builder.BaseTime.Add(24*time.Hour), builder.BaseTime.Add(25*time.Hour)).Build(),
		builder.NewScheduleBuilder().WithProductID("p-3").WithStatus(schedule.StatusCompleted).Build(),
	)
	q := queries.NewDashboardQueries(store, processingSet{})

	stats, err := q.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &queries.DashboardStats{
		TotalProducts:    3,
		ActiveSales:      1,
		PendingSchedules: 2,
		PausedProducts:   1,
	}, stats)
}

func TestDashboardQueries_ListSchedules(t *testing.T) {
	first := builder.NewScheduleBuilder().WithProductID("p-2").WithFixed(1500).Build()
	dangling := builder.NewScheduleBuilder().WithProductID("gone").WithStatus(schedule.StatusActive).Build()
	q := queries.NewDashboardQueries(newDashboardStore(t, first, dangling), processingSet{})

	views, err := q.ListSchedules(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, first.ID(), views[0].ID)
	assert.Equal(t, "Coffee Maker", views[0].ProductTitle)
	assert.Equal(t, "fixed", views[0].Type)
	assert.True(t, views[0].Value.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "pending", views[0].Status)
	assert.False(t, views[0].IsActive)

	assert.Equal(t, queries.UnknownProductTitle, views[1].ProductTitle)
	assert.True(t, views[1].IsActive)
}

func TestDashboardQueries_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := sharedmock.NewMockSnapshotStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(shared.Snapshot{}, errors.New("connection refused")).Times(3)
	q := queries.NewDashboardQueries(store, processingSet{})
	ctx := context.Background()

	_, err := q.ListProducts(ctx, queries.ProductFilter{})
	assert.ErrorContains(t, err, "connection refused")
	_, err = q.Stats(ctx)
	assert.Error(t, err)
	_, err = q.ListSchedules(ctx)
	assert.Error(t, err)
}
