package queries

import (
	"context"
	"sort"
	"strings"

	"flashsale-scheduler/internal/domain/product"
	"flashsale-scheduler/internal/domain/schedule"
	"flashsale-scheduler/internal/pkg/errs"
	"flashsale-scheduler/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

const UnknownProductTitle = "Unknown product"

// ProcessingChecker reports listings with a status change in flight.
type ProcessingChecker interface {
	IsProcessing(productID string) bool
}

type DashboardQueries interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]ProductView, error)
	Stats(ctx context.Context) (*DashboardStats, error)
	ListSchedules(ctx context.Context) ([]ScheduleView, error)
}

type dashboardQueriesImpl struct {
	store      shared.SnapshotStore
	processing ProcessingChecker
}

func NewDashboardQueries(store shared.SnapshotStore, processing ProcessingChecker) DashboardQueries {
	return &dashboardQueriesImpl{
		store:      store,
		processing: processing,
	}
}

func (q *dashboardQueriesImpl) ListProducts(ctx context.Context, filter ProductFilter) ([]ProductView, error) {
	snap, err := q.store.Load(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load snapshot")
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	views := make([]ProductView, 0, snap.Catalog.Len())
	for _, p := range snap.Catalog.Products() {
		if search != "" && !strings.Contains(strings.ToLower(p.Title()), search) {
			continue
		}
		if !matchesStatus(p, filter.Status) {
			continue
		}

		view, err := toProductView(p)
		if err != nil {
			return nil, err
		}
		view.IsActiveSale = snap.Schedules.HasActiveFor(p.ID())
		view.IsProcessing = q.processing.IsProcessing(p.ID())
		views = append(views, view)
	}

	sortProducts(views, filter.Sort)
	return views, nil
}

func (q *dashboardQueriesImpl) Stats(ctx context.Context) (*DashboardStats, error) {
	snap, err := q.store.Load(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load snapshot")
	}

	paused := 0
	for _, p := range snap.Catalog.Products() {
		if p.IsPaused() {
			paused++
		}
	}

	return &DashboardStats{
		TotalProducts:    snap.Catalog.Len(),
		ActiveSales:      snap.Schedules.CountByStatus(schedule.StatusActive),
		PendingSchedules: snap.Schedules.CountByStatus(schedule.StatusPending),
		PausedProducts:   paused,
	}, nil
}

// ListSchedules returns schedules in store order.
func (q *dashboardQueriesImpl) ListSchedules(ctx context.Context) ([]ScheduleView, error) {
	snap, err := q.store.Load(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load snapshot")
	}

	items := snap.Schedules.Items()
	views := make([]ScheduleView, 0, len(items))
	for _, s := range items {
		title, ok := snap.Catalog.TitleOf(s.ProductID())
		if !ok {
			title = UnknownProductTitle
		}
		views = append(views, ScheduleView{
			ID:           s.ID(),
			ProductID:    s.ProductID(),
			ProductTitle: title,
			StartTime:    s.StartTime(),
			EndTime:      s.EndTime(),
			Type:         s.Adjustment().Type().String(),
			Value:        s.Adjustment().Value(),
			Status:       s.Status().String(),
			IsActive:     s.IsActive(),
			CreatedAt:    s.CreatedAt(),
		})
	}
	return views, nil
}

// toProductView copies getter values into the view by name.
func toProductView(p product.Product) (ProductView, error) {
	var view ProductView
	if err := copier.Copy(&view, &p); err != nil {
		return ProductView{}, errs.Wrap(err, "copy product view")
	}
	return view, nil
}

func matchesStatus(p product.Product, status string) bool {
	switch status {
	case StatusFilterActive:
		return p.Status() == product.StatusActive
	case StatusFilterPaused:
		return p.Status() == product.StatusPaused
	default:
		return true
	}
}

func sortProducts(views []ProductView, order string) {
	var less func(a, b ProductView) bool
	switch order {
	case SortPriceAsc:
		less = func(a, b ProductView) bool { return a.CurrentPrice.LessThan(b.CurrentPrice) }
	case SortPriceDesc:
		less = func(a, b ProductView) bool { return a.CurrentPrice.GreaterThan(b.CurrentPrice) }
	case SortStockAsc:
		less = func(a, b ProductView) bool { return a.Stock < b.Stock }
	case SortStockDesc:
		less = func(a, b ProductView) bool { return a.Stock > b.Stock }
	default:
		return
	}
	sort.SliceStable(views, func(i, j int) bool { return less(views[i], views[j]) })
}
