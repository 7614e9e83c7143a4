// Package reconcile derives schedule statuses and effective prices for a point in time.
package reconcile

import (
	"time"

	"github.com/google/go-cmp/cmp"

	"flashsale-scheduler/internal/domain/notification"
	"flashsale-scheduler/internal/domain/product"
	"flashsale-scheduler/internal/domain/schedule"
)

// PlaceholderTitle names a product that is missing from the catalog.
const PlaceholderTitle = "Product"

// Result is the next snapshot plus transition events. SchedulesChanged and CatalogChanged
// tell the caller whether persisting that half can be skipped.
type Result struct {
	Schedules        schedule.Set
	Catalog          product.Catalog
	Events           []notification.Event
	SchedulesChanged bool
	CatalogChanged   bool
}

// Reconcile is pure: it never mutates its inputs and calling it twice with the same now
// on its own output yields no events and no changes.
func Reconcile(now time.Time, schedules schedule.Set, catalog product.Catalog) Result {
	var events []notification.Event

	nextSchedules := schedules.Map(func(s schedule.Schedule) schedule.Schedule {
		next := s.Window().StatusAt(now)
		prev := s.Status()

		switch {
		case prev == schedule.StatusPending && next == schedule.StatusActive:
			events = append(events, notification.SaleStarted(s.ID(), s.ProductID(), titleOf(catalog, s.ProductID()), now))
		case prev == schedule.StatusActive && next == schedule.StatusCompleted:
			events = append(events, notification.SaleEnded(s.ID(), s.ProductID(), titleOf(catalog, s.ProductID()), now))
		}

		return s.WithStatus(next)
	})

	prices := make(map[string]product.Price, catalog.Len())
	for _, s := range nextSchedules.Items() {
		if !s.IsActive() {
			continue
		}
		p, ok := catalog.Find(s.ProductID())
		if !ok {
			continue
		}
		prices[p.ID()] = s.Adjustment().Apply(p.OriginalPrice())
	}

	nextCatalog := catalog.Map(func(p product.Product) product.Product {
		if price, ok := prices[p.ID()]; ok {
			return p.WithCurrentPrice(price)
		}
		return p.WithCurrentPrice(p.OriginalPrice())
	})

	return Result{
		Schedules:        nextSchedules,
		Catalog:          nextCatalog,
		Events:           events,
		SchedulesChanged: !cmp.Equal(schedules, nextSchedules),
		CatalogChanged:   !cmp.Equal(catalog, nextCatalog),
	}
}

func titleOf(catalog product.Catalog, productID string) string {
	if title, ok := catalog.TitleOf(productID); ok {
		return title
	}
	return PlaceholderTitle
}
