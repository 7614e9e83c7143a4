package shared

import (
	"context"

	"flashsale-scheduler/internal/domain/notification"
	"flashsale-scheduler/internal/domain/product"
	"flashsale-scheduler/internal/domain/schedule"
)

// Snapshot is the full persisted state: the ordered rule set and the product catalog.
type Snapshot struct {
	Schedules schedule.Set
	Catalog   product.Catalog
}

// SnapshotStore persists the snapshot. SaveSnapshot replaces both halves in one atomic write,
// so stored statuses never get ahead of stored prices. Callers serialize writes.
type SnapshotStore interface {
	Load(ctx context.Context) (Snapshot, error)
	SaveSnapshot(ctx context.Context, snap Snapshot) error
}

// Notifier accepts lifecycle and user-facing events. Publish must not block on consumers.
type Notifier interface {
	Publish(ctx context.Context, events ...notification.Event)
}

// MarketplaceAccount is the seller account returned by the marketplace after linking.
type MarketplaceAccount struct {
	ID       string
	Nickname string
	Email    string
	Token    string
}

type CatalogSource interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (MarketplaceAccount, error)
	FetchCatalog(ctx context.Context, account MarketplaceAccount) (product.Catalog, error)
	ToggleStatus(ctx context.Context, account MarketplaceAccount, productID string, next product.Status) error
	// DemoCatalog is the local seed shown before an account is linked.
	DemoCatalog() product.Catalog
}

type Advisor interface {
	Suggest(ctx context.Context, p product.Product, goal string) (schedule.Suggestion, error)
}
