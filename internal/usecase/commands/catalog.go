package commands

import (
	"context"
	"log/slog"
	"sync"

	"flashsale-scheduler/internal/domain/notification"
	"flashsale-scheduler/internal/domain/product"
	"flashsale-scheduler/internal/pkg/clock"
	"flashsale-scheduler/internal/pkg/errs"
	"flashsale-scheduler/internal/usecase/shared"
)

type CatalogCommands interface {
	ToggleStatus(ctx context.Context, productID string) (product.Product, error)
	IsProcessing(productID string) bool
}

type catalogUseCaseImpl struct {
	reconciler Reconciler
	source     shared.CatalogSource
	accounts   *shared.AccountState
	notifier   shared.Notifier
	clock      clock.Clock
	logger     *slog.Logger

	mu         sync.Mutex
	processing map[string]struct{}
}

func NewCatalogUseCase(
	reconciler Reconciler,
	source shared.CatalogSource,
	accounts *shared.AccountState,
	notifier shared.Notifier,
	clock clock.Clock,
	logger *slog.Logger,
) CatalogCommands {
	return &catalogUseCaseImpl{
		reconciler: reconciler,
		source:     source,
		accounts:   accounts,
		notifier:   notifier,
		clock:      clock,
		logger:     logger,
		processing: make(map[string]struct{}),
	}
}

// ToggleStatus flips a listing between active and paused on the marketplace and writes the
// confirmed status back. Prices are never touched here.
func (c *catalogUseCaseImpl) ToggleStatus(ctx context.Context, productID string) (product.Product, error) {
	account, ok := c.accounts.Marketplace()
	if !ok {
		c.notifier.Publish(ctx, notification.Warning(
			"Account not linked",
			"Connect your marketplace account to change listing status.",
			c.clock.Now(),
		))
		return product.Product{}, errs.ErrMarketplaceNotConnected
	}

	if !c.begin(productID) {
		return product.Product{}, errs.ErrToggleInProgress
	}
	defer c.end(productID)

	snap, err := c.reconciler.Snapshot(ctx)
	if err != nil {
		return product.Product{}, err
	}
	current, ok := snap.Catalog.Find(productID)
	if !ok {
		return product.Product{}, errs.ErrProductNotFound
	}
	next := current.Status().Toggled()

	if err := c.source.ToggleStatus(ctx, account, productID, next); err != nil {
		c.logger.Warn("marketplace status change failed", "product_id", productID, "error", err)
		c.notifier.Publish(ctx, notification.Warning(
			"Status not changed",
			"The marketplace rejected the status change. Try again later.",
			c.clock.Now(),
		))
		return product.Product{}, errs.Mark(err, errs.ErrMarketplaceFailure)
	}

	after, err := c.reconciler.Mutate(ctx, func(s shared.Snapshot) (shared.Snapshot, []notification.Event, error) {
		p, ok := s.Catalog.Find(productID)
		if !ok {
			return shared.Snapshot{}, nil, errs.ErrProductNotFound
		}
		catalog, err := s.Catalog.Replace(p.WithStatus(next))
		if err != nil {
			return shared.Snapshot{}, nil, errs.Mark(err, errs.ErrProductNotFound)
		}
		return shared.Snapshot{Schedules: s.Schedules, Catalog: catalog},
			[]notification.Event{notification.StatusChanged(productID, next.String(), c.clock.Now())},
			nil
	})
	if err != nil {
		return product.Product{}, err
	}

	c.logger.Info("listing status changed", "product_id", productID, "status", next)
	updated, _ := after.Catalog.Find(productID)
	return updated, nil
}

func (c *catalogUseCaseImpl) IsProcessing(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.processing[productID]
	return ok
}

func (c *catalogUseCaseImpl) begin(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.processing[productID]; busy {
		return false
	}
	c.processing[productID] = struct{}{}
	return true
}

func (c *catalogUseCaseImpl) end(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.processing, productID)
}
