package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flashsale-scheduler/internal/infra/db"
	"flashsale-scheduler/internal/infra/memstore"
	"flashsale-scheduler/internal/infra/pgstore"
	"flashsale-scheduler/internal/pkg/config"
	"flashsale-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

const storeInitTimeout = 30 * time.Second

var StoreModule = fx.Module("store",
	fx.Provide(
		NewSnapshotStore,
	),
)

// NewSnapshotStore picks the persistence driver. Both start from the demo catalog.
func NewSnapshotStore(lc fx.Lifecycle, cfg config.Config, source shared.CatalogSource, logger *slog.Logger) (shared.SnapshotStore, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logger.Info("using in-memory snapshot store")
		return memstore.NewStore(source.DemoCatalog()), nil
	case config.StoreDriverPostgres:
		return newPostgresStore(lc, cfg, source, logger)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}

func newPostgresStore(lc fx.Lifecycle, cfg config.Config, source shared.CatalogSource, logger *slog.Logger) (shared.SnapshotStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeInitTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	store := pgstore.NewStore(pool, logger)
	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}
	if err := store.SeedCatalogIfEmpty(ctx, source.DemoCatalog()); err != nil {
		return nil, err
	}

	logger.Info("using postgres snapshot store", "host", cfg.DB.Host, "db", cfg.DB.DBName)
	return store, nil
}
