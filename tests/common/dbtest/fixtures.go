//go:build unit || e2e

package dbtest

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"flashsale-scheduler/internal/infra/marketplace"
	"flashsale-scheduler/internal/infra/pgstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const truncateSQL = "TRUNCATE price_schedules, products;"

// ResetDB empties both tables and reseeds the demo catalog.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, truncateSQL); err != nil {
		return err
	}
	return pgstore.NewStore(pool, slog.Default()).SaveCatalog(ctx, marketplace.DemoCatalog())
}

func CountSchedules(t *testing.T, db DBLike, productID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM price_schedules WHERE product_id = $1", productID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CurrentPrice(t *testing.T, db DBLike, productID string) string {
	t.Helper()

	var price string
	err := db.QueryRow(context.Background(),
		"SELECT current_price::text FROM products WHERE id = $1", productID).Scan(&price)
	require.NoError(t, err)
	return price
}
