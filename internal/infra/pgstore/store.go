// Package pgstore persists the snapshot in PostgreSQL. Saves replace whole tables inside
// one transaction; a position column keeps store order.
package pgstore

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"math/big"
	"time"

	"flashsale-scheduler/internal/domain/product"
	"flashsale-scheduler/internal/domain/schedule"
	"flashsale-scheduler/internal/infra"
	"flashsale-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

//go:embed schema.sql
var schemaSQL string

var errInvalidNumeric = errors.New("numeric value is not finite")

var productColumns = []string{
	"position", "id", "title", "category", "image", "permalink",
	"stock", "original_price", "current_price", "status",
}

var scheduleColumns = []string{
	"position", "id", "product_id", "start_time", "end_time",
	"type", "value", "status", "created_at",
}

type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStore(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	return &Store{pool: pool, logger: logger}
}

// Migrate applies the idempotent schema.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to apply schema", err)
	}
	return nil
}

// SeedCatalogIfEmpty stores catalog only when no products exist yet.
func (s *Store) SeedCatalogIfEmpty(ctx context.Context, catalog product.Catalog) error {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&count); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to count products", err)
	}
	if count > 0 {
		return nil
	}
	return s.SaveCatalog(ctx, catalog)
}

func (s *Store) Load(ctx context.Context) (shared.Snapshot, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return shared.Snapshot{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to begin read", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			s.logger.Warn("failed to rollback read transaction", "error", rbErr)
		}
	}()

	catalog, err := s.loadCatalog(ctx, tx)
	if err != nil {
		return shared.Snapshot{}, err
	}
	schedules, err := s.loadSchedules(ctx, tx)
	if err != nil {
		return shared.Snapshot{}, err
	}

	return shared.Snapshot{Schedules: schedules, Catalog: catalog}, nil
}

func (s *Store) loadCatalog(ctx context.Context, tx pgx.Tx) (product.Catalog, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, title, category, image, permalink, stock, original_price, current_price, status
		FROM products ORDER BY position`)
	if err != nil {
		return product.Catalog{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to query products", err)
	}
	defer rows.Close()

	var items []product.Product
	for rows.Next() {
		var (
			id, status        string
			attrs             product.Attributes
			original, current pgtype.Numeric
		)
		if err := rows.Scan(&id, &attrs.Title, &attrs.Category, &attrs.Image, &attrs.Permalink, &attrs.Stock, &original, &current, &status); err != nil {
			return product.Catalog{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan product", err)
		}
		originalPrice, err := fromNumeric(original)
		if err != nil {
			return product.Catalog{}, infra.WrapRepoErr(s.logger, infra.KindCorruption, "invalid original price", err)
		}
		currentPrice, err := fromNumeric(current)
		if err != nil {
			return product.Catalog{}, infra.WrapRepoErr(s.logger, infra.KindCorruption, "invalid current price", err)
		}
		items = append(items, product.ReconstructProduct(id, attrs, originalPrice, currentPrice, product.Status(status)))
	}
	if err := rows.Err(); err != nil {
		return product.Catalog{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read products", err)
	}

	catalog, err := product.NewCatalog(items...)
	if err != nil {
		return product.Catalog{}, infra.WrapRepoErr(s.logger, infra.KindCorruption, "invalid catalog", err)
	}
	return catalog, nil
}

func (s *Store) loadSchedules(ctx context.Context, tx pgx.Tx) (schedule.Set, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, product_id, start_time, end_time, type, value, status, created_at
		FROM price_schedules ORDER BY position`)
	if err != nil {
		return schedule.Set{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to query schedules", err)
	}
	defer rows.Close()

	var items []schedule.Schedule
	for rows.Next() {
		var (
			id                    pgtype.UUID
			productID, kind, st   string
			start, end, createdAt time.Time
			value                 pgtype.Numeric
		)
		if err := rows.Scan(&id, &productID, &start, &end, &kind, &value, &st, &createdAt); err != nil {
			return schedule.Set{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan schedule", err)
		}
		v, err := fromNumeric(value)
		if err != nil {
			return schedule.Set{}, infra.WrapRepoErr(s.logger, infra.KindCorruption, "invalid schedule value", err)
		}
		items = append(items, schedule.ReconstructSchedule(
			uuid.UUID(id.Bytes),
			productID,
			schedule.ReconstructWindow(start, end),
			schedule.ReconstructAdjustment(schedule.Type(kind), v),
			schedule.Status(st),
			createdAt,
		))
	}
	if err := rows.Err(); err != nil {
		return schedule.Set{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read schedules", err)
	}

	return schedule.FromOrdered(items), nil
}

func (s *Store) SaveSchedules(ctx context.Context, schedules schedule.Set) error {
	return s.inTx(ctx, "failed to replace price_schedules", func(tx pgx.Tx) error {
		return replaceTable(ctx, tx, "price_schedules", scheduleColumns, scheduleRows(schedules))
	})
}

func (s *Store) SaveCatalog(ctx context.Context, catalog product.Catalog) error {
	return s.inTx(ctx, "failed to replace products", func(tx pgx.Tx) error {
		return replaceTable(ctx, tx, "products", productColumns, catalogRows(catalog))
	})
}

// SaveSnapshot replaces both tables in one transaction.
func (s *Store) SaveSnapshot(ctx context.Context, snap shared.Snapshot) error {
	return s.inTx(ctx, "failed to replace snapshot", func(tx pgx.Tx) error {
		if err := replaceTable(ctx, tx, "products", productColumns, catalogRows(snap.Catalog)); err != nil {
			return err
		}
		return replaceTable(ctx, tx, "price_schedules", scheduleColumns, scheduleRows(snap.Schedules))
	})
}

func (s *Store) inTx(ctx context.Context, msg string, fn func(pgx.Tx) error) error {
	if err := pgx.BeginFunc(ctx, s.pool, fn); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, msg, err)
	}
	return nil
}

func replaceTable(ctx context.Context, tx pgx.Tx, table string, columns []string, rows [][]any) error {
	if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	_, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	return err
}

func scheduleRows(schedules schedule.Set) [][]any {
	items := schedules.Items()
	rows := make([][]any, 0, len(items))
	for i, sc := range items {
		rows = append(rows, []any{
			int32(i),
			pgtype.UUID{Bytes: sc.ID(), Valid: true},
			sc.ProductID(),
			sc.StartTime(),
			sc.EndTime(),
			sc.Adjustment().Type().String(),
			toNumeric(sc.Adjustment().Value()),
			sc.Status().String(),
			sc.CreatedAt(),
		})
	}
	return rows
}

func catalogRows(catalog product.Catalog) [][]any {
	items := catalog.Products()
	rows := make([][]any, 0, len(items))
	for i, p := range items {
		rows = append(rows, []any{
			int32(i),
			p.ID(),
			p.Title(),
			p.Category(),
			p.Image(),
			p.Permalink(),
			int32(p.Stock()),
			toNumeric(p.OriginalPrice()),
			toNumeric(p.CurrentPrice()),
			p.Status().String(),
		})
	}
	return rows
}

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: new(big.Int).Set(d.Coefficient()), Exp: d.Exponent(), Valid: true}
}

func fromNumeric(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return decimal.Zero, errInvalidNumeric
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}
