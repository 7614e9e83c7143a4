//go:build e2e

package store_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"flashsale-scheduler/internal/domain/schedule"
	"flashsale-scheduler/internal/infra/marketplace"
	"flashsale-scheduler/internal/infra/pgstore"
	"flashsale-scheduler/internal/usecase/shared"
	"flashsale-scheduler/tests/common/builder"
	"flashsale-scheduler/tests/common/dbtest"
	"flashsale-scheduler/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

// storeSuite runs without the app so no reconciliation pass touches the tables.
type storeSuite struct {
	suite.Suite
	db    *pgxpool.Pool
	store *pgstore.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(storeSuite))
}

func (s *storeSuite) SetupSuite() {
	s.db = e2e.SetupDatabase(s.T())
	s.store = pgstore.NewStore(s.db, slog.Default())
}

func (s *storeSuite) SetupSubTest() {
	s.Require().NoError(dbtest.ResetDB(s.db))
}

func (s *storeSuite) TestRoundTrip() {
	ctx := context.Background()

	s.Run("catalog keeps order and exact prices", func() {
		linked := marketplace.LinkedDemoCatalog()
		s.Require().NoError(s.store.SaveCatalog(ctx, linked))

		snap, err := s.store.Load(ctx)
		s.Require().NoError(err)
		s.True(cmp.Equal(linked, snap.Catalog), cmp.Diff(linked, snap.Catalog))
	})

	s.Run("schedules keep store order including ties", func() {
		start := builder.BaseTime
		first := builder.NewScheduleBuilder().WithWindow(start, start.Add(time.Hour)).WithPercentage(10).Build()
		tie := builder.NewScheduleBuilder().WithWindow(start, start.Add(2*time.Hour)).WithFixed(4999).Build()
		later := builder.NewScheduleBuilder().
			WithWindow(start.Add(time.Hour), start.Add(3*time.Hour)).
			WithStatus(schedule.StatusActive).
			Build()
		set := schedule.NewSet(later, first, tie)
		s.Require().NoError(s.store.SaveSchedules(ctx, set))

		snap, err := s.store.Load(ctx)
		s.Require().NoError(err)
		s.Require().Equal(3, snap.Schedules.Len())
		s.True(cmp.Equal(set, snap.Schedules), cmp.Diff(set, snap.Schedules))

		items := snap.Schedules.Items()
		s.Equal(first.ID(), items[0].ID())
		s.Equal(tie.ID(), items[1].ID())
		s.Equal(later.ID(), items[2].ID())
	})

	s.Run("saving an empty set clears the table", func() {
		s.Require().NoError(s.store.SaveSchedules(ctx, schedule.NewSet(builder.NewScheduleBuilder().Build())))
		s.Require().NoError(s.store.SaveSchedules(ctx, schedule.NewSet()))

		snap, err := s.store.Load(ctx)
		s.Require().NoError(err)
		s.Zero(snap.Schedules.Len())
	})

	s.Run("seeding leaves an existing catalog alone", func() {
		s.Require().NoError(s.store.SeedCatalogIfEmpty(ctx, marketplace.LinkedDemoCatalog()))

		snap, err := s.store.Load(ctx)
		s.Require().NoError(err)
		_, ok := snap.Catalog.Find("MLM-1001")
		s.True(ok)
		_, ok = snap.Catalog.Find("MLM-2001")
		s.False(ok)
	})
}

func (s *storeSuite) TestSaveSnapshot() {
	ctx := context.Background()

	s.Run("writes catalog and schedules together", func() {
		sale := builder.NewScheduleBuilder().WithProductID("MLM-2003").WithStatus(schedule.StatusActive).Build()
		next := shared.Snapshot{Schedules: schedule.NewSet(sale), Catalog: marketplace.LinkedDemoCatalog()}

		s.Require().NoError(s.store.SaveSnapshot(ctx, next))

		snap, err := s.store.Load(ctx)
		s.Require().NoError(err)
		s.True(cmp.Equal(next.Catalog, snap.Catalog), cmp.Diff(next.Catalog, snap.Catalog))
		s.True(cmp.Equal(next.Schedules, snap.Schedules), cmp.Diff(next.Schedules, snap.Schedules))
	})

	s.Run("a rejected schedule row rolls the catalog back too", func() {
		before, err := s.store.Load(ctx)
		s.Require().NoError(err)

		rejected := builder.NewScheduleBuilder().WithStatus(schedule.Status("expired")).Build()
		err = s.store.SaveSnapshot(ctx, shared.Snapshot{
			Schedules: schedule.NewSet(rejected),
			Catalog:   marketplace.LinkedDemoCatalog(),
		})
		s.Require().Error(err)

		after, err := s.store.Load(ctx)
		s.Require().NoError(err)
		s.True(cmp.Equal(before.Catalog, after.Catalog), "catalog write must not survive the failed transaction")
		s.Zero(after.Schedules.Len())
	})

	s.Run("sub-microsecond request times survive a round trip", func() {
		req := builder.NewScheduleBuilder().BuildDTO()
		req.StartTime = builder.BaseTime.Add(1500 * time.Nanosecond)
		req.EndTime = req.StartTime.Add(time.Hour)
		sc, err := req.ToDomain(builder.BaseTime.Add(999 * time.Nanosecond))
		s.Require().NoError(err)

		set := schedule.NewSet(sc)
		s.Require().NoError(s.store.SaveSnapshot(ctx, shared.Snapshot{Schedules: set, Catalog: marketplace.DemoCatalog()}))

		snap, err := s.store.Load(ctx)
		s.Require().NoError(err)
		s.True(cmp.Equal(set, snap.Schedules), cmp.Diff(set, snap.Schedules))
	})
}
