package commands

import (
	"context"
	"log/slog"

	"flashsale-scheduler/internal/domain/notification"
	"flashsale-scheduler/internal/domain/schedule"
	reqdto "flashsale-scheduler/internal/handler/dto/request"
	"flashsale-scheduler/internal/pkg/clock"
	"flashsale-scheduler/internal/pkg/errs"
	"flashsale-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleCommands interface {
	CreateSchedule(ctx context.Context, req reqdto.CreateScheduleRequest) (schedule.Schedule, error)
	DeleteSchedule(ctx context.Context, id uuid.UUID) error
}

type scheduleUseCaseImpl struct {
	reconciler Reconciler
	clock      clock.Clock
	logger     *slog.Logger
}

func NewScheduleUseCase(reconciler Reconciler, clock clock.Clock, logger *slog.Logger) ScheduleCommands {
	return &scheduleUseCaseImpl{
		reconciler: reconciler,
		clock:      clock,
		logger:     logger,
	}
}

// CreateSchedule validates and inserts a rule, then reconciles immediately so a rule whose
// window already contains now takes effect without waiting for the next tick.
func (s *scheduleUseCaseImpl) CreateSchedule(ctx context.Context, req reqdto.CreateScheduleRequest) (schedule.Schedule, error) {
	now := s.clock.Now()
	created, err := req.ToDomain(now)
	if err != nil {
		return schedule.Schedule{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	snap, err := s.reconciler.Mutate(ctx, func(current shared.Snapshot) (shared.Snapshot, []notification.Event, error) {
		if _, ok := current.Catalog.Find(created.ProductID()); !ok {
			return shared.Snapshot{}, nil, errs.ErrProductNotFound
		}
		next := shared.Snapshot{
			Schedules: current.Schedules.Insert(created),
			Catalog:   current.Catalog,
		}
		return next, []notification.Event{notification.ScheduleCreated(created.ID(), created.ProductID(), now)}, nil
	})
	if err != nil {
		return schedule.Schedule{}, err
	}

	s.logger.Info("schedule created",
		"schedule_id", created.ID(),
		"product_id", created.ProductID(),
		"type", created.Adjustment().Type(),
		"value", created.Adjustment().Value().String(),
	)

	if stored, ok := snap.Schedules.Find(created.ID()); ok {
		return stored, nil
	}
	return created, nil
}

func (s *scheduleUseCaseImpl) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	_, err := s.reconciler.Mutate(ctx, func(current shared.Snapshot) (shared.Snapshot, []notification.Event, error) {
		removed, ok := current.Schedules.Find(id)
		if !ok {
			return shared.Snapshot{}, nil, errs.ErrScheduleNotFound
		}
		schedules, err := current.Schedules.Remove(id)
		if err != nil {
			return shared.Snapshot{}, nil, errs.Mark(err, errs.ErrScheduleNotFound)
		}
		next := shared.Snapshot{Schedules: schedules, Catalog: current.Catalog}
		return next, []notification.Event{notification.ScheduleCancelled(id, removed.ProductID(), s.clock.Now())}, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("schedule deleted", "schedule_id", id)
	return nil
}
