package request

import (
	"time"

	"flashsale-scheduler/internal/domain/schedule"

	"github.com/shopspring/decimal"
)

type CreateScheduleRequest struct {
	ProductID string          `json:"productId" binding:"required"`
	StartTime time.Time       `json:"startTime" binding:"required"`
	EndTime   time.Time       `json:"endTime" binding:"required"`
	Type      string          `json:"type" binding:"required,oneof=percentage fixed"`
	Value     decimal.Decimal `json:"value"`
}

// storedPrecision matches PostgreSQL timestamptz, so both stores see identical window boundaries.
const storedPrecision = time.Microsecond

func (r CreateScheduleRequest) ToDomain(createdAt time.Time) (schedule.Schedule, error) {
	window, err := schedule.NewWindow(r.StartTime.Truncate(storedPrecision), r.EndTime.Truncate(storedPrecision))
	if err != nil {
		return schedule.Schedule{}, err
	}

	kind, err := schedule.NewType(r.Type)
	if err != nil {
		return schedule.Schedule{}, err
	}

	adjustment, err := schedule.NewAdjustment(kind, r.Value)
	if err != nil {
		return schedule.Schedule{}, err
	}

	return schedule.NewSchedule(r.ProductID, window, adjustment, createdAt.Truncate(storedPrecision))
}
