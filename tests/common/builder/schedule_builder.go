//go:build unit || e2e

package builder

import (
	"time"

	"flashsale-scheduler/internal/domain/schedule"
	reqdto "flashsale-scheduler/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var BaseTime = time.Date(2025, 11, 28, 10, 0, 0, 0, time.UTC)

type ScheduleBuilder struct {
	ID        uuid.UUID
	ProductID string
	Start     time.Time
	End       time.Time
	Type      schedule.Type
	Value     decimal.Decimal
	Status    schedule.Status
	CreatedAt time.Time
}

func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		ID:        uuid.New(),
		ProductID: "MLM-1001",
		Start:     BaseTime,
		End:       BaseTime.Add(time.Hour),
		Type:      schedule.TypePercentage,
		Value:     decimal.NewFromInt(20),
		Status:    schedule.StatusPending,
		CreatedAt: BaseTime.Add(-time.Hour),
	}
}

func (b *ScheduleBuilder) WithID(id uuid.UUID) *ScheduleBuilder {
	b.ID = id
	return b
}

func (b *ScheduleBuilder) WithProductID(id string) *ScheduleBuilder {
	b.ProductID = id
	return b
}

func (b *ScheduleBuilder) WithWindow(start, end time.Time) *ScheduleBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ScheduleBuilder) WithPercentage(v int64) *ScheduleBuilder {
	b.Type = schedule.TypePercentage
	b.Value = decimal.NewFromInt(v)
	return b
}

func (b *ScheduleBuilder) WithFixed(v int64) *ScheduleBuilder {
	b.Type = schedule.TypeFixed
	b.Value = decimal.NewFromInt(v)
	return b
}

func (b *ScheduleBuilder) WithStatus(s schedule.Status) *ScheduleBuilder {
	b.Status = s
	return b
}

// Build skips validation so tests can model stored data, including malformed rules.
func (b *ScheduleBuilder) Build() schedule.Schedule {
	return schedule.ReconstructSchedule(
		b.ID,
		b.ProductID,
		schedule.ReconstructWindow(b.Start, b.End),
		schedule.ReconstructAdjustment(b.Type, b.Value),
		b.Status,
		b.CreatedAt,
	)
}

func (b *ScheduleBuilder) BuildDTO() reqdto.CreateScheduleRequest {
	return reqdto.CreateScheduleRequest{
		ProductID: b.ProductID,
		StartTime: b.Start,
		EndTime:   b.End,
		Type:      string(b.Type),
		Value:     b.Value,
	}
}
