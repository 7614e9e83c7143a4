package schedule

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Schedule is a time-bounded price adjustment targeting one product.
type Schedule struct {
	id         uuid.UUID
	productID  string
	window     Window
	adjustment Adjustment
	status     Status
	createdAt  time.Time
}

// NewSchedule creates a pending schedule with a fresh id.
func NewSchedule(productID string, window Window, adjustment Adjustment, createdAt time.Time) (Schedule, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Schedule{}, ErrEmptyProductID
	}

	return Schedule{
		id:         uuid.New(),
		productID:  productID,
		window:     window,
		adjustment: adjustment,
		status:     StatusPending,
		createdAt:  createdAt,
	}, nil
}

func ReconstructSchedule(
	id uuid.UUID,
	productID string,
	window Window,
	adjustment Adjustment,
	status Status,
	createdAt time.Time,
) Schedule {
	return Schedule{
		id:         id,
		productID:  productID,
		window:     window,
		adjustment: adjustment,
		status:     status,
		createdAt:  createdAt,
	}
}

func (s Schedule) ID() uuid.UUID          { return s.id }
func (s Schedule) ProductID() string      { return s.productID }
func (s Schedule) Window() Window         { return s.window }
func (s Schedule) StartTime() time.Time   { return s.window.start }
func (s Schedule) EndTime() time.Time     { return s.window.end }
func (s Schedule) Adjustment() Adjustment { return s.adjustment }
func (s Schedule) Status() Status         { return s.status }
func (s Schedule) CreatedAt() time.Time   { return s.createdAt }

// IsActive mirrors Status so the two can never disagree.
func (s Schedule) IsActive() bool {
	return s.status == StatusActive
}

func (s Schedule) WithStatus(status Status) Schedule {
	s.status = status
	return s
}

func (s Schedule) Equal(o Schedule) bool {
	return s.id == o.id &&
		s.productID == o.productID &&
		s.window.Equal(o.window) &&
		s.adjustment.Equal(o.adjustment) &&
		s.status == o.status &&
		s.createdAt.Equal(o.createdAt)
}
