package schedule

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidWindow        = errors.New("end time must not be before start time")
	ErrInvalidType          = errors.New("adjustment type must be percentage or fixed")
	ErrNegativeValue        = errors.New("adjustment value cannot be negative")
	ErrPercentageOutOfRange = errors.New("percentage adjustment must be between 0 and 100")
	ErrEmptyProductID       = errors.New("product id cannot be empty")
	ErrInvalidStatus        = errors.New("invalid schedule status")
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)
)

// Status is derived from the window on every reconciliation pass.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusActive, StatusCompleted:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Window is the closed interval [start, end].
type Window struct {
	start time.Time
	end   time.Time
}

// NewWindow validates start <= end. Use ReconstructWindow for data that skipped validation.
func NewWindow(start, end time.Time) (Window, error) {
	if end.Before(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func ReconstructWindow(start, end time.Time) Window {
	return Window{start: start, end: end}
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// StatusAt is inclusive on both ends. An inverted window is never active.
func (w Window) StatusAt(now time.Time) Status {
	switch {
	case now.Before(w.start):
		return StatusPending
	case now.After(w.end):
		return StatusCompleted
	default:
		return StatusActive
	}
}

func (w Window) Equal(o Window) bool {
	return w.start.Equal(o.start) && w.end.Equal(o.end)
}

type Type string

const (
	TypePercentage Type = "percentage"
	TypeFixed      Type = "fixed"
)

func NewType(s string) (Type, error) {
	t := Type(s)
	switch t {
	case TypePercentage, TypeFixed:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string {
	return string(t)
}

// Adjustment is a percent-off (percentage) or an absolute target price (fixed).
type Adjustment struct {
	kind  Type
	value decimal.Decimal
}

func NewAdjustment(kind Type, value decimal.Decimal) (Adjustment, error) {
	if kind != TypePercentage && kind != TypeFixed {
		return Adjustment{}, ErrInvalidType
	}
	if value.IsNegative() {
		return Adjustment{}, ErrNegativeValue
	}
	if kind == TypePercentage && value.GreaterThan(hundred) {
		return Adjustment{}, ErrPercentageOutOfRange
	}
	return Adjustment{kind: kind, value: value}, nil
}

func ReconstructAdjustment(kind Type, value decimal.Decimal) Adjustment {
	return Adjustment{kind: kind, value: value}
}

func (a Adjustment) Type() Type             { return a.kind }
func (a Adjustment) Value() decimal.Decimal { return a.value }
func (a Adjustment) IsPercentage() bool     { return a.kind == TypePercentage }
func (a Adjustment) IsFixed() bool          { return a.kind == TypeFixed }

// Apply returns the adjusted price. Percentage results are rounded half up to a whole unit;
// fixed values are returned verbatim. Values are not clamped here.
func (a Adjustment) Apply(original decimal.Decimal) decimal.Decimal {
	if a.kind == TypeFixed {
		return a.value
	}
	factor := decimal.NewFromInt(1).Sub(a.value.Div(hundred))
	return original.Mul(factor).Add(half).Floor()
}

func (a Adjustment) Equal(o Adjustment) bool {
	return a.kind == o.kind && a.value.Equal(o.value)
}
