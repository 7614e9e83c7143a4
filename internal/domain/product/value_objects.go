package product

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidID      = errors.New("product id cannot be empty")
	ErrNegativePrice  = errors.New("price cannot be negative")
	ErrNegativeStock  = errors.New("stock cannot be negative")
	ErrInvalidStatus  = errors.New("invalid product status")
	ErrDuplicateID    = errors.New("duplicate product id")
	ErrProductMissing = errors.New("product not found")
)

// Status is the operational (sellable) state of a listing. It is unrelated to pricing.
type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPaused:
		return true
	default:
		return false
	}
}

// Toggled returns the opposite operational status.
func (s Status) Toggled() Status {
	if s == StatusActive {
		return StatusPaused
	}
	return StatusActive
}

type Price = decimal.Decimal

func NewPrice(value decimal.Decimal) (Price, error) {
	if value.IsNegative() {
		return decimal.Zero, ErrNegativePrice
	}
	return value, nil
}
