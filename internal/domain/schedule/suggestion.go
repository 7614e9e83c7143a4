package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// Suggestion is an advisor's proposed flash sale. For TypeFixed the value is an amount off,
// not a target price.
type Suggestion struct {
	Reasoning string
	Type      Type
	Value     decimal.Decimal
	Duration  time.Duration
}

// FallbackSuggestion is used whenever the advisor cannot produce an answer.
func FallbackSuggestion() Suggestion {
	return Suggestion{
		Reasoning: "Conservative default strategy",
		Type:      TypePercentage,
		Value:     decimal.NewFromInt(10),
		Duration:  4 * time.Hour,
	}
}

// TargetValue converts the suggestion into the value a schedule stores for the given price.
func (s Suggestion) TargetValue(originalPrice decimal.Decimal) decimal.Decimal {
	if s.Type != TypeFixed {
		return s.Value
	}
	target := originalPrice.Sub(s.Value)
	if target.IsNegative() {
		return decimal.Zero
	}
	return target
}
