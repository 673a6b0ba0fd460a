package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// maxValue is the largest representable balance: the int64 coefficient
// limit at four fractional digits.
var maxValue = decimal.New(math.MaxInt64, -4)

// MaxAmount returns the largest balance the engine can represent. Checked
// arithmetic fails once a result leaves [0, MaxAmount].
func MaxAmount() Amount {
	return Amount{value: maxValue}
}

// Amount is an exact decimal monetary value. Monetary sums are kept in
// base 10 end to end; binary floats never enter the arithmetic. Immutable
// once constructed.
type Amount struct {
	value decimal.Decimal
}

// NewAmount wraps a decimal value.
func NewAmount(v decimal.Decimal) Amount {
	return Amount{value: v}
}

// AmountFromString parses a decimal string such as "1.5" or "0.0001".
func AmountFromString(s string) (Amount, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: v}, nil
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

func (a Amount) IsZero() bool          { return a.value.IsZero() }
func (a Amount) IsNegative() bool      { return a.value.IsNegative() }
func (a Amount) Equal(b Amount) bool   { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool { return a.value.LessThan(b.value) }

// Add returns the plain sum. Only for derived, render-time values such as
// account totals; balance mutation goes through the checked variants.
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value)}
}

// CheckedAdd returns a+b, reporting ok=false when the sum leaves the
// representable range. On failure the zero Amount is returned and neither
// operand is observed mutated.
func (a Amount) CheckedAdd(b Amount) (Amount, bool) {
	sum := a.value.Add(b.value)
	if sum.IsNegative() || sum.GreaterThan(maxValue) {
		return Amount{}, false
	}
	return Amount{value: sum}, true
}

// CheckedSub returns a-b, reporting ok=false when the difference leaves
// the representable range (in particular, when it would be negative).
func (a Amount) CheckedSub(b Amount) (Amount, bool) {
	diff := a.value.Sub(b.value)
	if diff.IsNegative() || diff.GreaterThan(maxValue) {
		return Amount{}, false
	}
	return Amount{value: diff}, true
}

// String returns the exact decimal representation without padding.
func (a Amount) String() string { return a.value.String() }

// StringFixed renders the value with exactly the given number of
// fractional digits.
func (a Amount) StringFixed(places int32) string { return a.value.StringFixed(places) }
