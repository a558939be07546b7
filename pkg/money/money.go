// Package money provides a single-currency Money value object. Amounts are
// held as int64 minor units (pence); float64 appears only at the API edge.
package money

import (
	"errors"
	"fmt"
	"math"
)

// Currency is the only currency the ledger operates in.
const Currency = "GBP"

// decimals is the number of minor-unit digits for the ledger currency.
const decimals = 2

var (
	// ErrInvalidAmount is returned when an amount is NaN, infinite or
	// outside the representable range.
	ErrInvalidAmount = errors.New("amount must be a finite number")

	// ErrOverflow is returned when an arithmetic result would not fit in
	// the minor-unit representation.
	ErrOverflow = errors.New("amount exceeds maximum representable value")
)

// Money is an immutable amount in minor units.
type Money struct {
	minor int64
}

// New converts a major-unit amount (e.g. 59.99) to Money, rounding to the
// nearest minor unit.
func New(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrInvalidAmount
	}
	minor := amount * math.Pow10(decimals)
	if minor > math.MaxInt64 || minor < math.MinInt64 {
		return Money{}, ErrInvalidAmount
	}
	return Money{minor: int64(math.Round(minor))}, nil
}

// FromMinor builds a Money from a minor-unit value, as stored in the
// database.
func FromMinor(minor int64) Money {
	return Money{minor: minor}
}

// Minor returns the amount in minor units.
func (m Money) Minor() int64 { return m.minor }

// Float returns the amount in major units for display and serialization.
func (m Money) Float() float64 {
	return float64(m.minor) / math.Pow10(decimals)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.minor > 0 }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.minor < 0 }

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool { return m.minor < other.minor }

// Add returns m + other, failing on int64 overflow.
func (m Money) Add(other Money) (Money, error) {
	if other.minor > 0 && m.minor > math.MaxInt64-other.minor {
		return Money{}, ErrOverflow
	}
	if other.minor < 0 && m.minor < math.MinInt64-other.minor {
		return Money{}, ErrOverflow
	}
	return Money{minor: m.minor + other.minor}, nil
}

// Sub returns m - other. The result may be negative; balance rules live in
// the domain, not here.
func (m Money) Sub(other Money) (Money, error) {
	return m.Add(Money{minor: -other.minor})
}

// String renders the amount with its currency code, e.g. "59.99 GBP".
func (m Money) String() string {
	return fmt.Sprintf("%.*f %s", decimals, m.Float(), Currency)
}
