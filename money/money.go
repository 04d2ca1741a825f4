/*
Package money provides the monetary amount type used across the
settlement engine.

PURPOSE:
  Every wage, allowance, contribution, and settlement figure flows
  through Amount. Amounts wrap decimal.Decimal so that percentage
  rates, proration fractions, and iterative inversion never accumulate
  floating-point drift.

KEY CONCEPTS:
  - Amount: A non-unit monetary quantity (single currency, monthly
    cadence unless a caller derives daily/hourly figures)
  - NonNegative: The estimator coercion rule - callers may hand us
    negative or non-finite numbers, and we floor them at zero instead
    of failing

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal everywhere, no float math internally
  2. Graceful degradation: bad numeric input coerces, never errors
  3. Immutability: every method returns a new Amount

SEE ALSO:
  - payroll: gross/net conversion built on Amount
  - eos: settlement totals built on Amount
*/
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Monetary quantity
// =============================================================================

type Amount struct {
	Value decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{Value: decimal.Zero}

// New builds an Amount from a float. NaN and infinities collapse to zero;
// negative values are preserved (use NonNegative for coerced input).
func New(value float64) Amount {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero
	}
	return Amount{Value: decimal.NewFromFloat(value)}
}

// NonNegative builds an Amount from caller-supplied input, flooring
// negative and non-finite values at zero. This is the standard coercion
// for every numeric field the engine accepts.
func NonNegative(value float64) Amount {
	a := New(value)
	if a.IsNegative() {
		return Zero
	}
	return a
}

// FromDecimal wraps an existing decimal.
func FromDecimal(d decimal.Decimal) Amount { return Amount{Value: d} }

// MustParse parses a decimal string, returning zero on failure.
func MustParse(s string) Amount {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero
	}
	return Amount{Value: d}
}

// =============================================================================
// ARITHMETIC
// =============================================================================

func (a Amount) Add(b Amount) Amount          { return Amount{Value: a.Value.Add(b.Value)} }
func (a Amount) Sub(b Amount) Amount          { return Amount{Value: a.Value.Sub(b.Value)} }
func (a Amount) Mul(s decimal.Decimal) Amount { return Amount{Value: a.Value.Mul(s)} }
func (a Amount) Neg() Amount                  { return Amount{Value: a.Value.Neg()} }

// Div divides by s, guarding against division by zero (returns zero).
func (a Amount) Div(s decimal.Decimal) Amount {
	if s.IsZero() {
		return Zero
	}
	return Amount{Value: a.Value.Div(s)}
}

// ClampZero floors the amount at zero.
func (a Amount) ClampZero() Amount {
	if a.IsNegative() {
		return Zero
	}
	return a
}

func (a Amount) Min(b Amount) Amount { if a.LessThan(b) { return a }; return b }
func (a Amount) Max(b Amount) Amount { if a.GreaterThan(b) { return a }; return b }

// Round rounds half away from zero to the given number of places.
func (a Amount) Round(places int32) Amount { return Amount{Value: a.Value.Round(places)} }

// =============================================================================
// COMPARISON & CONVERSION
// =============================================================================

func (a Amount) IsZero() bool              { return a.Value.IsZero() }
func (a Amount) IsNegative() bool          { return a.Value.IsNegative() }
func (a Amount) IsPositive() bool          { return a.Value.IsPositive() }
func (a Amount) GreaterThan(b Amount) bool { return a.Value.GreaterThan(b.Value) }
func (a Amount) LessThan(b Amount) bool    { return a.Value.LessThan(b.Value) }
func (a Amount) Equal(b Amount) bool       { return a.Value.Equal(b.Value) }
func (a Amount) Abs() Amount               { return Amount{Value: a.Value.Abs()} }

func (a Amount) Float64() float64 { f, _ := a.Value.Float64(); return f }
func (a Amount) String() string   { return a.Value.String() }

// =============================================================================
// RATES
// =============================================================================

var hundred = decimal.NewFromInt(100)

// RateFromPercent converts a human percentage (9.75 means 9.75%) into a
// multiplier fraction. Negative and non-finite input coerces to zero.
func RateFromPercent(percent float64) decimal.Decimal {
	return NonNegative(percent).Value.Div(hundred)
}
