/*
Package payroll implements the gross/net monthly compensation model.

PURPOSE:
  Converts between gross and net pay under a social-insurance (GOSI)
  contribution model, derives daily/hourly rates, applies optional
  overtime, and prorates month-to-date contributions.

KEY CONCEPTS:
  - Input: One calculation request - wage components, contribution
    profile, deductions, overtime, divisor, and an explicit "as of"
    date for proration
  - Result: Every derived figure for the request
  - HousingPolicy: Housing allowance as percent-of-basic or fixed

ESTIMATOR POSTURE:
  This is a user-facing estimator, not a ledger of record. Negative or
  missing numeric inputs coerce to zero or their defaults; nothing in
  this package returns an error.

SEE ALSO:
  - profiles.go: Contribution base policies and named GOSI profiles
  - compute.go: Gross-to-net, net-to-gross, and gross-override paths
*/
package payroll

import (
	"github.com/warp/settlement-engine/calendar"
	"github.com/warp/settlement-engine/money"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultDivisor is the days-per-month divisor for daily rates.
	DefaultDivisor = 30.0

	// DefaultHoursPerDay derives hourly rates from daily rates.
	DefaultHoursPerDay = 8.0

	// DefaultOvertimeMultiplier is the statutory overtime premium.
	DefaultOvertimeMultiplier = 1.5
)

// =============================================================================
// HOUSING POLICY - Percent-of-basic or fixed allowance
// =============================================================================

type HousingMode string

const (
	HousingModePercent HousingMode = "percent"
	HousingModeFixed   HousingMode = "fixed"
)

type HousingPolicy struct {
	Mode    HousingMode
	Percent float64 // e.g. 25 means 25% of basic
	Fixed   float64
}

func HousingPercent(percent float64) HousingPolicy {
	return HousingPolicy{Mode: HousingModePercent, Percent: percent}
}

func HousingFixed(amount float64) HousingPolicy {
	return HousingPolicy{Mode: HousingModeFixed, Fixed: amount}
}

func HousingNone() HousingPolicy { return HousingFixed(0) }

// AmountFor resolves the housing allowance for a given basic wage.
// The zero policy yields zero housing.
func (h HousingPolicy) AmountFor(basic money.Amount) money.Amount {
	if h.Mode == HousingModeFixed {
		return money.NonNegative(h.Fixed)
	}
	return basic.Mul(money.RateFromPercent(h.Percent))
}

// =============================================================================
// DEDUCTIONS & OVERTIME
// =============================================================================

type Deductions struct {
	OtherPercent float64 // percent of gross
	Flat         float64
}

type Overtime struct {
	Hours      float64
	Multiplier float64 // zero = DefaultOvertimeMultiplier
}

// =============================================================================
// INPUT - One payroll calculation request
// =============================================================================

type Input struct {
	Basic     float64
	Housing   HousingPolicy
	Transport float64
	Other     float64

	Profile    ContributionProfile
	Deductions Deductions
	Overtime   Overtime

	Divisor     float64 // days per month, zero = DefaultDivisor
	HoursPerDay float64 // zero = DefaultHoursPerDay

	// AsOf enables month-to-date contribution proration. The zero value
	// disables proration; the engine never reads the wall clock itself.
	AsOf calendar.Date
}

// normalized applies defaults and the division-by-zero guard. Divisors
// between zero and one floor at one to keep daily rates finite.
func (in Input) normalized() Input {
	if in.Divisor <= 0 {
		in.Divisor = DefaultDivisor
	} else if in.Divisor < 1 {
		in.Divisor = 1
	}
	if in.HoursPerDay <= 0 {
		in.HoursPerDay = DefaultHoursPerDay
	}
	if in.Overtime.Multiplier <= 0 {
		in.Overtime.Multiplier = DefaultOvertimeMultiplier
	}
	if in.Overtime.Hours < 0 {
		in.Overtime.Hours = 0
	}
	return in
}

// =============================================================================
// RESULT - Every derived figure for a request
// =============================================================================

// ContributionAllocation spreads the employee contribution back across
// wage components. Only produced for full-gross contribution bases;
// the shares always sum to the employee contribution exactly (the Other
// share absorbs rounding).
type ContributionAllocation struct {
	Basic     money.Amount
	Housing   money.Amount
	Transport money.Amount
	Other     money.Amount
}

func (a ContributionAllocation) Total() money.Amount {
	return a.Basic.Add(a.Housing).Add(a.Transport).Add(a.Other)
}

type Result struct {
	// Resolved wage components.
	Basic     money.Amount
	Housing   money.Amount
	Transport money.Amount
	Other     money.Amount

	// Monthly figures. Gross and net include overtime pay.
	MonthlyGross money.Amount
	MonthlyNet   money.Amount
	YearlyGross  money.Amount
	YearlyNet    money.Amount

	// Rate card, excluding overtime.
	DailyGross  money.Amount
	DailyNet    money.Amount
	HourlyGross money.Amount
	HourlyNet   money.Amount

	// Insurance.
	ContributionBase     money.Amount
	EmployeeContribution money.Amount
	EmployerContribution money.Amount

	// Month-to-date prorated contributions. Equal to the full amounts
	// when no AsOf date was supplied.
	ProratedEmployee money.Amount
	ProratedEmployer money.Amount

	OvertimePay    money.Amount
	OtherDeduction money.Amount
	FlatDeduction  money.Amount

	// Allocation is non-nil only for full-gross contribution bases.
	Allocation *ContributionAllocation
}
