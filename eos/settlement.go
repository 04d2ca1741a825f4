/*
settlement.go - Tenure-tiered accrual and the settlement computation

ACCRUAL SCHEDULE:
  Half a month-equivalent of the base wage accrues for each of the
  first five service years, a full month-equivalent per year beyond
  that. Partial years interpolate proportionally inside their tier, so
  tenure of exactly five years earns 2.5 months and five years plus one
  day starts earning into the second tier.

SETTLEMENT:
  raw amount   = accrued months x base monthly wage
  payable      = raw amount x separation factor (see curve.go)
  grand total  = payable + leave encashment + extra credits - deductions

ESTIMATOR POSTURE:
  Inverted date ranges clamp to zero tenure, negative monetary inputs
  coerce to zero, and a zero divisor floors at one. Nothing here
  returns an error.
*/
package eos

import (
	"github.com/shopspring/decimal"

	"github.com/warp/settlement-engine/calendar"
	"github.com/warp/settlement-engine/money"
)

// =============================================================================
// ACCRUAL CONSTANTS
// =============================================================================

const (
	// TierOneYears is the service-year boundary between the tiers.
	TierOneYears = 5

	// TierOneMonthsPerYear accrues during the first TierOneYears.
	TierOneMonthsPerYear = 0.5

	// TierTwoMonthsPerYear accrues beyond TierOneYears.
	TierTwoMonthsPerYear = 1.0

	// DefaultDivisor converts the monthly wage to a daily wage.
	DefaultDivisor = 30.0
)

var (
	tierOneYears = decimal.NewFromInt(TierOneYears)
	tierOneRate  = decimal.NewFromFloat(TierOneMonthsPerYear)
	tierTwoRate  = decimal.NewFromFloat(TierTwoMonthsPerYear)
)

// =============================================================================
// WAGE BASE - Which components form the settlement wage
// =============================================================================

type WageBase string

const (
	WageBasicOnly    WageBase = "basic_only"
	WageBasicHousing WageBase = "basic_housing"
)

// =============================================================================
// INPUT / RESULT
// =============================================================================

type Input struct {
	Start calendar.Date
	End   calendar.Date

	Basic    float64
	Housing  float64
	WageBase WageBase // zero value = WageBasicOnly

	Separation SeparationType

	// Curve overrides the statutory curve for the separation type.
	// Leave nil to use CurveFor(Separation).
	Curve FactorCurve

	Divisor float64 // days per month, zero = DefaultDivisor

	LeaveEncashment float64
	ExtraCredits    float64
	Deductions      float64
}

type Result struct {
	Tenure      calendar.TenureBreakdown
	TenureYears decimal.Decimal

	BaseMonthlyWage money.Amount
	DailyWage       money.Amount

	RawMonths decimal.Decimal
	RawAmount money.Amount

	Factor  decimal.Decimal
	Payable money.Amount

	LeaveEncashment money.Amount
	ExtraCredits    money.Amount
	Deductions      money.Amount

	Total money.Amount
}

// =============================================================================
// SETTLEMENT COMPUTATION
// =============================================================================

// Compute calculates the end-of-service settlement. It never fails;
// out-of-domain input degrades per the estimator rules.
func Compute(in Input) Result {
	tenure := calendar.Tenure(in.Start, in.End)
	years := tenure.TenureYears()

	wage := money.NonNegative(in.Basic)
	if in.WageBase == WageBasicHousing {
		wage = wage.Add(money.NonNegative(in.Housing))
	}

	divisor := in.Divisor
	if divisor <= 0 {
		divisor = DefaultDivisor
	} else if divisor < 1 {
		divisor = 1
	}
	daily := wage.Div(decimal.NewFromFloat(divisor))

	months := EntitlementMonths(years)
	raw := wage.Mul(months)

	curve := in.Curve
	if curve == nil {
		curve = CurveFor(in.Separation)
	}
	factor := curve.Factor(years)
	payable := raw.Mul(factor)

	encashment := money.NonNegative(in.LeaveEncashment)
	credits := money.NonNegative(in.ExtraCredits)
	deductions := money.NonNegative(in.Deductions)

	return Result{
		Tenure:      tenure,
		TenureYears: years,

		BaseMonthlyWage: wage,
		DailyWage:       daily,

		RawMonths: months,
		RawAmount: raw,

		Factor:  factor,
		Payable: payable,

		LeaveEncashment: encashment,
		ExtraCredits:    credits,
		Deductions:      deductions,

		Total: payable.Add(encashment).Add(credits).Sub(deductions).ClampZero(),
	}
}

// EntitlementMonths accrues month-equivalents under the tiered
// schedule, interpolating partial years proportionally.
func EntitlementMonths(tenureYears decimal.Decimal) decimal.Decimal {
	if tenureYears.IsNegative() {
		return decimal.Zero
	}

	firstTier := decimal.Min(tenureYears, tierOneYears).Mul(tierOneRate)

	beyond := tenureYears.Sub(tierOneYears)
	if beyond.IsNegative() {
		return firstTier
	}
	return firstTier.Add(beyond.Mul(tierTwoRate))
}
