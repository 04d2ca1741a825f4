/*
settlement_test.go - Executable specification for the settlement engine

ORGANIZATION:
  1. Tiered accrual schedule - tier boundaries and interpolation
  2. Separation factor curves - statutory thresholds
  3. Full settlement scenarios - reference vectors
  4. Estimator coercion rules
*/
package eos_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/settlement-engine/calendar"
	"github.com/warp/settlement-engine/eos"
)

func years(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// =============================================================================
// TIERED ACCRUAL SCHEDULE
// =============================================================================

func TestEntitlementMonths_FirstTier(t *testing.T) {
	// Half a month per year for the first five years.

	assert.True(t, eos.EntitlementMonths(years(1)).Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, eos.EntitlementMonths(years(3)).Equal(decimal.NewFromFloat(1.5)))
}

func TestEntitlementMonths_FiveYearBoundary(t *testing.T) {
	// GIVEN: Exactly five years of tenure
	// THEN: All five years accrue at the first tier and the second tier
	//       contributes nothing

	atFive := eos.EntitlementMonths(years(5))
	assert.True(t, atFive.Equal(decimal.NewFromFloat(2.5)), "got %s", atFive)

	// One day past five years starts earning into the second tier.
	justPast := years(5).Add(decimal.NewFromInt(1).Div(decimal.NewFromInt(365)))
	assert.True(t, eos.EntitlementMonths(justPast).GreaterThan(atFive))
}

func TestEntitlementMonths_SecondTier(t *testing.T) {
	// 5 x 0.5 + 2 x 1.0 = 4.5 month-equivalents at seven years.

	assert.True(t, eos.EntitlementMonths(years(7)).Equal(decimal.NewFromFloat(4.5)))
}

func TestEntitlementMonths_PartialYearInterpolation(t *testing.T) {
	// 2.5 years -> 1.25 months, proportional inside the first tier.

	half := decimal.NewFromFloat(2.5)
	assert.True(t, eos.EntitlementMonths(half).Equal(decimal.NewFromFloat(1.25)))
}

// =============================================================================
// SEPARATION FACTOR CURVES
// =============================================================================

func TestResignationCurve_StatutoryThresholds(t *testing.T) {
	curve := eos.ResignationCurve{}

	// Below two years: nothing.
	assert.True(t, curve.Factor(decimal.NewFromFloat(1.99)).IsZero())

	// At two years: one third.
	oneThird := decimal.NewFromInt(1).Div(decimal.NewFromInt(3))
	assert.True(t, curve.Factor(years(2)).Equal(oneThird))
	assert.True(t, curve.Factor(decimal.NewFromFloat(4.9)).Equal(oneThird))

	// At five years: two thirds.
	twoThirds := decimal.NewFromInt(2).Div(decimal.NewFromInt(3))
	assert.True(t, curve.Factor(years(5)).Equal(twoThirds))
	assert.True(t, curve.Factor(decimal.NewFromFloat(9.99)).Equal(twoThirds))

	// At ten years: full entitlement, identical to termination.
	assert.True(t, curve.Factor(years(10)).Equal(eos.FullEntitlementCurve{}.Factor(years(10))))
}

func TestCurveFor_Dispatch(t *testing.T) {
	assert.IsType(t, eos.ResignationCurve{}, eos.CurveFor(eos.SeparationResignation))
	assert.IsType(t, eos.FullEntitlementCurve{}, eos.CurveFor(eos.SeparationTermination))
}

func TestTieredCurve_CustomJurisdiction(t *testing.T) {
	curve := eos.TieredCurve{Tiers: []eos.FactorTier{
		{AfterYears: 1, Factor: 0.25},
		{AfterYears: 3, Factor: 1.0},
	}}

	assert.True(t, curve.Factor(decimal.NewFromFloat(0.5)).IsZero())
	assert.True(t, curve.Factor(years(2)).Equal(decimal.NewFromFloat(0.25)))
	assert.True(t, curve.Factor(years(4)).Equal(decimal.NewFromFloat(1.0)))
}

func TestTieredCurve_UnsortedTiers_HighestQualifyingWins(t *testing.T) {
	// GIVEN: A tier table in arbitrary order
	// THEN: The tier with the highest threshold at or below the tenure
	//       applies, not the last matching slice entry

	curve := eos.TieredCurve{Tiers: []eos.FactorTier{
		{AfterYears: 3, Factor: 1.0},
		{AfterYears: 1, Factor: 0.25},
	}}

	assert.True(t, curve.Factor(years(2)).Equal(decimal.NewFromFloat(0.25)))
	assert.True(t, curve.Factor(years(4)).Equal(decimal.NewFromFloat(1.0)))
}

// =============================================================================
// FULL SETTLEMENT SCENARIOS
// =============================================================================

func TestCompute_SevenYearTermination(t *testing.T) {
	// GIVEN: 2016-01-01 .. 2023-01-01, termination, 10,000 basic
	// THEN: raw entitlement 4.5 months = 45,000, paid in full

	result := eos.Compute(eos.Input{
		Start:      calendar.NewDate(2016, time.January, 1),
		End:        calendar.NewDate(2023, time.January, 1),
		Basic:      10000,
		Separation: eos.SeparationTermination,
	})

	assert.Equal(t, 7, result.Tenure.Years)
	assert.True(t, result.RawMonths.Equal(decimal.NewFromFloat(4.5)), "got %s", result.RawMonths)
	assert.InDelta(t, 45000, result.RawAmount.Float64(), 0.001)
	assert.True(t, result.Factor.Equal(decimal.NewFromInt(1)))
	assert.InDelta(t, 45000, result.Total.Float64(), 0.001)
}

func TestCompute_ThreeYearResignation_OneThirdOfRaw(t *testing.T) {
	// GIVEN: 2020-01-01 .. 2023-01-01, resignation, 9,000 basic
	// THEN: raw entitlement 1.5 months = 13,500, reduced to one third

	result := eos.Compute(eos.Input{
		Start:      calendar.NewDate(2020, time.January, 1),
		End:        calendar.NewDate(2023, time.January, 1),
		Basic:      9000,
		Separation: eos.SeparationResignation,
	})

	assert.True(t, result.RawMonths.Equal(decimal.NewFromFloat(1.5)))
	assert.InDelta(t, 13500, result.RawAmount.Float64(), 0.001)
	assert.InDelta(t, 4500, result.Payable.Float64(), 0.01)
}

func TestCompute_ResignationJustUnderTwoYears_NoEntitlement(t *testing.T) {
	result := eos.Compute(eos.Input{
		Start:      calendar.NewDate(2021, time.January, 2),
		End:        calendar.NewDate(2023, time.January, 1),
		Basic:      9000,
		Separation: eos.SeparationResignation,
	})

	assert.True(t, result.Factor.IsZero())
	assert.True(t, result.Payable.IsZero())
	assert.True(t, result.RawAmount.IsPositive(), "accrual itself is unaffected")
}

func TestCompute_TenYearResignation_EqualsTermination(t *testing.T) {
	in := eos.Input{
		Start:      calendar.NewDate(2013, time.January, 1),
		End:        calendar.NewDate(2023, time.January, 1),
		Basic:      12000,
		Separation: eos.SeparationResignation,
	}

	resigned := eos.Compute(in)
	in.Separation = eos.SeparationTermination
	terminated := eos.Compute(in)

	assert.True(t, resigned.Payable.Equal(terminated.Payable))
}

func TestCompute_WageBaseIncludesHousing(t *testing.T) {
	in := eos.Input{
		Start:      calendar.NewDate(2016, time.January, 1),
		End:        calendar.NewDate(2023, time.January, 1),
		Basic:      10000,
		Housing:    2500,
		WageBase:   eos.WageBasicHousing,
		Separation: eos.SeparationTermination,
	}

	result := eos.Compute(in)

	assert.InDelta(t, 12500, result.BaseMonthlyWage.Float64(), 0.001)
	assert.InDelta(t, 12500.0/30, result.DailyWage.Float64(), 0.001)
	assert.InDelta(t, 12500*4.5, result.RawAmount.Float64(), 0.001)
}

func TestCompute_AdjustmentsAndGrandTotal(t *testing.T) {
	// GIVEN: Leave encashment, extra credits, and deductions
	in := eos.Input{
		Start:           calendar.NewDate(2016, time.January, 1),
		End:             calendar.NewDate(2023, time.January, 1),
		Basic:           10000,
		Separation:      eos.SeparationTermination,
		LeaveEncashment: 3000,
		ExtraCredits:    500,
		Deductions:      1200,
	}

	result := eos.Compute(in)

	require.InDelta(t, 45000, result.Payable.Float64(), 0.001)
	assert.InDelta(t, 45000+3000+500-1200, result.Total.Float64(), 0.001)
}

// =============================================================================
// ESTIMATOR COERCION RULES
// =============================================================================

func TestCompute_InvertedDates_ZeroTenureSettlement(t *testing.T) {
	result := eos.Compute(eos.Input{
		Start:      calendar.NewDate(2023, time.January, 1),
		End:        calendar.NewDate(2016, time.January, 1),
		Basic:      10000,
		Separation: eos.SeparationTermination,
	})

	assert.Equal(t, calendar.TenureBreakdown{}, result.Tenure)
	assert.True(t, result.RawMonths.IsZero())
	assert.True(t, result.Total.IsZero())
}

func TestCompute_DeductionsExceedPayable_TotalFloorsAtZero(t *testing.T) {
	result := eos.Compute(eos.Input{
		Start:      calendar.NewDate(2022, time.January, 1),
		End:        calendar.NewDate(2023, time.January, 1),
		Basic:      1000,
		Separation: eos.SeparationTermination,
		Deductions: 99999,
	})

	assert.True(t, result.Total.IsZero())
}

func TestCompute_DivisorGuard(t *testing.T) {
	in := eos.Input{
		Start:      calendar.NewDate(2016, time.January, 1),
		End:        calendar.NewDate(2023, time.January, 1),
		Basic:      9000,
		Separation: eos.SeparationTermination,
	}

	byDefault := eos.Compute(in)
	assert.InDelta(t, 300, byDefault.DailyWage.Float64(), 0.001)

	in.Divisor = 0.2
	floored := eos.Compute(in)
	assert.InDelta(t, 9000, floored.DailyWage.Float64(), 0.001)
}

func TestCompute_CustomCurveOverride(t *testing.T) {
	// A caller-supplied curve replaces the statutory dispatch.

	in := eos.Input{
		Start:      calendar.NewDate(2020, time.January, 1),
		End:        calendar.NewDate(2023, time.January, 1),
		Basic:      9000,
		Separation: eos.SeparationResignation,
		Curve:      eos.FullEntitlementCurve{},
	}

	result := eos.Compute(in)

	assert.True(t, result.Payable.Equal(result.RawAmount))
}
