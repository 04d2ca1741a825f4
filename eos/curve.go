/*
Package eos implements the end-of-service settlement engine.

PURPOSE:
  Computes the lump-sum settlement owed to a departing employee from
  tenure, base wage, and separation type: a tenure-tiered accrual of
  month-equivalents, scaled by a separation factor that depends on who
  initiated the separation.

KEY CONCEPTS IN THIS FILE (curve.go):
  - SeparationType: Closed tag set (termination vs. resignation)
  - FactorCurve: Strategy mapping tenure years to an entitlement factor
  - ResignationCurve: The statutory reduction schedule for resignation
  - TieredCurve: Threshold-table curve for other jurisdictions' rules

WHY A STRATEGY:
  The accrual math never changes across jurisdictions; only the factor
  schedule does. Keeping the schedule behind FactorCurve means a new
  jurisdiction is a new curve, not a change to the engine.

SEE ALSO:
  - settlement.go: Tiered accrual and the settlement computation
*/
package eos

import "github.com/shopspring/decimal"

// =============================================================================
// SEPARATION TYPE
// =============================================================================

type SeparationType string

const (
	// SeparationTermination - employer-initiated; full entitlement.
	SeparationTermination SeparationType = "termination"

	// SeparationResignation - employee-initiated; reduced entitlement.
	SeparationResignation SeparationType = "resignation"
)

// =============================================================================
// FACTOR CURVE - SeparationType -> factor(tenureYears)
// =============================================================================

// FactorCurve maps tenure (in fractional years) to the fraction of the
// raw accrued entitlement that is payable.
type FactorCurve interface {
	Factor(tenureYears decimal.Decimal) decimal.Decimal
}

// CurveFor returns the statutory curve for a separation type. Unknown
// types fall back to full entitlement, the estimator-friendly choice.
func CurveFor(t SeparationType) FactorCurve {
	if t == SeparationResignation {
		return ResignationCurve{}
	}
	return FullEntitlementCurve{}
}

// =============================================================================
// STOCK CURVES
// =============================================================================

// Resignation thresholds, in years of service (Saudi Labor Law art. 85).
const (
	ResignationMinYears  = 2  // below this: no entitlement
	ResignationMidYears  = 5  // [min, mid): one third
	ResignationFullYears = 10 // [mid, full): two thirds; at full: everything
)

var (
	three     = decimal.NewFromInt(3)
	oneThird  = decimal.NewFromInt(1).Div(three)
	twoThirds = decimal.NewFromInt(2).Div(three)

	resignationMin  = decimal.NewFromInt(ResignationMinYears)
	resignationMid  = decimal.NewFromInt(ResignationMidYears)
	resignationFull = decimal.NewFromInt(ResignationFullYears)
)

// FullEntitlementCurve pays the raw entitlement regardless of tenure.
type FullEntitlementCurve struct{}

func (FullEntitlementCurve) Factor(decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1)
}

// ResignationCurve applies the statutory reduction schedule for
// employee-initiated separation.
type ResignationCurve struct{}

func (ResignationCurve) Factor(tenureYears decimal.Decimal) decimal.Decimal {
	switch {
	case tenureYears.LessThan(resignationMin):
		return decimal.Zero
	case tenureYears.LessThan(resignationMid):
		return oneThird
	case tenureYears.LessThan(resignationFull):
		return twoThirds
	default:
		return decimal.NewFromInt(1)
	}
}

// =============================================================================
// TIERED CURVE - Configurable threshold table
// =============================================================================

// FactorTier applies Factor once tenure reaches AfterYears.
type FactorTier struct {
	AfterYears float64
	Factor     float64
}

// TieredCurve selects the tier with the highest AfterYears at or below
// the tenure, regardless of tier order. An empty tier table yields a
// zero factor.
type TieredCurve struct {
	Tiers []FactorTier
}

func (c TieredCurve) Factor(tenureYears decimal.Decimal) decimal.Decimal {
	factor := decimal.Zero
	best := decimal.NewFromInt(-1)
	for _, tier := range c.Tiers {
		after := decimal.NewFromFloat(tier.AfterYears)
		if tenureYears.GreaterThanOrEqual(after) && after.GreaterThan(best) {
			best = after
			factor = decimal.NewFromFloat(tier.Factor)
		}
	}
	return factor
}
