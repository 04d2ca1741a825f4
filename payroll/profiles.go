/*
profiles.go - Contribution base policies and named GOSI profiles

PURPOSE:
  Pre-built social-insurance contribution profiles for the common
  registration classes, plus fully custom construction. A profile fixes
  the employee/employer percentage rates, which wage components the
  percentages apply to, and the statutory contribution ceiling.

AVAILABLE PROFILES:
  ProfileSaudiStandard: Current Saudi registration - 9.75% employee,
                        11.75% employer on basic+housing, capped
  ProfileSaudiLegacy:   Pre-SANED rates - 9% / 11%
  ProfileNonSaudi:      Occupational hazard only - 0% / 2%
  ProfileNone:          Zero rates (gross-to-net with no insurance)

CUSTOMIZATION:
  CustomProfile accepts arbitrary rates, base policy, and cap for
  other jurisdictions or what-if scenarios.

SEE ALSO:
  - compute.go: Applies profiles during gross/net conversion
  - factory: JSON profile selection by name
*/
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/warp/settlement-engine/money"
)

// =============================================================================
// CONTRIBUTION BASE - Which wage components the rates apply to
// =============================================================================

type ContributionBase string

const (
	// BaseBasicHousing applies rates to basic + housing, capped. This is
	// the statutory GOSI wage base.
	BaseBasicHousing ContributionBase = "basic_housing"

	// BaseFullGross applies rates to the whole gross wage.
	BaseFullGross ContributionBase = "full_gross"

	// BaseBasicOnly applies rates to the basic wage alone.
	BaseBasicOnly ContributionBase = "basic_only"
)

// =============================================================================
// STATUTORY CONSTANTS (Saudi GOSI)
// =============================================================================

const (
	// SaudiEmployeePercent is annuities 9% plus SANED 0.75%.
	SaudiEmployeePercent = 9.75

	// SaudiEmployerPercent is annuities 9%, SANED 0.75%, hazard 2%.
	SaudiEmployerPercent = 11.75

	// Legacy rates before the unemployment-insurance branch.
	LegacyEmployeePercent = 9.0
	LegacyEmployerPercent = 11.0

	// NonSaudiEmployerPercent covers occupational hazard only.
	NonSaudiEmployerPercent = 2.0

	// ContributionCap is the statutory monthly wage ceiling.
	ContributionCap = 45000.0
)

// =============================================================================
// CONTRIBUTION PROFILE
// =============================================================================

type ContributionProfile struct {
	Name         string
	EmployeeRate decimal.Decimal // fraction, e.g. 0.0975
	EmployerRate decimal.Decimal
	Base         ContributionBase
	Cap          money.Amount // zero = uncapped
}

func ProfileSaudiStandard() ContributionProfile {
	return CustomProfile("saudi_standard", SaudiEmployeePercent, SaudiEmployerPercent, BaseBasicHousing, ContributionCap)
}

func ProfileSaudiLegacy() ContributionProfile {
	return CustomProfile("saudi_legacy", LegacyEmployeePercent, LegacyEmployerPercent, BaseBasicHousing, ContributionCap)
}

func ProfileNonSaudi() ContributionProfile {
	return CustomProfile("non_saudi", 0, NonSaudiEmployerPercent, BaseBasicHousing, ContributionCap)
}

func ProfileNone() ContributionProfile {
	return CustomProfile("none", 0, 0, BaseBasicHousing, 0)
}

// CustomProfile builds a profile from human percentages (9.75 = 9.75%).
// Negative rates and caps coerce to zero.
func CustomProfile(name string, employeePercent, employerPercent float64, base ContributionBase, cap float64) ContributionProfile {
	if base == "" {
		base = BaseBasicHousing
	}
	return ContributionProfile{
		Name:         name,
		EmployeeRate: money.RateFromPercent(employeePercent),
		EmployerRate: money.RateFromPercent(employerPercent),
		Base:         base,
		Cap:          money.NonNegative(cap),
	}
}

// BaseAmount resolves the contribution base for the given wage
// components and applies the statutory cap.
func (p ContributionProfile) BaseAmount(basic, housing, gross money.Amount) money.Amount {
	var base money.Amount
	switch p.Base {
	case BaseFullGross:
		base = gross
	case BaseBasicOnly:
		base = basic
	default:
		base = basic.Add(housing)
	}
	if p.Cap.IsPositive() {
		base = base.Min(p.Cap)
	}
	return base
}
