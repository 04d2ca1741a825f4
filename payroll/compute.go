/*
compute.go - Gross/net conversion paths

PURPOSE:
  The three entry points of the payroll engine:

  Compute:          gross -> net. Housing is derived from basic, the
                    contribution base is resolved per the profile, and
                    deductions are taken from gross.

  ComputeFromNet:   net -> gross. There is no closed form for the
                    inverse, so this runs a damped fixed-point
                    iteration on the basic wage: nudge the guess by a
                    fraction of the residual between the target net and
                    the computed net until it converges or the round
                    budget runs out.

  ComputeFromGross: gross override. Back-solves the implied basic wage
                    from a caller-supplied gross so that a
                    gross -> net -> gross round trip stays consistent.

CONVERGENCE:
  The damping factor, round cap, and tolerance are named constants.
  They are part of the engine's observable behavior - changing them
  changes results against the reference vectors, so tests assert them
  directly. Non-convergence returns the best available approximation
  rather than failing.

SEE ALSO:
  - types.go: Input/Result and defaults
  - profiles.go: Contribution profiles
*/
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/warp/settlement-engine/money"
)

// =============================================================================
// INVERSION CONSTANTS - Observable solver behavior
// =============================================================================

const (
	// MaxInversionRounds bounds the net-to-gross fixed-point iteration.
	MaxInversionRounds = 30

	// InversionDamping scales each correction step.
	InversionDamping = 0.6

	// InversionTolerance is the absolute residual, in currency units,
	// at which the iteration stops.
	InversionTolerance = 0.01
)

var (
	inversionDamping   = decimal.NewFromFloat(InversionDamping)
	inversionTolerance = money.New(InversionTolerance)
	twelve             = decimal.NewFromInt(12)
)

// =============================================================================
// GROSS -> NET
// =============================================================================

// Compute runs the gross-to-net conversion. It never fails: all numeric
// inputs coerce to non-negative values and missing fields take their
// defaults.
func Compute(in Input) Result {
	n := in.normalized()

	basic := money.NonNegative(n.Basic)
	housing := n.Housing.AmountFor(basic)
	transport := money.NonNegative(n.Transport)
	other := money.NonNegative(n.Other)
	gross := basic.Add(housing).Add(transport).Add(other)

	base := n.Profile.BaseAmount(basic, housing, gross)
	employee := base.Mul(n.Profile.EmployeeRate)
	employer := base.Mul(n.Profile.EmployerRate)

	otherDeduction := gross.Mul(money.RateFromPercent(n.Deductions.OtherPercent))
	flat := money.NonNegative(n.Deductions.Flat)
	net := gross.Sub(employee).Sub(otherDeduction).Sub(flat).ClampZero()

	divisor := decimal.NewFromFloat(n.Divisor)
	hoursPerDay := decimal.NewFromFloat(n.HoursPerDay)
	dailyGross := gross.Div(divisor)
	hourlyGross := dailyGross.Div(hoursPerDay)
	dailyNet := net.Div(divisor)
	hourlyNet := dailyNet.Div(hoursPerDay)

	// Overtime is paid on the gross hourly rate and is not part of the
	// contribution base.
	overtimePay := money.Zero
	if n.Overtime.Hours > 0 {
		overtimePay = hourlyGross.
			Mul(decimal.NewFromFloat(n.Overtime.Multiplier)).
			Mul(decimal.NewFromFloat(n.Overtime.Hours))
	}
	monthlyGross := gross.Add(overtimePay)
	monthlyNet := net.Add(overtimePay)

	proratedEmployee, proratedEmployer := employee, employer
	if !n.AsOf.IsZero() {
		fraction := decimal.NewFromInt(int64(n.AsOf.Day())).
			Div(decimal.NewFromInt(int64(n.AsOf.DaysInMonth())))
		proratedEmployee = employee.Mul(fraction)
		proratedEmployer = employer.Mul(fraction)
	}

	return Result{
		Basic:     basic,
		Housing:   housing,
		Transport: transport,
		Other:     other,

		MonthlyGross: monthlyGross,
		MonthlyNet:   monthlyNet,
		YearlyGross:  monthlyGross.Mul(twelve),
		YearlyNet:    monthlyNet.Mul(twelve),

		DailyGross:  dailyGross,
		DailyNet:    dailyNet,
		HourlyGross: hourlyGross,
		HourlyNet:   hourlyNet,

		ContributionBase:     base,
		EmployeeContribution: employee,
		EmployerContribution: employer,
		ProratedEmployee:     proratedEmployee,
		ProratedEmployer:     proratedEmployer,

		OvertimePay:    overtimePay,
		OtherDeduction: otherDeduction,
		FlatDeduction:  flat,

		Allocation: allocate(n.Profile, employee, basic, housing, transport, gross),
	}
}

// allocate spreads the employee contribution proportionally across wage
// components when the whole gross is contributory. The Other share is
// the remainder, so the shares sum to the contribution exactly.
func allocate(profile ContributionProfile, employee, basic, housing, transport, gross money.Amount) *ContributionAllocation {
	if profile.Base != BaseFullGross {
		return nil
	}
	if gross.IsZero() || employee.IsZero() {
		return &ContributionAllocation{}
	}

	share := func(component money.Amount) money.Amount {
		return employee.Mul(component.Value.Div(gross.Value))
	}
	alloc := ContributionAllocation{
		Basic:     share(basic),
		Housing:   share(housing),
		Transport: share(transport),
	}
	alloc.Other = employee.Sub(alloc.Basic).Sub(alloc.Housing).Sub(alloc.Transport)
	return &alloc
}

// =============================================================================
// NET -> GROSS (damped fixed-point iteration)
// =============================================================================

// ComputeFromNet solves for the compensation whose net pay matches
// targetNet, starting from an assumed basic wage. If the iteration does
// not converge within MaxInversionRounds it returns the result for the
// last guess rather than failing.
func ComputeFromNet(in Input, targetNet, startingBasic float64) Result {
	target := money.NonNegative(targetNet)
	basic := money.NonNegative(startingBasic)
	if basic.IsZero() {
		basic = target
	}

	trial := in
	for round := 0; round < MaxInversionRounds; round++ {
		trial.Basic = basic.Float64()
		result := Compute(trial)

		residual := target.Sub(result.MonthlyNet)
		if residual.Abs().LessThan(inversionTolerance) {
			return result
		}
		basic = basic.Add(residual.Mul(inversionDamping)).ClampZero()
	}

	trial.Basic = basic.Float64()
	return Compute(trial)
}

// =============================================================================
// GROSS OVERRIDE - Back-solve basic from a supplied gross
// =============================================================================

// ComputeFromGross derives the implied basic wage from a caller-supplied
// gross under the input's housing policy and allowances, then runs the
// standard gross-to-net conversion. Round-tripping a Compute result's
// gross through this path recovers the original figures.
func ComputeFromGross(in Input, gross float64) Result {
	g := money.NonNegative(gross)
	remainder := g.
		Sub(money.NonNegative(in.Transport)).
		Sub(money.NonNegative(in.Other))

	var basic money.Amount
	if in.Housing.Mode == HousingModeFixed {
		basic = remainder.Sub(money.NonNegative(in.Housing.Fixed))
	} else {
		one := decimal.NewFromInt(1)
		basic = remainder.Div(one.Add(money.RateFromPercent(in.Housing.Percent)))
	}

	out := in
	out.Basic = basic.ClampZero().Float64()
	return Compute(out)
}
