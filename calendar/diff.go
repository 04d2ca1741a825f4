/*
diff.go - Date differencing, working-day counts, and tenure breakdown

PURPOSE:
  Implements the calendar arithmetic contract the payroll and
  end-of-service engines depend on:
  - Between: elapsed time plus working/weekend/holiday day counts
  - CountWorkingDays: inclusive day-by-day classification
  - Tenure: whole years / months / days with calendar-aware borrowing

CLASSIFICATION ORDER:
  A day is classified exactly once: weekend first, then holiday, then
  working day. A holiday that falls on a weekend day is counted as a
  weekend day, never double-counted.

COMPLEXITY:
  CountWorkingDays iterates every day in the range. Ranges are bounded
  to human career spans, so linear iteration is deliberate - it is easy
  to audit against a wall calendar, which matters more here than speed.

SEE ALSO:
  - date.go: Date and ClockTime
  - weekend.go: WeekendDefinition and HolidaySet
*/
package calendar

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TENURE BREAKDOWN - Elapsed duration in calendar units
// =============================================================================

type TenureBreakdown struct {
	Years  int
	Months int
	Days   int

	TotalDays  int
	TotalWeeks int
}

var (
	twelve             = decimal.NewFromInt(12)
	daysPerYear        = decimal.NewFromInt(365)
	daysPerAverageYear = decimal.NewFromFloat(365.25)
)

// TenureYears expresses the breakdown as fractional years using calendar
// fields (years + months/12 + days/365). Exact at whole-year boundaries,
// which the tiered accrual schedule and separation curves rely on.
func (t TenureBreakdown) TenureYears() decimal.Decimal {
	return decimal.NewFromInt(int64(t.Years)).
		Add(decimal.NewFromInt(int64(t.Months)).Div(twelve)).
		Add(decimal.NewFromInt(int64(t.Days)).Div(daysPerYear))
}

// ApproxYears is the coarse day-count approximation (total days / 365.25).
// Only suitable for rough tier lookups, not boundary-exact comparisons.
func (t TenureBreakdown) ApproxYears() float64 {
	f, _ := decimal.NewFromInt(int64(t.TotalDays)).Div(daysPerAverageYear).Float64()
	return f
}

// Tenure computes the calendar breakdown of [start, end]. When the day
// delta is negative it borrows the length of the month immediately
// preceding end, repeating with each earlier month until the deficit is
// covered (a 31st-of-month start can overrun a borrowed February); when
// the month delta then goes negative it borrows a year. Inverted ranges
// clamp to zero tenure.
func Tenure(start, end Date) TenureBreakdown {
	if end.Before(start) {
		return TenureBreakdown{}
	}

	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	days := end.Day() - start.Day()

	// Walk the borrow months as year/month fields rather than AddMonths:
	// time.AddDate would normalize a day-31 date past a short month.
	borrowYear, borrowMonth := end.Year(), end.Month()
	for days < 0 {
		borrowMonth--
		if borrowMonth < time.January {
			borrowMonth = time.December
			borrowYear--
		}
		days += DaysInMonth(borrowYear, borrowMonth)
		months--
	}
	if months < 0 {
		months += 12
		years--
	}
	if years < 0 {
		years, months, days = 0, 0, 0
	}

	total := DaysBetween(start, end)
	return TenureBreakdown{
		Years:      years,
		Months:     months,
		Days:       days,
		TotalDays:  total,
		TotalWeeks: total / 7,
	}
}

// =============================================================================
// WORKING-DAY COUNT - Inclusive day-by-day classification
// =============================================================================

type WorkingDayCount struct {
	WorkingDays int
	WeekendDays int
	Holidays    int
	TotalDays   int // inclusive of both endpoints
}

// CountWorkingDays classifies every day in the inclusive range [start,
// end]. Inverted ranges yield zero counts.
func CountWorkingDays(start, end Date, weekend WeekendDefinition, holidays HolidaySet) WorkingDayCount {
	var count WorkingDayCount
	if end.Before(start) {
		return count
	}

	for day := start; day.BeforeOrEqual(end); day = day.AddDays(1) {
		count.TotalDays++
		switch {
		case weekend.Contains(day.Weekday()):
			count.WeekendDays++
		case holidays.Contains(day):
			count.Holidays++
		default:
			count.WorkingDays++
		}
	}
	return count
}

// =============================================================================
// DIFFERENCE - Full differencing result
// =============================================================================

type Difference struct {
	ElapsedMilliseconds int64
	ElapsedSeconds      int64
	ElapsedMinutes      int64
	ElapsedHours        int64
	ElapsedDays         int

	TotalWeeks  int
	WorkingDays int
	WeekendDays int
	Holidays    int

	Tenure TenureBreakdown
}

// Between computes the full difference from a to b. b is assumed to be
// at or after a; inverted spans clamp to zero elapsed time. The zero
// WeekendDefinition applies the default Friday-Saturday policy.
func Between(a, b Date, weekend WeekendDefinition, holidays HolidaySet) Difference {
	if b.Before(a) {
		b = a
	}

	elapsed := b.Time().Sub(a.Time())
	days := DaysBetween(a, b)
	count := CountWorkingDays(a, b, weekend, holidays)

	return Difference{
		ElapsedMilliseconds: elapsed.Milliseconds(),
		ElapsedSeconds:      int64(elapsed.Seconds()),
		ElapsedMinutes:      int64(elapsed.Minutes()),
		ElapsedHours:        int64(elapsed.Hours()),
		ElapsedDays:         days,
		TotalWeeks:          days / 7,
		WorkingDays:         count.WorkingDays,
		WeekendDays:         count.WeekendDays,
		Holidays:            count.Holidays,
		Tenure:              Tenure(a, b),
	}
}

// =============================================================================
// SHIFT ARITHMETIC - Work-hour end-time calculation
// =============================================================================

// ShiftEnd returns the clock-out time for a shift starting at start with
// the given working hours plus an unpaid-or-paid break. Negative inputs
// coerce to zero. A 07:00 start, 8 working hours, and a 60-minute break
// end at 16:00.
func ShiftEnd(start ClockTime, workHours float64, breakMinutes int) ClockTime {
	if workHours < 0 {
		workHours = 0
	}
	if breakMinutes < 0 {
		breakMinutes = 0
	}
	return start.AddMinutes(int(workHours*60) + breakMinutes)
}
