/*
Package calendar provides the date arithmetic the payroll and
end-of-service engines are built on.

PURPOSE:
  Date differencing, working-day counts under configurable weekend
  policies and holiday sets, tenure breakdown (whole years, remainder
  months, remainder days), and work-shift clock arithmetic.

KEY CONCEPTS IN THIS FILE (date.go):
  - Date: A calendar day, always normalized to midnight UTC
  - ClockTime: A wall-clock time of day for shift arithmetic

DESIGN PRINCIPLES:
  1. Day granularity: the engines reason about days, so every Date is
     pinned to midnight before any comparison
  2. Real calendar fields: month/year arithmetic uses time.AddDate, so
     leap days and uneven month lengths fall out naturally
  3. Graceful degradation: inverted ranges clamp to zero, never error

SEE ALSO:
  - weekend.go: Weekend policies and holiday sets
  - diff.go: Differencing, working-day counts, tenure breakdown
*/
package calendar

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Calendar day normalized to midnight UTC
// =============================================================================

type Date struct {
	t time.Time
}

// NewDate builds a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an arbitrary instant to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return DateOf(d.t.AddDate(0, 0, n)) }
func (d Date) AddMonths(n int) Date { return DateOf(d.t.AddDate(0, n, 0)) }
func (d Date) AddYears(n int) Date  { return DateOf(d.t.AddDate(n, 0, 0)) }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Time() time.Time       { return d.t }

func (d Date) String() string { return d.t.Format("2006-01-02") }

// DaysInMonth returns the number of days in the month containing d.
func (d Date) DaysInMonth() int {
	return DaysInMonth(d.Year(), d.Month())
}

// DaysInMonth returns the length of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1).Day()
}

// DaysBetween returns the whole-day span from a to b (negative if b < a).
func DaysBetween(a, b Date) int {
	return int(b.t.Sub(a.t).Hours() / 24)
}

// =============================================================================
// CLOCK TIME - Time of day for work-shift arithmetic
// =============================================================================

type ClockTime struct {
	Hour   int
	Minute int
}

func NewClockTime(hour, minute int) ClockTime {
	return clockFromMinutes(hour*60 + minute)
}

func clockFromMinutes(total int) ClockTime {
	const minutesPerDay = 24 * 60
	total %= minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return ClockTime{Hour: total / 60, Minute: total % 60}
}

func (c ClockTime) AddMinutes(n int) ClockTime {
	return clockFromMinutes(c.Hour*60 + c.Minute + n)
}

func (c ClockTime) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }
