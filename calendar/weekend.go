package calendar

import "time"

// =============================================================================
// WEEKEND DEFINITION - Which weekdays count as the weekend
// =============================================================================

// WeekendDefinition is an immutable set of weekdays, encoded as a bitmask.
// The zero value means "use the default policy" (Friday-Saturday), which is
// the weekend observed where this calculator originates.
type WeekendDefinition uint8

// NewWeekend builds a weekend policy from an explicit set of weekdays.
func NewWeekend(days ...time.Weekday) WeekendDefinition {
	var w WeekendDefinition
	for _, d := range days {
		w |= 1 << uint(d)
	}
	return w
}

// Named weekend policies.
var (
	WeekendFridaySaturday = NewWeekend(time.Friday, time.Saturday)
	WeekendSaturdaySunday = NewWeekend(time.Saturday, time.Sunday)
	WeekendThursdayFriday = NewWeekend(time.Thursday, time.Friday)
	WeekendFriday         = NewWeekend(time.Friday)
	WeekendSunday         = NewWeekend(time.Sunday)
)

// DefaultWeekend is applied when a caller leaves the policy unset.
var DefaultWeekend = WeekendFridaySaturday

// Contains reports whether the weekday is part of the weekend.
func (w WeekendDefinition) Contains(d time.Weekday) bool {
	return w.orDefault()&(1<<uint(d)) != 0
}

// Days returns the weekdays in the policy, in time.Weekday order.
func (w WeekendDefinition) Days() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.orDefault()&(1<<uint(d)) != 0 {
			days = append(days, d)
		}
	}
	return days
}

func (w WeekendDefinition) orDefault() WeekendDefinition {
	if w == 0 {
		return DefaultWeekend
	}
	return w
}

// =============================================================================
// HOLIDAY SET - Specific dates excluded from working-day counts
// =============================================================================

// HolidaySet is a set of calendar dates. The zero value is an empty set.
type HolidaySet struct {
	days map[Date]struct{}
}

func NewHolidaySet(dates ...Date) HolidaySet {
	days := make(map[Date]struct{}, len(dates))
	for _, d := range dates {
		days[d] = struct{}{}
	}
	return HolidaySet{days: days}
}

func (h HolidaySet) Contains(d Date) bool {
	_, ok := h.days[d]
	return ok
}

func (h HolidaySet) Len() int { return len(h.days) }
