package domain

import "time"

// Period is a named date-range selector used to filter transactions for analytics.
type Period string

const (
	PeriodToday       Period = "Today"
	PeriodThisWeek    Period = "This Week"
	PeriodThisMonth   Period = "This Month"
	PeriodThisYear    Period = "This Year"
	PeriodCustomRange Period = "Custom Range"
)

// DateRange is an inclusive date window. A nil bound means the window is open
// on that side; a range with both bounds nil matches every transaction.
//
// Named periods other than "Today" resolve to a lower bound only: the upper
// end stays open, so a future-dated transaction recorded today is included
// in "This Week".
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Unbounded is the "no filtering" range.
var Unbounded = DateRange{}

// IsUnbounded reports whether the range matches everything.
func (r DateRange) IsUnbounded() bool {
	return r.Start == nil && r.End == nil
}

// Contains reports whether date falls inside the inclusive range.
func (r DateRange) Contains(date time.Time) bool {
	if r.Start != nil && date.Before(*r.Start) {
		return false
	}
	if r.End != nil && date.After(*r.End) {
		return false
	}
	return true
}
