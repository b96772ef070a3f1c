package services

import (
	"fmt"
	"time"

	"github.com/fintrk/expense_tracker_app/internal/apperrors"
	"github.com/fintrk/expense_tracker_app/internal/core/domain"
)

// ResolvePeriod maps a named or custom period selector onto a concrete
// inclusive date window relative to referenceDate.
//
// Named periods other than "Today" resolve to a lower bound only; the upper
// end is deliberately left open (see domain.DateRange). "Custom Range" with
// both bounds yields a fully bounded window; with either bound missing it
// degrades to Unbounded so every transaction passes. An unknown period name
// is treated as "no filter", not an error.
func ResolvePeriod(period domain.Period, referenceDate time.Time, customStart, customEnd string) (domain.DateRange, error) {
	ref := truncateToDate(referenceDate)

	switch period {
	case domain.PeriodToday:
		return domain.DateRange{Start: &ref, End: &ref}, nil

	case domain.PeriodThisWeek:
		// Most recent Monday at or before the reference date (ISO week).
		offset := (int(ref.Weekday()) + 6) % 7
		start := ref.AddDate(0, 0, -offset)
		return domain.DateRange{Start: &start}, nil

	case domain.PeriodThisMonth:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		return domain.DateRange{Start: &start}, nil

	case domain.PeriodThisYear:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return domain.DateRange{Start: &start}, nil

	case domain.PeriodCustomRange:
		if customStart == "" || customEnd == "" {
			return domain.Unbounded, nil
		}
		start, err := time.Parse(domain.DateFormat, customStart)
		if err != nil {
			return domain.Unbounded, fmt.Errorf("%w: start date must be in YYYY-MM-DD format", apperrors.ErrInvalidDate)
		}
		end, err := time.Parse(domain.DateFormat, customEnd)
		if err != nil {
			return domain.Unbounded, fmt.Errorf("%w: end date must be in YYYY-MM-DD format", apperrors.ErrInvalidDate)
		}
		return domain.DateRange{Start: &start, End: &end}, nil

	default:
		return domain.Unbounded, nil
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
