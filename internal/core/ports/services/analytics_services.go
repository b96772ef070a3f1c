package services

import (
	"context"
	"time"

	"github.com/fintrk/expense_tracker_app/internal/core/domain"
)

// AnalyticsSvcFacade defines operations for deriving time-windowed analytics
// over the transaction history.
type AnalyticsSvcFacade interface {
	// Aggregate resolves the period against referenceDate, filters the stored
	// transactions by the resolved range and computes the derived views.
	// customStart/customEnd are YYYY-MM-DD strings, consulted only for the
	// "Custom Range" period; an unparseable bound yields ErrInvalidDate.
	Aggregate(ctx context.Context, period domain.Period, referenceDate time.Time, customStart, customEnd string) (*domain.AnalyticsReport, error)
}
