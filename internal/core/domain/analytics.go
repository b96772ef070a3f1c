package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the headline totals for a filtered transaction set.
type Summary struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetBalance       decimal.Decimal `json:"netBalance"` // TotalIncome - TotalExpenses
	TransactionCount int             `json:"transactionCount"`
}

// CategoryTotal is the per-category sum for a single transaction type.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DailyPoint is the sum of amounts for one (date, type) pair.
// Days without transactions are not interpolated.
type DailyPoint struct {
	Date   time.Time       `json:"date"`
	Type   TransactionType `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryTypeTotal is the sum of amounts for one (category, type) pair,
// used for side-by-side category comparison across both types.
type CategoryTypeTotal struct {
	Category string          `json:"category"`
	Type     TransactionType `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
}

// AnalyticsReport bundles the derived views computed over a single filtered
// snapshot. All views are mutually consistent: they come from the same
// filtered set within one aggregation call.
//
// When no transaction matches the range, HasData is false and Summary is nil.
// That is an explicit "no data" signal, distinct from zero-sum data, so
// callers can render a placeholder instead of zeros.
type AnalyticsReport struct {
	Range             DateRange
	HasData           bool
	Summary           *Summary
	ExpenseByCategory []CategoryTotal
	IncomeByCategory  []CategoryTotal
	DailySeries       []DailyPoint
	CategoryMatrix    []CategoryTypeTotal
}
