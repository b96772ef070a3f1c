package dto

import (
	"github.com/fintrk/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryResponse represents the headline totals of an analytics report.
type SummaryResponse struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetBalance       decimal.Decimal `json:"netBalance"`
	TransactionCount int             `json:"transactionCount"`
}

// CategoryTotalResponse is a {label, amount} tuple for one category.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DailyPointResponse is a {date, type, amount} tuple of the daily series.
type DailyPointResponse struct {
	Date   string          `json:"date"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryTypeTotalResponse is a {label, type, amount} tuple of the
// category-by-type comparison matrix.
type CategoryTypeTotalResponse struct {
	Category string          `json:"category"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
}

// AnalyticsResponse is the full dashboard payload for one aggregation call.
// NoData is true (and Summary null) when no transaction matched the window,
// so clients can render a placeholder instead of zeros.
type AnalyticsResponse struct {
	Period            string                      `json:"period"`
	StartDate         *string                     `json:"startDate"`
	EndDate           *string                     `json:"endDate"`
	NoData            bool                        `json:"noData"`
	Summary           *SummaryResponse            `json:"summary"`
	ExpenseByCategory []CategoryTotalResponse     `json:"expenseByCategory"`
	IncomeByCategory  []CategoryTotalResponse     `json:"incomeByCategory"`
	DailySeries       []DailyPointResponse        `json:"dailySeries"`
	CategoryMatrix    []CategoryTypeTotalResponse `json:"categoryMatrix"`
}

// ToAnalyticsResponse converts a domain analytics report to a DTO response.
func ToAnalyticsResponse(report *domain.AnalyticsReport, period domain.Period) AnalyticsResponse {
	response := AnalyticsResponse{
		Period:            string(period),
		NoData:            !report.HasData,
		ExpenseByCategory: make([]CategoryTotalResponse, len(report.ExpenseByCategory)),
		IncomeByCategory:  make([]CategoryTotalResponse, len(report.IncomeByCategory)),
		DailySeries:       make([]DailyPointResponse, len(report.DailySeries)),
		CategoryMatrix:    make([]CategoryTypeTotalResponse, len(report.CategoryMatrix)),
	}

	if report.Range.Start != nil {
		s := report.Range.Start.Format(domain.DateFormat)
		response.StartDate = &s
	}
	if report.Range.End != nil {
		e := report.Range.End.Format(domain.DateFormat)
		response.EndDate = &e
	}

	if report.Summary != nil {
		response.Summary = &SummaryResponse{
			TotalIncome:      report.Summary.TotalIncome,
			TotalExpenses:    report.Summary.TotalExpenses,
			NetBalance:       report.Summary.NetBalance,
			TransactionCount: report.Summary.TransactionCount,
		}
	}

	for i, ct := range report.ExpenseByCategory {
		response.ExpenseByCategory[i] = CategoryTotalResponse{Category: ct.Category, Amount: ct.Amount}
	}
	for i, ct := range report.IncomeByCategory {
		response.IncomeByCategory[i] = CategoryTotalResponse{Category: ct.Category, Amount: ct.Amount}
	}
	for i, dp := range report.DailySeries {
		response.DailySeries[i] = DailyPointResponse{
			Date:   dp.Date.Format(domain.DateFormat),
			Type:   string(dp.Type),
			Amount: dp.Amount,
		}
	}
	for i, cell := range report.CategoryMatrix {
		response.CategoryMatrix[i] = CategoryTypeTotalResponse{
			Category: cell.Category,
			Type:     string(cell.Type),
			Amount:   cell.Amount,
		}
	}

	return response
}
