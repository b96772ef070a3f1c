package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/fintrk/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrk/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrk/expense_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// analyticsServiceImpl implements the AnalyticsSvcFacade interface
type analyticsServiceImpl struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo portsrepo.TransactionRepository) portssvc.AnalyticsSvcFacade {
	return &analyticsServiceImpl{txnRepo: repo}
}

// Ensure analyticsServiceImpl implements the AnalyticsSvcFacade interface
var _ portssvc.AnalyticsSvcFacade = (*analyticsServiceImpl)(nil)

// Aggregate resolves the period into a date window, filters a snapshot of the
// store by it and computes the derived views. All state lives in the
// repository; the computation itself is a pure function of the snapshot.
func (s *analyticsServiceImpl) Aggregate(ctx context.Context, period domain.Period, referenceDate time.Time, customStart, customEnd string) (*domain.AnalyticsReport, error) {
	dateRange, err := ResolvePeriod(period, referenceDate, customStart, customEnd)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve period",
			slog.String("period", string(period)),
			slog.String("custom_start", customStart),
			slog.String("custom_end", customEnd))
		return nil, err
	}

	txns, err := s.txnRepo.AllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for aggregation")
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	report := aggregate(txns, dateRange)

	s.LogInfo(ctx, "Analytics report generated",
		slog.String("period", string(period)),
		slog.Bool("has_data", report.HasData),
		slog.Int("total_transactions", len(txns)))
	return report, nil
}

type dailyKey struct {
	date time.Time
	typ  domain.TransactionType
}

type matrixKey struct {
	category string
	typ      domain.TransactionType
}

// aggregate computes every derived view from one filtered snapshot, so the
// views are mutually consistent for a single call.
func aggregate(txns []domain.Transaction, dateRange domain.DateRange) *domain.AnalyticsReport {
	var filtered []domain.Transaction
	for _, txn := range txns {
		if dateRange.Contains(txn.Date) {
			filtered = append(filtered, txn)
		}
	}

	if len(filtered) == 0 {
		return &domain.AnalyticsReport{Range: dateRange, HasData: false}
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	expenseByCategory := make(map[string]decimal.Decimal)
	incomeByCategory := make(map[string]decimal.Decimal)
	daily := make(map[dailyKey]decimal.Decimal)
	matrix := make(map[matrixKey]decimal.Decimal)

	for _, txn := range filtered {
		switch txn.Type {
		case domain.Income:
			totalIncome = totalIncome.Add(txn.Amount)
			incomeByCategory[txn.Category] = incomeByCategory[txn.Category].Add(txn.Amount)
		case domain.Expense:
			totalExpenses = totalExpenses.Add(txn.Amount)
			expenseByCategory[txn.Category] = expenseByCategory[txn.Category].Add(txn.Amount)
		}
		dk := dailyKey{date: txn.Date, typ: txn.Type}
		daily[dk] = daily[dk].Add(txn.Amount)
		mk := matrixKey{category: txn.Category, typ: txn.Type}
		matrix[mk] = matrix[mk].Add(txn.Amount)
	}

	report := &domain.AnalyticsReport{
		Range:   dateRange,
		HasData: true,
		Summary: &domain.Summary{
			TotalIncome:      totalIncome,
			TotalExpenses:    totalExpenses,
			NetBalance:       totalIncome.Sub(totalExpenses),
			TransactionCount: len(filtered),
		},
		ExpenseByCategory: categoryTotals(expenseByCategory),
		IncomeByCategory:  categoryTotals(incomeByCategory),
		DailySeries:       dailySeries(daily),
		CategoryMatrix:    categoryMatrix(matrix),
	}
	return report
}

// categoryTotals flattens a per-category accumulator, sorted by label for a
// stable display order. Categories without transactions are simply absent.
func categoryTotals(sums map[string]decimal.Decimal) []domain.CategoryTotal {
	out := make([]domain.CategoryTotal, 0, len(sums))
	for category, amount := range sums {
		out = append(out, domain.CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}

func dailySeries(sums map[dailyKey]decimal.Decimal) []domain.DailyPoint {
	out := make([]domain.DailyPoint, 0, len(sums))
	for key, amount := range sums {
		out = append(out, domain.DailyPoint{Date: key.date, Type: key.typ, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Type < out[j].Type
	})
	return out
}

func categoryMatrix(sums map[matrixKey]decimal.Decimal) []domain.CategoryTypeTotal {
	out := make([]domain.CategoryTypeTotal, 0, len(sums))
	for key, amount := range sums {
		out = append(out, domain.CategoryTypeTotal{Category: key.category, Type: key.typ, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Type < out[j].Type
	})
	return out
}
