package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fintrk/expense_tracker_app/internal/apperrors"
	"github.com/fintrk/expense_tracker_app/internal/core/domain"
	portssvc "github.com/fintrk/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrk/expense_tracker_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.AnalyticsSvcFacade
	ctx      context.Context
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockTransactionRepository)
	s.service = services.NewAnalyticsService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *AnalyticsServiceTestSuite) date(value string) time.Time {
	d, err := time.Parse(domain.DateFormat, value)
	s.Require().NoError(err)
	return d
}

func (s *AnalyticsServiceTestSuite) txn(id int64, txnType domain.TransactionType, category string, amount int64, date string) domain.Transaction {
	return domain.Transaction{
		ID:        id,
		Type:      txnType,
		Category:  category,
		Amount:    decimal.NewFromInt(amount),
		Date:      s.date(date),
		CreatedAt: s.date(date),
	}
}

func (s *AnalyticsServiceTestSuite) TestAggregate_EmptyStore() {
	s.mockRepo.On("AllTransactions", s.ctx).Return([]domain.Transaction{}, nil).Once()

	report, err := s.service.Aggregate(s.ctx, domain.PeriodThisMonth, s.date("2024-03-15"), "", "")

	s.Require().NoError(err)
	s.False(report.HasData)
	s.Nil(report.Summary)
	s.Empty(report.ExpenseByCategory)
	s.Empty(report.IncomeByCategory)
	s.Empty(report.DailySeries)
	s.Empty(report.CategoryMatrix)
}

func (s *AnalyticsServiceTestSuite) TestAggregate_ThisMonthSummary() {
	s.mockRepo.On("AllTransactions", s.ctx).Return([]domain.Transaction{
		s.txn(1, domain.Expense, "Food & Dining", 50, "2024-03-10"),
		s.txn(2, domain.Income, "Salary", 1000, "2024-03-01"),
	}, nil).Once()

	report, err := s.service.Aggregate(s.ctx, domain.PeriodThisMonth, s.date("2024-03-15"), "", "")

	s.Require().NoError(err)
	s.True(report.HasData)
	s.Require().NotNil(report.Summary)
	s.True(report.Summary.TotalIncome.Equal(decimal.NewFromInt(1000)))
	s.True(report.Summary.TotalExpenses.Equal(decimal.NewFromInt(50)))
	s.True(report.Summary.NetBalance.Equal(decimal.NewFromInt(950)))
	s.Equal(2, report.Summary.TransactionCount)
}

func (s *AnalyticsServiceTestSuite) TestAggregate_FiltersByWindow() {
	s.mockRepo.On("AllTransactions", s.ctx).Return([]domain.Transaction{
		s.txn(1, domain.Expense, "Travel", 200, "2024-02-28"), // before the window
		s.txn(2, domain.Expense, "Shopping", 80, "2024-03-05"),
	}, nil).Once()

	report, err := s.service.Aggregate(s.ctx, domain.PeriodThisMonth, s.date("2024-03-15"), "", "")

	s.Require().NoError(err)
	s.Require().NotNil(report.Summary)
	s.Equal(1, report.Summary.TransactionCount)
	s.True(report.Summary.TotalExpenses.Equal(decimal.NewFromInt(80)))
}

func (s *AnalyticsServiceTestSuite) TestAggregate_LowerBoundOnlyAdmitsFutureDates() {
	// Named periods never cap the upper end, so a future-dated record shows
	// up in "This Week" even when dated next month.
	s.mockRepo.On("AllTransactions", s.ctx).Return([]domain.Transaction{
		s.txn(1, domain.Expense, "Travel", 300, "2024-04-20"),
	}, nil).Once()

	report, err := s.service.Aggregate(s.ctx, domain.PeriodThisWeek, s.date("2024-03-15"), "", "")

	s.Require().NoError(err)
	s.True(report.HasData)
	s.Equal(1, report.Summary.TransactionCount)
}

func (s *AnalyticsServiceTestSuite) TestAggregate_TodayMatchesExactDate() {
	s.mockRepo.On("AllTransactions", s.ctx).Return([]domain.Transaction{
		s.txn(1, domain.Expense, "Shopping", 80, "2024-03-14"),
		s.txn(2, domain.Expense, "Shopping", 25, "2024-03-15"),
		s.txn(3, domain.Expense, "Shopping", 60, "2024-03-16"),
	}, nil).Once()

	report, err := s.service.Aggregate(s.ctx, domain.PeriodToday, s.date("2024-03-15"), "", "")

	s.Require().NoError(err)
	s.Equal(1, report.Summary.TransactionCount)
	s.True(report.Summary.TotalExpenses.Equal(decimal.NewFromInt(25)))
}

func (s *AnalyticsServiceTestSuite) TestAggregate_GroupsCategoriesWithinType() {
	s.mockRepo.On("AllTransactions", s.ctx).Return([]domain.Transaction{
		s.txn(1, domain.Expense, "Transportation", 20, "2024-03-10"),
		s.txn(2, domain.Expense, "Transportation", 30, "2024-03-10"),
	}, nil).Once()

	report, err := s.service.Aggregate(s.ctx, domain.PeriodThisMonth, s.date("2024-03-15"), "", "")

	s.Require().NoError(err)
	s.Require().Len(report.ExpenseByCategory, 1)
	s.Equal("Transportation", report.ExpenseByCategory[0].Category)
	s.True(report.ExpenseByCategory[0].Amount.Equal(decimal.NewFromInt(50)))
	s.Empty(report.IncomeByCategory)

	// Same pair collapses to one daily point and one matrix cell.
	s.Require().Len(report.DailySeries, 1)
	s.True(report.DailySeries[0].Amount.Equal(decimal.NewFromInt(50)))
	s.Require().Len(report.CategoryMatrix, 1)
	s.Equal(domain.Expense, report.CategoryMatrix[0].Type)
	s.True(report.CategoryMatrix[0].Amount.Equal(decimal.NewFromInt(50)))
}

func (s *AnalyticsServiceTestSuite) TestAggregate_CategoryTotalsConservation() {
	s.mockRepo.On("AllTransactions", s.ctx).Return([]domain.Transaction{
		s.txn(1, domain.Expense, "Food & Dining", 50, "2024-03-02"),
		s.txn(2, domain.Expense, "Transportation", 20, "2024-03-03"),
		s.txn(3, domain.Expense, "Entertainment", 35, "2024-03-04"),
		s.txn(4, domain.Income, "Salary", 1000, "2024-03-01"),
		s.txn(5, domain.Income, "Freelance", 250, "2024-03-08"),
	}, nil).Once()

	report, err := s.service.Aggregate(s.ctx, domain.PeriodThisMonth, s.date("2024-03-15"), "", "")

	s.Require().NoError(err)

	expenseSum := decimal.Zero
	for _, ct := range report.ExpenseByCategory {
		expenseSum = expenseSum.Add(ct.Amount)
	}
	s.True(expenseSum.Equal(report.Summary.TotalExpenses))

	incomeSum := decimal.Zero
	for _, ct := range report.IncomeByCategory {
		incomeSum = incomeSum.Add(ct.Amount)
	}
	s.True(incomeSum.Equal(report.Summary.TotalIncome))

	s.True(report.Summary.NetBalance.Equal(report.Summary.TotalIncome.Sub(report.Summary.TotalExpenses)))
}

func (s *AnalyticsServiceTestSuite) TestAggregate_DailySeriesSplitsByType() {
	s.mockRepo.On("AllTransactions", s.ctx).Return([]domain.Transaction{
		s.txn(1, domain.Expense, "Shopping", 40, "2024-03-10"),
		s.txn(2, domain.Income, "Gifts", 100, "2024-03-10"),
		s.txn(3, domain.Expense, "Shopping", 10, "2024-03-12"),
	}, nil).Once()

	report, err := s.service.Aggregate(s.ctx, domain.PeriodThisMonth, s.date("2024-03-15"), "", "")

	s.Require().NoError(err)
	s.Require().Len(report.DailySeries, 3)
	// Sorted by date, then type; no interpolation of the gap on 2024-03-11.
	s.Equal(s.date("2024-03-10"), report.DailySeries[0].Date)
	s.Equal(domain.Expense, report.DailySeries[0].Type)
	s.Equal(s.date("2024-03-10"), report.DailySeries[1].Date)
	s.Equal(domain.Income, report.DailySeries[1].Type)
	s.Equal(s.date("2024-03-12"), report.DailySeries[2].Date)
}

func (s *AnalyticsServiceTestSuite) TestAggregate_CategoryMatrixPairsCategoryAndType() {
	s.mockRepo.On("AllTransactions", s.ctx).Return([]domain.Transaction{
		s.txn(1, domain.Expense, "Other", 40, "2024-03-10"),
		s.txn(2, domain.Income, "Other", 100, "2024-03-11"),
	}, nil).Once()

	report, err := s.service.Aggregate(s.ctx, domain.PeriodThisMonth, s.date("2024-03-15"), "", "")

	s.Require().NoError(err)
	// "Other" exists in both fixed lists, so the matrix keeps two cells.
	s.Require().Len(report.CategoryMatrix, 2)
	s.Equal(domain.Expense, report.CategoryMatrix[0].Type)
	s.True(report.CategoryMatrix[0].Amount.Equal(decimal.NewFromInt(40)))
	s.Equal(domain.Income, report.CategoryMatrix[1].Type)
	s.True(report.CategoryMatrix[1].Amount.Equal(decimal.NewFromInt(100)))
}

func (s *AnalyticsServiceTestSuite) TestAggregate_CustomRangeMissingBoundIncludesEverything() {
	s.mockRepo.On("AllTransactions", s.ctx).Return([]domain.Transaction{
		s.txn(1, domain.Expense, "Travel", 200, "2020-01-01"),
		s.txn(2, domain.Income, "Salary", 1000, "2030-12-31"),
	}, nil).Once()

	report, err := s.service.Aggregate(s.ctx, domain.PeriodCustomRange, s.date("2024-03-15"), "2024-03-01", "")

	s.Require().NoError(err)
	s.Equal(2, report.Summary.TransactionCount)
}

func (s *AnalyticsServiceTestSuite) TestAggregate_CustomRangeBounded() {
	s.mockRepo.On("AllTransactions", s.ctx).Return([]domain.Transaction{
		s.txn(1, domain.Expense, "Travel", 200, "2024-02-28"),
		s.txn(2, domain.Expense, "Shopping", 80, "2024-03-05"),
		s.txn(3, domain.Expense, "Shopping", 90, "2024-04-02"),
	}, nil).Once()

	report, err := s.service.Aggregate(s.ctx, domain.PeriodCustomRange, s.date("2024-06-01"), "2024-03-01", "2024-03-31")

	s.Require().NoError(err)
	s.Equal(1, report.Summary.TransactionCount)
	s.True(report.Summary.TotalExpenses.Equal(decimal.NewFromInt(80)))
}

func (s *AnalyticsServiceTestSuite) TestAggregate_InvalidCustomBound() {
	report, err := s.service.Aggregate(s.ctx, domain.PeriodCustomRange, s.date("2024-06-01"), "bad-date", "2024-03-31")

	s.Nil(report)
	s.ErrorIs(err, apperrors.ErrInvalidDate)
	s.mockRepo.AssertNotCalled(s.T(), "AllTransactions", s.ctx)
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
