package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fintrk/expense_tracker_app/internal/apperrors"
	"github.com/fintrk/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrk/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrk/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrk/expense_tracker_app/internal/dto"
)

// DefaultRecentLimit caps the recent-transactions view when the caller does
// not supply a limit.
const DefaultRecentLimit = 10

// transactionServiceImpl implements the TransactionSvcFacade interface
type transactionServiceImpl struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
	now     func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionServiceImpl)

// WithClock overrides the wall clock used to stamp CreatedAt. Intended for tests.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionServiceImpl) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepository, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionServiceImpl{
		txnRepo: repo,
		now:     time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure transactionServiceImpl implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionServiceImpl)(nil)

// CreateTransaction validates the request against the domain rules and appends
// a new record to the store. On any validation failure the store is left
// unmodified; no partial writes occur.
func (s *transactionServiceImpl) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Type.IsValid() {
		err := fmt.Errorf("%w: %q", apperrors.ErrInvalidType, req.Type)
		s.LogDebug(ctx, "Rejected transaction with unknown type", slog.String("type", string(req.Type)))
		return nil, err
	}

	if !req.Amount.IsPositive() {
		err := fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrInvalidAmount)
		s.LogDebug(ctx, "Rejected transaction with non-positive amount", slog.String("amount", req.Amount.String()))
		return nil, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrMissingCategory)
	}
	if !domain.IsValidCategory(req.Type, category) {
		err := fmt.Errorf("%w: %q is not a valid %s category", apperrors.ErrMissingCategory, category, req.Type)
		s.LogDebug(ctx, "Rejected transaction with off-list category",
			slog.String("type", string(req.Type)),
			slog.String("category", category))
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrInvalidDate)
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = domain.DefaultDescription
	}

	txn := domain.Transaction{
		Type:        req.Type,
		Category:    category,
		Amount:      req.Amount,
		Description: description,
		Date:        date,
		CreatedAt:   s.now(),
	}

	created, err := s.txnRepo.AppendTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to append transaction")
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.Int64("transaction_id", created.ID),
		slog.String("type", string(created.Type)),
		slog.String("category", created.Category),
		slog.String("amount", created.Amount.StringFixed(2)),
		slog.String("date", created.Date.Format(domain.DateFormat)))
	return created, nil
}

// RecentTransactions returns the most recently inserted records, newest first.
// A non-positive limit falls back to DefaultRecentLimit.
func (s *transactionServiceImpl) RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	txns, err := s.txnRepo.RecentTransactions(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent transactions", slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	return txns, nil
}

// ListTransactions returns a snapshot of the full transaction history.
func (s *transactionServiceImpl) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.AllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
