package services

import (
	"context"

	"github.com/fintrk/expense_tracker_app/internal/core/domain"
	"github.com/fintrk/expense_tracker_app/internal/dto"
)

// TransactionSvcFacade defines operations for recording and listing transactions.
type TransactionSvcFacade interface {
	// CreateTransaction validates the request and appends a new record.
	// On any validation failure the store is left unmodified.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// RecentTransactions returns the most recently inserted records,
	// newest first, truncated to limit.
	RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)

	// ListTransactions returns a snapshot of the full history.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}
