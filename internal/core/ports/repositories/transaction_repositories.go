package repositories

import (
	"context"

	"github.com/fintrk/expense_tracker_app/internal/core/domain"
)

// TransactionRepository defines persistence operations for transaction records.
// The store is append-only: no update or delete operation exists.
type TransactionRepository interface {
	// AppendTransaction assigns the next sequential ID, stores the record and
	// returns it. The input's ID field is ignored.
	AppendTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// RecentTransactions returns up to limit records ordered by insertion
	// recency (CreatedAt descending, ties broken by ID descending).
	RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)

	// AllTransactions returns a snapshot of every stored record. Callers must
	// not assume a live view.
	AllTransactions(ctx context.Context) ([]domain.Transaction, error)
}
