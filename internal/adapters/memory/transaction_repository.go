package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fintrk/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrk/expense_tracker_app/internal/core/ports/repositories"
)

// TransactionRepository is an append-only in-memory store for transactions.
// History lives for the process lifetime; there is no update or delete.
// A mutex guards the slice because the HTTP layer serves requests
// concurrently, and every read hands out a copy-on-read snapshot.
type TransactionRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  []domain.Transaction
}

// NewTransactionRepository creates an empty store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{nextID: 1}
}

// Ensure TransactionRepository implements the repository interface
var _ portsrepo.TransactionRepository = (*TransactionRepository)(nil)

// AppendTransaction assigns the next sequential ID and stores the record.
// IDs are unique and strictly increasing with insertion order.
func (r *TransactionRepository) AppendTransaction(_ context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn.ID = r.nextID
	r.nextID++
	r.items = append(r.items, txn)

	created := txn
	return &created, nil
}

// RecentTransactions returns up to limit records, most recent insert first.
// Ordering is by CreatedAt descending with ties broken by ID descending, so
// it reflects insertion recency rather than the user-asserted date.
func (r *TransactionRepository) RecentTransactions(_ context.Context, limit int) ([]domain.Transaction, error) {
	r.mu.RLock()
	out := make([]domain.Transaction, len(r.items))
	copy(out, r.items)
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// AllTransactions returns a snapshot of the full history in insertion order.
func (r *TransactionRepository) AllTransactions(_ context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transaction, len(r.items))
	copy(out, r.items)
	return out, nil
}
