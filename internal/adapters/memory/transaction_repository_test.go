package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/fintrk/expense_tracker_app/internal/adapters/memory"
	"github.com/fintrk/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTxn(txnType domain.TransactionType, amount int64, createdAt time.Time) domain.Transaction {
	return domain.Transaction{
		Type:      txnType,
		Category:  "Other",
		Amount:    decimal.NewFromInt(amount),
		Date:      time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt: createdAt,
	}
}

func TestAppendTransaction_AssignsSequentialIDs(t *testing.T) {
	repo := memory.NewTransactionRepository()
	ctx := context.Background()
	now := time.Now()

	first, err := repo.AppendTransaction(ctx, newTxn(domain.Expense, 10, now))
	require.NoError(t, err)
	second, err := repo.AppendTransaction(ctx, newTxn(domain.Income, 20, now))
	require.NoError(t, err)
	third, err := repo.AppendTransaction(ctx, newTxn(domain.Expense, 30, now))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, int64(3), third.ID)

	all, err := repo.AllTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRecentTransactions_OrdersByInsertionRecency(t *testing.T) {
	repo := memory.NewTransactionRepository()
	ctx := context.Background()
	base := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	// Insertion order deliberately disagrees with CreatedAt for the first
	// two records; the view must follow CreatedAt, not the asserted date.
	_, err := repo.AppendTransaction(ctx, newTxn(domain.Expense, 10, base.Add(2*time.Minute)))
	require.NoError(t, err)
	_, err = repo.AppendTransaction(ctx, newTxn(domain.Expense, 20, base.Add(1*time.Minute)))
	require.NoError(t, err)
	_, err = repo.AppendTransaction(ctx, newTxn(domain.Expense, 30, base.Add(3*time.Minute)))
	require.NoError(t, err)

	recent, err := repo.RecentTransactions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, int64(3), recent[0].ID)
	assert.Equal(t, int64(1), recent[1].ID)
	assert.Equal(t, int64(2), recent[2].ID)
}

func TestRecentTransactions_BreaksCreatedAtTiesByID(t *testing.T) {
	repo := memory.NewTransactionRepository()
	ctx := context.Background()
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := repo.AppendTransaction(ctx, newTxn(domain.Expense, 10, now))
		require.NoError(t, err)
	}

	recent, err := repo.RecentTransactions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, int64(3), recent[0].ID)
	assert.Equal(t, int64(2), recent[1].ID)
	assert.Equal(t, int64(1), recent[2].ID)
}

func TestRecentTransactions_TruncatesToLimit(t *testing.T) {
	repo := memory.NewTransactionRepository()
	ctx := context.Background()
	base := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 15; i++ {
		_, err := repo.AppendTransaction(ctx, newTxn(domain.Expense, 10, base.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}

	recent, err := repo.RecentTransactions(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 10)
	assert.Equal(t, int64(15), recent[0].ID)
}

func TestAllTransactions_ReturnsIsolatedSnapshot(t *testing.T) {
	repo := memory.NewTransactionRepository()
	ctx := context.Background()

	_, err := repo.AppendTransaction(ctx, newTxn(domain.Expense, 10, time.Now()))
	require.NoError(t, err)

	snapshot, err := repo.AllTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	// Mutating the snapshot must not leak back into the store.
	snapshot[0].Category = "Tampered"

	fresh, err := repo.AllTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Other", fresh[0].Category)
}
