package dto

import (
	"fmt"
	"time"

	"github.com/fintrk/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for recording a new transaction.
// The binding tags reject malformed payloads at the HTTP boundary; the
// transaction service re-validates against the domain rules (positive amount,
// category membership) so direct callers get the same guarantees.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=Income Expense"`
	Category    string                 `json:"category" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Description string                 `json:"description"`
	Date        string                 `json:"date" binding:"required,datetime=2006-01-02"`
}

// TransactionResponse represents a stored transaction in API responses.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreateTransactionResponse echoes a human-readable status message plus the
// refreshed recent-transactions view, mirroring what the input form displays.
type CreateTransactionResponse struct {
	Message            string                `json:"message"`
	Transaction        TransactionResponse   `json:"transaction"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}

// ListTransactionsResponse wraps a snapshot of the transaction history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// CategoryListResponse carries the fixed category list for one transaction type.
type CategoryListResponse struct {
	Type       string   `json:"type"`
	Categories []string `json:"categories"`
}

// ToTransactionResponse converts a domain transaction to a DTO response.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		Type:        string(txn.Type),
		Category:    txn.Category,
		Amount:      txn.Amount,
		Description: txn.Description,
		Date:        txn.Date.Format(domain.DateFormat),
		CreatedAt:   txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = ToTransactionResponse(txn)
	}
	return out
}

// CreationMessage builds the user-facing status string for a stored transaction.
func CreationMessage(txn domain.Transaction) string {
	return fmt.Sprintf("%s of $%s added successfully!", txn.Type, txn.Amount.StringFixed(2))
}
