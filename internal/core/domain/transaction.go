package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is an Income or an Expense.
type TransactionType string

const (
	Income  TransactionType = "Income"
	Expense TransactionType = "Expense"
)

// IsValid reports whether the type is one of the two supported values.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// DateFormat is the literal date layout used at every boundary of the system.
const DateFormat = "2006-01-02"

// DefaultDescription is stored when the caller omits a description.
const DefaultDescription = "No description"

// Transaction represents a single recorded income or expense event.
// Records are immutable once created; the store is append-only.
type Transaction struct {
	ID          int64           `json:"id"`          // Sequential, strictly increasing with insertion order
	Type        TransactionType `json:"type"`        // Income or Expense (Not Null)
	Category    string          `json:"category"`    // Member of the fixed list for Type (Not Null)
	Amount      decimal.Decimal `json:"amount"`      // Positive value; precise decimal type
	Description string          `json:"description"` // Defaults to DefaultDescription
	Date        time.Time       `json:"date"`        // Calendar date (midnight UTC), user-asserted
	CreatedAt   time.Time       `json:"createdAt"`   // Insertion timestamp; recency ordering only
}
