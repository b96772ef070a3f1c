package domain

import "slices"

// ExpenseCategories is the fixed category list for Expense transactions.
var ExpenseCategories = []string{
	"Food & Dining", "Transportation", "Shopping", "Entertainment",
	"Bills & Utilities", "Healthcare", "Travel", "Education",
	"Personal Care", "Home & Garden", "Other",
}

// IncomeCategories is the fixed category list for Income transactions.
var IncomeCategories = []string{
	"Salary", "Freelance", "Business", "Investments",
	"Rental Income", "Gifts", "Other",
}

// CategoriesFor returns a copy of the fixed category list for the given type.
// The two lists are part of the public contract: selection controls must be
// repopulated from exactly this list whenever the transaction type changes.
func CategoriesFor(t TransactionType) []string {
	switch t {
	case Income:
		return slices.Clone(IncomeCategories)
	case Expense:
		return slices.Clone(ExpenseCategories)
	default:
		return nil
	}
}

// IsValidCategory reports whether category belongs to the fixed list for t.
func IsValidCategory(t TransactionType, category string) bool {
	switch t {
	case Income:
		return slices.Contains(IncomeCategories, category)
	case Expense:
		return slices.Contains(ExpenseCategories, category)
	default:
		return false
	}
}
