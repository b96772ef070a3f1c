package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates a transaction amount that is missing, non-numeric or not positive.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrMissingCategory indicates a category that is empty or not part of the
// fixed category list for the transaction type.
var ErrMissingCategory = errors.New("missing or unknown category")

// ErrInvalidDate indicates a date string that does not parse as YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// ErrInvalidType indicates a transaction type that is neither Income nor Expense.
var ErrInvalidType = errors.New("invalid transaction type")
