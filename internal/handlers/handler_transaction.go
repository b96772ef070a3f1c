package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fintrk/expense_tracker_app/internal/apperrors"
	portssvc "github.com/fintrk/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrk/expense_tracker_app/internal/core/services"
	"github.com/fintrk/expense_tracker_app/internal/dto"
	"github.com/fintrk/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// transactionHandler handles HTTP requests related to transactions
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	recentLimit        int
}

// newTransactionHandler creates a new transactionHandler
func newTransactionHandler(ts portssvc.TransactionSvcFacade, recentLimit int) *transactionHandler {
	if recentLimit <= 0 {
		recentLimit = services.DefaultRecentLimit
	}
	return &transactionHandler{
		transactionService: ts,
		recentLimit:        recentLimit,
	}
}

// RegisterTransactionRoutes registers routes related to transactions
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, recentLimit int) {
	h := newTransactionHandler(transactionService, recentLimit)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/recent", h.recentTransactions)
	}
}

// createTransaction godoc
// @Summary Record a new transaction
// @Description Validates and appends an income or expense event; returns the created record plus the refreshed recent-transactions view
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CreateTransactionResponse
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 500 {object} map[string]string "Failed to store transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid transaction payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	created, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidAmount) ||
			errors.Is(err, apperrors.ErrMissingCategory) ||
			errors.Is(err, apperrors.ErrInvalidDate) ||
			errors.Is(err, apperrors.ErrInvalidType) {
			logger.Warn("Transaction rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	recent, err := h.transactionService.RecentTransactions(c.Request.Context(), h.recentLimit)
	if err != nil {
		logger.Error("Failed to refresh recent transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recent transactions"})
		return
	}

	response := dto.CreateTransactionResponse{
		Message:            dto.CreationMessage(*created),
		Transaction:        dto.ToTransactionResponse(*created),
		RecentTransactions: dto.ToTransactionResponses(recent),
	}

	logger.Info("Transaction created", slog.Int64("transaction_id", created.ID))
	c.JSON(http.StatusCreated, response)
}

// listTransactions godoc
// @Summary List all transactions
// @Description Returns a snapshot of the full transaction history in insertion order
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
	})
}

// recentTransactions godoc
// @Summary List recent transactions
// @Description Returns the most recently inserted transactions, newest first
// @Tags transactions
// @Produce json
// @Param limit query int false "Maximum number of records" default(10)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Failed to list recent transactions"
// @Router /transactions/recent [get]
func (h *transactionHandler) recentTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := h.recentLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			logger.Warn("Invalid limit parameter", slog.String("limit", limitStr))
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	txns, err := h.transactionService.RecentTransactions(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list recent transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recent transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
	})
}

// bindingErrorMessage turns a gin binding failure into the user-facing
// validation message for the first offending field.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Type":
				return "Transaction type must be Income or Expense"
			case "Category":
				return "Please select a category"
			case "Amount":
				return "Please enter a valid amount"
			case "Date":
				return "Please enter date in YYYY-MM-DD format"
			}
		}
	}
	return "Invalid request payload"
}
