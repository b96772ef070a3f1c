package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fintrk/expense_tracker_app/internal/core/domain"
	"github.com/fintrk/expense_tracker_app/internal/dto"
	"github.com/fintrk/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the category enumeration route.
// The two fixed lists are part of the public contract: selection controls
// must be repopulated from exactly this list when the type changes.
func RegisterCategoryRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", getCategories)
}

// getCategories godoc
// @Summary List categories for a transaction type
// @Description Returns the fixed category list for Income or Expense
// @Tags categories
// @Produce json
// @Param type query string true "Transaction type (Income or Expense)"
// @Success 200 {object} dto.CategoryListResponse
// @Failure 400 {object} map[string]string "Invalid type"
// @Router /categories [get]
func getCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txnType := domain.TransactionType(c.Query("type"))
	if !txnType.IsValid() {
		logger.Warn("Invalid category type requested", slog.String("type", string(txnType)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be Income or Expense"})
		return
	}

	c.JSON(http.StatusOK, dto.CategoryListResponse{
		Type:       string(txnType),
		Categories: domain.CategoriesFor(txnType),
	})
}
