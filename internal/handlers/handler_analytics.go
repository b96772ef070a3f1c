package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fintrk/expense_tracker_app/internal/apperrors"
	"github.com/fintrk/expense_tracker_app/internal/core/domain"
	portssvc "github.com/fintrk/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrk/expense_tracker_app/internal/dto"
	"github.com/fintrk/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// analyticsHandler handles HTTP requests related to time-windowed analytics
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

// newAnalyticsHandler creates a new analyticsHandler
func newAnalyticsHandler(as portssvc.AnalyticsSvcFacade) *analyticsHandler {
	return &analyticsHandler{
		analyticsService: as,
	}
}

// RegisterAnalyticsRoutes registers routes related to analytics
func RegisterAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := newAnalyticsHandler(analyticsService)

	rg.GET("/analytics", h.getAnalytics)
}

// getAnalytics godoc
// @Summary Generate time-windowed analytics
// @Description Resolves the period against the reference date, filters the transaction history and returns summary totals, per-category breakdowns, the daily series and the category comparison matrix
// @Tags analytics
// @Produce json
// @Param period query string false "Period name (Today, This Week, This Month, This Year, Custom Range)" default(This Month)
// @Param referenceDate query string false "Reference date (YYYY-MM-DD)" default(current date)
// @Param startDate query string false "Custom range start (YYYY-MM-DD)"
// @Param endDate query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate analytics"
// @Router /analytics [get]
func (h *analyticsHandler) getAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period := domain.Period(c.DefaultQuery("period", string(domain.PeriodThisMonth)))

	refStr := c.DefaultQuery("referenceDate", time.Now().Format(domain.DateFormat))
	referenceDate, err := time.Parse(domain.DateFormat, refStr)
	if err != nil {
		logger.Warn("Invalid referenceDate format", slog.String("referenceDate", refStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid referenceDate format. Use YYYY-MM-DD"})
		return
	}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	logger = logger.With(
		slog.String("period", string(period)),
		slog.String("referenceDate", refStr),
	)
	logger.Info("Received request to generate analytics")

	report, err := h.analyticsService.Aggregate(c.Request.Context(), period, referenceDate, startDate, endDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDate) {
			logger.Warn("Invalid custom range bound", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate analytics", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate analytics"})
		}
		return
	}

	response := dto.ToAnalyticsResponse(report, period)

	logger.Info("Analytics generated successfully", slog.Bool("no_data", response.NoData))
	c.JSON(http.StatusOK, response)
}
