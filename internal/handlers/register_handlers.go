package handlers

import (
	"log/slog"

	portssvc "github.com/fintrk/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrk/expense_tracker_app/internal/middleware"
	"github.com/fintrk/expense_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Setup API v1 routes
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Apply IP rate limiting to the whole v1 group
	ipLimiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		slog.Warn("Invalid RATE_LIMIT value, rate limiting disabled", slog.String("rate_limit", cfg.RateLimit))
	} else {
		v1.Use(middleware.RateLimit(ipLimiter))
	}

	// Delegate route registration to specific handlers, passing required services
	RegisterCategoryRoutes(v1)
	RegisterTransactionRoutes(v1, services.Transaction, cfg.RecentLimit)
	RegisterAnalyticsRoutes(v1, services.Analytics)
}
