package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AppariLavanya/inventory-management-system/internal/service"
	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

// AnalyticsHandler handles analytics HTTP endpoints.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler constructs an AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSummary returns the full analytics summary.
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.analyticsService.Summary()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to compute analytics summary")
		return
	}

	utils.Success(c, 200, "Analytics summary retrieved successfully", summary)
}

// GetDailySales returns the daily sales trend.
func (h *AnalyticsHandler) GetDailySales(c *gin.Context) {
	sales, err := h.analyticsService.DailySales()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to compute daily sales")
		return
	}

	utils.Success(c, 200, "Daily sales retrieved successfully", gin.H{
		"sales": sales,
	})
}

// GetLowStockSummary returns the permissive low-stock view used by
// dashboards.
func (h *AnalyticsHandler) GetLowStockSummary(c *gin.Context) {
	p := query(c)
	threshold := p.intDefault("threshold", 5)
	if err := p.Err(); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		return
	}

	summary, err := h.analyticsService.LowStockSummary(threshold)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to compute low stock summary")
		return
	}

	utils.Success(c, 200, "Low stock summary retrieved successfully", summary)
}
