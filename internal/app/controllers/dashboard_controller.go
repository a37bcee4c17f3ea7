package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillpoint/institute-backend/internal/app/models/dto"
	"github.com/skillpoint/institute-backend/internal/app/services"
	"github.com/skillpoint/institute-backend/internal/middleware"
)

// DashboardController serves the admin dashboard aggregate
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetStats returns dashboard summary statistics
// @Summary Dashboard statistics
// @Description Returns total students, total certificates and the pending-fee total
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats} "Statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.dashboardService.Stats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}
