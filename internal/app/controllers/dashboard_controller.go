package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/app/services"
	"github.com/thequad/api/internal/middleware"
)

// DashboardController handles the aggregated home feed
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetStats godoc
// @Summary Get board activity counters
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStatsResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /dashboard/stats [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.dashboardService.Stats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// GetFeed godoc
// @Summary Get the combined activity feed
// @Description Recent entries from every board merged into one reverse chronological feed
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardFeedResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /dashboard/feed [get]
func (c *DashboardController) GetFeed(ctx *gin.Context) {
	feed, err := c.dashboardService.Feed(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(feed))
}
