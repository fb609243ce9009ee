package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thequad/api/internal/app/models"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/app/services"
	"github.com/thequad/api/internal/middleware"
	"github.com/thequad/api/internal/pkg/helpers"
)

// AlertController handles campus alert announcements
type AlertController struct {
	alertService services.AlertService
}

// NewAlertController creates a new AlertController
func NewAlertController(alertService services.AlertService) *AlertController {
	return &AlertController{
		alertService: alertService,
	}
}

// ListAlerts godoc
// @Summary List campus alerts
// @Description Alerts newest first, optionally filtered by type
// @Tags alerts
// @Produce json
// @Security BearerAuth
// @Param type query string false "Filter by type" Enums(event, exam, deadline, emergency, general)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.AlertResponse}}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /alerts [get]
func (c *AlertController) ListAlerts(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var alertType *models.AlertType
	if typeStr := ctx.Query("type"); typeStr != "" {
		t := models.AlertType(typeStr)
		if !models.ValidAlertType(t) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Unknown alert type")))
			return
		}
		alertType = &t
	}

	alerts, err := c.alertService.List(ctx, alertType, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(alerts))
}

// CreateAlert godoc
// @Summary Post a campus alert
// @Tags alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAlertRequest true "Alert details"
// @Success 201 {object} dto.APIResponse{data=dto.AlertResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /alerts [post]
func (c *AlertController) CreateAlert(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateAlertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	alert, err := c.alertService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(alert))
}

// DeleteAlert godoc
// @Summary Delete an alert
// @Description Only the author can delete an alert
// @Tags alerts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alert ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not the author"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Alert not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /alerts/{id} [delete]
func (c *AlertController) DeleteAlert(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	alertID, ok := parseIDParam(ctx, "id", "alert ID")
	if !ok {
		return
	}

	if err := c.alertService.Delete(ctx, userID, alertID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Alert deleted successfully"}))
}
