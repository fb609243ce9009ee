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

// LostFoundController handles the lost and found board
type LostFoundController struct {
	lostFoundService services.LostFoundService
}

// NewLostFoundController creates a new LostFoundController
func NewLostFoundController(lostFoundService services.LostFoundService) *LostFoundController {
	return &LostFoundController{
		lostFoundService: lostFoundService,
	}
}

// ListItems godoc
// @Summary List lost and found items
// @Description Items newest first, optionally filtered to lost or found
// @Tags lost-found
// @Produce json
// @Security BearerAuth
// @Param type query string false "Filter by type" Enums(lost, found)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.LostItemResponse}}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /lost-items [get]
func (c *LostFoundController) ListItems(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var itemType *models.LostItemType
	if typeStr := ctx.Query("type"); typeStr != "" {
		t := models.LostItemType(typeStr)
		if t != models.LostItemTypeLost && t != models.LostItemTypeFound {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Type must be lost or found")))
			return
		}
		itemType = &t
	}

	items, err := c.lostFoundService.List(ctx, itemType, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

// CreateItem godoc
// @Summary Report a lost or found item
// @Tags lost-found
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLostItemRequest true "Item details"
// @Success 201 {object} dto.APIResponse{data=dto.LostItemResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /lost-items [post]
func (c *LostFoundController) CreateItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateLostItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	item, err := c.lostFoundService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item))
}

// DeleteItem godoc
// @Summary Delete an item listing
// @Description Only the owner can delete a listing
// @Tags lost-found
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not the owner"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Item not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /lost-items/{id} [delete]
func (c *LostFoundController) DeleteItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	itemID, ok := parseIDParam(ctx, "id", "item ID")
	if !ok {
		return
	}

	if err := c.lostFoundService.Delete(ctx, userID, itemID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Listing deleted successfully"}))
}
