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

// CrewController handles club crew calls and applications
type CrewController struct {
	crewService services.CrewService
}

// NewCrewController creates a new CrewController
func NewCrewController(crewService services.CrewService) *CrewController {
	return &CrewController{
		crewService: crewService,
	}
}

// ListCrewCalls godoc
// @Summary List crew calls
// @Description Calls newest first, optionally filtered by status. Each call carries its applicant IDs and whether the viewer has applied.
// @Tags crew-calls
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(open, closed)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.CrewCallResponse}}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /crew-calls [get]
func (c *CrewController) ListCrewCalls(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)

	var status *models.CrewCallStatus
	if statusStr := ctx.Query("status"); statusStr != "" {
		s := models.CrewCallStatus(statusStr)
		if s != models.CrewCallStatusOpen && s != models.CrewCallStatusClosed {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Status must be open or closed")))
			return
		}
		status = &s
	}

	calls, err := c.crewService.List(ctx, userID, status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(calls))
}

// CreateCrewCall godoc
// @Summary Post a crew call
// @Tags crew-calls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCrewCallRequest true "Crew call details"
// @Success 201 {object} dto.APIResponse{data=dto.CrewCallResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /crew-calls [post]
func (c *CrewController) CreateCrewCall(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCrewCallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	call, err := c.crewService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(call))
}

// UpdateCrewCall godoc
// @Summary Edit a crew call
// @Description Only the owner can edit a call. Status changes go through the status endpoint.
// @Tags crew-calls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Crew call ID"
// @Param request body dto.UpdateCrewCallRequest true "Updated call details"
// @Success 200 {object} dto.APIResponse{data=dto.CrewCallResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not the owner"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Crew call not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /crew-calls/{id} [put]
func (c *CrewController) UpdateCrewCall(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	callID, ok := parseIDParam(ctx, "id", "crew call ID")
	if !ok {
		return
	}

	var req dto.UpdateCrewCallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	call, err := c.crewService.Update(ctx, userID, callID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(call))
}

// UpdateCrewCallStatus godoc
// @Summary Open or close a crew call
// @Description Only the owner can change a call's status. Closed calls reject new applications.
// @Tags crew-calls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Crew call ID"
// @Param request body dto.UpdateCrewStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.CrewCallResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not the owner"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Crew call not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /crew-calls/{id}/status [patch]
func (c *CrewController) UpdateCrewCallStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	callID, ok := parseIDParam(ctx, "id", "crew call ID")
	if !ok {
		return
	}

	var req dto.UpdateCrewStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	call, err := c.crewService.UpdateStatus(ctx, userID, callID, models.CrewCallStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(call))
}

// DeleteCrewCall godoc
// @Summary Delete a crew call
// @Description Only the owner can delete a call
// @Tags crew-calls
// @Produce json
// @Security BearerAuth
// @Param id path int true "Crew call ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not the owner"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Crew call not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /crew-calls/{id} [delete]
func (c *CrewController) DeleteCrewCall(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	callID, ok := parseIDParam(ctx, "id", "crew call ID")
	if !ok {
		return
	}

	if err := c.crewService.Delete(ctx, userID, callID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Crew call deleted successfully"}))
}

// ApplyToCrewCall godoc
// @Summary Apply to a crew call
// @Description Submits an application and delivers it to the poster as a structured chat message. One application per call per user.
// @Tags crew-calls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Crew call ID"
// @Param request body dto.ApplyCrewRequest true "Application details"
// @Success 201 {object} dto.APIResponse{data=dto.CrewApplicationResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid request, closed call or applying to own call"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Crew call not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already applied"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /crew-calls/{id}/apply [post]
func (c *CrewController) ApplyToCrewCall(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	callID, ok := parseIDParam(ctx, "id", "crew call ID")
	if !ok {
		return
	}

	var req dto.ApplyCrewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	application, err := c.crewService.Apply(ctx, userID, callID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(application))
}

// ListApplications godoc
// @Summary List applications for a crew call
// @Description Only the owner can view a call's applications
// @Tags crew-calls
// @Produce json
// @Security BearerAuth
// @Param id path int true "Crew call ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CrewApplicationResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not the owner"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Crew call not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /crew-calls/{id}/applications [get]
func (c *CrewController) ListApplications(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	callID, ok := parseIDParam(ctx, "id", "crew call ID")
	if !ok {
		return
	}

	applications, err := c.crewService.ListApplications(ctx, userID, callID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applications))
}
