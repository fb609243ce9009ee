package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/app/services"
	"github.com/thequad/api/internal/middleware"
	"github.com/thequad/api/internal/pkg/helpers"
)

// TeamController handles hackathon team posts and join requests
type TeamController struct {
	teamService services.TeamService
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService services.TeamService) *TeamController {
	return &TeamController{
		teamService: teamService,
	}
}

// ListTeams godoc
// @Summary List team posts
// @Description Posts newest first with the viewer's skill match percentage. Search matches title and hackathon name.
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search in title and hackathon name"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.TeamPostResponse}}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /teams [get]
func (c *TeamController) ListTeams(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)

	var search *string
	if s := ctx.Query("search"); s != "" {
		search = &s
	}

	teams, err := c.teamService.List(ctx, userID, search, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teams))
}

// CreateTeam godoc
// @Summary Post a team opening
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeamPostRequest true "Team details"
// @Success 201 {object} dto.APIResponse{data=dto.TeamPostResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /teams [post]
func (c *TeamController) CreateTeam(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTeamPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	team, err := c.teamService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(team))
}

// DeleteTeam godoc
// @Summary Delete a team post
// @Description Only the owner can delete a post
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not the owner"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Team not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /teams/{id} [delete]
func (c *TeamController) DeleteTeam(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	teamID, ok := parseIDParam(ctx, "id", "team ID")
	if !ok {
		return
	}

	if err := c.teamService.Delete(ctx, userID, teamID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Team post deleted successfully"}))
}

// JoinTeam godoc
// @Summary Request to join a team
// @Description Submits a join request and delivers it to the owner as a structured chat message. One request per team per user.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param request body dto.JoinTeamRequest true "Join request details"
// @Success 201 {object} dto.APIResponse{data=dto.TeamJoinRequestResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid request or joining own team"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Team not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already requested"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /teams/{id}/join [post]
func (c *TeamController) JoinTeam(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	teamID, ok := parseIDParam(ctx, "id", "team ID")
	if !ok {
		return
	}

	var req dto.JoinTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	joinRequest, err := c.teamService.Join(ctx, userID, teamID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(joinRequest))
}

// ListJoinRequests godoc
// @Summary List join requests for a team
// @Description Only the owner can view a team's join requests
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.TeamJoinRequestResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not the owner"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Team not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /teams/{id}/requests [get]
func (c *TeamController) ListJoinRequests(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	teamID, ok := parseIDParam(ctx, "id", "team ID")
	if !ok {
		return
	}

	requests, err := c.teamService.ListJoinRequests(ctx, userID, teamID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}
