package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thequad/api/internal/app/models"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/app/services"
	"github.com/thequad/api/internal/middleware"
	"github.com/thequad/api/internal/pkg/helpers"
)

// MentorshipController handles mentor slots and booking lifecycle
type MentorshipController struct {
	mentorshipService services.MentorshipService
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService services.MentorshipService) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
	}
}

// ListSlots godoc
// @Summary List mentor slots
// @Description Slots newest first, optionally filtered by status
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(available, booked, confirmed, completed)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.MentorSlotResponse}}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /mentorship/slots [get]
func (c *MentorshipController) ListSlots(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var status *models.MentorSlotStatus
	if statusStr := ctx.Query("status"); statusStr != "" {
		s := models.MentorSlotStatus(statusStr)
		switch s {
		case models.MentorSlotAvailable, models.MentorSlotBooked, models.MentorSlotConfirmed, models.MentorSlotCompleted:
			status = &s
		default:
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Unknown slot status")))
			return
		}
	}

	slots, err := c.mentorshipService.List(ctx, status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(slots))
}

// CreateSlot godoc
// @Summary Offer a mentor slot
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorSlotRequest true "Slot details"
// @Success 201 {object} dto.APIResponse{data=dto.MentorSlotResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /mentorship/slots [post]
func (c *MentorshipController) CreateSlot(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateMentorSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	slot, err := c.mentorshipService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(slot))
}

// DeleteSlot godoc
// @Summary Delete a mentor slot
// @Description Only the offering mentor can delete a slot
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not the slot's mentor"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Slot not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /mentorship/slots/{id} [delete]
func (c *MentorshipController) DeleteSlot(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	slotID, ok := parseIDParam(ctx, "id", "slot ID")
	if !ok {
		return
	}

	if err := c.mentorshipService.Delete(ctx, userID, slotID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Slot deleted successfully"}))
}

// MySlots godoc
// @Summary List own mentor slots
// @Description Slots the caller offers as a mentor, including pending booking requests
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MentorSlotResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /mentorship/my-slots [get]
func (c *MentorshipController) MySlots(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	slots, err := c.mentorshipService.MySlots(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(slots))
}

// MyBookings godoc
// @Summary List own bookings
// @Description Slots the caller has booked with a mentor
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MentorSlotResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /mentorship/my-bookings [get]
func (c *MentorshipController) MyBookings(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	slots, err := c.mentorshipService.MyBookings(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(slots))
}

// BookSlot godoc
// @Summary Book a mentor slot
// @Description Books an available slot with a requested duration and time. Booking your own slot is rejected.
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Param request body dto.BookSlotRequest true "Booking details"
// @Success 200 {object} dto.APIResponse{data=dto.MentorSlotResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Slot not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Slot no longer available"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /mentorship/slots/{id}/book [post]
func (c *MentorshipController) BookSlot(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	slotID, ok := parseIDParam(ctx, "id", "slot ID")
	if !ok {
		return
	}

	var req dto.BookSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	slot, err := c.mentorshipService.Book(ctx, userID, slotID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(slot))
}

// AcceptBooking godoc
// @Summary Accept a booking request
// @Description Confirms a pending booking. Only the slot's mentor can accept.
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Success 200 {object} dto.APIResponse{data=dto.MentorSlotResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not the slot's mentor"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Slot not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "No pending booking"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /mentorship/slots/{id}/accept [post]
func (c *MentorshipController) AcceptBooking(ctx *gin.Context) {
	c.transition(ctx, c.mentorshipService.Accept)
}

// DeclineBooking godoc
// @Summary Decline a booking request
// @Description Declines a pending booking and returns the slot to the open pool. Only the slot's mentor can decline.
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Success 200 {object} dto.APIResponse{data=dto.MentorSlotResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not the slot's mentor"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Slot not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "No pending booking"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /mentorship/slots/{id}/decline [post]
func (c *MentorshipController) DeclineBooking(ctx *gin.Context) {
	c.transition(ctx, c.mentorshipService.Decline)
}

// CompleteSession godoc
// @Summary Mark a session as completed
// @Description Marks a confirmed session as completed. Only the slot's mentor can complete.
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Success 200 {object} dto.APIResponse{data=dto.MentorSlotResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not the slot's mentor"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Slot not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Session not confirmed"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /mentorship/slots/{id}/complete [post]
func (c *MentorshipController) CompleteSession(ctx *gin.Context) {
	c.transition(ctx, c.mentorshipService.Complete)
}

// transition runs one of the mentor-side slot state changes
func (c *MentorshipController) transition(ctx *gin.Context, fn func(context.Context, int64, int64) (*dto.MentorSlotResponse, error)) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	slotID, ok := parseIDParam(ctx, "id", "slot ID")
	if !ok {
		return
	}

	slot, err := fn(ctx, userID, slotID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(slot))
}
