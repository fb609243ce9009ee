package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/thequad/api/internal/app/models"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/app/repositories"
	"github.com/thequad/api/internal/pkg/apperrors"
	"github.com/thequad/api/internal/pkg/helpers"
)

// Booked slots surface as "pending" in the mentor's request view
const statusPending = "pending"

// MentorshipService defines the interface for mentorship scheduling
type MentorshipService interface {
	List(ctx context.Context, status *models.MentorSlotStatus, page, size int) (*dto.PaginatedResponse, error)
	Create(ctx context.Context, userID int64, req *dto.CreateMentorSlotRequest) (*dto.MentorSlotResponse, error)
	Delete(ctx context.Context, userID, slotID int64) error
	MySlots(ctx context.Context, mentorID int64) ([]dto.MentorSlotResponse, error)
	MyBookings(ctx context.Context, userID int64) ([]dto.MentorSlotResponse, error)
	Book(ctx context.Context, userID, slotID int64, req *dto.BookSlotRequest) (*dto.MentorSlotResponse, error)
	Accept(ctx context.Context, mentorID, slotID int64) (*dto.MentorSlotResponse, error)
	Decline(ctx context.Context, mentorID, slotID int64) (*dto.MentorSlotResponse, error)
	Complete(ctx context.Context, mentorID, slotID int64) (*dto.MentorSlotResponse, error)
}

// mentorshipServiceImpl implements MentorshipService
type mentorshipServiceImpl struct {
	slotRepo *repositories.MentorshipRepository
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(slotRepo *repositories.MentorshipRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) MentorshipService {
	return &mentorshipServiceImpl{
		slotRepo: slotRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// List returns slots newest first, optionally filtered by status
func (s *mentorshipServiceImpl) List(ctx context.Context, status *models.MentorSlotStatus, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	slots, total, err := s.slotRepo.List(ctx, status, int(offset), limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MentorSlotResponse, 0, len(slots))
	for i := range slots {
		responses = append(responses, slotToResponse(&slots[i], false))
	}

	return &dto.PaginatedResponse{
		Items:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Create publishes availability for the caller
func (s *mentorshipServiceImpl) Create(ctx context.Context, userID int64, req *dto.CreateMentorSlotRequest) (*dto.MentorSlotResponse, error) {
	mentor, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	slot := &models.MentorSlot{
		MentorID:    userID,
		MentorName:  mentor.Name,
		Expertise:   normalizeSkills(req.Expertise),
		Topic:       req.Topic,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Year:        req.Year,
		Department:  req.Department,
		Bio:         req.Bio,
	}

	id, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		return nil, err
	}

	created, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := slotToResponse(created, false)
	return &resp, nil
}

// Delete removes a slot. Only its mentor may delete it.
func (s *mentorshipServiceImpl) Delete(ctx context.Context, userID, slotID int64) error {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot.MentorID != userID {
		return apperrors.NewForbiddenError("Only the mentor can delete this slot")
	}
	return s.slotRepo.Delete(ctx, slotID)
}

// MySlots returns the caller's published slots, with booked ones shown as
// pending requests awaiting a decision
func (s *mentorshipServiceImpl) MySlots(ctx context.Context, mentorID int64) ([]dto.MentorSlotResponse, error) {
	slots, err := s.slotRepo.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MentorSlotResponse, 0, len(slots))
	for i := range slots {
		responses = append(responses, slotToResponse(&slots[i], true))
	}
	return responses, nil
}

// MyBookings returns the sessions the caller has requested or confirmed
func (s *mentorshipServiceImpl) MyBookings(ctx context.Context, userID int64) ([]dto.MentorSlotResponse, error) {
	slots, err := s.slotRepo.ListBookedBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MentorSlotResponse, 0, len(slots))
	for i := range slots {
		responses = append(responses, slotToResponse(&slots[i], false))
	}
	return responses, nil
}

// Book requests a session on an available slot
func (s *mentorshipServiceImpl) Book(ctx context.Context, userID, slotID int64, req *dto.BookSlotRequest) (*dto.MentorSlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot.MentorID == userID {
		return nil, apperrors.NewBadRequestError("Cannot book your own slot")
	}

	booker, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.slotRepo.Book(ctx, slotID, userID, booker.Name, req.Duration, req.Slot); err != nil {
		return nil, err
	}

	return s.reload(ctx, slotID)
}

// Accept confirms a pending booking. Only the slot's mentor may accept.
func (s *mentorshipServiceImpl) Accept(ctx context.Context, mentorID, slotID int64) (*dto.MentorSlotResponse, error) {
	if err := s.mentorOwns(ctx, mentorID, slotID); err != nil {
		return nil, err
	}
	if err := s.slotRepo.Accept(ctx, slotID); err != nil {
		return nil, err
	}
	return s.reload(ctx, slotID)
}

// Decline rejects a pending booking. The slot returns to the available
// pool with the booker cleared, so others can request it again.
func (s *mentorshipServiceImpl) Decline(ctx context.Context, mentorID, slotID int64) (*dto.MentorSlotResponse, error) {
	if err := s.mentorOwns(ctx, mentorID, slotID); err != nil {
		return nil, err
	}
	if err := s.slotRepo.Decline(ctx, slotID); err != nil {
		return nil, err
	}
	return s.reload(ctx, slotID)
}

// Complete marks a confirmed session as held
func (s *mentorshipServiceImpl) Complete(ctx context.Context, mentorID, slotID int64) (*dto.MentorSlotResponse, error) {
	if err := s.mentorOwns(ctx, mentorID, slotID); err != nil {
		return nil, err
	}
	if err := s.slotRepo.Complete(ctx, slotID); err != nil {
		return nil, err
	}
	return s.reload(ctx, slotID)
}

func (s *mentorshipServiceImpl) mentorOwns(ctx context.Context, mentorID, slotID int64) error {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot.MentorID != mentorID {
		return apperrors.NewForbiddenError("Only the mentor can manage this slot")
	}
	return nil
}

func (s *mentorshipServiceImpl) reload(ctx context.Context, slotID int64) (*dto.MentorSlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	resp := slotToResponse(slot, false)
	return &resp, nil
}

func slotToResponse(slot *models.MentorSlot, mentorView bool) dto.MentorSlotResponse {
	status := string(slot.Status)
	if mentorView && slot.Status == models.MentorSlotBooked {
		status = statusPending
	}

	return dto.MentorSlotResponse{
		ID:             slot.ID,
		MentorID:       slot.MentorID,
		MentorName:     slot.MentorName,
		Expertise:      slot.Expertise,
		Topic:          slot.Topic,
		Description:    slot.Description,
		Date:           slot.Date,
		Time:           slot.Time,
		Year:           slot.Year,
		Department:     slot.Department,
		Bio:            slot.Bio,
		Status:         status,
		BookedBy:       slot.BookedBy,
		BookedByName:   slot.BookedByName,
		BookedDuration: slot.BookedDuration,
		BookedSlot:     slot.BookedSlot,
		CreatedAt:      slot.CreatedAt,
	}
}
