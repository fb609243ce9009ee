package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/thequad/api/internal/app/models"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/app/repositories"
	"github.com/thequad/api/internal/db"
	"github.com/thequad/api/internal/pkg/apperrors"
	"github.com/thequad/api/internal/pkg/helpers"
)

// CrewService defines the interface for crew recruitment operations
type CrewService interface {
	List(ctx context.Context, viewerID int64, status *models.CrewCallStatus, page, size int) (*dto.PaginatedResponse, error)
	Create(ctx context.Context, userID int64, req *dto.CreateCrewCallRequest) (*dto.CrewCallResponse, error)
	Update(ctx context.Context, userID, callID int64, req *dto.UpdateCrewCallRequest) (*dto.CrewCallResponse, error)
	UpdateStatus(ctx context.Context, userID, callID int64, status models.CrewCallStatus) (*dto.CrewCallResponse, error)
	Delete(ctx context.Context, userID, callID int64) error
	Apply(ctx context.Context, userID, callID int64, req *dto.ApplyCrewRequest) (*dto.CrewApplicationResponse, error)
	ListApplications(ctx context.Context, userID, callID int64) ([]dto.CrewApplicationResponse, error)
}

// crewServiceImpl implements CrewService
type crewServiceImpl struct {
	crewRepo *repositories.CrewRepository
	userRepo *repositories.UserRepository
	chatSvc  ChatService
	database *db.PostgresDB
	logger   zerolog.Logger
}

// NewCrewService creates a new CrewService
func NewCrewService(
	crewRepo *repositories.CrewRepository,
	userRepo *repositories.UserRepository,
	chatSvc ChatService,
	database *db.PostgresDB,
	logger zerolog.Logger,
) CrewService {
	return &crewServiceImpl{
		crewRepo: crewRepo,
		userRepo: userRepo,
		chatSvc:  chatSvc,
		database: database,
		logger:   logger,
	}
}

// List returns crew calls annotated for the viewer: applicant IDs and
// whether the viewer already applied
func (s *crewServiceImpl) List(ctx context.Context, viewerID int64, status *models.CrewCallStatus, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	calls, total, err := s.crewRepo.List(ctx, status, int(offset), limit)
	if err != nil {
		return nil, err
	}

	callIDs := make([]int64, 0, len(calls))
	ownerIDs := make([]int64, 0, len(calls))
	for i := range calls {
		callIDs = append(callIDs, calls[i].ID)
		ownerIDs = append(ownerIDs, calls[i].UserID)
	}

	applicants, err := s.crewRepo.ApplicantIDs(ctx, callIDs)
	if err != nil {
		return nil, err
	}
	owners, err := s.userRepo.ListUsersByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CrewCallResponse, 0, len(calls))
	for i := range calls {
		calls[i].ApplicantIDs = applicants[calls[i].ID]
		responses = append(responses, crewToResponse(&calls[i], owners[calls[i].UserID], viewerID))
	}

	return &dto.PaginatedResponse{
		Items:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Create opens a new crew call for the caller
func (s *crewServiceImpl) Create(ctx context.Context, userID int64, req *dto.CreateCrewCallRequest) (*dto.CrewCallResponse, error) {
	owner, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	call := &models.CrewCall{
		ClubName:    req.ClubName,
		Title:       req.Title,
		Description: req.Description,
		Role:        req.Role,
		EventName:   req.EventName,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Skills:      normalizeSkills(req.Skills),
		Deadline:    req.Deadline,
		UserID:      userID,
		ImageData:   req.ImageData,
	}

	id, err := s.crewRepo.Create(ctx, call)
	if err != nil {
		return nil, err
	}

	created, err := s.crewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := crewToResponse(created, owner, userID)
	return &resp, nil
}

// Update replaces a call's editable fields. Only its owner may edit it.
func (s *crewServiceImpl) Update(ctx context.Context, userID, callID int64, req *dto.UpdateCrewCallRequest) (*dto.CrewCallResponse, error) {
	call, err := s.crewRepo.GetByID(ctx, callID)
	if err != nil {
		return nil, err
	}
	if call.UserID != userID {
		return nil, apperrors.NewForbiddenError("Only the owner can edit this call")
	}

	call.ClubName = req.ClubName
	call.Title = req.Title
	call.Description = req.Description
	call.Role = req.Role
	call.EventName = req.EventName
	call.EventDate = req.EventDate
	call.Location = req.Location
	call.Skills = normalizeSkills(req.Skills)
	call.Deadline = req.Deadline
	call.ImageData = req.ImageData

	if err := s.crewRepo.Update(ctx, call); err != nil {
		return nil, err
	}

	applicants, err := s.crewRepo.ApplicantIDs(ctx, []int64{callID})
	if err != nil {
		return nil, err
	}
	call.ApplicantIDs = applicants[callID]

	owner, err := s.userRepo.GetUserByID(ctx, call.UserID)
	if err != nil {
		return nil, err
	}

	resp := crewToResponse(call, owner, userID)
	return &resp, nil
}

// UpdateStatus toggles a call between open and closed. Only its owner may
// do so.
func (s *crewServiceImpl) UpdateStatus(ctx context.Context, userID, callID int64, status models.CrewCallStatus) (*dto.CrewCallResponse, error) {
	call, err := s.crewRepo.GetByID(ctx, callID)
	if err != nil {
		return nil, err
	}
	if call.UserID != userID {
		return nil, apperrors.NewForbiddenError("Only the owner can change this call's status")
	}

	if err := s.crewRepo.UpdateStatus(ctx, callID, status); err != nil {
		return nil, err
	}
	call.Status = status

	owner, err := s.userRepo.GetUserByID(ctx, call.UserID)
	if err != nil {
		return nil, err
	}

	resp := crewToResponse(call, owner, userID)
	return &resp, nil
}

// Delete removes a crew call. Only its owner may delete it.
func (s *crewServiceImpl) Delete(ctx context.Context, userID, callID int64) error {
	call, err := s.crewRepo.GetByID(ctx, callID)
	if err != nil {
		return err
	}
	if call.UserID != userID {
		return apperrors.NewForbiddenError("Only the owner can delete this call")
	}
	return s.crewRepo.Delete(ctx, callID)
}

// Apply submits an application and delivers it to the call owner as a
// structured chat message, all in one transaction. Closed calls reject
// applications; applying twice fails with a conflict.
func (s *crewServiceImpl) Apply(ctx context.Context, userID, callID int64, req *dto.ApplyCrewRequest) (*dto.CrewApplicationResponse, error) {
	call, err := s.crewRepo.GetByID(ctx, callID)
	if err != nil {
		return nil, err
	}
	if call.Status == models.CrewCallStatusClosed {
		return nil, apperrors.ErrCrewCallClosed
	}
	if call.UserID == userID {
		return nil, apperrors.NewBadRequestError("Cannot apply to your own call")
	}

	users, err := s.userRepo.ListUsersByIDs(ctx, []int64{userID, call.UserID})
	if err != nil {
		return nil, err
	}
	applicant, owner := users[userID], users[call.UserID]
	if applicant == nil || owner == nil {
		return nil, apperrors.ErrUserNotFound
	}

	app := &models.CrewApplication{
		CrewCallID: callID,
		UserID:     userID,
		FullName:   applicant.Name,
		Email:      applicant.Email,
		Skills:     applicant.Skills,
		Experience: req.Experience,
		Message:    req.Message,
		ResumeName: req.ResumeName,
	}

	var chatMsg *dto.ChatMessageResponse
	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := s.crewRepo.CreateApplicationTx(ctx, tx, app)
		if err != nil {
			return err
		}
		app.ID = id

		body := formatCrewApplicationBody(app, call.Title)
		chatMsg, err = s.chatSvc.PostStructuredTx(ctx, tx, applicant, owner,
			models.ChatMessageTypeCrewApplication, body, app,
			callID, "crew_call", call.Title)
		if err != nil {
			return err
		}

		return s.crewRepo.LinkApplicationChatTx(ctx, tx, id, chatMsg.ThreadID, chatMsg.ID)
	})
	if err != nil {
		return nil, err
	}

	s.chatSvc.Broadcast(chatMsg)
	s.logger.Info().Int64("crewCallID", callID).Int64("userID", userID).Msg("Crew application submitted")

	app.ChatThreadID = &chatMsg.ThreadID
	app.ChatMessageID = &chatMsg.ID
	app.AppliedAt = chatMsg.CreatedAt
	resp := applicationToResponse(app)
	return &resp, nil
}

// ListApplications returns the applications on a call. Only the owner may
// view them.
func (s *crewServiceImpl) ListApplications(ctx context.Context, userID, callID int64) ([]dto.CrewApplicationResponse, error) {
	call, err := s.crewRepo.GetByID(ctx, callID)
	if err != nil {
		return nil, err
	}
	if call.UserID != userID {
		return nil, apperrors.NewForbiddenError("Only the owner can view applications")
	}

	apps, err := s.crewRepo.ListApplications(ctx, callID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CrewApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, applicationToResponse(&apps[i]))
	}
	return responses, nil
}

func crewToResponse(call *models.CrewCall, owner *models.User, viewerID int64) dto.CrewCallResponse {
	applicants := call.ApplicantIDs
	if applicants == nil {
		applicants = []int64{}
	}

	applied := false
	for _, id := range applicants {
		if id == viewerID {
			applied = true
			break
		}
	}

	resp := dto.CrewCallResponse{
		ID:             call.ID,
		ClubName:       call.ClubName,
		Title:          call.Title,
		Description:    call.Description,
		Role:           call.Role,
		EventName:      call.EventName,
		EventDate:      call.EventDate,
		Location:       call.Location,
		Skills:         call.Skills,
		Deadline:       call.Deadline,
		Status:         string(call.Status),
		UserID:         call.UserID,
		ImageData:      call.ImageData,
		Applicants:     applicants,
		ApplicantCount: len(applicants),
		Applied:        applied,
		TimeAgo:        helpers.TimeAgo(call.CreatedAt, timeNow()),
		CreatedAt:      call.CreatedAt,
	}
	if owner != nil {
		resp.UserName = owner.Name
	}
	return resp
}

func applicationToResponse(app *models.CrewApplication) dto.CrewApplicationResponse {
	return dto.CrewApplicationResponse{
		ID:         app.ID,
		CrewCallID: app.CrewCallID,
		UserID:     app.UserID,
		FullName:   app.FullName,
		Email:      app.Email,
		Skills:     app.Skills,
		Experience: app.Experience,
		Message:    app.Message,
		ResumeName: app.ResumeName,
		AppliedAt:  app.AppliedAt,
	}
}
