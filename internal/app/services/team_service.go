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

// TeamService defines the interface for hackathon team-matching operations
type TeamService interface {
	List(ctx context.Context, viewerID int64, search *string, page, size int) (*dto.PaginatedResponse, error)
	Create(ctx context.Context, userID int64, req *dto.CreateTeamPostRequest) (*dto.TeamPostResponse, error)
	Delete(ctx context.Context, userID, teamID int64) error
	Join(ctx context.Context, userID, teamID int64, req *dto.JoinTeamRequest) (*dto.TeamJoinRequestResponse, error)
	ListJoinRequests(ctx context.Context, userID, teamID int64) ([]dto.TeamJoinRequestResponse, error)
}

// teamServiceImpl implements TeamService
type teamServiceImpl struct {
	teamRepo *repositories.TeamRepository
	userRepo *repositories.UserRepository
	chatSvc  ChatService
	database *db.PostgresDB
	logger   zerolog.Logger
}

// NewTeamService creates a new TeamService
func NewTeamService(
	teamRepo *repositories.TeamRepository,
	userRepo *repositories.UserRepository,
	chatSvc ChatService,
	database *db.PostgresDB,
	logger zerolog.Logger,
) TeamService {
	return &teamServiceImpl{
		teamRepo: teamRepo,
		userRepo: userRepo,
		chatSvc:  chatSvc,
		database: database,
		logger:   logger,
	}
}

// List returns team posts annotated for the viewer: skill match percentage
// against the viewer's profile and whether they already asked to join
func (s *teamServiceImpl) List(ctx context.Context, viewerID int64, search *string, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	posts, total, err := s.teamRepo.List(ctx, search, int(offset), limit)
	if err != nil {
		return nil, err
	}

	viewer, err := s.userRepo.GetUserByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	teamIDs := make([]int64, 0, len(posts))
	for i := range posts {
		teamIDs = append(teamIDs, posts[i].ID)
	}
	requested, err := s.teamRepo.RequestedTeamIDs(ctx, viewerID, teamIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TeamPostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, teamToResponse(&posts[i], viewer.Skills, requested[posts[i].ID]))
	}

	return &dto.PaginatedResponse{
		Items:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Create publishes a new team post for the caller
func (s *teamServiceImpl) Create(ctx context.Context, userID int64, req *dto.CreateTeamPostRequest) (*dto.TeamPostResponse, error) {
	owner, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &models.TeamPost{
		Title:          req.Title,
		Description:    req.Description,
		HackathonName:  req.HackathonName,
		RequiredSkills: normalizeSkills(req.RequiredSkills),
		UserID:         userID,
		UserName:       owner.Name,
	}

	id, err := s.teamRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	created, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Owners see a full match on their own post
	resp := teamToResponse(created, created.RequiredSkills, false)
	return &resp, nil
}

// Delete removes a team post. Only its owner may delete it.
func (s *teamServiceImpl) Delete(ctx context.Context, userID, teamID int64) error {
	post, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return apperrors.NewForbiddenError("Only the owner can delete this post")
	}
	return s.teamRepo.Delete(ctx, teamID)
}

// Join submits a join request and delivers it to the post owner as a
// structured chat message. The request row, the chat thread, the message
// and the thread preview all commit in one transaction; asking twice
// fails with a conflict, and nothing is left behind.
func (s *teamServiceImpl) Join(ctx context.Context, userID, teamID int64, req *dto.JoinTeamRequest) (*dto.TeamJoinRequestResponse, error) {
	post, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if post.UserID == userID {
		return nil, apperrors.NewBadRequestError("Cannot ask to join your own team")
	}

	users, err := s.userRepo.ListUsersByIDs(ctx, []int64{userID, post.UserID})
	if err != nil {
		return nil, err
	}
	applicant, owner := users[userID], users[post.UserID]
	if applicant == nil || owner == nil {
		return nil, apperrors.ErrUserNotFound
	}

	joinReq := &models.TeamJoinRequest{
		TeamID:     teamID,
		UserID:     userID,
		FullName:   applicant.Name,
		Email:      applicant.Email,
		Skills:     applicant.Skills,
		Role:       req.Role,
		Bio:        req.Bio,
		ResumeName: req.ResumeName,
	}

	var chatMsg *dto.ChatMessageResponse
	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := s.teamRepo.CreateJoinRequestTx(ctx, tx, joinReq)
		if err != nil {
			return err
		}
		joinReq.ID = id

		body := formatTeamJoinBody(joinReq, post.Title)
		chatMsg, err = s.chatSvc.PostStructuredTx(ctx, tx, applicant, owner,
			models.ChatMessageTypeTeamJoinRequest, body, joinReq,
			teamID, "team", post.Title)
		if err != nil {
			return err
		}

		return s.teamRepo.LinkJoinRequestChatTx(ctx, tx, id, chatMsg.ThreadID, chatMsg.ID)
	})
	if err != nil {
		return nil, err
	}

	s.chatSvc.Broadcast(chatMsg)
	s.logger.Info().Int64("teamID", teamID).Int64("userID", userID).Msg("Team join request submitted")

	joinReq.ChatThreadID = &chatMsg.ThreadID
	joinReq.ChatMessageID = &chatMsg.ID
	joinReq.RequestedAt = chatMsg.CreatedAt
	resp := joinRequestToResponse(joinReq)
	return &resp, nil
}

// ListJoinRequests returns the requests on a post. Only the owner may view
// them.
func (s *teamServiceImpl) ListJoinRequests(ctx context.Context, userID, teamID int64) ([]dto.TeamJoinRequestResponse, error) {
	post, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, apperrors.NewForbiddenError("Only the owner can view join requests")
	}

	requests, err := s.teamRepo.ListJoinRequests(ctx, teamID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TeamJoinRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, joinRequestToResponse(&requests[i]))
	}
	return responses, nil
}

func teamToResponse(post *models.TeamPost, viewerSkills []string, requested bool) dto.TeamPostResponse {
	return dto.TeamPostResponse{
		ID:             post.ID,
		Title:          post.Title,
		Description:    post.Description,
		HackathonName:  post.HackathonName,
		RequiredSkills: post.RequiredSkills,
		UserID:         post.UserID,
		UserName:       post.UserName,
		MatchPercent:   helpers.SkillMatchPercent(post.RequiredSkills, viewerSkills),
		Requested:      requested,
		TimeAgo:        helpers.TimeAgo(post.CreatedAt, timeNow()),
		CreatedAt:      post.CreatedAt,
	}
}

func joinRequestToResponse(req *models.TeamJoinRequest) dto.TeamJoinRequestResponse {
	return dto.TeamJoinRequestResponse{
		ID:          req.ID,
		TeamID:      req.TeamID,
		UserID:      req.UserID,
		FullName:    req.FullName,
		Email:       req.Email,
		Skills:      req.Skills,
		Role:        req.Role,
		Bio:         req.Bio,
		ResumeName:  req.ResumeName,
		RequestedAt: req.RequestedAt,
	}
}
