package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"
	"github.com/thequad/api/internal/app/models"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/app/repositories"
	"github.com/thequad/api/internal/pkg/apperrors"
	"github.com/thequad/api/internal/pkg/filestorage"
)

// UserService defines the interface for profile operations
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	UpdateAvatar(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*dto.AvatarResponse, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo    *repositories.UserRepository
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, fileStorage filestorage.FileStorage, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// GetUserByID returns a user's public profile
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// UpdateProfile applies the caller's partial profile edit. Fields absent
// from the request keep their current value.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !models.ValidRole(role) {
			return nil, apperrors.NewBadRequestError("Unknown role")
		}
		user.Role = role
	}
	if req.Skills != nil {
		user.Skills = normalizeSkills(*req.Skills)
	}
	if req.GithubURL != nil {
		user.GithubURL = req.GithubURL
	}
	if req.LinkedinURL != nil {
		user.LinkedinURL = req.LinkedinURL
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// UpdateAvatar stores a new profile photo and removes the previous one
func (s *userServiceImpl) UpdateAvatar(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*dto.AvatarResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	photoURL, err := s.fileStorage.SaveFile(fileHeader, "avatars")
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if err := s.userRepo.UpdatePhotoURL(ctx, userID, photoURL); err != nil {
		// Zero out the orphaned upload
		_ = s.fileStorage.DeleteFile(photoURL)
		return nil, err
	}

	if user.PhotoURL != nil && *user.PhotoURL != "" {
		if err := s.fileStorage.DeleteFile(*user.PhotoURL); err != nil {
			s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to delete previous avatar")
		}
	}

	return &dto.AvatarResponse{PhotoURL: photoURL}, nil
}

// userToResponse maps a user model to its public representation
func userToResponse(user *models.User) *dto.UserResponse {
	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}
	return &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        string(user.Role),
		Skills:      skills,
		GithubURL:   user.GithubURL,
		LinkedinURL: user.LinkedinURL,
		PhotoURL:    user.PhotoURL,
		CreatedAt:   user.CreatedAt,
	}
}

// normalizeSkills trims entries and drops empties, preserving order
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill != "" {
			out = append(out, skill)
		}
	}
	return out
}
