package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/thequad/api/internal/app/models"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/app/repositories"
	"github.com/thequad/api/internal/pkg/apperrors"
	"github.com/thequad/api/internal/pkg/helpers"
)

// LostFoundService defines the interface for lost-and-found operations
type LostFoundService interface {
	List(ctx context.Context, itemType *models.LostItemType, page, size int) (*dto.PaginatedResponse, error)
	Create(ctx context.Context, userID int64, req *dto.CreateLostItemRequest) (*dto.LostItemResponse, error)
	Delete(ctx context.Context, userID, itemID int64) error
}

// lostFoundServiceImpl implements LostFoundService
type lostFoundServiceImpl struct {
	itemRepo *repositories.LostItemRepository
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewLostFoundService creates a new LostFoundService
func NewLostFoundService(itemRepo *repositories.LostItemRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) LostFoundService {
	return &lostFoundServiceImpl{
		itemRepo: itemRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// List returns listings newest first, optionally filtered by type
func (s *lostFoundServiceImpl) List(ctx context.Context, itemType *models.LostItemType, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	items, total, err := s.itemRepo.List(ctx, itemType, int(offset), limit)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]int64, 0, len(items))
	for i := range items {
		ownerIDs = append(ownerIDs, items[i].UserID)
	}
	owners, err := s.userRepo.ListUsersByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.LostItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, lostItemToResponse(&items[i], owners[items[i].UserID]))
	}

	return &dto.PaginatedResponse{
		Items:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Create publishes a new listing for the caller
func (s *lostFoundServiceImpl) Create(ctx context.Context, userID int64, req *dto.CreateLostItemRequest) (*dto.LostItemResponse, error) {
	owner, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := &models.LostItem{
		ItemName:    req.ItemName,
		Description: req.Description,
		Location:    req.Location,
		Type:        models.LostItemType(req.Type),
		UserID:      userID,
		ImageData:   req.ImageData,
	}

	id, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	created, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := lostItemToResponse(created, owner)
	return &resp, nil
}

// Delete removes a listing. Only its owner may delete it.
func (s *lostFoundServiceImpl) Delete(ctx context.Context, userID, itemID int64) error {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return apperrors.NewForbiddenError("Only the owner can delete this listing")
	}

	err = s.itemRepo.Delete(ctx, itemID)
	if errors.Is(err, apperrors.ErrLostItemNotFound) {
		// Already gone; deletion is idempotent
		return nil
	}
	return err
}

func lostItemToResponse(item *models.LostItem, owner *models.User) dto.LostItemResponse {
	resp := dto.LostItemResponse{
		ID:          item.ID,
		ItemName:    item.ItemName,
		Description: item.Description,
		Location:    item.Location,
		Type:        string(item.Type),
		UserID:      item.UserID,
		ImageData:   item.ImageData,
		TimeAgo:     helpers.TimeAgo(item.CreatedAt, timeNow()),
		CreatedAt:   item.CreatedAt,
	}
	if owner != nil {
		resp.UserName = owner.Name
	}
	return resp
}
