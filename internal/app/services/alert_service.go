package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thequad/api/internal/app/models"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/app/repositories"
	"github.com/thequad/api/internal/pkg/apperrors"
	"github.com/thequad/api/internal/pkg/helpers"
)

// AlertService defines the interface for campus alert operations
type AlertService interface {
	List(ctx context.Context, alertType *models.AlertType, page, size int) (*dto.PaginatedResponse, error)
	Create(ctx context.Context, userID int64, req *dto.CreateAlertRequest) (*dto.AlertResponse, error)
	Delete(ctx context.Context, userID, alertID int64) error
}

// alertServiceImpl implements AlertService
type alertServiceImpl struct {
	alertRepo *repositories.AlertRepository
	userRepo  *repositories.UserRepository
	logger    zerolog.Logger
}

// NewAlertService creates a new AlertService
func NewAlertService(alertRepo *repositories.AlertRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) AlertService {
	return &alertServiceImpl{
		alertRepo: alertRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// List returns alerts newest first, optionally filtered by type
func (s *alertServiceImpl) List(ctx context.Context, alertType *models.AlertType, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	alerts, total, err := s.alertRepo.List(ctx, alertType, int(offset), limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		responses = append(responses, alertToResponse(&alerts[i]))
	}

	return &dto.PaginatedResponse{
		Items:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Create publishes a new alert for the caller
func (s *alertServiceImpl) Create(ctx context.Context, userID int64, req *dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	owner, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	alert := &models.Alert{
		Title:       req.Title,
		Description: req.Description,
		Type:        models.AlertType(req.Type),
		Date:        req.Date,
		UserID:      userID,
		UserName:    owner.Name,
	}

	id, err := s.alertRepo.Create(ctx, alert)
	if err != nil {
		return nil, err
	}

	created, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := alertToResponse(created)
	return &resp, nil
}

// Delete removes an alert. Only its author may delete it.
func (s *alertServiceImpl) Delete(ctx context.Context, userID, alertID int64) error {
	alert, err := s.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		return err
	}
	if alert.UserID != userID {
		return apperrors.NewForbiddenError("Only the author can delete this alert")
	}
	return s.alertRepo.Delete(ctx, alertID)
}

func alertToResponse(alert *models.Alert) dto.AlertResponse {
	resp := dto.AlertResponse{
		ID:          alert.ID,
		Title:       alert.Title,
		Description: alert.Description,
		Type:        string(alert.Type),
		Date:        alert.Date,
		UserID:      alert.UserID,
		UserName:    alert.UserName,
		TimeAgo:     helpers.TimeAgo(alert.CreatedAt, timeNow()),
		CreatedAt:   alert.CreatedAt,
	}
	if alert.Date != nil {
		resp.DateLabel = dateLabel(*alert.Date)
	}
	return resp
}

// dateLabel buckets an ISO date into Today / Tomorrow / short date.
// Unparseable dates pass through untouched.
func dateLabel(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return helpers.DateBucket(parsed, timeNow())
}
