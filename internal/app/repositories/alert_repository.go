package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thequad/api/internal/app/models"
	"github.com/thequad/api/internal/pkg/apperrors"
	"github.com/thequad/api/internal/pkg/logger"
)

// AlertRepository handles campus alert database operations
type AlertRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAlertRepository creates a new AlertRepository
func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new alert and returns its ID
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) (int64, error) {
	sql, args, err := r.sb.Insert("alerts").
		Columns("title", "description", "type", "date", "user_id", "user_name", "created_at").
		Values(alert.Title, alert.Description, alert.Type, alert.Date, alert.UserID, alert.UserName, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create alert query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("userID", alert.UserID).Msg("Error executing create alert query")
		return 0, fmt.Errorf("error creating alert: %w", err)
	}
	return id, nil
}

// GetByID retrieves an alert by ID
func (r *AlertRepository) GetByID(ctx context.Context, id int64) (*models.Alert, error) {
	sql, args, err := r.sb.Select(alertColumns...).
		From("alerts").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get alert query: %w", err)
	}

	var alert models.Alert
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&alert.ID, &alert.Title, &alert.Description, &alert.Type, &alert.Date,
		&alert.UserID, &alert.UserName, &alert.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlertNotFound
		}
		return nil, fmt.Errorf("error retrieving alert: %w", err)
	}
	return &alert, nil
}

// List retrieves alerts newest first, optionally filtered by type
func (r *AlertRepository) List(ctx context.Context, alertType *models.AlertType, offset, limit int) ([]models.Alert, int64, error) {
	countQuery := r.sb.Select("COUNT(*)").From("alerts")
	listQuery := r.sb.Select(alertColumns...).From("alerts")

	if alertType != nil {
		countQuery = countQuery.Where(squirrel.Eq{"type": *alertType})
		listQuery = listQuery.Where(squirrel.Eq{"type": *alertType})
	}

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count alerts query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting alerts: %w", err)
	}

	sql, args, err = listQuery.
		OrderBy("created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list alerts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var alert models.Alert
		err := rows.Scan(
			&alert.ID, &alert.Title, &alert.Description, &alert.Type, &alert.Date,
			&alert.UserID, &alert.UserName, &alert.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	return alerts, total, rows.Err()
}

// Delete removes an alert by ID
func (r *AlertRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("alerts").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete alert query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting alert: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlertNotFound
	}
	return nil
}

// Count returns the total number of alerts
func (r *AlertRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM alerts").Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting alerts: %w", err)
	}
	return total, nil
}

var alertColumns = []string{
	"id", "title", "description", "type", "date",
	"user_id", "user_name", "created_at",
}
