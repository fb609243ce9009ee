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

// LostItemRepository handles lost-and-found database operations
type LostItemRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLostItemRepository creates a new LostItemRepository
func NewLostItemRepository(db *pgxpool.Pool) *LostItemRepository {
	return &LostItemRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new lost-and-found listing and returns its ID
func (r *LostItemRepository) Create(ctx context.Context, item *models.LostItem) (int64, error) {
	sql, args, err := r.sb.Insert("lost_items").
		Columns("item_name", "description", "location", "type", "user_id", "image_data", "created_at").
		Values(item.ItemName, item.Description, item.Location, item.Type, item.UserID, item.ImageData, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create lost item query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("userID", item.UserID).Msg("Error executing create lost item query")
		return 0, fmt.Errorf("error creating lost item: %w", err)
	}
	return id, nil
}

// GetByID retrieves a single listing by ID
func (r *LostItemRepository) GetByID(ctx context.Context, id int64) (*models.LostItem, error) {
	sql, args, err := r.sb.Select(lostItemColumns...).
		From("lost_items").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get lost item query: %w", err)
	}

	var item models.LostItem
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&item.ID, &item.ItemName, &item.Description, &item.Location,
		&item.Type, &item.UserID, &item.ImageData, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLostItemNotFound
		}
		return nil, fmt.Errorf("error retrieving lost item: %w", err)
	}
	return &item, nil
}

// List retrieves listings newest first, optionally filtered by type, with
// the total count for pagination
func (r *LostItemRepository) List(ctx context.Context, itemType *models.LostItemType, offset, limit int) ([]models.LostItem, int64, error) {
	countQuery := r.sb.Select("COUNT(*)").From("lost_items")
	listQuery := r.sb.Select(lostItemColumns...).From("lost_items")

	if itemType != nil {
		countQuery = countQuery.Where(squirrel.Eq{"type": *itemType})
		listQuery = listQuery.Where(squirrel.Eq{"type": *itemType})
	}

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count lost items query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting lost items: %w", err)
	}

	sql, args, err = listQuery.
		OrderBy("created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list lost items query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing lost items: %w", err)
	}
	defer rows.Close()

	var items []models.LostItem
	for rows.Next() {
		var item models.LostItem
		err := rows.Scan(
			&item.ID, &item.ItemName, &item.Description, &item.Location,
			&item.Type, &item.UserID, &item.ImageData, &item.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning lost item row: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// Delete removes a listing by ID
func (r *LostItemRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("lost_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete lost item query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting lost item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLostItemNotFound
	}
	return nil
}

// Count returns the total number of listings
func (r *LostItemRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM lost_items").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error counting lost items: %w", err)
	}
	return total, nil
}

var lostItemColumns = []string{
	"id", "item_name", "description", "location",
	"type", "user_id", "image_data", "created_at",
}
