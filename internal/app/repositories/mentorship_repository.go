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

// MentorshipRepository handles mentor slot database operations
type MentorshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new availability slot and returns its ID
func (r *MentorshipRepository) Create(ctx context.Context, slot *models.MentorSlot) (int64, error) {
	sql, args, err := r.sb.Insert("mentor_slots").
		Columns("mentor_id", "mentor_name", "expertise", "topic", "description",
			"date", "time", "year", "department", "bio", "status", "created_at").
		Values(slot.MentorID, slot.MentorName, slot.Expertise, slot.Topic, slot.Description,
			slot.Date, slot.Time, slot.Year, slot.Department, slot.Bio, models.MentorSlotAvailable, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create slot query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("mentorID", slot.MentorID).Msg("Error executing create slot query")
		return 0, fmt.Errorf("error creating mentor slot: %w", err)
	}
	return id, nil
}

// GetByID retrieves a slot by ID
func (r *MentorshipRepository) GetByID(ctx context.Context, id int64) (*models.MentorSlot, error) {
	sql, args, err := r.sb.Select(slotColumns...).
		From("mentor_slots").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get slot query: %w", err)
	}

	var slot models.MentorSlot
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&slot.ID, &slot.MentorID, &slot.MentorName, &slot.Expertise, &slot.Topic,
		&slot.Description, &slot.Date, &slot.Time, &slot.Year, &slot.Department,
		&slot.Bio, &slot.Status,
		&slot.BookedBy, &slot.BookedByName, &slot.BookedDuration, &slot.BookedSlot,
		&slot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor slot: %w", err)
	}
	return &slot, nil
}

// List retrieves slots newest first, optionally filtered by status
func (r *MentorshipRepository) List(ctx context.Context, status *models.MentorSlotStatus, offset, limit int) ([]models.MentorSlot, int64, error) {
	countQuery := r.sb.Select("COUNT(*)").From("mentor_slots")
	listQuery := r.sb.Select(slotColumns...).From("mentor_slots")

	if status != nil {
		countQuery = countQuery.Where(squirrel.Eq{"status": *status})
		listQuery = listQuery.Where(squirrel.Eq{"status": *status})
	}

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count slots query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting mentor slots: %w", err)
	}

	sql, args, err = listQuery.
		OrderBy("created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list slots query: %w", err)
	}

	slots, err := r.querySlots(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	return slots, total, nil
}

// ListByMentor retrieves every slot published by a mentor
func (r *MentorshipRepository) ListByMentor(ctx context.Context, mentorID int64) ([]models.MentorSlot, error) {
	sql, args, err := r.sb.Select(slotColumns...).
		From("mentor_slots").
		Where(squirrel.Eq{"mentor_id": mentorID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list mentor slots query: %w", err)
	}
	return r.querySlots(ctx, sql, args...)
}

// ListBookedBy retrieves the slots a student has booked or confirmed
func (r *MentorshipRepository) ListBookedBy(ctx context.Context, userID int64) ([]models.MentorSlot, error) {
	sql, args, err := r.sb.Select(slotColumns...).
		From("mentor_slots").
		Where(squirrel.Eq{"booked_by": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list booked slots query: %w", err)
	}
	return r.querySlots(ctx, sql, args...)
}

// Book transitions a slot from available to booked, recording the booker.
// The status guard in the WHERE clause makes concurrent bookings lose cleanly.
func (r *MentorshipRepository) Book(ctx context.Context, slotID, bookedBy int64, bookedByName string, duration int, requestedSlot string) error {
	sql, args, err := r.sb.Update("mentor_slots").
		Set("status", models.MentorSlotBooked).
		Set("booked_by", bookedBy).
		Set("booked_by_name", bookedByName).
		Set("booked_duration", duration).
		Set("booked_slot", requestedSlot).
		Where(squirrel.Eq{"id": slotID, "status": models.MentorSlotAvailable}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build book slot query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error booking mentor slot: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.classifyTransitionFailure(ctx, slotID, apperrors.ErrSlotNotAvailable)
	}
	return nil
}

// Accept transitions a slot from booked to confirmed
func (r *MentorshipRepository) Accept(ctx context.Context, slotID int64) error {
	sql, args, err := r.sb.Update("mentor_slots").
		Set("status", models.MentorSlotConfirmed).
		Where(squirrel.Eq{"id": slotID, "status": models.MentorSlotBooked}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build accept slot query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error accepting booking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.classifyTransitionFailure(ctx, slotID, apperrors.ErrSlotNotBooked)
	}
	return nil
}

// Decline returns a booked slot to the available pool, clearing the booker
func (r *MentorshipRepository) Decline(ctx context.Context, slotID int64) error {
	sql, args, err := r.sb.Update("mentor_slots").
		Set("status", models.MentorSlotAvailable).
		Set("booked_by", nil).
		Set("booked_by_name", nil).
		Set("booked_duration", nil).
		Set("booked_slot", nil).
		Where(squirrel.Eq{"id": slotID, "status": models.MentorSlotBooked}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build decline slot query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error declining booking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.classifyTransitionFailure(ctx, slotID, apperrors.ErrSlotNotBooked)
	}
	return nil
}

// Complete transitions a confirmed session to completed
func (r *MentorshipRepository) Complete(ctx context.Context, slotID int64) error {
	sql, args, err := r.sb.Update("mentor_slots").
		Set("status", models.MentorSlotCompleted).
		Where(squirrel.Eq{"id": slotID, "status": models.MentorSlotConfirmed}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build complete slot query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error completing session: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.classifyTransitionFailure(ctx, slotID, apperrors.ErrSlotNotBooked)
	}
	return nil
}

// Delete removes a slot by ID
func (r *MentorshipRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("mentor_slots").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete slot query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting mentor slot: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSlotNotFound
	}
	return nil
}

// CountAvailable returns the number of bookable slots
func (r *MentorshipRepository) CountAvailable(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM mentor_slots WHERE status = 'available'").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error counting available slots: %w", err)
	}
	return total, nil
}

// classifyTransitionFailure distinguishes a missing slot from one in the
// wrong state after a guarded update matched no rows
func (r *MentorshipRepository) classifyTransitionFailure(ctx context.Context, slotID int64, stateErr error) error {
	if _, err := r.GetByID(ctx, slotID); err != nil {
		return err
	}
	return stateErr
}

func (r *MentorshipRepository) querySlots(ctx context.Context, sql string, args ...interface{}) ([]models.MentorSlot, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing mentor slots: %w", err)
	}
	defer rows.Close()

	var slots []models.MentorSlot
	for rows.Next() {
		var slot models.MentorSlot
		err := rows.Scan(
			&slot.ID, &slot.MentorID, &slot.MentorName, &slot.Expertise, &slot.Topic,
			&slot.Description, &slot.Date, &slot.Time, &slot.Year, &slot.Department,
			&slot.Bio, &slot.Status,
			&slot.BookedBy, &slot.BookedByName, &slot.BookedDuration, &slot.BookedSlot,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentor slot row: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

var slotColumns = []string{
	"id", "mentor_id", "mentor_name", "expertise", "topic",
	"description", "date", "time", "year", "department",
	"bio", "status",
	"booked_by", "booked_by_name", "booked_duration", "booked_slot",
	"created_at",
}
