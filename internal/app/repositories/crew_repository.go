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
	"github.com/thequad/api/internal/pkg/dberrors"
	"github.com/thequad/api/internal/pkg/logger"
)

// CrewRepository handles crew recruitment database operations
type CrewRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCrewRepository creates a new CrewRepository
func NewCrewRepository(db *pgxpool.Pool) *CrewRepository {
	return &CrewRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new crew call and returns its ID
func (r *CrewRepository) Create(ctx context.Context, call *models.CrewCall) (int64, error) {
	sql, args, err := r.sb.Insert("crew_calls").
		Columns("club_name", "title", "description", "role", "event_name", "event_date",
			"location", "skills", "deadline", "user_id", "image_data", "status", "created_at").
		Values(call.ClubName, call.Title, call.Description, call.Role, call.EventName, call.EventDate,
			call.Location, call.Skills, call.Deadline, call.UserID, call.ImageData, models.CrewCallStatusOpen, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create crew call query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("userID", call.UserID).Msg("Error executing create crew call query")
		return 0, fmt.Errorf("error creating crew call: %w", err)
	}
	return id, nil
}

// GetByID retrieves a crew call by ID
func (r *CrewRepository) GetByID(ctx context.Context, id int64) (*models.CrewCall, error) {
	sql, args, err := r.sb.Select(crewColumns...).
		From("crew_calls").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get crew call query: %w", err)
	}

	var call models.CrewCall
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&call.ID, &call.ClubName, &call.Title, &call.Description, &call.Role,
		&call.EventName, &call.EventDate, &call.Location, &call.Skills, &call.Deadline,
		&call.UserID, &call.ImageData, &call.Status, &call.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCrewCallNotFound
		}
		return nil, fmt.Errorf("error retrieving crew call: %w", err)
	}
	return &call, nil
}

// List retrieves crew calls newest first, optionally filtered by status
func (r *CrewRepository) List(ctx context.Context, status *models.CrewCallStatus, offset, limit int) ([]models.CrewCall, int64, error) {
	countQuery := r.sb.Select("COUNT(*)").From("crew_calls")
	listQuery := r.sb.Select(crewColumns...).From("crew_calls")

	if status != nil {
		countQuery = countQuery.Where(squirrel.Eq{"status": *status})
		listQuery = listQuery.Where(squirrel.Eq{"status": *status})
	}

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count crew calls query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting crew calls: %w", err)
	}

	sql, args, err = listQuery.
		OrderBy("created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list crew calls query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing crew calls: %w", err)
	}
	defer rows.Close()

	var calls []models.CrewCall
	for rows.Next() {
		var call models.CrewCall
		err := rows.Scan(
			&call.ID, &call.ClubName, &call.Title, &call.Description, &call.Role,
			&call.EventName, &call.EventDate, &call.Location, &call.Skills, &call.Deadline,
			&call.UserID, &call.ImageData, &call.Status, &call.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning crew call row: %w", err)
		}
		calls = append(calls, call)
	}
	return calls, total, rows.Err()
}

// Update replaces the editable fields of a crew call
func (r *CrewRepository) Update(ctx context.Context, call *models.CrewCall) error {
	sql, args, err := r.sb.Update("crew_calls").
		Set("club_name", call.ClubName).
		Set("title", call.Title).
		Set("description", call.Description).
		Set("role", call.Role).
		Set("event_name", call.EventName).
		Set("event_date", call.EventDate).
		Set("location", call.Location).
		Set("skills", call.Skills).
		Set("deadline", call.Deadline).
		Set("image_data", call.ImageData).
		Where(squirrel.Eq{"id": call.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update crew call query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating crew call: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCrewCallNotFound
	}
	return nil
}

// UpdateStatus toggles a crew call between open and closed
func (r *CrewRepository) UpdateStatus(ctx context.Context, id int64, status models.CrewCallStatus) error {
	sql, args, err := r.sb.Update("crew_calls").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update crew status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating crew call status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCrewCallNotFound
	}
	return nil
}

// Delete removes a crew call by ID
func (r *CrewRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("crew_calls").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete crew call query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting crew call: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCrewCallNotFound
	}
	return nil
}

// CreateApplicationTx inserts an application inside a transaction.
// The (crew_call_id, user_id) unique constraint enforces apply-once.
func (r *CrewRepository) CreateApplicationTx(ctx context.Context, q Querier, app *models.CrewApplication) (int64, error) {
	sql, args, err := r.sb.Insert("crew_applications").
		Columns("crew_call_id", "user_id", "full_name", "email", "skills", "experience", "message", "resume_name", "applied_at").
		Values(app.CrewCallID, app.UserID, app.FullName, app.Email, app.Skills, app.Experience, app.Message, app.ResumeName, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create application query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "crew_applications_call_user_key") {
			return 0, apperrors.ErrAlreadyApplied
		}
		logger.Error().Err(err).Int64("crewCallID", app.CrewCallID).Int64("userID", app.UserID).Msg("Error executing create application query")
		return 0, fmt.Errorf("error creating crew application: %w", err)
	}
	return id, nil
}

// LinkApplicationChatTx records the chat thread and message spawned by an
// application, inside the same transaction
func (r *CrewRepository) LinkApplicationChatTx(ctx context.Context, q Querier, applicationID, threadID, messageID int64) error {
	sql, args, err := r.sb.Update("crew_applications").
		Set("chat_thread_id", threadID).
		Set("chat_message_id", messageID).
		Where(squirrel.Eq{"id": applicationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build link application query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error linking application to chat: %w", err)
	}
	return nil
}

// ListApplications retrieves the applications on a crew call
func (r *CrewRepository) ListApplications(ctx context.Context, crewCallID int64) ([]models.CrewApplication, error) {
	sql, args, err := r.sb.Select("id", "crew_call_id", "user_id", "full_name", "email", "skills", "experience", "message", "resume_name", "chat_thread_id", "chat_message_id", "applied_at").
		From("crew_applications").
		Where(squirrel.Eq{"crew_call_id": crewCallID}).
		OrderBy("applied_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing crew applications: %w", err)
	}
	defer rows.Close()

	var apps []models.CrewApplication
	for rows.Next() {
		var app models.CrewApplication
		err := rows.Scan(
			&app.ID, &app.CrewCallID, &app.UserID, &app.FullName, &app.Email,
			&app.Skills, &app.Experience, &app.Message, &app.ResumeName,
			&app.ChatThreadID, &app.ChatMessageID, &app.AppliedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// ApplicantIDs returns, for each of the given calls, the ordered list of
// user IDs that applied
func (r *CrewRepository) ApplicantIDs(ctx context.Context, crewCallIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(crewCallIDs))
	if len(crewCallIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT crew_call_id, user_id
		FROM crew_applications
		WHERE crew_call_id = ANY($1)
		ORDER BY applied_at
	`
	rows, err := r.db.Query(ctx, query, crewCallIDs)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applicant IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var crewCallID, userID int64
		if err := rows.Scan(&crewCallID, &userID); err != nil {
			return nil, fmt.Errorf("error scanning applicant row: %w", err)
		}
		result[crewCallID] = append(result[crewCallID], userID)
	}
	return result, rows.Err()
}

// CountOpen returns the number of open crew calls
func (r *CrewRepository) CountOpen(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM crew_calls WHERE status = 'open'").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error counting open crew calls: %w", err)
	}
	return total, nil
}

var crewColumns = []string{
	"id", "club_name", "title", "description", "role",
	"event_name", "event_date", "location", "skills", "deadline",
	"user_id", "image_data", "status", "created_at",
}
