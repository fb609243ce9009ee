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

// TeamRepository handles team-matching database operations
type TeamRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new team post and returns its ID
func (r *TeamRepository) Create(ctx context.Context, post *models.TeamPost) (int64, error) {
	sql, args, err := r.sb.Insert("teams").
		Columns("title", "description", "hackathon_name", "required_skills", "user_id", "user_name", "created_at").
		Values(post.Title, post.Description, post.HackathonName, post.RequiredSkills, post.UserID, post.UserName, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create team query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("userID", post.UserID).Msg("Error executing create team query")
		return 0, fmt.Errorf("error creating team post: %w", err)
	}
	return id, nil
}

// GetByID retrieves a team post by ID
func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*models.TeamPost, error) {
	sql, args, err := r.sb.Select(teamColumns...).
		From("teams").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get team query: %w", err)
	}

	var post models.TeamPost
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&post.ID, &post.Title, &post.Description, &post.HackathonName,
		&post.RequiredSkills, &post.UserID, &post.UserName, &post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("error retrieving team post: %w", err)
	}
	return &post, nil
}

// List retrieves team posts newest first with the total count
func (r *TeamRepository) List(ctx context.Context, search *string, offset, limit int) ([]models.TeamPost, int64, error) {
	countQuery := r.sb.Select("COUNT(*)").From("teams")
	listQuery := r.sb.Select(teamColumns...).From("teams")

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"hackathon_name": pattern},
		}
		countQuery = countQuery.Where(cond)
		listQuery = listQuery.Where(cond)
	}

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count teams query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting team posts: %w", err)
	}

	sql, args, err = listQuery.
		OrderBy("created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list teams query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing team posts: %w", err)
	}
	defer rows.Close()

	var posts []models.TeamPost
	for rows.Next() {
		var post models.TeamPost
		err := rows.Scan(
			&post.ID, &post.Title, &post.Description, &post.HackathonName,
			&post.RequiredSkills, &post.UserID, &post.UserName, &post.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning team row: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, total, rows.Err()
}

// Delete removes a team post by ID
func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("teams").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete team query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting team post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// CreateJoinRequestTx inserts a join request inside a transaction.
// The (team_id, user_id) unique constraint enforces one request per user.
func (r *TeamRepository) CreateJoinRequestTx(ctx context.Context, q Querier, req *models.TeamJoinRequest) (int64, error) {
	sql, args, err := r.sb.Insert("team_join_requests").
		Columns("team_id", "user_id", "full_name", "email", "skills", "role", "bio", "resume_name", "requested_at").
		Values(req.TeamID, req.UserID, req.FullName, req.Email, req.Skills, req.Role, req.Bio, req.ResumeName, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create join request query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "team_join_requests_team_user_key") {
			return 0, apperrors.ErrAlreadyRequested
		}
		logger.Error().Err(err).Int64("teamID", req.TeamID).Int64("userID", req.UserID).Msg("Error executing create join request query")
		return 0, fmt.Errorf("error creating join request: %w", err)
	}
	return id, nil
}

// LinkJoinRequestChatTx records the chat thread and message spawned by a
// join request, inside the same transaction
func (r *TeamRepository) LinkJoinRequestChatTx(ctx context.Context, q Querier, requestID, threadID, messageID int64) error {
	sql, args, err := r.sb.Update("team_join_requests").
		Set("chat_thread_id", threadID).
		Set("chat_message_id", messageID).
		Where(squirrel.Eq{"id": requestID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build link join request query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error linking join request to chat: %w", err)
	}
	return nil
}

// ListJoinRequests retrieves the join requests on a team post
func (r *TeamRepository) ListJoinRequests(ctx context.Context, teamID int64) ([]models.TeamJoinRequest, error) {
	sql, args, err := r.sb.Select("id", "team_id", "user_id", "full_name", "email", "skills", "role", "bio", "resume_name", "chat_thread_id", "chat_message_id", "requested_at").
		From("team_join_requests").
		Where(squirrel.Eq{"team_id": teamID}).
		OrderBy("requested_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list join requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing join requests: %w", err)
	}
	defer rows.Close()

	var requests []models.TeamJoinRequest
	for rows.Next() {
		var req models.TeamJoinRequest
		err := rows.Scan(
			&req.ID, &req.TeamID, &req.UserID, &req.FullName, &req.Email,
			&req.Skills, &req.Role, &req.Bio, &req.ResumeName,
			&req.ChatThreadID, &req.ChatMessageID, &req.RequestedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning join request row: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// RequestedTeamIDs returns the IDs of teams the user already asked to join,
// limited to the given set
func (r *TeamRepository) RequestedTeamIDs(ctx context.Context, userID int64, teamIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(teamIDs))
	if len(teamIDs) == 0 {
		return result, nil
	}

	sql, args, err := r.sb.Select("team_id").
		From("team_join_requests").
		Where(squirrel.Eq{"user_id": userID, "team_id": teamIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build requested teams query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving requested teams: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var teamID int64
		if err := rows.Scan(&teamID); err != nil {
			return nil, fmt.Errorf("error scanning requested team row: %w", err)
		}
		result[teamID] = true
	}
	return result, rows.Err()
}

// Count returns the total number of team posts
func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM teams").Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting team posts: %w", err)
	}
	return total, nil
}

var teamColumns = []string{
	"id", "title", "description", "hackathon_name",
	"required_skills", "user_id", "user_name", "created_at",
}
