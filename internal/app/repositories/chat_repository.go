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

// ChatRepository handles conversation and message database operations
type ChatRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// EnsureThreadTx finds or creates the thread for a participant pair.
// The insert races are settled by the chat_key unique constraint, so the
// loser of a concurrent create simply reads the winner's row.
func (r *ChatRepository) EnsureThreadTx(ctx context.Context, q Querier, chatKey string, participantLow, participantHigh int64) (*models.ChatThread, error) {
	insert := `
		INSERT INTO chat_threads (chat_key, participant_low, participant_high, last_message, last_message_at, created_at)
		VALUES ($1, $2, $3, '', $4, $4)
		ON CONFLICT ON CONSTRAINT chat_threads_chat_key_key DO NOTHING
		RETURNING id, chat_key, participant_low, participant_high, last_message, last_message_at, created_at
	`
	var thread models.ChatThread
	err := q.QueryRow(ctx, insert, chatKey, participantLow, participantHigh, time.Now()).Scan(
		&thread.ID, &thread.ChatKey, &thread.ParticipantLow, &thread.ParticipantHigh,
		&thread.LastMessage, &thread.LastMessageAt, &thread.CreatedAt,
	)
	if err == nil {
		return &thread, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("chatKey", chatKey).Msg("Error executing ensure thread query")
		return nil, fmt.Errorf("error creating chat thread: %w", err)
	}

	// Conflict path: the thread already exists
	return r.getThreadByKey(ctx, q, chatKey)
}

// GetThreadByID retrieves a thread by ID
func (r *ChatRepository) GetThreadByID(ctx context.Context, id int64) (*models.ChatThread, error) {
	sql, args, err := r.sb.Select(threadColumns...).
		From("chat_threads").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get thread query: %w", err)
	}

	var thread models.ChatThread
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&thread.ID, &thread.ChatKey, &thread.ParticipantLow, &thread.ParticipantHigh,
		&thread.LastMessage, &thread.LastMessageAt, &thread.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrThreadNotFound
		}
		return nil, fmt.Errorf("error retrieving chat thread: %w", err)
	}
	return &thread, nil
}

// ListThreadsForUser retrieves a user's conversations, most recent first
func (r *ChatRepository) ListThreadsForUser(ctx context.Context, userID int64) ([]models.ChatThread, error) {
	sql, args, err := r.sb.Select(threadColumns...).
		From("chat_threads").
		Where(squirrel.Or{
			squirrel.Eq{"participant_low": userID},
			squirrel.Eq{"participant_high": userID},
		}).
		OrderBy("last_message_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list threads query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing chat threads: %w", err)
	}
	defer rows.Close()

	var threads []models.ChatThread
	for rows.Next() {
		var thread models.ChatThread
		err := rows.Scan(
			&thread.ID, &thread.ChatKey, &thread.ParticipantLow, &thread.ParticipantHigh,
			&thread.LastMessage, &thread.LastMessageAt, &thread.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning thread row: %w", err)
		}
		threads = append(threads, thread)
	}
	return threads, rows.Err()
}

// CreateMessageTx inserts a message inside a transaction and returns its
// ID and creation time
func (r *ChatRepository) CreateMessageTx(ctx context.Context, q Querier, msg *models.ChatMessage) (int64, time.Time, error) {
	sql, args, err := r.sb.Insert("chat_messages").
		Columns("thread_id", "sender_id", "receiver_id", "sender_name", "receiver_name",
			"type", "body", "payload", "context_post_id", "context_post_type", "context_post_name",
			"read", "created_at").
		Values(msg.ThreadID, msg.SenderID, msg.ReceiverID, msg.SenderName, msg.ReceiverName,
			msg.Type, msg.Body, msg.Payload, msg.ContextPostID, msg.ContextPostType, msg.ContextPostName,
			false, time.Now()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to build create message query: %w", err)
	}

	var id int64
	var createdAt time.Time
	if err := q.QueryRow(ctx, sql, args...).Scan(&id, &createdAt); err != nil {
		logger.Error().Err(err).Int64("threadID", msg.ThreadID).Msg("Error executing create message query")
		return 0, time.Time{}, fmt.Errorf("error creating chat message: %w", err)
	}
	return id, createdAt, nil
}

// UpdateThreadPreviewTx refreshes the thread's last-message preview inside
// the same transaction as the message insert
func (r *ChatRepository) UpdateThreadPreviewTx(ctx context.Context, q Querier, threadID int64, preview string, at time.Time) error {
	sql, args, err := r.sb.Update("chat_threads").
		Set("last_message", preview).
		Set("last_message_at", at).
		Where(squirrel.Eq{"id": threadID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update preview query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating thread preview: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrThreadNotFound
	}
	return nil
}

// ListMessages retrieves a thread's messages oldest first
func (r *ChatRepository) ListMessages(ctx context.Context, threadID int64) ([]models.ChatMessage, error) {
	sql, args, err := r.sb.Select(messageColumns...).
		From("chat_messages").
		Where(squirrel.Eq{"thread_id": threadID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list messages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing chat messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var msg models.ChatMessage
		err := rows.Scan(
			&msg.ID, &msg.ThreadID, &msg.SenderID, &msg.ReceiverID,
			&msg.SenderName, &msg.ReceiverName, &msg.Type, &msg.Body, &msg.Payload,
			&msg.ContextPostID, &msg.ContextPostType, &msg.ContextPostName,
			&msg.Read, &msg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// MarkThreadRead marks every message addressed to the user in the thread
// as read, returning the number of messages affected
func (r *ChatRepository) MarkThreadRead(ctx context.Context, threadID, userID int64) (int64, error) {
	sql, args, err := r.sb.Update("chat_messages").
		Set("read", true).
		Where(squirrel.Eq{"thread_id": threadID, "receiver_id": userID, "read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build mark read query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error marking thread read: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// UnreadThreads reports, for the given threads, whether the user has any
// unread messages in them
func (r *ChatRepository) UnreadThreads(ctx context.Context, userID int64, threadIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(threadIDs))
	if len(threadIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT DISTINCT thread_id
		FROM chat_messages
		WHERE thread_id = ANY($1) AND receiver_id = $2 AND NOT read
	`
	rows, err := r.db.Query(ctx, query, threadIDs, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving unread threads: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var threadID int64
		if err := rows.Scan(&threadID); err != nil {
			return nil, fmt.Errorf("error scanning unread thread row: %w", err)
		}
		result[threadID] = true
	}
	return result, rows.Err()
}

func (r *ChatRepository) getThreadByKey(ctx context.Context, q Querier, chatKey string) (*models.ChatThread, error) {
	sql, args, err := r.sb.Select(threadColumns...).
		From("chat_threads").
		Where(squirrel.Eq{"chat_key": chatKey}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get thread by key query: %w", err)
	}

	var thread models.ChatThread
	err = q.QueryRow(ctx, sql, args...).Scan(
		&thread.ID, &thread.ChatKey, &thread.ParticipantLow, &thread.ParticipantHigh,
		&thread.LastMessage, &thread.LastMessageAt, &thread.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrThreadNotFound
		}
		return nil, fmt.Errorf("error retrieving chat thread: %w", err)
	}
	return &thread, nil
}

var threadColumns = []string{
	"id", "chat_key", "participant_low", "participant_high",
	"last_message", "last_message_at", "created_at",
}

var messageColumns = []string{
	"id", "thread_id", "sender_id", "receiver_id",
	"sender_name", "receiver_name", "type", "body", "payload",
	"context_post_id", "context_post_type", "context_post_name",
	"read", "created_at",
}
