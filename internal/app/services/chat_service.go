package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/thequad/api/internal/app/models"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/app/repositories"
	"github.com/thequad/api/internal/db"
	"github.com/thequad/api/internal/pkg/apperrors"
	"github.com/thequad/api/internal/pkg/chatkey"
	"github.com/thequad/api/internal/pkg/helpers"
	"github.com/thequad/api/internal/pkg/websocket"
)

// Thread previews keep the first 100 characters of the latest message
const previewLimit = 100

// ChatService defines the interface for conversation operations
type ChatService interface {
	StartChat(ctx context.Context, userID int64, req *dto.StartChatRequest) (*dto.ConversationResponse, error)
	ListConversations(ctx context.Context, userID int64) ([]dto.ConversationResponse, error)
	GetMessages(ctx context.Context, userID, threadID int64) ([]dto.ChatMessageResponse, error)
	SendText(ctx context.Context, userID, threadID int64, body string) (*dto.ChatMessageResponse, error)
	MarkRead(ctx context.Context, userID, threadID int64) error

	// DeliverText lets websocket clients push messages through the same
	// persistence path as the REST endpoint
	DeliverText(ctx context.Context, threadID, senderID int64, body string) error

	// PostStructuredTx writes a structured message (and its thread) inside
	// the caller's transaction. The returned response must be broadcast
	// with Broadcast once the transaction commits.
	PostStructuredTx(ctx context.Context, tx pgx.Tx, sender, receiver *models.User, msgType models.ChatMessageType, body string, payload interface{}, contextPostID int64, contextPostType, contextPostName string) (*dto.ChatMessageResponse, error)

	// Broadcast fans a stored message out to the thread's live sockets
	Broadcast(msg *dto.ChatMessageResponse)
}

// chatServiceImpl implements ChatService
type chatServiceImpl struct {
	chatRepo *repositories.ChatRepository
	userRepo *repositories.UserRepository
	database *db.PostgresDB
	hub      *websocket.Hub
	logger   zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(
	chatRepo *repositories.ChatRepository,
	userRepo *repositories.UserRepository,
	database *db.PostgresDB,
	hub *websocket.Hub,
	logger zerolog.Logger,
) ChatService {
	return &chatServiceImpl{
		chatRepo: chatRepo,
		userRepo: userRepo,
		database: database,
		hub:      hub,
		logger:   logger,
	}
}

// StartChat finds or creates the conversation between the caller and
// another user. Starting an already-existing conversation returns it.
func (s *chatServiceImpl) StartChat(ctx context.Context, userID int64, req *dto.StartChatRequest) (*dto.ConversationResponse, error) {
	if userID == req.UserID {
		return nil, apperrors.ErrSelfConversation
	}

	other, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var thread *models.ChatThread
	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		low, high := chatkey.Pair(userID, req.UserID)
		thread, err = s.chatRepo.EnsureThreadTx(ctx, tx, chatkey.Derive(userID, req.UserID), low, high)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := s.threadToConversation(thread, userID, other, false)
	resp.ContextPostID = req.ContextPostID
	resp.ContextPostType = req.ContextPostType
	resp.ContextPostName = req.ContextPostName
	return &resp, nil
}

// ListConversations returns the caller's conversations, most recent first
func (s *chatServiceImpl) ListConversations(ctx context.Context, userID int64) ([]dto.ConversationResponse, error) {
	threads, err := s.chatRepo.ListThreadsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	otherIDs := make([]int64, 0, len(threads))
	threadIDs := make([]int64, 0, len(threads))
	for i := range threads {
		otherID, ok := threads[i].OtherParticipant(userID)
		if !ok {
			continue
		}
		otherIDs = append(otherIDs, otherID)
		threadIDs = append(threadIDs, threads[i].ID)
	}

	users, err := s.userRepo.ListUsersByIDs(ctx, otherIDs)
	if err != nil {
		return nil, err
	}
	unread, err := s.chatRepo.UnreadThreads(ctx, userID, threadIDs)
	if err != nil {
		return nil, err
	}

	conversations := make([]dto.ConversationResponse, 0, len(threads))
	for i := range threads {
		otherID, ok := threads[i].OtherParticipant(userID)
		if !ok {
			continue
		}
		conversations = append(conversations, s.threadToConversation(&threads[i], userID, users[otherID], unread[threads[i].ID]))
	}
	return conversations, nil
}

// GetMessages returns a thread's messages oldest first, marking the
// caller's inbound messages as read
func (s *chatServiceImpl) GetMessages(ctx context.Context, userID, threadID int64) ([]dto.ChatMessageResponse, error) {
	if _, err := s.authorizedThread(ctx, userID, threadID); err != nil {
		return nil, err
	}

	messages, err := s.chatRepo.ListMessages(ctx, threadID)
	if err != nil {
		return nil, err
	}

	// Opening the thread counts as reading it
	if _, err := s.chatRepo.MarkThreadRead(ctx, threadID, userID); err != nil {
		s.logger.Warn().Err(err).Int64("threadID", threadID).Msg("Failed to mark thread read")
	}

	responses := make([]dto.ChatMessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, messageToResponse(&messages[i]))
	}
	return responses, nil
}

// SendText persists a plain text message and fans it out to the thread
func (s *chatServiceImpl) SendText(ctx context.Context, userID, threadID int64, body string) (*dto.ChatMessageResponse, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperrors.NewBadRequestError("Message body cannot be empty")
	}

	thread, err := s.authorizedThread(ctx, userID, threadID)
	if err != nil {
		return nil, err
	}
	receiverID, _ := thread.OtherParticipant(userID)

	users, err := s.userRepo.ListUsersByIDs(ctx, []int64{userID, receiverID})
	if err != nil {
		return nil, err
	}
	sender, receiver := users[userID], users[receiverID]
	if sender == nil || receiver == nil {
		return nil, apperrors.ErrUserNotFound
	}

	msg := &models.ChatMessage{
		ThreadID:     threadID,
		SenderID:     userID,
		ReceiverID:   receiverID,
		SenderName:   sender.Name,
		ReceiverName: receiver.Name,
		Type:         models.ChatMessageTypeText,
		Body:         body,
	}

	// Message insert and preview bump commit or roll back together
	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, createdAt, err := s.chatRepo.CreateMessageTx(ctx, tx, msg)
		if err != nil {
			return err
		}
		msg.ID = id
		msg.CreatedAt = createdAt
		return s.chatRepo.UpdateThreadPreviewTx(ctx, tx, threadID, messagePreview(body), createdAt)
	})
	if err != nil {
		return nil, err
	}

	resp := messageToResponse(msg)
	s.Broadcast(&resp)
	return &resp, nil
}

// MarkRead marks every message addressed to the caller in the thread as read
func (s *chatServiceImpl) MarkRead(ctx context.Context, userID, threadID int64) error {
	if _, err := s.authorizedThread(ctx, userID, threadID); err != nil {
		return err
	}
	_, err := s.chatRepo.MarkThreadRead(ctx, threadID, userID)
	return err
}

// DeliverText implements websocket.MessageSink
func (s *chatServiceImpl) DeliverText(ctx context.Context, threadID, senderID int64, body string) error {
	_, err := s.SendText(ctx, senderID, threadID, body)
	return err
}

// PostStructuredTx ensures the sender/receiver thread and writes a
// structured message into it, all inside the caller's transaction
func (s *chatServiceImpl) PostStructuredTx(ctx context.Context, tx pgx.Tx, sender, receiver *models.User, msgType models.ChatMessageType, body string, payload interface{}, contextPostID int64, contextPostType, contextPostName string) (*dto.ChatMessageResponse, error) {
	low, high := chatkey.Pair(sender.ID, receiver.ID)
	thread, err := s.chatRepo.EnsureThreadTx(ctx, tx, chatkey.Derive(sender.ID, receiver.ID), low, high)
	if err != nil {
		return nil, err
	}

	var rawPayload json.RawMessage
	if payload != nil {
		rawPayload, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message payload: %w", err)
		}
	}

	msg := &models.ChatMessage{
		ThreadID:        thread.ID,
		SenderID:        sender.ID,
		ReceiverID:      receiver.ID,
		SenderName:      sender.Name,
		ReceiverName:    receiver.Name,
		Type:            msgType,
		Body:            body,
		Payload:         rawPayload,
		ContextPostID:   &contextPostID,
		ContextPostType: &contextPostType,
		ContextPostName: &contextPostName,
	}

	id, createdAt, err := s.chatRepo.CreateMessageTx(ctx, tx, msg)
	if err != nil {
		return nil, err
	}
	msg.ID = id
	msg.CreatedAt = createdAt

	if err := s.chatRepo.UpdateThreadPreviewTx(ctx, tx, thread.ID, messagePreview(body), createdAt); err != nil {
		return nil, err
	}

	resp := messageToResponse(msg)
	return &resp, nil
}

// Broadcast fans a stored message out to the thread's live sockets
func (s *chatServiceImpl) Broadcast(msg *dto.ChatMessageResponse) {
	event := dto.WSEvent{Type: dto.WSEventMessage, Message: msg}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error().Err(err).Int64("threadID", msg.ThreadID).Msg("Failed to marshal websocket event")
		return
	}
	s.hub.Broadcast(msg.ThreadID, payload)
}

// authorizedThread loads a thread and verifies the caller participates in it
func (s *chatServiceImpl) authorizedThread(ctx context.Context, userID, threadID int64) (*models.ChatThread, error) {
	thread, err := s.chatRepo.GetThreadByID(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if !thread.HasParticipant(userID) {
		return nil, apperrors.ErrNotThreadParticipant
	}
	return thread, nil
}

func (s *chatServiceImpl) threadToConversation(thread *models.ChatThread, userID int64, other *models.User, unread bool) dto.ConversationResponse {
	conv := dto.ConversationResponse{
		ThreadID:      thread.ID,
		ChatKey:       thread.ChatKey,
		LastMessage:   thread.LastMessage,
		TimeAgo:       helpers.TimeAgo(thread.LastMessageAt, timeNow()),
		Unread:        unread,
		LastMessageAt: thread.LastMessageAt,
	}
	if otherID, ok := thread.OtherParticipant(userID); ok {
		conv.OtherUserID = otherID
	}
	if other != nil {
		conv.OtherUserName = other.Name
		conv.OtherPhotoURL = other.PhotoURL
	}
	return conv
}

// messagePreview truncates a body to the thread preview length
func messagePreview(body string) string {
	runes := []rune(body)
	if len(runes) <= previewLimit {
		return body
	}
	return string(runes[:previewLimit])
}

func messageToResponse(msg *models.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		ID:              msg.ID,
		ThreadID:        msg.ThreadID,
		SenderID:        msg.SenderID,
		ReceiverID:      msg.ReceiverID,
		SenderName:      msg.SenderName,
		ReceiverName:    msg.ReceiverName,
		Type:            string(msg.Type),
		Body:            msg.Body,
		Payload:         msg.Payload,
		ContextPostID:   msg.ContextPostID,
		ContextPostType: msg.ContextPostType,
		ContextPostName: msg.ContextPostName,
		Read:            msg.Read,
		CreatedAt:       msg.CreatedAt,
	}
}

// formatCrewApplicationBody renders a crew application into the chat body
// shown to the call owner
func formatCrewApplicationBody(app *models.CrewApplication, crewCallTitle string) string {
	var b strings.Builder
	b.WriteString("📋 **New Crew Call Application**\n\n")
	fmt.Fprintf(&b, "**Position:** %s\n", crewCallTitle)
	fmt.Fprintf(&b, "**Name:** %s\n", app.FullName)
	fmt.Fprintf(&b, "**Email:** %s\n", app.Email)
	fmt.Fprintf(&b, "**Skills:** %s\n\n", strings.Join(app.Skills, ", "))
	if app.Experience != "" {
		fmt.Fprintf(&b, "**Experience:**\n%s\n\n", app.Experience)
	}
	fmt.Fprintf(&b, "**Message:**\n%s", app.Message)
	if app.ResumeName != nil && *app.ResumeName != "" {
		b.WriteString("\n\n📎 Resume attached")
	}
	return b.String()
}

// formatTeamJoinBody renders a join request into the chat body shown to
// the team owner
func formatTeamJoinBody(req *models.TeamJoinRequest, teamName string) string {
	var b strings.Builder
	b.WriteString("🤝 **Team Join Request**\n\n")
	fmt.Fprintf(&b, "**Team:** %s\n", teamName)
	fmt.Fprintf(&b, "**Name:** %s\n", req.FullName)
	fmt.Fprintf(&b, "**Email:** %s\n", req.Email)
	fmt.Fprintf(&b, "**Preferred Role:** %s\n", req.Role)
	fmt.Fprintf(&b, "**Skills:** %s\n\n", strings.Join(req.Skills, ", "))
	fmt.Fprintf(&b, "**About:**\n%s", req.Bio)
	if req.ResumeName != nil && *req.ResumeName != "" {
		b.WriteString("\n\n📎 Resume attached")
	}
	return b.String()
}
