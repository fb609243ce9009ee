package dto

import (
	"encoding/json"
	"time"
)

// StartChatRequest opens (or finds) the thread with another user. The
// optional context fields identify the post the conversation was opened
// from; they are echoed back so the client can render a contextual banner.
type StartChatRequest struct {
	UserID          int64   `json:"userId" binding:"required" example:"42"`
	ContextPostID   *int64  `json:"contextPostId,omitempty"`
	ContextPostType *string `json:"contextPostType,omitempty" binding:"omitempty,oneof=lost_item team crew_call mentorship"`
	ContextPostName *string `json:"contextPostName,omitempty" binding:"omitempty,max=200"`
}

// ConversationResponse is one row of the caller's conversation list.
type ConversationResponse struct {
	ThreadID      int64     `json:"threadId"`
	ChatKey       string    `json:"chatKey" example:"17_42"`
	OtherUserID   int64     `json:"otherUserId"`
	OtherUserName string    `json:"otherUserName"`
	OtherPhotoURL *string   `json:"otherPhotoUrl,omitempty"`
	LastMessage   string    `json:"lastMessage"`
	TimeAgo       string    `json:"timeAgo" example:"5m ago"`
	Unread        bool      `json:"unread"`
	LastMessageAt time.Time `json:"lastMessageAt"`

	// Populated only when the conversation was opened from a post.
	ContextPostID   *int64  `json:"contextPostId,omitempty"`
	ContextPostType *string `json:"contextPostType,omitempty"`
	ContextPostName *string `json:"contextPostName,omitempty"`
}

// SendMessageRequest is the payload for a plain text message.
type SendMessageRequest struct {
	Body string `json:"body" binding:"required,min=1,max=4000"`
}

// ChatMessageResponse is the public representation of a message.
type ChatMessageResponse struct {
	ID              int64           `json:"id"`
	ThreadID        int64           `json:"threadId"`
	SenderID        int64           `json:"senderId"`
	ReceiverID      int64           `json:"receiverId"`
	SenderName      string          `json:"senderName"`
	ReceiverName    string          `json:"receiverName"`
	Type            string          `json:"type" example:"text"`
	Body            string          `json:"body"`
	Payload         json.RawMessage `json:"payload,omitempty"`
	ContextPostID   *int64          `json:"contextPostId,omitempty"`
	ContextPostType *string         `json:"contextPostType,omitempty"`
	ContextPostName *string         `json:"contextPostName,omitempty"`
	Read            bool            `json:"read"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// WSEventType enumerates the events pushed over a thread socket.
type WSEventType string

const (
	WSEventMessage WSEventType = "message"
	WSEventRead    WSEventType = "read"
)

// WSEvent is the envelope for messages fanned out over WebSocket.
type WSEvent struct {
	Type    WSEventType          `json:"type"`
	Message *ChatMessageResponse `json:"message,omitempty"`
}
