package models

import (
	"encoding/json"
	"time"
)

// ChatMessageType represents the type of chat message
type ChatMessageType string

const (
	ChatMessageTypeText            ChatMessageType = "text"
	ChatMessageTypeCrewApplication ChatMessageType = "crew_application"
	ChatMessageTypeTeamJoinRequest ChatMessageType = "team_join_request"
)

// ChatThread is a two-party conversation. Its chat_key is a pure function
// of the participant pair, so any two users share exactly one thread.
type ChatThread struct {
	ID              int64     `json:"id" db:"id"`
	ChatKey         string    `json:"chatKey" db:"chat_key"`
	ParticipantLow  int64     `json:"participantLow" db:"participant_low"`
	ParticipantHigh int64     `json:"participantHigh" db:"participant_high"`
	LastMessage     string    `json:"lastMessage" db:"last_message"`
	LastMessageAt   time.Time `json:"lastMessageAt" db:"last_message_at"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// OtherParticipant returns the participant that is not userID. The second
// return is false when userID is not part of the thread.
func (t *ChatThread) OtherParticipant(userID int64) (int64, bool) {
	switch userID {
	case t.ParticipantLow:
		return t.ParticipantHigh, true
	case t.ParticipantHigh:
		return t.ParticipantLow, true
	}
	return 0, false
}

// HasParticipant reports whether userID belongs to the thread
func (t *ChatThread) HasParticipant(userID int64) bool {
	return userID == t.ParticipantLow || userID == t.ParticipantHigh
}

// ChatMessage is a message in a thread. Structured messages carry a
// machine-readable payload alongside the rendered body, plus an optional
// originating-post reference used for contextual banners.
type ChatMessage struct {
	ID           int64           `json:"id" db:"id"`
	ThreadID     int64           `json:"threadId" db:"thread_id"`
	SenderID     int64           `json:"senderId" db:"sender_id"`
	ReceiverID   int64           `json:"receiverId" db:"receiver_id"`
	SenderName   string          `json:"senderName" db:"sender_name"`
	ReceiverName string          `json:"receiverName" db:"receiver_name"`
	Type         ChatMessageType `json:"type" db:"type"`
	Body         string          `json:"body" db:"body"`
	Payload      json.RawMessage `json:"payload,omitempty" db:"payload"`

	ContextPostID   *int64  `json:"contextPostId,omitempty" db:"context_post_id"`
	ContextPostType *string `json:"contextPostType,omitempty" db:"context_post_type"`
	ContextPostName *string `json:"contextPostName,omitempty" db:"context_post_name"`

	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
