package models

import "time"

// TeamPost represents a hackathon team looking for members
type TeamPost struct {
	ID             int64     `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	HackathonName  string    `json:"hackathonName" db:"hackathon_name"`
	RequiredSkills []string  `json:"requiredSkills" db:"required_skills"`
	UserID         int64     `json:"userId" db:"user_id"`
	UserName       string    `json:"userName" db:"user_name"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// TeamJoinRequest is an applicant's request to join a team. At most one
// request per user per team, enforced by the (team_id, user_id) key.
type TeamJoinRequest struct {
	ID            int64     `json:"id" db:"id"`
	TeamID        int64     `json:"teamId" db:"team_id"`
	UserID        int64     `json:"userId" db:"user_id"`
	FullName      string    `json:"fullName" db:"full_name"`
	Email         string    `json:"email" db:"email"`
	Skills        []string  `json:"skills" db:"skills"`
	Role          string    `json:"role" db:"role"`
	Bio           string    `json:"bio" db:"bio"`
	ResumeName    *string   `json:"resumeName,omitempty" db:"resume_name"`
	ChatThreadID  *int64    `json:"chatThreadId,omitempty" db:"chat_thread_id"`
	ChatMessageID *int64    `json:"chatMessageId,omitempty" db:"chat_message_id"`
	RequestedAt   time.Time `json:"requestedAt" db:"requested_at"`
}
