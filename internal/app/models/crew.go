package models

import "time"

// CrewCallStatus marks whether a crew call accepts applications
type CrewCallStatus string

const (
	CrewCallStatusOpen   CrewCallStatus = "open"
	CrewCallStatusClosed CrewCallStatus = "closed"
)

// CrewCall represents a club recruitment post tied to an event
type CrewCall struct {
	ID          int64          `json:"id" db:"id"`
	ClubName    string         `json:"clubName" db:"club_name"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Role        string         `json:"role" db:"role"`
	EventName   string         `json:"eventName" db:"event_name"`
	EventDate   string         `json:"eventDate" db:"event_date"`
	Location    *string        `json:"location,omitempty" db:"location"`
	Skills      []string       `json:"skills" db:"skills"`
	Deadline    *string        `json:"deadline,omitempty" db:"deadline"`
	UserID      int64          `json:"userId" db:"user_id"`
	ImageData   *string        `json:"imageData,omitempty" db:"image_data"`
	Status      CrewCallStatus `json:"status" db:"status"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`

	// ApplicantIDs is derived from the applications table on read
	ApplicantIDs []int64 `json:"applicants,omitempty"`
}

// CrewApplication is a user's application to a crew call, keyed by the
// (crew_call_id, user_id) pair so a user can apply at most once.
type CrewApplication struct {
	ID            int64     `json:"id" db:"id"`
	CrewCallID    int64     `json:"crewCallId" db:"crew_call_id"`
	UserID        int64     `json:"userId" db:"user_id"`
	FullName      string    `json:"fullName" db:"full_name"`
	Email         string    `json:"email" db:"email"`
	Skills        []string  `json:"skills" db:"skills"`
	Experience    string    `json:"experience" db:"experience"`
	Message       string    `json:"message" db:"message"`
	ResumeName    *string   `json:"resumeName,omitempty" db:"resume_name"`
	ChatThreadID  *int64    `json:"chatThreadId,omitempty" db:"chat_thread_id"`
	ChatMessageID *int64    `json:"chatMessageId,omitempty" db:"chat_message_id"`
	AppliedAt     time.Time `json:"appliedAt" db:"applied_at"`
}
