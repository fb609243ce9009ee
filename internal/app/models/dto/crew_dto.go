package dto

import "time"

// CreateCrewCallRequest is the payload for opening a recruitment call.
type CreateCrewCallRequest struct {
	ClubName    string   `json:"clubName" binding:"required,max=200" example:"Directorate of Student Affairs"`
	Title       string   `json:"title" binding:"required,min=2,max=200" example:"Film crew for convocation aftermovie"`
	Description string   `json:"description" binding:"max=2000"`
	Role        string   `json:"role" binding:"required,max=100" example:"Editor"`
	EventName   string   `json:"eventName" binding:"max=200" example:"Convocation 2026"`
	EventDate   string   `json:"eventDate" binding:"max=50" example:"2026-09-12"`
	Location    *string  `json:"location,omitempty" binding:"omitempty,max=200"`
	Skills      []string `json:"skills"`
	Deadline    *string  `json:"deadline,omitempty" binding:"omitempty,max=50" example:"2026-09-05"`
	ImageData   *string  `json:"imageData,omitempty"`
}

// CrewCallResponse is the public representation of a recruitment call.
type CrewCallResponse struct {
	ID             int64     `json:"id"`
	ClubName       string    `json:"clubName"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Role           string    `json:"role"`
	EventName      string    `json:"eventName"`
	EventDate      string    `json:"eventDate"`
	Location       *string   `json:"location,omitempty"`
	Skills         []string  `json:"skills"`
	Deadline       *string   `json:"deadline,omitempty"`
	Status         string    `json:"status" example:"open"`
	UserID         int64     `json:"userId"`
	UserName       string    `json:"userName"`
	ImageData      *string   `json:"imageData,omitempty"`
	Applicants     []int64   `json:"applicants"`
	ApplicantCount int       `json:"applicantCount"`
	Applied        bool      `json:"applied"`
	TimeAgo        string    `json:"timeAgo"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UpdateCrewCallRequest replaces the editable fields of a call. Status has
// its own endpoint.
type UpdateCrewCallRequest struct {
	ClubName    string   `json:"clubName" binding:"required,max=200"`
	Title       string   `json:"title" binding:"required,min=2,max=200"`
	Description string   `json:"description" binding:"max=2000"`
	Role        string   `json:"role" binding:"required,max=100"`
	EventName   string   `json:"eventName" binding:"max=200"`
	EventDate   string   `json:"eventDate" binding:"max=50"`
	Location    *string  `json:"location,omitempty" binding:"omitempty,max=200"`
	Skills      []string `json:"skills"`
	Deadline    *string  `json:"deadline,omitempty" binding:"omitempty,max=50"`
	ImageData   *string  `json:"imageData,omitempty"`
}

// ApplyCrewRequest is the payload for applying to a crew call. The
// applicant's name, email and skills are taken from their profile.
type ApplyCrewRequest struct {
	Experience string  `json:"experience" binding:"max=2000"`
	Message    string  `json:"message" binding:"max=2000"`
	ResumeName *string `json:"resumeName,omitempty" binding:"omitempty,max=255"`
}

// CrewApplicationResponse describes one application on a crew call.
type CrewApplicationResponse struct {
	ID         int64     `json:"id"`
	CrewCallID int64     `json:"crewCallId"`
	UserID     int64     `json:"userId"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	Skills     []string  `json:"skills"`
	Experience string    `json:"experience"`
	Message    string    `json:"message"`
	ResumeName *string   `json:"resumeName,omitempty"`
	AppliedAt  time.Time `json:"appliedAt"`
}

// UpdateCrewStatusRequest toggles a call between open and closed.
type UpdateCrewStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open closed" example:"closed"`
}
