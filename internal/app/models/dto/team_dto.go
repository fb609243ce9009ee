package dto

import "time"

// CreateTeamPostRequest is the payload for publishing a team-matching post.
type CreateTeamPostRequest struct {
	Title          string   `json:"title" binding:"required,min=2,max=200" example:"Need 2 for SIH"`
	Description    string   `json:"description" binding:"max=2000"`
	HackathonName  string   `json:"hackathonName" binding:"required,max=200" example:"Smart India Hackathon"`
	RequiredSkills []string `json:"requiredSkills" binding:"required,min=1"`
}

// TeamPostResponse is a team post annotated for the viewing user.
type TeamPostResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	HackathonName  string    `json:"hackathonName"`
	RequiredSkills []string  `json:"requiredSkills"`
	UserID         int64     `json:"userId"`
	UserName       string    `json:"userName"`
	MatchPercent   int       `json:"matchPercent" example:"67"`
	Requested      bool      `json:"requested"`
	TimeAgo        string    `json:"timeAgo" example:"3d ago"`
	CreatedAt      time.Time `json:"createdAt"`
}

// JoinTeamRequest is the payload for asking to join a team. The applicant's
// name, email and skills are taken from their profile.
type JoinTeamRequest struct {
	Role       string  `json:"role" binding:"max=100" example:"Backend"`
	Bio        string  `json:"bio" binding:"max=1000"`
	ResumeName *string `json:"resumeName,omitempty" binding:"omitempty,max=255" example:"jordan_das_resume.pdf"`
}

// TeamJoinRequestResponse describes one join request on a post.
type TeamJoinRequestResponse struct {
	ID          int64     `json:"id"`
	TeamID      int64     `json:"teamId"`
	UserID      int64     `json:"userId"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Skills      []string  `json:"skills"`
	Role        string    `json:"role"`
	Bio         string    `json:"bio"`
	ResumeName  *string   `json:"resumeName,omitempty"`
	RequestedAt time.Time `json:"requestedAt"`
}
