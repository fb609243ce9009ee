package dto

import "time"

// UserResponse is the public representation of a user account.
type UserResponse struct {
	ID          int64     `json:"id" example:"17"`
	Email       string    `json:"email" example:"jd1234@srmist.edu.in"`
	Name        string    `json:"name" example:"Jordan Das"`
	Role        string    `json:"role" example:"student"`
	Skills      []string  `json:"skills"`
	GithubURL   *string   `json:"githubUrl,omitempty"`
	LinkedinURL *string   `json:"linkedinUrl,omitempty"`
	PhotoURL    *string   `json:"photoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UpdateProfileRequest is the payload for editing the caller's profile.
// Pointer fields distinguish "not sent" from "clear this value".
type UpdateProfileRequest struct {
	Name        *string   `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Role        *string   `json:"role,omitempty" binding:"omitempty,oneof=student mentor club"`
	Skills      *[]string `json:"skills,omitempty"`
	GithubURL   *string   `json:"githubUrl,omitempty" binding:"omitempty,max=255"`
	LinkedinURL *string   `json:"linkedinUrl,omitempty" binding:"omitempty,max=255"`
}

// AvatarResponse carries the URL of an uploaded profile photo.
type AvatarResponse struct {
	PhotoURL string `json:"photoUrl" example:"/uploads/avatars/17_a1b2c3.png"`
}
