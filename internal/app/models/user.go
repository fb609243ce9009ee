package models

import (
	"time"
)

// Role is the campus role attached to a profile
type Role string

const (
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
	RoleClub    Role = "club"
)

// ValidRole reports whether r is one of the known roles
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleMentor, RoleClub:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table. The profile is
// created at sign-up with role student and empty skills, mutated only by
// its owner, and never deleted by the app.
type User struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Email       string    `json:"email" db:"email" example:"student@srmist.edu.in"`
	Password    string    `json:"-" db:"password"`
	Name        string    `json:"name" db:"name" example:"Riya Sharma"`
	Role        Role      `json:"role" db:"role" example:"student"`
	Skills      []string  `json:"skills" db:"skills"`
	GithubURL   *string   `json:"githubUrl,omitempty" db:"github_url"`
	LinkedinURL *string   `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	PhotoURL    *string   `json:"photoUrl,omitempty" db:"photo_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
