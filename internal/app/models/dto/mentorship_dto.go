package dto

import "time"

// CreateMentorSlotRequest is the payload for publishing availability.
type CreateMentorSlotRequest struct {
	Expertise   []string `json:"expertise" binding:"required,min=1" example:"Distributed Systems,Go"`
	Topic       string   `json:"topic" binding:"required,max=200" example:"System design walkthroughs"`
	Description string   `json:"description" binding:"max=2000"`
	Date        string   `json:"date" binding:"required,max=50" example:"2026-09-03"`
	Time        string   `json:"time" binding:"required,max=50" example:"17:00"`
	Year        *string  `json:"year,omitempty" binding:"omitempty,max=20" example:"Final year"`
	Department  *string  `json:"department,omitempty" binding:"omitempty,max=100" example:"CSE"`
	Bio         *string  `json:"bio,omitempty" binding:"omitempty,max=1000"`
}

// MentorSlotResponse is the public representation of a mentor slot.
// A booked slot is labeled pending in the mentor's own request view.
type MentorSlotResponse struct {
	ID             int64     `json:"id"`
	MentorID       int64     `json:"mentorId"`
	MentorName     string    `json:"mentorName"`
	Expertise      []string  `json:"expertise"`
	Topic          string    `json:"topic"`
	Description    string    `json:"description"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Year           *string   `json:"year,omitempty"`
	Department     *string   `json:"department,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	Status         string    `json:"status" example:"available"`
	BookedBy       *int64    `json:"bookedBy,omitempty"`
	BookedByName   *string   `json:"bookedByName,omitempty"`
	BookedDuration *int      `json:"bookedDuration,omitempty" example:"30"`
	BookedSlot     *string   `json:"bookedSlot,omitempty" example:"17:30"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BookSlotRequest is the payload for requesting a session on a slot.
type BookSlotRequest struct {
	Duration int    `json:"duration" binding:"required,min=5,max=180" example:"30"`
	Slot     string `json:"slot" binding:"required,max=50" example:"17:30"`
}
