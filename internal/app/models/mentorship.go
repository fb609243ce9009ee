package models

import "time"

// MentorSlotStatus tracks the booking lifecycle of a slot:
// available -> booked (student request) -> confirmed (mentor accept),
// with decline clearing the booker and returning the slot to available.
type MentorSlotStatus string

const (
	MentorSlotAvailable MentorSlotStatus = "available"
	MentorSlotBooked    MentorSlotStatus = "booked"
	MentorSlotConfirmed MentorSlotStatus = "confirmed"
	MentorSlotCompleted MentorSlotStatus = "completed"
)

// MentorSlot is a mentor-declared unit of available time, bookable by
// exactly one student at a time.
type MentorSlot struct {
	ID          int64            `json:"id" db:"id"`
	MentorID    int64            `json:"mentorId" db:"mentor_id"`
	MentorName  string           `json:"mentorName" db:"mentor_name"`
	Expertise   []string         `json:"expertise" db:"expertise"`
	Topic       string           `json:"topic" db:"topic"`
	Description string           `json:"description" db:"description"`
	Date        string           `json:"date" db:"date"`
	Time        string           `json:"time" db:"time"`
	Year        *string          `json:"year,omitempty" db:"year"`
	Department  *string          `json:"department,omitempty" db:"department"`
	Bio         *string          `json:"bio,omitempty" db:"bio"`
	Status      MentorSlotStatus `json:"status" db:"status"`

	// Booking fields, set while a slot is booked or confirmed
	BookedBy       *int64  `json:"bookedBy,omitempty" db:"booked_by"`
	BookedByName   *string `json:"bookedByName,omitempty" db:"booked_by_name"`
	BookedDuration *int    `json:"bookedDuration,omitempty" db:"booked_duration"`
	BookedSlot     *string `json:"bookedSlot,omitempty" db:"booked_slot"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
