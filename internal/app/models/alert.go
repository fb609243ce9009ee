package models

import "time"

// AlertType categorizes campus alerts
type AlertType string

const (
	AlertTypeEvent        AlertType = "event"
	AlertTypeDeadline     AlertType = "deadline"
	AlertTypeAnnouncement AlertType = "announcement"
	AlertTypeUrgent       AlertType = "urgent"
	AlertTypeRecruitment  AlertType = "recruitment"
)

// ValidAlertType reports whether t is a known alert category
func ValidAlertType(t AlertType) bool {
	switch t {
	case AlertTypeEvent, AlertTypeDeadline, AlertTypeAnnouncement, AlertTypeUrgent, AlertTypeRecruitment:
		return true
	}
	return false
}

// Alert is an append-only campus announcement
type Alert struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Type        AlertType `json:"type" db:"type"`
	Date        *string   `json:"date,omitempty" db:"date"`
	UserID      int64     `json:"userId" db:"user_id"`
	UserName    string    `json:"userName" db:"user_name"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
