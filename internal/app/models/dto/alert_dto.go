package dto

import "time"

// CreateAlertRequest is the payload for publishing a campus alert.
type CreateAlertRequest struct {
	Title       string  `json:"title" binding:"required,min=2,max=200" example:"Course feedback closes tonight"`
	Description string  `json:"description" binding:"max=2000"`
	Type        string  `json:"type" binding:"required,oneof=event deadline announcement urgent recruitment" example:"deadline"`
	Date        *string `json:"date,omitempty" binding:"omitempty,max=50" example:"2026-09-01"`
}

// AlertResponse is the public representation of a campus alert.
type AlertResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type" example:"deadline"`
	Date        *string   `json:"date,omitempty" example:"2026-09-01"`
	DateLabel   string    `json:"dateLabel,omitempty" example:"Tomorrow"`
	UserID      int64     `json:"userId"`
	UserName    string    `json:"userName"`
	TimeAgo     string    `json:"timeAgo"`
	CreatedAt   time.Time `json:"createdAt"`
}
