package dto

import "time"

// CreateLostItemRequest is the payload for reporting a lost or found item.
type CreateLostItemRequest struct {
	ItemName    string  `json:"itemName" binding:"required,min=2,max=200" example:"Black Lenovo charger"`
	Description string  `json:"description" binding:"max=2000"`
	Location    string  `json:"location" binding:"required,max=200" example:"Tech Park 9th floor"`
	Type        string  `json:"type" binding:"required,oneof=lost found" example:"lost"`
	ImageData   *string `json:"imageData,omitempty"`
}

// LostItemResponse is the public representation of a lost-and-found listing.
type LostItemResponse struct {
	ID          int64     `json:"id"`
	ItemName    string    `json:"itemName"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Type        string    `json:"type" example:"lost"`
	UserID      int64     `json:"userId"`
	UserName    string    `json:"userName"`
	ImageData   *string   `json:"imageData,omitempty"`
	TimeAgo     string    `json:"timeAgo" example:"2h ago"`
	CreatedAt   time.Time `json:"createdAt"`
}
