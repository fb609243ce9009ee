package models

import "time"

// LostItemType distinguishes lost reports from found reports
type LostItemType string

const (
	LostItemTypeLost  LostItemType = "lost"
	LostItemTypeFound LostItemType = "found"
)

// LostItem represents a lost-and-found listing. Items are created by any
// authenticated user and deletable only by their owner; there is no edit
// path.
type LostItem struct {
	ID          int64        `json:"id" db:"id"`
	ItemName    string       `json:"itemName" db:"item_name"`
	Description string       `json:"description" db:"description"`
	Location    string       `json:"location" db:"location"`
	Type        LostItemType `json:"type" db:"type"`
	UserID      int64        `json:"userId" db:"user_id"`
	// ImageData holds the inlined compressed image (data URL), if any
	ImageData *string   `json:"imageData,omitempty" db:"image_data"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
