package dto

import "time"

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-06-15T12:01:05.123Z"`
}

// NewSuccessResponse wraps payload data in the standard envelope.
func NewSuccessResponse(data interface{}) *APIResponse {
	return &APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// PaginationInfo holds paging metadata for list responses.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	PageSize    int   `json:"pageSize" example:"20"`
	TotalItems  int64 `json:"totalItems" example:"42"`
	TotalPages  int   `json:"totalPages" example:"3"`
}

// PaginatedResponse is a list payload with paging metadata.
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// MessageResponse is a simple acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}
