package dto

// DashboardStatsResponse counts the live activity across the boards.
type DashboardStatsResponse struct {
	LostItems   int64 `json:"lostItems"`
	TeamPosts   int64 `json:"teamPosts"`
	OpenCrews   int64 `json:"openCrews"`
	MentorSlots int64 `json:"mentorSlots"`
	Alerts      int64 `json:"alerts"`
}

// FeedItemResponse is one entry of the cross-board activity feed.
type FeedItemResponse struct {
	Kind     string `json:"kind" example:"team"`
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	UserName string `json:"userName"`
	TimeAgo  string `json:"timeAgo"`
}

// DashboardFeedResponse is the merged recent-activity feed.
type DashboardFeedResponse struct {
	Items []FeedItemResponse     `json:"items"`
	Stats DashboardStatsResponse `json:"stats"`
}
