package notification

import "time"

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Unread *bool
}

type GetListResponse struct {
	ID             int        `json:"id"`
	AnnouncementID *int       `json:"announcement_id"`
	Title          *string    `json:"title"`
	Body           *string    `json:"body"`
	ReadAt         *time.Time `json:"read_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

type MarkReadRequest struct {
	ID int `json:"id" form:"id"`
}
