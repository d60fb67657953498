package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type Notification struct {
	bun.BaseModel `bun:"table:notification"`

	BasicEntity
	UserID         *int       `json:"user_id" bun:"user_id"`
	AnnouncementID *int       `json:"announcement_id,omitempty" bun:"announcement_id"`
	Title          *string    `json:"title"   bun:"title"`
	Body           *string    `json:"body"    bun:"body"`
	ReadAt         *time.Time `json:"read_at,omitempty" bun:"read_at"`
}
