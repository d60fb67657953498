package entity

import (
	"github.com/uptrace/bun"
)

type Announcement struct {
	bun.BaseModel `bun:"table:announcement"`

	BasicEntity
	Title    *string `json:"title"    bun:"title"`
	Body     *string `json:"body"     bun:"body"`
	OfficeID *int    `json:"office_id,omitempty" bun:"office_id"`
	Pinned   *bool   `json:"pinned"   bun:"pinned"`
}
