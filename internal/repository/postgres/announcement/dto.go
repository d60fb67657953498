package announcement

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit    *int
	Offset   *int
	Page     *int
	Search   *string
	OfficeID *int
	Pinned   *bool
}

type GetListResponse struct {
	ID       int     `json:"id"`
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	OfficeID *int    `json:"office_id"`
	Office   *string `json:"office"`
	Pinned   *bool   `json:"pinned"`
}

type GetDetailByIdResponse struct {
	ID       int     `json:"id"`
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	OfficeID *int    `json:"office_id"`
	Office   *string `json:"office"`
	Pinned   *bool   `json:"pinned"`
}

type CreateRequest struct {
	Title    *string `json:"title" form:"title"`
	Body     *string `json:"body" form:"body"`
	OfficeID *int    `json:"office_id" form:"office_id"`
	Pinned   *bool   `json:"pinned" form:"pinned"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:announcement"`

	ID        int       `json:"id" bun:"-"`
	Title     *string   `json:"title" bun:"title"`
	Body      *string   `json:"body" bun:"body"`
	OfficeID  *int      `json:"office_id" bun:"office_id"`
	Pinned    *bool     `json:"pinned" bun:"pinned"`
	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID       int     `json:"id" form:"id"`
	Title    *string `json:"title" form:"title"`
	Body     *string `json:"body" form:"body"`
	OfficeID *int    `json:"office_id" form:"office_id"`
	Pinned   *bool   `json:"pinned" form:"pinned"`
}
