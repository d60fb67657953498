package position

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
}

type GetListResponse struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	OfficeID *int    `json:"office_id"`
	Office   *string `json:"office"`
}

type GetDetailByIdResponse struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	OfficeID *int    `json:"office_id"`
	Office   *string `json:"office"`
}

type CreateRequest struct {
	Name     *string `json:"name" form:"name"`
	OfficeID *int    `json:"office_id" form:"office_id"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:position"`

	ID        int       `json:"id" bun:"-"`
	Name      *string   `json:"name" bun:"name"`
	OfficeID  *int      `json:"office_id" bun:"office_id"`
	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID       int     `json:"id" form:"id"`
	Name     *string `json:"name" form:"name"`
	OfficeID *int    `json:"office_id" form:"office_id"`
}
