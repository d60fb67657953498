package leavetype

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type GetListResponse struct {
	ID      int     `json:"id"`
	Name    *string `json:"name"`
	MaxDays *int    `json:"max_days"`
	Paid    *bool   `json:"paid"`
}

type GetDetailByIdResponse struct {
	ID      int     `json:"id"`
	Name    *string `json:"name"`
	MaxDays *int    `json:"max_days"`
	Paid    *bool   `json:"paid"`
}

type CreateRequest struct {
	Name    *string `json:"name" form:"name"`
	MaxDays *int    `json:"max_days" form:"max_days"`
	Paid    *bool   `json:"paid" form:"paid"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:leave_type"`

	ID        int       `json:"id" bun:"-"`
	Name      *string   `json:"name" bun:"name"`
	MaxDays   *int      `json:"max_days" bun:"max_days"`
	Paid      *bool     `json:"paid" bun:"paid"`
	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID      int     `json:"id" form:"id"`
	Name    *string `json:"name" form:"name"`
	MaxDays *int    `json:"max_days" form:"max_days"`
	Paid    *bool   `json:"paid" form:"paid"`
}
