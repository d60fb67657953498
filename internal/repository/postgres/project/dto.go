package project

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
	Active *bool
}

type GetListResponse struct {
	ID          int     `json:"id"`
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

type GetDetailByIdResponse struct {
	ID          int     `json:"id"`
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

type CreateRequest struct {
	Name        *string `json:"name" form:"name"`
	Code        *string `json:"code" form:"code"`
	Description *string `json:"description" form:"description"`
	Active      *bool   `json:"active" form:"active"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:project"`

	ID          int       `json:"id" bun:"-"`
	Name        *string   `json:"name" bun:"name"`
	Code        *string   `json:"code" bun:"code"`
	Description *string   `json:"description" bun:"description"`
	Active      *bool     `json:"active" bun:"active"`
	CreatedAt   time.Time `json:"-" bun:"created_at"`
	CreatedBy   int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID          int     `json:"id" form:"id"`
	Name        *string `json:"name" form:"name"`
	Code        *string `json:"code" form:"code"`
	Description *string `json:"description" form:"description"`
	Active      *bool   `json:"active" form:"active"`
}
