package entity

import (
	"github.com/uptrace/bun"
)

type Project struct {
	bun.BaseModel `bun:"table:project"`

	BasicEntity
	Name        *string `json:"name"        bun:"name"`
	Code        *string `json:"code"        bun:"code"`
	Description *string `json:"description" bun:"description"`
	Active      *bool   `json:"active"      bun:"active"`
}
