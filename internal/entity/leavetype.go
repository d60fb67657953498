package entity

import (
	"github.com/uptrace/bun"
)

type LeaveType struct {
	bun.BaseModel `bun:"table:leave_type"`

	BasicEntity
	Name    *string `json:"name"     bun:"name"`
	MaxDays *int    `json:"max_days" bun:"max_days"`
	Paid    *bool   `json:"paid"     bun:"paid"`
}
