package entity

import (
	"github.com/uptrace/bun"
)

type Position struct {
	bun.BaseModel `bun:"table:position"`

	BasicEntity
	Name     *string `json:"name"     bun:"name"`
	OfficeID *int    `json:"office_id" bun:"office_id"`
}
