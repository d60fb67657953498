package entity

import (
	"github.com/uptrace/bun"
)

type Office struct {
	bun.BaseModel `bun:"table:office"`

	BasicEntity
	Name     *string `json:"name"     bun:"name"`
	Location *string `json:"location" bun:"location"`
}
