package entity

import (
	"github.com/uptrace/bun"
)

type Capability struct {
	bun.BaseModel `bun:"table:capability"`

	BasicEntity
	Name        *string `json:"name"        bun:"name"`
	Description *string `json:"description" bun:"description"`
}
