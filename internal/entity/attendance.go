package entity

import (
	"github.com/uptrace/bun"
)

// AttendanceEvent is one raw punch from a check-in device: a work day, a
// time-of-day and the device's state label ("check in" / "check out"). DTR
// sheets are derived from these rows, never stored.
type AttendanceEvent struct {
	bun.BaseModel `bun:"table:attendance_event"`

	BasicEntity
	UserID    *int     `json:"user_id" bun:"user_id"`
	WorkDay   *string  `json:"work_day" bun:"work_day"`
	EventTime *string  `json:"event_time" bun:"event_time"`
	State     *string  `json:"state" bun:"state"`
	Latitude  *float64 `json:"latitude,omitempty" bun:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" bun:"longitude"`
	Source    *string  `json:"source,omitempty" bun:"source"`
}
