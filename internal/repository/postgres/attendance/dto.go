package attendance

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit      *int
	Offset     *int
	Page       *int
	Search     *string
	OfficeID   *int
	PositionID *int
	UserID     *int
	Date       *string
	State      *string
}

type GetListResponse struct {
	ID         int        `json:"id"`
	UserID     int        `json:"user_id"`
	EmployeeID string     `json:"employee_id"`
	FullName   string     `json:"full_name"`
	OfficeID   *int       `json:"office_id"`
	Office     *string    `json:"office"`
	PositionID *int       `json:"position_id"`
	Position   *string    `json:"position"`
	WorkDay    *date.Date `json:"work_day"`
	EventTime  string     `json:"event_time"`
	State      string     `json:"state"`
	Source     *string    `json:"source"`
}

type GetDetailByIdResponse struct {
	ID         int        `json:"id"`
	UserID     int        `json:"user_id"`
	EmployeeID string     `json:"employee_id"`
	FullName   string     `json:"full_name"`
	WorkDay    *date.Date `json:"work_day"`
	EventTime  string     `json:"event_time"`
	State      string     `json:"state"`
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
	Source     *string    `json:"source"`
}

type CreateRequest struct {
	EmployeeID *string  `json:"employee_id" form:"employee_id"`
	State      *string  `json:"state" form:"state"`
	Latitude   *float64 `json:"latitude" form:"latitude"`
	Longitude  *float64 `json:"longitude" form:"longitude"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:attendance_event"`

	ID        int       `json:"id" bun:"-"`
	UserID    int       `json:"user_id" bun:"user_id"`
	WorkDay   string    `json:"work_day" bun:"work_day"`
	EventTime string    `json:"event_time" bun:"event_time"`
	State     string    `json:"state" bun:"state"`
	Latitude  *float64  `json:"latitude" bun:"latitude"`
	Longitude *float64  `json:"longitude" bun:"longitude"`
	Source    string    `json:"source" bun:"source"`
	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID        int     `json:"id" form:"id"`
	WorkDay   *string `json:"work_day" form:"work_day"`
	EventTime *string `json:"event_time" form:"event_time"`
	State     *string `json:"state" form:"state"`
}

type Geofence struct {
	Latitude  float64
	Longitude float64
	Radius    float64
}

type HistoryFilter struct {
	Month date.Date
}

type HistoryRow struct {
	ID        int        `json:"id"`
	WorkDay   *date.Date `json:"work_day"`
	EventTime string     `json:"event_time"`
	State     string     `json:"state"`
	Source    *string    `json:"source"`
}

type GetStatisticResponse struct {
	TotalEmployee  *int `json:"total_employee"`
	Present        *int `json:"present"`
	Absent         *int `json:"absent"`
	OnTime         *int `json:"on_time"`
	LateArrival    *int `json:"late_arrival"`
	EarlyDeparture *int `json:"early_departure"`
}

type PieChartResponse struct {
	Come   *int `json:"come"`
	Absent *int `json:"absent"`
}

type BarChartResponse struct {
	Office     *string  `json:"office"`
	Percentage *float64 `json:"percentage"`
}

type GraphRequest struct {
	Month    date.Date
	Interval int
}

type GraphResponse struct {
	WorkDay    *date.Date `json:"work_day"`
	Percentage *float64   `json:"percentage"`
}
