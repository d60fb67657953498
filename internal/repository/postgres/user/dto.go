package user

import (
	"mime/multipart"
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
	ProjectID  *int
}

type SignInRequest struct {
	EmployeeID string `json:"employee_id" form:"employee_id"`
	Password   string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	AccessToken  string `json:"access_token" form:"access_token"`
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type GetListResponse struct {
	ID         int     `json:"id"`
	EmployeeID *string `json:"employee_id"`
	FullName   *string `json:"full_name"`
	OfficeID   *int    `json:"office_id"`
	Office     *string `json:"office"`
	PositionID *int    `json:"position_id"`
	Position   *string `json:"position"`
	ProjectID  *int    `json:"project_id"`
	Project    *string `json:"project"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
}

type GetDetailByIdResponse struct {
	ID         int     `json:"id"`
	EmployeeID *string `json:"employee_id"`
	FullName   *string `json:"full_name"`
	Role       *string `json:"role"`
	OfficeID   *int    `json:"office_id"`
	Office     *string `json:"office"`
	PositionID *int    `json:"position_id"`
	Position   *string `json:"position"`
	ProjectID  *int    `json:"project_id"`
	Project    *string `json:"project"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
}

type CreateRequest struct {
	EmployeeID *string `json:"employee_id" form:"employee_id"`
	FullName   *string `json:"full_name" form:"full_name"`
	Password   *string `json:"password" form:"password"`
	Role       *string `json:"role" form:"role"`
	OfficeID   *int    `json:"office_id" form:"office_id"`
	PositionID *int    `json:"position_id" form:"position_id"`
	ProjectID  *int    `json:"project_id" form:"project_id"`
	Phone      *string `json:"phone" form:"phone"`
	Email      *string `json:"email" form:"email"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID         int       `json:"id" bun:"-"`
	EmployeeID *string   `json:"employee_id" bun:"employee_id"`
	FullName   *string   `json:"full_name" bun:"full_name"`
	Password   *string   `json:"-" bun:"password"`
	Role       *string   `json:"role" bun:"role"`
	OfficeID   *int      `json:"office_id" bun:"office_id"`
	PositionID *int      `json:"position_id" bun:"position_id"`
	ProjectID  *int      `json:"project_id" bun:"project_id"`
	Phone      *string   `json:"phone" bun:"phone"`
	Email      *string   `json:"email" bun:"email"`
	CreatedAt  time.Time `json:"-" bun:"created_at"`
	CreatedBy  int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID         int     `json:"id" form:"id"`
	EmployeeID *string `json:"employee_id" form:"employee_id"`
	FullName   *string `json:"full_name" form:"full_name"`
	Password   *string `json:"password" form:"password"`
	Role       *string `json:"role" form:"role"`
	OfficeID   *int    `json:"office_id" form:"office_id"`
	PositionID *int    `json:"position_id" form:"position_id"`
	ProjectID  *int    `json:"project_id" form:"project_id"`
	Phone      *string `json:"phone" form:"phone"`
	Email      *string `json:"email" form:"email"`
}

type ExcellRequest struct {
	Excell *multipart.FileHeader `json:"excell" form:"excell"`
	Mode   *string               `json:"mode" form:"mode"`
}

type ExcellResponse struct {
	CreatedCount   int   `json:"created_count"`
	IncompleteRows []int `json:"incomplete_rows"`
}

type DashboardResponse struct {
	FullName         *string `json:"full_name"`
	TodayIn          *string `json:"today_in"`
	TodayOut         *string `json:"today_out"`
	MonthPresentDays int     `json:"month_present_days"`
}

type StatisticRequest struct {
	Month    date.Date
	Interval int
}

type StatisticResponse struct {
	WorkDay   *date.Date `json:"work_day"`
	ComeTime  *string    `json:"come_time"`
	LeaveTime *string    `json:"leave_time"`
	Late      *bool      `json:"late"`
}

type MonthlyStatisticRequest struct {
	Month date.Date
}

type MonthlyStatisticResponse struct {
	PresentDays        *int `json:"present_days"`
	AbsentDays         *int `json:"absent_days"`
	LateDays           *int `json:"late_days"`
	EarlyDepartureDays *int `json:"early_departure_days"`
}

type ExportRow struct {
	EmployeeID string
	FullName   string
	Role       string
	Office     string
	Position   string
	Project    string
	Phone      string
	Email      string
}
