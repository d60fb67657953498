package companyinfo

import (
	"mime/multipart"

	"github.com/uptrace/bun"
)

type GetInfoResponse struct {
	bun.BaseModel `bun:"table:company_info"`

	ID          int      `json:"id" bun:"id,pk"`
	CompanyName *string  `json:"company_name" bun:"company_name"`
	Url         *string  `json:"url" bun:"url"`
	StartTime   *string  `json:"start_time" bun:"start_time"`
	EndTime     *string  `json:"end_time" bun:"end_time"`
	LateTime    *string  `json:"late_time" bun:"late_time"`
	Latitude    *float64 `json:"latitude" bun:"latitude"`
	Longitude   *float64 `json:"longitude" bun:"longitude"`
	Radius      *float64 `json:"radius" bun:"radius"`
}

type UpdateRequest struct {
	ID          int                   `json:"id" form:"id"`
	CompanyName *string               `json:"company_name" form:"company_name"`
	Url         *string               `json:"url" form:"url"`
	Logo        *multipart.FileHeader `json:"-" form:"logo"`
	StartTime   *string  `json:"start_time" form:"start_time"`
	EndTime     *string  `json:"end_time" form:"end_time"`
	LateTime    *string  `json:"late_time" form:"late_time"`
	Latitude    *float64 `json:"latitude" form:"latitude"`
	Longitude   *float64 `json:"longitude" form:"longitude"`
	Radius      *float64 `json:"radius" form:"radius"`
}
