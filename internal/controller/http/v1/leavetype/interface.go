package leavetype

import (
	"context"

	"hrmis/backend/internal/repository/postgres/leavetype"
)

type LeaveType interface {
	GetList(ctx context.Context, filter leavetype.Filter) ([]leavetype.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (leavetype.GetDetailByIdResponse, error)
	Create(ctx context.Context, request leavetype.CreateRequest) (leavetype.CreateResponse, error)
	UpdateAll(ctx context.Context, request leavetype.UpdateRequest) error
	UpdateColumns(ctx context.Context, request leavetype.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
