package office

import (
	"context"

	"hrmis/backend/internal/repository/postgres/office"
)

type Office interface {
	GetList(ctx context.Context, filter office.Filter) ([]office.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (office.GetDetailByIdResponse, error)
	Create(ctx context.Context, request office.CreateRequest) (office.CreateResponse, error)
	UpdateAll(ctx context.Context, request office.UpdateRequest) error
	UpdateColumns(ctx context.Context, request office.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
