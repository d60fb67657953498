package capability

import (
	"context"

	"hrmis/backend/internal/repository/postgres/capability"
)

type Capability interface {
	GetList(ctx context.Context, filter capability.Filter) ([]capability.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (capability.GetDetailByIdResponse, error)
	Create(ctx context.Context, request capability.CreateRequest) (capability.CreateResponse, error)
	UpdateAll(ctx context.Context, request capability.UpdateRequest) error
	UpdateColumns(ctx context.Context, request capability.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
