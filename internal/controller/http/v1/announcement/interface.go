package announcement

import (
	"context"

	"hrmis/backend/internal/repository/postgres/announcement"
)

type Announcement interface {
	GetList(ctx context.Context, filter announcement.Filter) ([]announcement.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (announcement.GetDetailByIdResponse, error)
	Create(ctx context.Context, request announcement.CreateRequest) (announcement.CreateResponse, error)
	UpdateColumns(ctx context.Context, request announcement.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
