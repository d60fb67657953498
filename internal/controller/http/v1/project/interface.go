package project

import (
	"context"

	"hrmis/backend/internal/repository/postgres/project"
)

type Project interface {
	GetList(ctx context.Context, filter project.Filter) ([]project.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (project.GetDetailByIdResponse, error)
	Create(ctx context.Context, request project.CreateRequest) (project.CreateResponse, error)
	UpdateAll(ctx context.Context, request project.UpdateRequest) error
	UpdateColumns(ctx context.Context, request project.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
