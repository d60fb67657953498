package dtr

import (
	"context"
	"time"

	"hrmis/backend/internal/repository/postgres/user"
	"hrmis/backend/internal/service/dtr"
)

type Attendance interface {
	GetEventsForDTR(ctx context.Context, userID, year int, month time.Month, startDay, endDay int) ([]dtr.Event, error)
}

type User interface {
	GetList(ctx context.Context, filter user.Filter) ([]user.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (user.GetDetailByIdResponse, error)
}
