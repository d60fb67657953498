package notification

import (
	"context"

	"hrmis/backend/internal/repository/postgres/notification"
)

type Notification interface {
	GetList(ctx context.Context, filter notification.Filter) ([]notification.GetListResponse, int, error)
	GetUnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, request notification.MarkReadRequest) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id int) error
}
