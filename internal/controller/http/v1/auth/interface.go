package auth

import (
	"context"

	"hrmis/backend/internal/entity"
)

type User interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (entity.User, error)
}
