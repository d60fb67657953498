package user

import (
	"context"

	"hrmis/backend/internal/repository/postgres/user"
)

type User interface {
	GetList(ctx context.Context, filter user.Filter) ([]user.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (user.GetDetailByIdResponse, error)
	GetQrCodeByEmployeeID(ctx context.Context, employeeID string) (string, error)
	GetQrCodeList(ctx context.Context) (string, error)
	GetExportList(ctx context.Context) ([]user.ExportRow, error)
	GetTemplateFile(ctx context.Context) (string, error)
	GetEmployeeDashboard(ctx context.Context) (user.DashboardResponse, error)
	GetStatistics(ctx context.Context, filter user.StatisticRequest) ([]user.StatisticResponse, error)
	GetMonthlyStatistics(ctx context.Context, filter user.MonthlyStatisticRequest) (user.MonthlyStatisticResponse, error)

	Create(ctx context.Context, request user.CreateRequest) (user.CreateResponse, error)
	CreateByExcell(ctx context.Context, request user.ExcellRequest) (user.ExcellResponse, error)
	UpdateColumns(ctx context.Context, request user.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
