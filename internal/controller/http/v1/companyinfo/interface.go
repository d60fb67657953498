package companyinfo

import (
	"context"

	"hrmis/backend/internal/repository/postgres/companyinfo"
)

type CompanyInfo interface {
	GetInfo(ctx context.Context) (companyinfo.GetInfoResponse, error)
	UpdateAll(ctx context.Context, request companyinfo.UpdateRequest) error
}
