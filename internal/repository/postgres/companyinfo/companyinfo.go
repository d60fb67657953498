package companyinfo

import (
	"context"
	"net/http"
	"time"

	"hrmis/backend/foundation/web"
	"hrmis/backend/internal/auth"
	"hrmis/backend/internal/pkg/repository/postgresql"
	"hrmis/backend/internal/service"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetInfo(ctx context.Context) (GetInfoResponse, error) {
	var detail GetInfoResponse
	err := r.NewSelect().
		Model(&detail).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return GetInfoResponse{}, &web.Error{
			Err:    errors.New("company data not found"),
			Status: http.StatusNotFound,
		}
	}
	return detail, nil
}

func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID", "CompanyName", "Latitude", "Longitude"); err != nil {
		return err
	}

	radius := 3000.0
	if request.Radius != nil && *request.Radius != 0 {
		radius = *request.Radius
	}

	// An uploaded logo replaces whatever url the client sent.
	if request.Logo != nil {
		path, err := service.UploadImage(request.Logo, "company_info")
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "uploading company logo"), http.StatusBadRequest)
		}
		request.Url = &path
	}

	q := r.NewUpdate().Table("company_info").Where("deleted_at IS NULL AND id = ?", request.ID)
	q.Set("company_name = ?", request.CompanyName)
	q.Set("url = ?", request.Url)
	q.Set("latitude = ?", request.Latitude)
	q.Set("longitude = ?", request.Longitude)
	q.Set("radius = ?", radius)
	q.Set("start_time = ?", request.StartTime)
	q.Set("end_time = ?", request.EndTime)
	q.Set("late_time = ?", request.LateTime)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating company_info"), http.StatusBadRequest)
	}

	return nil
}
