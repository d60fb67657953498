package announcement

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hrmis/backend/foundation/web"
	"hrmis/backend/internal/auth"
	"hrmis/backend/internal/entity"
	"hrmis/backend/internal/pkg/repository/postgresql"
	"hrmis/backend/internal/repository/postgres"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Announcement, error) {
	var detail entity.Announcement

	err := r.NewSelect().Model(&detail).Where("id = ?", id).Scan(ctx)

	return detail, err
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
			WHERE
				a.deleted_at IS NULL
			`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND
		(a.title ilike '%s' OR a.body ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}
	if filter.OfficeID != nil {
		whereQuery += fmt.Sprintf(` AND (a.office_id IS NULL OR a.office_id = %d)`, *filter.OfficeID)
	}
	if filter.Pinned != nil {
		whereQuery += fmt.Sprintf(` AND a.pinned = %t`, *filter.Pinned)
	}
	orderQuery := "ORDER BY a.pinned desc, a.created_at desc"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}

	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}

	if filter.Offset != nil {
		offsetQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			a.id,
			a.title,
			a.body,
			a.office_id,
			o.name,
			a.pinned
		FROM announcement a
		LEFT JOIN office o ON o.id = a.office_id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusBadRequest)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting announcements"), http.StatusBadRequest)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Title,
			&detail.Body,
			&detail.OfficeID,
			&detail.Office,
			&detail.Pinned); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning announcement list"), http.StatusBadRequest)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(a.id)
		FROM announcement a
			%s
	`, whereQuery)

	countRows, err := r.QueryContext(ctx, countQuery)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting announcements"), http.StatusBadRequest)
	}

	count := 0

	for countRows.Next() {
		if err = countRows.Scan(&count); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning announcement count"), http.StatusBadRequest)
		}
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	query := fmt.Sprintf(`
		SELECT
			a.id,
			a.title,
			a.body,
			a.office_id,
			o.name,
			a.pinned
		FROM announcement a
		LEFT JOIN office o ON o.id = a.office_id
		WHERE a.deleted_at IS NULL AND a.id = %d
	`, id)

	var detail GetDetailByIdResponse

	err = r.QueryRowContext(ctx, query).Scan(
		&detail.ID,
		&detail.Title,
		&detail.Body,
		&detail.OfficeID,
		&detail.Office,
		&detail.Pinned,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting announcement detail"), http.StatusBadRequest)
	}

	return detail, nil
}

// Create stores the announcement and fans a notification out to every active
// employee in scope. A nil office_id means company-wide.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Title", "Body"); err != nil {
		return CreateResponse{}, err
	}

	var response CreateResponse

	pinned := false
	if request.Pinned != nil {
		pinned = *request.Pinned
	}

	response.Title = request.Title
	response.Body = request.Body
	response.OfficeID = request.OfficeID
	response.Pinned = &pinned
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating announcement"), http.StatusBadRequest)
	}

	officeFilter := ""
	if request.OfficeID != nil {
		officeFilter = fmt.Sprintf(" AND office_id = %d", *request.OfficeID)
	}

	fanOut := fmt.Sprintf(`
		INSERT INTO notification (user_id, announcement_id, title, body, created_at, created_by)
		SELECT id, %d, '%s', '%s', now(), %d
		FROM users
		WHERE deleted_at IS NULL%s
	`, response.ID,
		strings.Replace(*request.Title, "'", "''", -1),
		strings.Replace(*request.Body, "'", "''", -1),
		claims.UserId, officeFilter)

	if _, err = r.ExecContext(ctx, fanOut); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "fanning out notifications"), http.StatusInternalServerError)
	}

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("announcement").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Title != nil {
		q.Set("title = ?", request.Title)
	}
	if request.Body != nil {
		q.Set("body = ?", request.Body)
	}
	if request.OfficeID != nil {
		q.Set("office_id = ?", request.OfficeID)
	}
	if request.Pinned != nil {
		q.Set("pinned = ?", request.Pinned)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating announcement"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "announcement", id)
}
