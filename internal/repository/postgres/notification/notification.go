package notification

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"hrmis/backend/foundation/web"
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

// GetList returns the calling user's own notifications, newest first.
func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := fmt.Sprintf(`
			WHERE
				n.deleted_at IS NULL AND n.user_id = %d
			`, claims.UserId)

	if filter.Unread != nil && *filter.Unread {
		whereQuery += ` AND n.read_at IS NULL`
	}
	orderQuery := "ORDER BY n.created_at desc"

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
			n.id,
			n.announcement_id,
			n.title,
			n.body,
			n.read_at,
			n.created_at
		FROM notification n
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusBadRequest)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting notifications"), http.StatusBadRequest)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.AnnouncementID,
			&detail.Title,
			&detail.Body,
			&detail.ReadAt,
			&detail.CreatedAt); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning notification list"), http.StatusBadRequest)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(n.id)
		FROM notification n
			%s
	`, whereQuery)

	countRows, err := r.QueryContext(ctx, countQuery)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting notifications"), http.StatusBadRequest)
	}

	count := 0

	for countRows.Next() {
		if err = countRows.Scan(&count); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning notification count"), http.StatusBadRequest)
		}
	}

	return list, count, nil
}

func (r Repository) GetUnreadCount(ctx context.Context) (int, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	err = r.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT count(id) FROM notification
		WHERE deleted_at IS NULL AND read_at IS NULL AND user_id = %d
	`, claims.UserId)).Scan(&count)
	if err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "counting unread notifications"), http.StatusInternalServerError)
	}

	return count, nil
}

// MarkRead stamps read_at on one of the caller's notifications.
func (r Repository) MarkRead(ctx context.Context, request MarkReadRequest) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	result, err := r.NewUpdate().Table("notification").
		Where("deleted_at IS NULL AND read_at IS NULL AND id = ? AND user_id = ?", request.ID, claims.UserId).
		Set("read_at = ?", time.Now()).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "marking notification read"), http.StatusBadRequest)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "marking notification read"), http.StatusBadRequest)
	}
	if rowsAffected == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}

// MarkAllRead stamps read_at on every unread notification of the caller.
func (r Repository) MarkAllRead(ctx context.Context) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	_, err = r.NewUpdate().Table("notification").
		Where("deleted_at IS NULL AND read_at IS NULL AND user_id = ?", claims.UserId).
		Set("read_at = ?", time.Now()).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "marking notifications read"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "notification", id)
}
