package attendance

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
	"hrmis/backend/internal/service/dtr"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

const (
	StateIn  = "Time in"
	StateOut = "Time out"

	SourceQrCode = "qrcode"
	SourcePhone  = "phone"
	SourceManual = "manual"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.AttendanceEvent, error) {
	var detail entity.AttendanceEvent

	err := r.NewSelect().Model(&detail).Where("id = ?", id).Scan(ctx)

	return detail, err
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
			WHERE
				a.deleted_at IS NULL
			`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, " ", "", -1)
		search = strings.Replace(search, "'", "''", -1)

		whereQuery += fmt.Sprintf(` AND
		(u.employee_id ilike '%s' OR u.full_name ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}
	if filter.OfficeID != nil {
		whereQuery += fmt.Sprintf(` AND u.office_id = %d`, *filter.OfficeID)
	}
	if filter.PositionID != nil {
		whereQuery += fmt.Sprintf(` AND u.position_id = %d`, *filter.PositionID)
	}
	if filter.UserID != nil {
		whereQuery += fmt.Sprintf(` AND a.user_id = %d`, *filter.UserID)
	}
	if filter.State != nil {
		state := strings.Replace(*filter.State, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND a.state = '%s'`, state)
	}

	if filter.Date != nil {
		day, err := time.Parse("2006-01-02", *filter.Date)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(" AND a.work_day = '%s'", day.Format("2006-01-02"))
	} else {
		today := time.Now().Format("2006-01-02")
		whereQuery += fmt.Sprintf(" AND a.work_day = '%s'", today)
	}

	orderQuery := "ORDER BY a.work_day desc, a.event_time asc"

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
			a.user_id,
			u.employee_id,
			u.full_name,
			u.office_id,
			o.name,
			u.position_id,
			p.name,
			a.work_day,
			a.event_time,
			a.state,
			a.source
		FROM attendance_event as a
		LEFT JOIN users u ON a.user_id = u.id
		LEFT JOIN office o ON u.office_id = o.id
		LEFT JOIN position p ON u.position_id = p.id

		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting attendance events"), http.StatusInternalServerError)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		var workDayString string
		var eventTimeBytes []byte

		if err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.EmployeeID,
			&detail.FullName,
			&detail.OfficeID,
			&detail.Office,
			&detail.PositionID,
			&detail.Position,
			&workDayString,
			&eventTimeBytes,
			&detail.State,
			&detail.Source); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning attendance list"), http.StatusBadRequest)
		}

		workDay, err := date.ParseDate(workDayString)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting work_day to date.Date"), http.StatusBadRequest)
		}
		detail.WorkDay = &workDay
		detail.EventTime = string(eventTimeBytes)

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(a.id)
		FROM attendance_event as a
		LEFT JOIN users u ON a.user_id = u.id
		%s
	`, whereQuery)

	countRows, err := r.QueryContext(ctx, countQuery)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting attendance events"), http.StatusInternalServerError)
	}

	count := 0

	for countRows.Next() {
		if err = countRows.Scan(&count); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning attendance count"), http.StatusInternalServerError)
		}
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	query := fmt.Sprintf(`
		SELECT
			a.id,
			a.user_id,
			u.employee_id,
			u.full_name,
			a.work_day,
			a.event_time,
			a.state,
			a.latitude,
			a.longitude,
			a.source
		FROM attendance_event as a
		LEFT JOIN users u ON a.user_id = u.id
		WHERE a.deleted_at IS NULL AND a.id = %d
	`, id)

	var detail GetDetailByIdResponse
	var workDayString string
	var eventTimeBytes []byte

	err = r.QueryRowContext(ctx, query).Scan(
		&detail.ID,
		&detail.UserID,
		&detail.EmployeeID,
		&detail.FullName,
		&workDayString,
		&eventTimeBytes,
		&detail.State,
		&detail.Latitude,
		&detail.Longitude,
		&detail.Source,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting attendance detail"), http.StatusBadRequest)
	}

	workDay, err := date.ParseDate(workDayString)
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "converting work_day to date.Date"), http.StatusBadRequest)
	}
	detail.WorkDay = &workDay
	detail.EventTime = string(eventTimeBytes)

	return detail, nil
}

func (r Repository) userIDByEmployeeID(ctx context.Context, employeeID string) (int, error) {
	employeeID = strings.Replace(employeeID, "'", "''", -1)

	var userID int
	err := r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id FROM users WHERE employee_id = '%s' AND deleted_at IS NULL`, employeeID)).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, web.NewRequestError(errors.New("employee not found"), http.StatusBadRequest)
	}
	if err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "selecting user by employee_id"), http.StatusInternalServerError)
	}

	return userID, nil
}

// CreateByQr records a check-in or check-out scanned from the kiosk qr code.
// The event toggles: if the employee's last event today is an "in", the scan
// records an "out", otherwise an "in".
func (r Repository) CreateByQr(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee, auth.RoleDashboard)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "EmployeeID"); err != nil {
		return CreateResponse{}, err
	}

	userID, err := r.userIDByEmployeeID(ctx, *request.EmployeeID)
	if err != nil {
		return CreateResponse{}, err
	}

	state := StateIn
	lastState := ""
	err = r.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT state FROM attendance_event
		WHERE user_id = %d AND work_day = '%s' AND deleted_at IS NULL
		ORDER BY event_time desc LIMIT 1
	`, userID, time.Now().Format("2006-01-02"))).Scan(&lastState)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "selecting last event"), http.StatusInternalServerError)
	}
	if strings.Contains(strings.ToLower(lastState), "in") && !strings.Contains(strings.ToLower(lastState), "out") {
		state = StateOut
	}

	var response CreateResponse

	response.UserID = userID
	response.WorkDay = time.Now().Format("2006-01-02")
	response.EventTime = time.Now().Format("15:04:05")
	response.State = state
	response.Source = SourceQrCode
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating attendance by qr code"), http.StatusBadRequest)
	}

	return response, nil
}

// CreateByPhone records a check-in from the mobile app with its geo position.
func (r Repository) CreateByPhone(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Latitude", "Longitude"); err != nil {
		return CreateResponse{}, err
	}

	var response CreateResponse

	response.UserID = claims.UserId
	response.WorkDay = time.Now().Format("2006-01-02")
	response.EventTime = time.Now().Format("15:04:05")
	response.State = StateIn
	response.Latitude = request.Latitude
	response.Longitude = request.Longitude
	response.Source = SourcePhone
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating attendance by phone"), http.StatusBadRequest)
	}

	return response, nil
}

// ExitByPhone records a check-out from the mobile app.
func (r Repository) ExitByPhone(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Latitude", "Longitude"); err != nil {
		return CreateResponse{}, err
	}

	var response CreateResponse

	response.UserID = claims.UserId
	response.WorkDay = time.Now().Format("2006-01-02")
	response.EventTime = time.Now().Format("15:04:05")
	response.State = StateOut
	response.Latitude = request.Latitude
	response.Longitude = request.Longitude
	response.Source = SourcePhone
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating exit by phone"), http.StatusBadRequest)
	}

	return response, nil
}

// GetGeofence returns the office coordinates and allowed radius in meters
// that phone punches are checked against.
func (r Repository) GetGeofence(ctx context.Context) (Geofence, error) {
	query := `
		SELECT latitude, longitude, COALESCE(radius, 3000.0)
		FROM company_info
		WHERE deleted_at IS NULL AND latitude IS NOT NULL AND longitude IS NOT NULL
		LIMIT 1
	`

	var geofence Geofence

	err := r.QueryRowContext(ctx, query).Scan(&geofence.Latitude, &geofence.Longitude, &geofence.Radius)
	if errors.Is(err, sql.ErrNoRows) {
		return Geofence{}, web.NewRequestError(errors.New("company geofence is not configured"), http.StatusBadRequest)
	}
	if err != nil {
		return Geofence{}, web.NewRequestError(errors.Wrap(err, "selecting company geofence"), http.StatusInternalServerError)
	}

	return geofence, nil
}

// UpdateAll replaces every editable column of a punch. All fields are
// required; partial edits go through UpdateColumns.
func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID", "WorkDay", "EventTime", "State"); err != nil {
		return err
	}

	if _, err := time.Parse("2006-01-02", *request.WorkDay); err != nil {
		return web.NewRequestError(errors.Wrap(err, "parsing work_day"), http.StatusBadRequest)
	}
	if _, err := time.Parse("15:04:05", *request.EventTime); err != nil {
		return web.NewRequestError(errors.Wrap(err, "parsing event_time"), http.StatusBadRequest)
	}

	_, err = r.NewUpdate().
		Table("attendance_event").
		Where("deleted_at IS NULL AND id = ?", request.ID).
		Set("work_day = ?", request.WorkDay).
		Set("event_time = ?", request.EventTime).
		Set("state = ?", request.State).
		Set("source = ?", SourceManual).
		Set("updated_at = ?", time.Now()).
		Set("updated_by = ?", claims.UserId).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating attendance event"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("attendance_event").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.WorkDay != nil {
		if _, err := time.Parse("2006-01-02", *request.WorkDay); err != nil {
			return web.NewRequestError(errors.Wrap(err, "parsing work_day"), http.StatusBadRequest)
		}
		q.Set("work_day = ?", request.WorkDay)
	}
	if request.EventTime != nil {
		if _, err := time.Parse("15:04:05", *request.EventTime); err != nil {
			return web.NewRequestError(errors.Wrap(err, "parsing event_time"), http.StatusBadRequest)
		}
		q.Set("event_time = ?", request.EventTime)
	}
	if request.State != nil {
		q.Set("state = ?", request.State)
	}
	q.Set("source = ?", SourceManual)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating attendance event"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "attendance_event", id)
}

// GetHistory lists the authenticated employee's own punches for one month,
// newest day first.
func (r Repository) GetHistory(ctx context.Context, filter HistoryFilter) ([]HistoryRow, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	first := time.Date(filter.Month.Year(), filter.Month.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	query := fmt.Sprintf(`
		SELECT
			a.id,
			a.work_day,
			a.event_time,
			a.state,
			a.source
		FROM attendance_event a
		WHERE a.deleted_at IS NULL
			AND a.user_id = %d
			AND a.work_day BETWEEN '%s' AND '%s'
		ORDER BY a.work_day desc, a.event_time asc
	`, claims.UserId, first.Format("2006-01-02"), last.Format("2006-01-02"))

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting punch history"), http.StatusInternalServerError)
	}

	var list []HistoryRow

	for rows.Next() {
		var row HistoryRow
		var workDayString string
		var eventTimeBytes []byte

		if err = rows.Scan(&row.ID, &workDayString, &eventTimeBytes, &row.State, &row.Source); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning punch history"), http.StatusInternalServerError)
		}

		workDay, err := date.ParseDate(workDayString)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting work_day to date.Date"), http.StatusBadRequest)
		}
		row.WorkDay = &workDay
		row.EventTime = string(eventTimeBytes)

		list = append(list, row)
	}

	return list, nil
}

// GetEventsForDTR loads one employee's raw punches for a day range of a month,
// in the shape the aggregator consumes.
func (r Repository) GetEventsForDTR(ctx context.Context, userID, year int, month time.Month, startDay, endDay int) ([]dtr.Event, error) {
	first := time.Date(year, month, startDay, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	last := time.Date(year, month, endDay, 0, 0, 0, 0, time.UTC).Format("2006-01-02")

	query := fmt.Sprintf(`
		SELECT
			EXTRACT(DAY FROM a.work_day)::int,
			a.event_time,
			a.state
		FROM attendance_event a
		WHERE a.deleted_at IS NULL
			AND a.user_id = %d
			AND a.work_day BETWEEN '%s' AND '%s'
		ORDER BY a.work_day, a.event_time
	`, userID, first, last)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting punches"), http.StatusInternalServerError)
	}

	var events []dtr.Event

	for rows.Next() {
		var event dtr.Event
		var eventTimeBytes []byte

		if err = rows.Scan(&event.Day, &eventTimeBytes, &event.State); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning punches"), http.StatusInternalServerError)
		}
		event.Time = string(eventTimeBytes)

		events = append(events, event)
	}

	return events, nil
}

func (r Repository) GetStatistics(ctx context.Context) (GetStatisticResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return GetStatisticResponse{}, err
	}

	query := `
	WITH first_in AS (
		SELECT user_id, MIN(event_time) AS come_time
		FROM attendance_event
		WHERE deleted_at IS NULL AND work_day = CURRENT_DATE AND state ilike '%in%' AND state not ilike '%out%'
		GROUP BY user_id
	),
	last_out AS (
		SELECT user_id, MAX(event_time) AS leave_time
		FROM attendance_event
		WHERE deleted_at IS NULL AND work_day = CURRENT_DATE AND state ilike '%out%'
		GROUP BY user_id
	),
	info AS (
		SELECT COALESCE(start_time, '09:00') AS start_time,
		       COALESCE(late_time, '10:00') AS late_time,
		       COALESCE(end_time, '18:00') AS end_time
		FROM company_info WHERE deleted_at IS NULL LIMIT 1
	)
	SELECT
		(SELECT COUNT(id) FROM users WHERE deleted_at IS NULL) AS total_employee,
		(SELECT COUNT(user_id) FROM first_in) AS present,
		(SELECT COUNT(id) FROM users WHERE deleted_at IS NULL) - (SELECT COUNT(user_id) FROM first_in) AS absent,
		(SELECT COUNT(f.user_id) FROM first_in f, info i WHERE f.come_time <= i.late_time::time) AS on_time,
		(SELECT COUNT(f.user_id) FROM first_in f, info i WHERE f.come_time > i.late_time::time) AS late_arrival,
		(SELECT COUNT(l.user_id) FROM last_out l, info i WHERE l.leave_time < i.end_time::time) AS early_departure
	`

	var response GetStatisticResponse

	err = r.QueryRowContext(ctx, query).Scan(
		&response.TotalEmployee,
		&response.Present,
		&response.Absent,
		&response.OnTime,
		&response.LateArrival,
		&response.EarlyDeparture,
	)
	if err != nil {
		return GetStatisticResponse{}, web.NewRequestError(errors.Wrap(err, "fetching statistics"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) GetPieChartStatistic(ctx context.Context) (PieChartResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return PieChartResponse{}, err
	}

	query := `
	WITH today AS (
		SELECT COUNT(DISTINCT a.user_id) AS come_count
		FROM attendance_event a
		WHERE a.deleted_at IS NULL AND a.work_day = CURRENT_DATE
	),
	total AS (
		SELECT COUNT(id) AS total_count FROM users WHERE deleted_at IS NULL
	)
	SELECT
		COALESCE(ROUND(100.0 * come_count / GREATEST(1, total_count), 0), 0),
		COALESCE(ROUND(100.0 * (total_count - come_count) / GREATEST(1, total_count), 0), 0)
	FROM today, total
	`

	var comePercentage, absentPercentage float64

	if err := r.QueryRowContext(ctx, query).Scan(&comePercentage, &absentPercentage); err != nil {
		return PieChartResponse{}, web.NewRequestError(errors.Wrap(err, "response pie chart data not found"), http.StatusBadRequest)
	}

	var detail PieChartResponse
	detail.Come = Int(int(comePercentage))
	detail.Absent = Int(int(absentPercentage))

	return detail, nil
}

func Int(i int) *int {
	return &i
}

func (r Repository) GetBarChartStatistic(ctx context.Context) ([]BarChartResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return nil, err
	}

	query := `
	WITH today AS (
		SELECT u.office_id, COUNT(DISTINCT a.user_id) AS come_count
		FROM attendance_event a
		JOIN users u ON a.user_id = u.id
		WHERE a.deleted_at IS NULL AND a.work_day = CURRENT_DATE
		GROUP BY u.office_id
	),
	totals AS (
		SELECT office_id, COUNT(id) AS total_count
		FROM users WHERE deleted_at IS NULL
		GROUP BY office_id
	)
	SELECT
		o.name,
		COALESCE(ROUND(100.0 * COALESCE(t.come_count, 0) / GREATEST(1, totals.total_count), 2), 0)
	FROM totals
	JOIN office o ON o.id = totals.office_id
	LEFT JOIN today t ON t.office_id = totals.office_id
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting bar chart"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var results []BarChartResponse

	for rows.Next() {
		var result BarChartResponse
		if err := rows.Scan(&result.Office, &result.Percentage); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning bar chart"), http.StatusInternalServerError)
		}
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r Repository) GetGraphStatistic(ctx context.Context, filter GraphRequest) ([]GraphResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return nil, err
	}

	startDay, endDay, err := dtr.ResolvePeriod(filter.Month.Year(), filter.Month.Month(), filter.Interval)
	if err != nil {
		return nil, err
	}

	startDate := time.Date(filter.Month.Year(), filter.Month.Month(), startDay, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(filter.Month.Year(), filter.Month.Month(), endDay, 23, 59, 59, 999999999, time.UTC)

	query := `
	WITH daily AS (
		SELECT
			a.work_day,
			COUNT(DISTINCT a.user_id) AS come_count
		FROM attendance_event a
		WHERE a.deleted_at IS NULL
			AND a.work_day BETWEEN $1 AND $2
		GROUP BY a.work_day
	),
	total AS (
		SELECT GREATEST(1, COUNT(id)) AS total_count FROM users WHERE deleted_at IS NULL
	)
	SELECT
		work_day,
		COALESCE(ROUND(100.0 * come_count / total_count, 2), 0) AS percentage
	FROM daily, total
	ORDER BY work_day
	`

	stmt, err := r.Prepare(query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "preparing graph query"), http.StatusInternalServerError)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, startDate, endDate)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting graph data"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GraphResponse

	for rows.Next() {
		var detail GraphResponse
		var workDayString string

		if err = rows.Scan(&workDayString, &detail.Percentage); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning graph response"), http.StatusBadRequest)
		}

		workDay, err := date.ParseDate(workDayString)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting work_day to date.Date"), http.StatusBadRequest)
		}
		detail.WorkDay = &workDay
		list = append(list, detail)
	}

	return list, nil
}
