package user

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"hrmis/backend/foundation/web"
	"hrmis/backend/internal/auth"
	"hrmis/backend/internal/entity"
	"hrmis/backend/internal/pkg/cache"
	"hrmis/backend/internal/pkg/repository/postgresql"
	"hrmis/backend/internal/repository/postgres"
	"hrmis/backend/internal/service"
	"hrmis/backend/internal/service/dtr"
	"hrmis/backend/internal/service/hashing"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	*postgresql.Database

	// lookup caches the office/position name maps used by excel import so a
	// bulk upload does not refetch them per call.
	lookup *cache.Memory
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{
		Database: database,
		lookup:   cache.NewMemory(time.Minute),
	}
}

func (r Repository) GetByEmployeeID(ctx context.Context, employeeID string) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).Where("employee_id = ? AND deleted_at IS NULL", employeeID).Scan(ctx)
	if err != nil {
		return entity.User{}, &web.Error{
			Err:    errors.New("employee not found"),
			Status: http.StatusUnauthorized,
		}
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
			WHERE
				u.deleted_at IS NULL
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
	if filter.ProjectID != nil {
		whereQuery += fmt.Sprintf(` AND u.project_id = %d`, *filter.ProjectID)
	}
	orderQuery := "ORDER BY u.created_at desc"

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
			u.id,
			u.employee_id,
			u.full_name,
			u.office_id,
			o.name,
			u.position_id,
			p.name,
			u.project_id,
			pr.name,
			u.phone,
			u.email
		FROM users u
		LEFT JOIN office o ON o.id = u.office_id
		LEFT JOIN position p ON p.id = u.position_id
		LEFT JOIN project pr ON pr.id = u.project_id

		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusBadRequest)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting users"), http.StatusBadRequest)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.FullName,
			&detail.OfficeID,
			&detail.Office,
			&detail.PositionID,
			&detail.Position,
			&detail.ProjectID,
			&detail.Project,
			&detail.Phone,
			&detail.Email); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user list"), http.StatusBadRequest)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(u.id)
		FROM  users u
			%s
	`, whereQuery)

	countRows, err := r.QueryContext(ctx, countQuery)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting users"), http.StatusBadRequest)
	}

	count := 0

	for countRows.Next() {
		if err = countRows.Scan(&count); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user count"), http.StatusBadRequest)
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
			u.id,
			u.employee_id,
			u.full_name,
			u.role,
			u.office_id,
			o.name,
			u.position_id,
			p.name,
			u.project_id,
			pr.name,
			u.phone,
			u.email
		FROM
		    users u
		LEFT JOIN office o ON u.office_id = o.id
		LEFT JOIN position p ON u.position_id = p.id
		LEFT JOIN project pr ON u.project_id = pr.id
		WHERE u.deleted_at IS NULL AND u.id = %d
	`, id)

	var detail GetDetailByIdResponse

	err = r.QueryRowContext(ctx, query).Scan(
		&detail.ID,
		&detail.EmployeeID,
		&detail.FullName,
		&detail.Role,
		&detail.OfficeID,
		&detail.Office,
		&detail.PositionID,
		&detail.Position,
		&detail.ProjectID,
		&detail.Project,
		&detail.Phone,
		&detail.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user detail"), http.StatusBadRequest)
	}

	return detail, nil
}

func validRole(role string) bool {
	return role == auth.RoleEmployee || role == auth.RoleAdmin ||
		role == auth.RoleDashboard || role == auth.RoleQRCode
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "EmployeeID", "Password", "FullName", "Role"); err != nil {
		return CreateResponse{}, err
	}

	userIdStatus := true
	if err := r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT
    						CASE WHEN
    						(SELECT id FROM users WHERE employee_id = '%s' AND deleted_at IS NULL) IS NOT NULL
    						THEN true ELSE false END`, *request.EmployeeID)).Scan(&userIdStatus); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "employee_id check"), http.StatusInternalServerError)
	}
	if userIdStatus {
		return CreateResponse{}, web.NewRequestError(errors.New("employee_id is used"), http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	hashedPassword := string(hash)

	role := strings.ToUpper(*request.Role)
	if !validRole(role) {
		return CreateResponse{}, web.NewRequestError(errors.New("incorrect role. role should be EMPLOYEE, ADMIN, DASHBOARD or QRCODE"), http.StatusBadRequest)
	}

	var response CreateResponse

	response.Role = &role
	response.FullName = request.FullName
	response.EmployeeID = request.EmployeeID
	response.Password = &hashedPassword
	response.OfficeID = request.OfficeID
	response.PositionID = request.PositionID
	response.ProjectID = request.ProjectID
	response.Phone = request.Phone
	response.Email = request.Email
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating user"), http.StatusBadRequest)
	}

	response.Password = nil

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

	q := r.NewUpdate().Table("users").Where("deleted_at IS NULL AND id = ? ", request.ID)

	if request.EmployeeID != nil {
		userIdStatus := true
		if err := r.QueryRowContext(ctx, fmt.Sprintf("SELECT CASE WHEN (SELECT id FROM users WHERE employee_id = '%s' AND deleted_at IS NULL AND id != %d) IS NOT NULL THEN true ELSE false END", *request.EmployeeID, request.ID)).Scan(&userIdStatus); err != nil {
			return web.NewRequestError(errors.Wrap(err, "employee_id check"), http.StatusInternalServerError)
		}
		if userIdStatus {
			return web.NewRequestError(errors.New("employee_id is used"), http.StatusBadRequest)
		}
		q.Set("employee_id = ?", request.EmployeeID)
	}

	if request.Role != nil {
		role := strings.ToUpper(*request.Role)
		if !validRole(role) {
			return web.NewRequestError(errors.New("incorrect role. role should be EMPLOYEE, ADMIN, DASHBOARD or QRCODE"), http.StatusBadRequest)
		}
		q.Set("role = ?", role)
	}

	if request.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
		}
		q.Set("password = ?", string(hash))
	}

	if request.FullName != nil {
		q.Set("full_name = ?", request.FullName)
	}
	if request.OfficeID != nil {
		q.Set("office_id = ?", request.OfficeID)
	}
	if request.PositionID != nil {
		q.Set("position_id = ?", request.PositionID)
	}
	if request.ProjectID != nil {
		q.Set("project_id = ?", request.ProjectID)
	}
	if request.Phone != nil {
		q.Set("phone = ?", request.Phone)
	}
	if request.Email != nil {
		q.Set("email = ?", request.Email)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating user"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "users", id)
}

// lookupMaps returns office and position name->id maps for excel import,
// cached briefly so bulk uploads reuse them.
func (r Repository) lookupMaps(ctx context.Context) (map[string]int, map[string]int, error) {
	if cached, ok := r.lookup.Get("lookup_maps"); ok {
		maps := cached.([2]map[string]int)
		return maps[0], maps[1], nil
	}

	officeMap := make(map[string]int)
	positionMap := make(map[string]int)

	rows, err := r.QueryContext(ctx, `SELECT id, name FROM office WHERE deleted_at IS NULL`)
	if err != nil {
		return nil, nil, web.NewRequestError(errors.Wrap(err, "selecting office map"), http.StatusInternalServerError)
	}
	for rows.Next() {
		var id int
		var name string
		if err = rows.Scan(&id, &name); err != nil {
			return nil, nil, web.NewRequestError(errors.Wrap(err, "scanning office map"), http.StatusInternalServerError)
		}
		officeMap[name] = id
	}

	rows, err = r.QueryContext(ctx, `SELECT id, name FROM position WHERE deleted_at IS NULL`)
	if err != nil {
		return nil, nil, web.NewRequestError(errors.Wrap(err, "selecting position map"), http.StatusInternalServerError)
	}
	for rows.Next() {
		var id int
		var name string
		if err = rows.Scan(&id, &name); err != nil {
			return nil, nil, web.NewRequestError(errors.Wrap(err, "scanning position map"), http.StatusInternalServerError)
		}
		positionMap[name] = id
	}

	r.lookup.Set("lookup_maps", [2]map[string]int{officeMap, positionMap})

	return officeMap, positionMap, nil
}

func (r Repository) existingSets(ctx context.Context) (map[string]struct{}, map[string]struct{}, error) {
	employeeIDs := make(map[string]struct{})
	emails := make(map[string]struct{})

	rows, err := r.QueryContext(ctx, `SELECT employee_id, COALESCE(email, '') FROM users WHERE deleted_at IS NULL`)
	if err != nil {
		return nil, nil, web.NewRequestError(errors.Wrap(err, "selecting existing users"), http.StatusInternalServerError)
	}
	for rows.Next() {
		var employeeID, email string
		if err = rows.Scan(&employeeID, &email); err != nil {
			return nil, nil, web.NewRequestError(errors.Wrap(err, "scanning existing users"), http.StatusInternalServerError)
		}
		employeeIDs[employeeID] = struct{}{}
		if email != "" {
			emails[email] = struct{}{}
		}
	}

	return employeeIDs, emails, nil
}

// CreateByExcell bulk-creates employees from an uploaded workbook. Rows that
// fail validation are reported back by row number, valid rows are inserted.
func (r Repository) CreateByExcell(ctx context.Context, request ExcellRequest) (ExcellResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return ExcellResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Excell"); err != nil {
		return ExcellResponse{}, err
	}

	filePath, err := service.Upload(request.Excell, "imports")
	if err != nil {
		return ExcellResponse{}, web.NewRequestError(errors.Wrap(err, "uploading excel file"), http.StatusBadRequest)
	}

	officeMap, positionMap, err := r.lookupMaps(ctx)
	if err != nil {
		return ExcellResponse{}, err
	}

	employeeIDMap, emailMap, err := r.existingSets(ctx)
	if err != nil {
		return ExcellResponse{}, err
	}

	rows, incompleteRows, err := hashing.ExcelReaderByCreate(filePath, officeMap, positionMap, employeeIDMap, emailMap)
	if err != nil {
		return ExcellResponse{}, web.NewRequestError(errors.Wrap(err, "reading excel file"), http.StatusBadRequest)
	}

	created := 0
	for _, row := range rows {
		hash, err := bcrypt.GenerateFromPassword([]byte(row.Password), bcrypt.DefaultCost)
		if err != nil {
			return ExcellResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
		}
		hashedPassword := string(hash)
		role := strings.ToUpper(row.Role)

		response := CreateResponse{
			EmployeeID: &row.EmployeeID,
			FullName:   &row.FullName,
			Password:   &hashedPassword,
			Role:       &role,
			OfficeID:   &row.OfficeID,
			PositionID: &row.PositionID,
			CreatedAt:  time.Now(),
			CreatedBy:  claims.UserId,
		}
		if row.Phone != "" {
			response.Phone = &row.Phone
		}
		if row.Email != "" {
			response.Email = &row.Email
		}

		if _, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID); err != nil {
			return ExcellResponse{}, web.NewRequestError(errors.Wrap(err, "creating user from excel"), http.StatusBadRequest)
		}
		created++
	}

	return ExcellResponse{CreatedCount: created, IncompleteRows: incompleteRows}, nil
}

// GetExportList returns every active employee with names resolved, for the
// excel export.
func (r Repository) GetExportList(ctx context.Context) ([]ExportRow, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			u.employee_id,
			u.full_name,
			u.role,
			COALESCE(o.name, ''),
			COALESCE(p.name, ''),
			COALESCE(pr.name, ''),
			COALESCE(u.phone, ''),
			COALESCE(u.email, '')
		FROM users u
		LEFT JOIN office o ON o.id = u.office_id
		LEFT JOIN position p ON p.id = u.position_id
		LEFT JOIN project pr ON pr.id = u.project_id
		WHERE u.deleted_at IS NULL
		ORDER BY u.employee_id
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting export list"), http.StatusInternalServerError)
	}

	var list []ExportRow
	for rows.Next() {
		var row ExportRow
		if err = rows.Scan(
			&row.EmployeeID,
			&row.FullName,
			&row.Role,
			&row.Office,
			&row.Position,
			&row.Project,
			&row.Phone,
			&row.Email); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning export list"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return list, nil
}

// GetQrCodeByEmployeeID renders (or reuses) the check-in QR image for one
// employee and returns its path.
func (r Repository) GetQrCodeByEmployeeID(ctx context.Context, employeeID string) (string, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return "", err
	}

	exists := false
	if err := r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT CASE WHEN (SELECT id FROM users WHERE employee_id = '%s' AND deleted_at IS NULL) IS NOT NULL THEN true ELSE false END`, employeeID)).Scan(&exists); err != nil {
		return "", web.NewRequestError(errors.Wrap(err, "employee check"), http.StatusInternalServerError)
	}
	if !exists {
		return "", web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	path, err := service.QrCodeFile(employeeID)
	if err != nil {
		return "", web.NewRequestError(errors.Wrap(err, "generating qr code"), http.StatusInternalServerError)
	}

	return path, nil
}

// GetQrCodeList builds the printable PDF of every employee's QR badge.
func (r Repository) GetQrCodeList(ctx context.Context) (string, error) {
	list, err := r.GetExportList(ctx)
	if err != nil {
		return "", err
	}

	badges := make([]service.QrBadge, 0, len(list))
	for _, row := range list {
		badges = append(badges, service.QrBadge{
			EmployeeID: row.EmployeeID,
			FullName:   row.FullName,
			Office:     row.Office,
		})
	}

	path, err := service.QrCodeListPDF(badges)
	if err != nil {
		return "", web.NewRequestError(errors.Wrap(err, "generating qr code pdf"), http.StatusInternalServerError)
	}

	return path, nil
}

// GetTemplateFile refreshes the import template's office/position lookup
// sheets and returns its path.
func (r Repository) GetTemplateFile(ctx context.Context) (string, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return "", err
	}

	officeMap, positionMap, err := r.lookupMaps(ctx)
	if err != nil {
		return "", err
	}

	offices := make([]string, 0, len(officeMap))
	for name := range officeMap {
		offices = append(offices, name)
	}
	positions := make([]string, 0, len(positionMap))
	for name := range positionMap {
		positions = append(positions, name)
	}
	sort.Strings(offices)
	sort.Strings(positions)

	path, err := hashing.EditExcell(offices, positions)
	if err != nil {
		return "", web.NewRequestError(errors.Wrap(err, "refreshing import template"), http.StatusInternalServerError)
	}

	return path, nil
}

// GetEmployeeDashboard summarizes the authenticated employee's day and month:
// today's first check-in and last check-out plus the days present this month.
func (r Repository) GetEmployeeDashboard(ctx context.Context) (DashboardResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	today := time.Now().Format("2006-01-02")
	monthFirst := time.Now().Format("2006-01") + "-01"

	query := fmt.Sprintf(`
		SELECT
			u.full_name,
			(SELECT MIN(a.event_time) FROM attendance_event a
				WHERE a.user_id = u.id AND a.work_day = '%s'
				AND lower(a.state) LIKE '%%in%%' AND lower(a.state) NOT LIKE '%%out%%'
				AND a.deleted_at IS NULL),
			(SELECT MAX(a.event_time) FROM attendance_event a
				WHERE a.user_id = u.id AND a.work_day = '%s'
				AND lower(a.state) LIKE '%%out%%'
				AND a.deleted_at IS NULL),
			(SELECT COUNT(DISTINCT a.work_day) FROM attendance_event a
				WHERE a.user_id = u.id AND a.work_day >= '%s'
				AND a.deleted_at IS NULL)
		FROM users u
		WHERE u.id = %d AND u.deleted_at IS NULL
	`, today, today, monthFirst, claims.UserId)

	var response DashboardResponse
	var todayIn, todayOut []byte

	err = r.QueryRowContext(ctx, query).Scan(
		&response.FullName, &todayIn, &todayOut, &response.MonthPresentDays)
	if errors.Is(err, sql.ErrNoRows) {
		return DashboardResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return DashboardResponse{}, web.NewRequestError(errors.Wrap(err, "selecting employee dashboard"), http.StatusInternalServerError)
	}

	if len(todayIn) > 0 {
		s := string(todayIn)
		response.TodayIn = &s
	}
	if len(todayOut) > 0 {
		s := string(todayOut)
		response.TodayOut = &s
	}

	return response, nil
}

// GetStatistics lists the authenticated employee's daily attendance over a
// half-month or whole-month interval: first check-in, last check-out, and
// whether the check-in came after the company late threshold.
func (r Repository) GetStatistics(ctx context.Context, filter StatisticRequest) ([]StatisticResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	startDay, endDay, err := dtr.ResolvePeriod(filter.Month.Year(), filter.Month.Month(), filter.Interval)
	if err != nil {
		return nil, err
	}

	first := time.Date(filter.Month.Year(), filter.Month.Month(), startDay, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	last := time.Date(filter.Month.Year(), filter.Month.Month(), endDay, 0, 0, 0, 0, time.UTC).Format("2006-01-02")

	query := fmt.Sprintf(`
		WITH daily AS (
			SELECT
				a.work_day,
				MIN(a.event_time) FILTER (WHERE lower(a.state) LIKE '%%in%%' AND lower(a.state) NOT LIKE '%%out%%') AS come_time,
				MAX(a.event_time) FILTER (WHERE lower(a.state) LIKE '%%out%%') AS leave_time
			FROM attendance_event a
			WHERE a.deleted_at IS NULL
				AND a.user_id = %d
				AND a.work_day BETWEEN '%s' AND '%s'
			GROUP BY a.work_day
		),
		info AS (
			SELECT COALESCE(late_time, '10:00') AS late_time
			FROM company_info WHERE deleted_at IS NULL LIMIT 1
		)
		SELECT
			d.work_day,
			d.come_time,
			d.leave_time,
			d.come_time > i.late_time::time AS late
		FROM daily d, info i
		ORDER BY d.work_day
	`, claims.UserId, first, last)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting user statistics"), http.StatusInternalServerError)
	}

	var list []StatisticResponse

	for rows.Next() {
		var row StatisticResponse
		var workDayString string
		var comeTime, leaveTime []byte

		if err = rows.Scan(&workDayString, &comeTime, &leaveTime, &row.Late); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning user statistics"), http.StatusInternalServerError)
		}

		workDay, err := date.ParseDate(workDayString)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting work_day to date.Date"), http.StatusBadRequest)
		}
		row.WorkDay = &workDay

		if len(comeTime) > 0 {
			s := string(comeTime)
			row.ComeTime = &s
		}
		if len(leaveTime) > 0 {
			s := string(leaveTime)
			row.LeaveTime = &s
		}

		list = append(list, row)
	}

	return list, nil
}

// GetMonthlyStatistics aggregates the authenticated employee's month: days
// present, days absent up to today, late arrivals and early departures.
func (r Repository) GetMonthlyStatistics(ctx context.Context, filter MonthlyStatisticRequest) (MonthlyStatisticResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return MonthlyStatisticResponse{}, err
	}

	monthFirst := time.Date(filter.Month.Year(), filter.Month.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthLast := monthFirst.AddDate(0, 1, -1)

	query := fmt.Sprintf(`
		WITH daily AS (
			SELECT
				a.work_day,
				MIN(a.event_time) FILTER (WHERE lower(a.state) LIKE '%%in%%' AND lower(a.state) NOT LIKE '%%out%%') AS come_time,
				MAX(a.event_time) FILTER (WHERE lower(a.state) LIKE '%%out%%') AS leave_time
			FROM attendance_event a
			WHERE a.deleted_at IS NULL
				AND a.user_id = %d
				AND a.work_day BETWEEN '%s' AND '%s'
			GROUP BY a.work_day
		),
		info AS (
			SELECT COALESCE(late_time, '10:00') AS late_time,
			       COALESCE(end_time, '18:00') AS end_time
			FROM company_info WHERE deleted_at IS NULL LIMIT 1
		),
		span AS (
			SELECT COUNT(*) AS day_count
			FROM generate_series('%s'::date, LEAST('%s'::date, CURRENT_DATE), interval '1 day')
		)
		SELECT
			(SELECT COUNT(*) FROM daily WHERE come_time IS NOT NULL) AS present,
			(SELECT day_count FROM span) - (SELECT COUNT(*) FROM daily WHERE come_time IS NOT NULL) AS absent,
			(SELECT COUNT(*) FROM daily d, info i WHERE d.come_time > i.late_time::time) AS late,
			(SELECT COUNT(*) FROM daily d, info i WHERE d.leave_time < i.end_time::time) AS early_departure
	`, claims.UserId,
		monthFirst.Format("2006-01-02"), monthLast.Format("2006-01-02"),
		monthFirst.Format("2006-01-02"), monthLast.Format("2006-01-02"))

	var response MonthlyStatisticResponse

	err = r.QueryRowContext(ctx, query).Scan(
		&response.PresentDays,
		&response.AbsentDays,
		&response.LateDays,
		&response.EarlyDepartureDays,
	)
	if err != nil {
		return MonthlyStatisticResponse{}, web.NewRequestError(errors.Wrap(err, "fetching monthly statistics"), http.StatusBadRequest)
	}

	return response, nil
}
