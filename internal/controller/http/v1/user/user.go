package user

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"hrmis/backend/foundation/web"
	"hrmis/backend/internal/repository/postgres/user"
	"hrmis/backend/internal/service"

	"github.com/Azure/go-autorest/autorest/date"
)

type Controller struct {
	user User
}

func NewController(user User) *Controller {
	return &Controller{user}
}

func (uc Controller) GetUserList(c *web.Context) error {
	var filter user.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if officeId, ok := c.GetQueryFunc(reflect.Int, "office_id").(*int); ok {
		filter.OfficeID = officeId
	}
	if positionId, ok := c.GetQueryFunc(reflect.Int, "position_id").(*int); ok {
		filter.PositionID = positionId
	}
	if projectId, ok := c.GetQueryFunc(reflect.Int, "project_id").(*int); ok {
		filter.ProjectID = projectId
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.user.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetUserDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetQrCodeByEmployeeId(c *web.Context) error {
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		return c.RespondError(web.NewRequestError(errors.New("employee_id parameter is required"), http.StatusBadRequest))
	}

	filePath, err := uc.user.GetQrCodeByEmployeeID(c.Ctx, employeeID)
	if err != nil {
		return c.RespondError(err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename="+filepath.Base(filePath))
	c.Status(http.StatusOK)
	_, err = io.Copy(c.Writer, file)
	if err != nil {
		return c.RespondError(err)
	}

	return nil
}

func (uc Controller) GetQrCodeList(c *web.Context) error {
	pdfFilename, err := uc.user.GetQrCodeList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}
	file, err := os.Open(pdfFilename)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=\"qr_employees.pdf\"")
	_, err = io.Copy(c.Writer, file)
	if err != nil {
		return c.RespondError(err)
	}
	return nil
}

func (uc Controller) CreateUser(c *web.Context) error {
	var request user.CreateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"created_data": response,
		"status":       true,
	}, http.StatusOK)
}

func (uc Controller) CreateUserByExcell(c *web.Context) error {
	var request user.ExcellRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.CreateByExcell(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"created_data": response,
		"status":       true,
	}, http.StatusOK)
}

// ExportEmployee streams every active employee as an excel workbook.
func (uc Controller) ExportEmployee(c *web.Context) error {
	list, err := uc.user.GetExportList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	employees := make([]service.Employee, 0, len(list))
	for _, row := range list {
		employees = append(employees, service.Employee{
			EmployeeID:   row.EmployeeID,
			FullName:     row.FullName,
			Role:         row.Role,
			OfficeName:   row.Office,
			PositionName: row.Position,
			ProjectName:  row.Project,
			Phone:        row.Phone,
			Email:        row.Email,
		})
	}

	fileName := filepath.Join(os.TempDir(), "employees.xlsx")
	if err := os.Remove(fileName); err != nil && !os.IsNotExist(err) {
		return c.RespondError(err)
	}
	if err := service.AddDataToExcel(employees, fileName); err != nil {
		return c.RespondError(err)
	}

	file, err := os.Open(fileName)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\"employees.xlsx\"")
	_, err = io.Copy(c.Writer, file)
	if err != nil {
		return c.RespondError(err)
	}
	return nil
}

// ExportTemplate streams the import template with refreshed office/position
// lookup sheets.
func (uc Controller) ExportTemplate(c *web.Context) error {
	path, err := uc.user.GetTemplateFile(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	file, err := os.Open(path)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\"template.xlsx\"")
	_, err = io.Copy(c.Writer, file)
	if err != nil {
		return c.RespondError(err)
	}
	return nil
}

func (uc Controller) GetEmployeeDashboard(c *web.Context) error {
	response, err := uc.user.GetEmployeeDashboard(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetStatistics(c *web.Context) error {
	var filter user.StatisticRequest

	monthStr := c.Query("month")
	if monthStr == "" {
		return c.RespondError(web.NewRequestError(errors.New("month parameter is required"), http.StatusBadRequest))
	}
	parsedMonth, err := date.ParseDate(monthStr)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid date format"), http.StatusBadRequest))
	}
	filter.Month = parsedMonth

	intervalStr := c.Query("interval")
	if intervalStr == "" {
		return c.RespondError(web.NewRequestError(errors.New("interval parameter is required"), http.StatusBadRequest))
	}

	interval, err := strconv.Atoi(intervalStr)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid interval format"), http.StatusBadRequest))
	}
	filter.Interval = interval

	list, err := uc.user.GetStatistics(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetMonthlyStatistics(c *web.Context) error {
	var filter user.MonthlyStatisticRequest

	monthStr := c.Query("month")
	if monthStr == "" {
		return c.RespondError(web.NewRequestError(errors.New("month parameter is required"), http.StatusBadRequest))
	}
	parsedMonth, err := date.ParseDate(monthStr)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid date format"), http.StatusBadRequest))
	}
	filter.Month = parsedMonth

	response, err := uc.user.GetMonthlyStatistics(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateUserColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request user.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	err := uc.user.UpdateColumns(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) DeleteUser(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := uc.user.Delete(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
