package dtr

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strconv"

	"hrmis/backend/foundation/web"
	"hrmis/backend/internal/pkg/cache"
	"hrmis/backend/internal/repository/postgres/user"
	"hrmis/backend/internal/service"
	"hrmis/backend/internal/service/dtr"

	"github.com/Azure/go-autorest/autorest/date"
)

type Controller struct {
	attendance Attendance
	user       User
	sheets     *cache.Store
}

func NewController(attendance Attendance, user User, sheets *cache.Store) *Controller {
	return &Controller{attendance, user, sheets}
}

type sheetParams struct {
	userID   int
	month    date.Date
	period   int
	startDay int
	endDay   int
}

func (uc Controller) parseSheetParams(c *web.Context, needUser bool) (sheetParams, error) {
	var params sheetParams

	if needUser {
		userId, ok := c.GetQueryFunc(reflect.Int, "user_id").(*int)
		if !ok || userId == nil {
			return params, web.NewRequestError(errors.New("user_id parameter is required"), http.StatusBadRequest)
		}
		params.userID = *userId
	}

	monthStr := c.Query("month")
	if monthStr == "" {
		return params, web.NewRequestError(errors.New("month parameter is required"), http.StatusBadRequest)
	}
	parsedMonth, err := date.ParseDate(monthStr)
	if err != nil {
		return params, web.NewRequestError(errors.New("invalid date format"), http.StatusBadRequest)
	}
	params.month = parsedMonth

	params.period = dtr.PeriodWholeMonth
	if periodStr := c.Query("period"); periodStr != "" {
		period, err := strconv.Atoi(periodStr)
		if err != nil {
			return params, web.NewRequestError(errors.New("invalid period format"), http.StatusBadRequest)
		}
		params.period = period
	}

	params.startDay, params.endDay, err = dtr.ResolvePeriod(params.month.Year(), params.month.Month(), params.period)
	if err != nil {
		return params, err
	}

	return params, nil
}

// records returns the aggregated day records for one employee and period,
// consulting the sheet cache first.
func (uc Controller) records(c *web.Context, params sheetParams) ([]dtr.DayRecord, error) {
	key := cache.Key("dtr", params.userID, params.month.Year(), int(params.month.Month()), params.period)

	var cached []dtr.DayRecord
	if uc.sheets.Get(c.Ctx, key, &cached) {
		return cached, nil
	}

	events, err := uc.attendance.GetEventsForDTR(c.Ctx, params.userID, params.month.Year(), params.month.Month(), params.startDay, params.endDay)
	if err != nil {
		return nil, err
	}

	records := dtr.Aggregate(events, params.startDay, params.endDay)

	// Best effort. A failed write only costs a recompute on the next read.
	_ = uc.sheets.Set(c.Ctx, key, records)

	return records, nil
}

func periodLabel(params sheetParams) string {
	return fmt.Sprintf("days %d-%d", params.startDay, params.endDay)
}

func monthLabel(params sheetParams) string {
	return fmt.Sprintf("%d-%02d", params.month.Year(), int(params.month.Month()))
}

func (uc Controller) GetSheet(c *web.Context) error {
	params, err := uc.parseSheetParams(c, true)
	if err != nil {
		return c.RespondError(err)
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetDetailById(c.Ctx, params.userID)
	if err != nil {
		return c.RespondError(err)
	}

	records, err := uc.records(c, params)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"employee": detail,
			"month":    monthLabel(params),
			"period":   params.period,
			"records":  records,
		},
		"status": true,
	}, http.StatusOK)
}

func sheetInfo(detail user.GetDetailByIdResponse, params sheetParams) service.DTRSheetInfo {
	info := service.DTRSheetInfo{
		MonthLabel:  monthLabel(params),
		PeriodLabel: periodLabel(params),
	}
	if detail.EmployeeID != nil {
		info.EmployeeID = *detail.EmployeeID
	}
	if detail.FullName != nil {
		info.FullName = *detail.FullName
	}
	if detail.Office != nil {
		info.Office = *detail.Office
	}
	if detail.Position != nil {
		info.Position = *detail.Position
	}
	return info
}

func (uc Controller) ExportSheet(c *web.Context) error {
	params, err := uc.parseSheetParams(c, true)
	if err != nil {
		return c.RespondError(err)
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetDetailById(c.Ctx, params.userID)
	if err != nil {
		return c.RespondError(err)
	}

	records, err := uc.records(c, params)
	if err != nil {
		return c.RespondError(err)
	}

	path, err := service.DTRSheetPDF(sheetInfo(detail, params), records)
	if err != nil {
		return c.RespondError(err)
	}

	return uc.servePDF(c, path)
}

// ExportBulk renders the period's sheet for every active employee into one
// PDF, optionally limited to a single office.
func (uc Controller) ExportBulk(c *web.Context) error {
	params, err := uc.parseSheetParams(c, false)
	if err != nil {
		return c.RespondError(err)
	}

	var filter user.Filter
	if officeId, ok := c.GetQueryFunc(reflect.Int, "office_id").(*int); ok {
		filter.OfficeID = officeId
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, _, err := uc.user.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	var sheets []service.DTRSheet
	for _, employee := range list {
		params.userID = employee.ID

		records, err := uc.records(c, params)
		if err != nil {
			return c.RespondError(err)
		}

		info := service.DTRSheetInfo{
			MonthLabel:  monthLabel(params),
			PeriodLabel: periodLabel(params),
		}
		if employee.EmployeeID != nil {
			info.EmployeeID = *employee.EmployeeID
		}
		if employee.FullName != nil {
			info.FullName = *employee.FullName
		}
		if employee.Office != nil {
			info.Office = *employee.Office
		}
		if employee.Position != nil {
			info.Position = *employee.Position
		}

		sheets = append(sheets, service.DTRSheet{Info: info, Records: records})
	}

	path, err := service.DTRBulkPDF(sheets, monthLabel(params))
	if err != nil {
		return c.RespondError(err)
	}

	return uc.servePDF(c, path)
}

func (uc Controller) servePDF(c *web.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=\"dtr.pdf\"")
	_, err = io.Copy(c.Writer, file)
	if err != nil {
		return c.RespondError(err)
	}
	return nil
}
