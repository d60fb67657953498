package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrmis/backend/foundation/web"
	"hrmis/backend/internal/repository/postgres/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUser struct {
	User
	statistics        func(context.Context, user.StatisticRequest) ([]user.StatisticResponse, error)
	monthlyStatistics func(context.Context, user.MonthlyStatisticRequest) (user.MonthlyStatisticResponse, error)
}

func (s stubUser) GetStatistics(ctx context.Context, filter user.StatisticRequest) ([]user.StatisticResponse, error) {
	return s.statistics(ctx, filter)
}

func (s stubUser) GetMonthlyStatistics(ctx context.Context, filter user.MonthlyStatisticRequest) (user.MonthlyStatisticResponse, error) {
	return s.monthlyStatistics(ctx, filter)
}

func newTestApp(controller *Controller) *web.App {
	gin.SetMode(gin.TestMode)

	app := web.NewApp()
	app.Get("/api/v1/user/statistics", controller.GetStatistics)
	app.Get("/api/v1/user/monthly", controller.GetMonthlyStatistics)

	return app
}

func TestGetStatistics(t *testing.T) {
	come := "08:45:00"
	controller := NewController(stubUser{
		statistics: func(_ context.Context, filter user.StatisticRequest) ([]user.StatisticResponse, error) {
			assert.Equal(t, 2024, filter.Month.Year())
			assert.Equal(t, 4, int(filter.Month.Month()))
			assert.Equal(t, 1, filter.Interval)

			return []user.StatisticResponse{{ComeTime: &come}}, nil
		},
	})
	app := newTestApp(controller)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/v1/user/statistics?month=2024-04-01&interval=1", nil)
	app.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data struct {
			Results []user.StatisticResponse `json:"results"`
		} `json:"data"`
		Status bool `json:"status"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Status)
	require.Len(t, body.Data.Results, 1)
	require.NotNil(t, body.Data.Results[0].ComeTime)
	assert.Equal(t, come, *body.Data.Results[0].ComeTime)
}

func TestGetStatisticsRequiresMonth(t *testing.T) {
	app := newTestApp(NewController(stubUser{}))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/v1/user/statistics?interval=1", nil)
	app.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetStatisticsRequiresInterval(t *testing.T) {
	app := newTestApp(NewController(stubUser{}))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/v1/user/statistics?month=2024-04-01", nil)
	app.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetMonthlyStatistics(t *testing.T) {
	present := 18
	late := 2
	controller := NewController(stubUser{
		monthlyStatistics: func(_ context.Context, filter user.MonthlyStatisticRequest) (user.MonthlyStatisticResponse, error) {
			assert.Equal(t, 2024, filter.Month.Year())
			assert.Equal(t, 4, int(filter.Month.Month()))

			return user.MonthlyStatisticResponse{PresentDays: &present, LateDays: &late}, nil
		},
	})
	app := newTestApp(controller)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/v1/user/monthly?month=2024-04-01", nil)
	app.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data   user.MonthlyStatisticResponse `json:"data"`
		Status bool                          `json:"status"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Status)
	require.NotNil(t, body.Data.PresentDays)
	assert.Equal(t, present, *body.Data.PresentDays)
	require.NotNil(t, body.Data.LateDays)
	assert.Equal(t, late, *body.Data.LateDays)
}
