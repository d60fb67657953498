package attendance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrmis/backend/foundation/web"
	"hrmis/backend/internal/repository/postgres/attendance"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	officeLatitude  = 35.7031509
	officeLongitude = 139.7745439
	officeRadius    = 3000.0
)

func TestCalculateDistanceSamePoint(t *testing.T) {
	distance := CalculateDistance(officeLatitude, officeLongitude, officeLatitude, officeLongitude)
	assert.Zero(t, distance)
}

func TestCalculateDistanceNearbyPoint(t *testing.T) {
	// 0.001 degrees of latitude is about 111 meters.
	distance := CalculateDistance(officeLatitude+0.001, officeLongitude, officeLatitude, officeLongitude)
	assert.InDelta(t, 111.0, distance, 1.0)
	assert.LessOrEqual(t, distance, officeRadius)
}

func TestCalculateDistanceFarPoint(t *testing.T) {
	// Osaka is roughly 400 km away, well outside any office radius.
	distance := CalculateDistance(34.6937, 135.5023, officeLatitude, officeLongitude)
	assert.Greater(t, distance, officeRadius)
	assert.InDelta(t, 400_000.0, distance, 20_000.0)
}

type stubAttendance struct {
	Attendance
	geofence      func(context.Context) (attendance.Geofence, error)
	createByPhone func(context.Context, attendance.CreateRequest) (attendance.CreateResponse, error)
	exitByPhone   func(context.Context, attendance.CreateRequest) (attendance.CreateResponse, error)
}

func (s stubAttendance) GetGeofence(ctx context.Context) (attendance.Geofence, error) {
	return s.geofence(ctx)
}

func (s stubAttendance) CreateByPhone(ctx context.Context, request attendance.CreateRequest) (attendance.CreateResponse, error) {
	return s.createByPhone(ctx, request)
}

func (s stubAttendance) ExitByPhone(ctx context.Context, request attendance.CreateRequest) (attendance.CreateResponse, error) {
	return s.exitByPhone(ctx, request)
}

func newTestApp(controller *Controller) *web.App {
	gin.SetMode(gin.TestMode)

	app := web.NewApp()
	app.Post("/api/v1/attendance/enter", controller.CreateByPhone)
	app.Post("/api/v1/attendance/exit", controller.ExitByPhone)

	return app
}

func officeGeofence(context.Context) (attendance.Geofence, error) {
	return attendance.Geofence{
		Latitude:  officeLatitude,
		Longitude: officeLongitude,
		Radius:    officeRadius,
	}, nil
}

func punchBody(latitude, longitude string) *strings.Reader {
	return strings.NewReader(`{"latitude":` + latitude + `,"longitude":` + longitude + `}`)
}

func TestCreateByPhoneInsideRadius(t *testing.T) {
	created := false
	controller := NewController(stubAttendance{
		geofence: officeGeofence,
		createByPhone: func(context.Context, attendance.CreateRequest) (attendance.CreateResponse, error) {
			created = true
			return attendance.CreateResponse{State: attendance.StateIn}, nil
		},
	}, nil)
	app := newTestApp(controller)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/v1/attendance/enter", punchBody("35.7035", "139.7746"))
	request.Header.Set("Content-Type", "application/json")
	app.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, created)
}

func TestCreateByPhoneOutsideRadius(t *testing.T) {
	created := false
	controller := NewController(stubAttendance{
		geofence: officeGeofence,
		createByPhone: func(context.Context, attendance.CreateRequest) (attendance.CreateResponse, error) {
			created = true
			return attendance.CreateResponse{}, nil
		},
	}, nil)
	app := newTestApp(controller)

	// Osaka coordinates, far outside the office radius.
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/v1/attendance/enter", punchBody("34.6937", "135.5023"))
	request.Header.Set("Content-Type", "application/json")
	app.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, created)
}

func TestExitByPhoneOutsideRadius(t *testing.T) {
	exited := false
	controller := NewController(stubAttendance{
		geofence: officeGeofence,
		exitByPhone: func(context.Context, attendance.CreateRequest) (attendance.CreateResponse, error) {
			exited = true
			return attendance.CreateResponse{}, nil
		},
	}, nil)
	app := newTestApp(controller)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/v1/attendance/exit", punchBody("34.6937", "135.5023"))
	request.Header.Set("Content-Type", "application/json")
	app.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, exited)
}
