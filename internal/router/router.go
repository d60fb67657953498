package router

import (
	"time"

	"hrmis/backend/foundation/web"
	"hrmis/backend/internal/auth"
	"hrmis/backend/internal/middleware"
	"hrmis/backend/internal/pkg/cache"
	"hrmis/backend/internal/pkg/repository/postgresql"
	"hrmis/backend/internal/service/hashing"

	"hrmis/backend/internal/repository/postgres/announcement"
	"hrmis/backend/internal/repository/postgres/attendance"
	"hrmis/backend/internal/repository/postgres/capability"
	"hrmis/backend/internal/repository/postgres/companyinfo"
	"hrmis/backend/internal/repository/postgres/leavetype"
	"hrmis/backend/internal/repository/postgres/notification"
	"hrmis/backend/internal/repository/postgres/office"
	"hrmis/backend/internal/repository/postgres/position"
	"hrmis/backend/internal/repository/postgres/project"
	"hrmis/backend/internal/repository/postgres/user"

	announcement_controller "hrmis/backend/internal/controller/http/v1/announcement"
	attendance_controller "hrmis/backend/internal/controller/http/v1/attendance"
	auth_controller "hrmis/backend/internal/controller/http/v1/auth"
	capability_controller "hrmis/backend/internal/controller/http/v1/capability"
	companyinfo_controller "hrmis/backend/internal/controller/http/v1/companyinfo"
	dtr_controller "hrmis/backend/internal/controller/http/v1/dtr"
	"hrmis/backend/internal/controller/http/v1/file"
	leavetype_controller "hrmis/backend/internal/controller/http/v1/leavetype"
	notification_controller "hrmis/backend/internal/controller/http/v1/notification"
	office_controller "hrmis/backend/internal/controller/http/v1/office"
	position_controller "hrmis/backend/internal/controller/http/v1/position"
	project_controller "hrmis/backend/internal/controller/http/v1/project"
	user_controller "hrmis/backend/internal/controller/http/v1/user"

	"github.com/redis/go-redis/v9"
)

type Router struct {
	*web.App
	postgresDB         *postgresql.Database
	redisDB            *redis.Client
	port               string
	auth               *auth.Auth
	fileServerBasePath string
	dtrCacheTTL        time.Duration
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	fileServerBasePath string,
	dtrCacheTTL time.Duration,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		fileServerBasePath,
		dtrCacheTTL,
	}
}

func (r Router) Init() error {
	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware())

	dtrCache := cache.NewStore(r.redisDB, r.dtrCacheTTL)

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	officePostgres := office.NewRepository(r.postgresDB)
	positionPostgres := position.NewRepository(r.postgresDB)
	projectPostgres := project.NewRepository(r.postgresDB)
	leaveTypePostgres := leavetype.NewRepository(r.postgresDB)
	capabilityPostgres := capability.NewRepository(r.postgresDB)
	companyInfoPostgres := companyinfo.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB)
	announcementPostgres := announcement.NewRepository(r.postgresDB)
	notificationPostgres := notification.NewRepository(r.postgresDB)

	// controller
	userController := user_controller.NewController(userPostgres)
	authController := auth_controller.NewController(userPostgres)
	officeController := office_controller.NewController(officePostgres)
	positionController := position_controller.NewController(positionPostgres)
	projectController := project_controller.NewController(projectPostgres)
	leaveTypeController := leavetype_controller.NewController(leaveTypePostgres)
	capabilityController := capability_controller.NewController(capabilityPostgres)
	companyInfoController := companyinfo_controller.NewController(companyInfoPostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres, dtrCache)
	dtrController := dtr_controller.NewController(attendancePostgres, userPostgres, dtrCache)
	announcementController := announcement_controller.NewController(announcementPostgres)
	notificationController := notification_controller.NewController(notificationPostgres)

	fileC := file.NewController(r.App, r.fileServerBasePath)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)

	r.GET("/media/*filepath", fileC.File)
	r.HEAD("/media/*filepath", fileC.File)

	// #user
	r.Get("/api/v1/user/list", userController.GetUserList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/user/qrcode", userController.GetQrCodeByEmployeeId, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/user/qrcodelist", userController.GetQrCodeList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/user/export_employee", userController.ExportEmployee, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/user/export_template", userController.ExportTemplate, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/user/dashboard", userController.GetEmployeeDashboard, middleware.Authenticate(r.auth))
	r.Get("/api/v1/user/statistics", userController.GetStatistics, middleware.Authenticate(r.auth))
	r.Get("/api/v1/user/monthly", userController.GetMonthlyStatistics, middleware.Authenticate(r.auth))
	r.Get("/api/v1/user/:id", userController.GetUserDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/user/create", userController.CreateUser, middleware.Authenticate(r.auth, auth.RoleAdmin), hashing.ValidateHalfWidthInput())
	r.Post("/api/v1/user/create_excell", userController.CreateUserByExcell, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/user/:id", userController.UpdateUserColumns, middleware.Authenticate(r.auth, auth.RoleAdmin), hashing.ValidateHalfWidthInput())
	r.Delete("/api/v1/user/:id", userController.DeleteUser, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #office
	r.Get("/api/v1/office/list", officeController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleDashboard))
	r.Get("/api/v1/office/:id", officeController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/office/create", officeController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/v1/office/:id", officeController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/office/:id", officeController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/office/:id", officeController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #position
	r.Get("/api/v1/position/list", positionController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleDashboard))
	r.Get("/api/v1/position/:id", positionController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/position/create", positionController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/v1/position/:id", positionController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/position/:id", positionController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/position/:id", positionController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #project
	r.Get("/api/v1/project/list", projectController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleDashboard))
	r.Get("/api/v1/project/:id", projectController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/project/create", projectController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/v1/project/:id", projectController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/project/:id", projectController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/project/:id", projectController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #leave_type
	r.Get("/api/v1/leave_type/list", leaveTypeController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/leave_type/:id", leaveTypeController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/leave_type/create", leaveTypeController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/v1/leave_type/:id", leaveTypeController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/leave_type/:id", leaveTypeController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/leave_type/:id", leaveTypeController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #capability
	r.Get("/api/v1/capability/list", capabilityController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/capability/:id", capabilityController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/capability/create", capabilityController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/v1/capability/:id", capabilityController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/capability/:id", capabilityController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/capability/:id", capabilityController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #companyInfo
	r.Get("/api/v1/company_info/list", companyInfoController.GetInfo, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/v1/company_info/:id", companyInfoController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #attendance
	r.Get("/api/v1/attendance/list", attendanceController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleEmployee, auth.RoleDashboard))
	r.Post("/api/v1/attendance/createbyphone", attendanceController.CreateByPhone, middleware.Authenticate(r.auth))
	r.Post("/api/v1/attendance/createbyqrcode", attendanceController.CreateByQRCode, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/attendance/exitbyphone", attendanceController.ExitByPhone, middleware.Authenticate(r.auth))
	r.Get("/api/v1/attendance/history", attendanceController.GetHistory, middleware.Authenticate(r.auth))
	r.Get("/api/v1/attendance/piechart", attendanceController.GetPieChartStatistics, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/attendance/barchart", attendanceController.GetBarChartStatistics, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/attendance/graph", attendanceController.GetGraphStatistic, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/attendance/:id", attendanceController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/v1/attendance/:id", attendanceController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/attendance/:id", attendanceController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/attendance/:id", attendanceController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/attendance", attendanceController.GetStatistics, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #dtr
	r.Get("/api/v1/dtr", dtrController.GetSheet, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/dtr/export", dtrController.ExportSheet, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/dtr/export_bulk", dtrController.ExportBulk, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #announcement
	r.Get("/api/v1/announcement/list", announcementController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/announcement/:id", announcementController.GetDetailById, middleware.Authenticate(r.auth))
	r.Post("/api/v1/announcement/create", announcementController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/announcement/:id", announcementController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/announcement/:id", announcementController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #notification
	r.Get("/api/v1/notification/list", notificationController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/notification/unread", notificationController.GetUnreadCount, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/notification/read_all", notificationController.MarkAllRead, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/notification/:id", notificationController.MarkRead, middleware.Authenticate(r.auth))
	r.Delete("/api/v1/notification/:id", notificationController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	return r.Run(r.port)
}
