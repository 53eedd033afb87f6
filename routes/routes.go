package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/planify-app/planify-backend/config"
	"github.com/planify-app/planify-backend/handlers"
	"github.com/planify-app/planify-backend/middlewares"
	"github.com/planify-app/planify-backend/models"
	"github.com/planify-app/planify-backend/services"
	"github.com/planify-app/planify-backend/storage"
	"github.com/planify-app/planify-backend/store/gormstore"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config, db *gorm.DB, files storage.FileStorage) {
	st := gormstore.New(db)

	userSvc := services.NewUserService(st)
	courseSvc := services.NewCourseService(st, st)
	enrollSvc := services.NewEnrollmentService(st, st, st)
	attendSvc := services.NewAttendanceService(st, st, st)

	auth := handlers.NewAuthHandler(userSvc, cfg.JWTSecret)
	course := handlers.NewCourseHandler(courseSvc)
	enroll := handlers.NewEnrollmentHandler(enrollSvc)
	attend := handlers.NewAttendanceHandler(attendSvc)
	plan := handlers.NewLessonPlanHandler(db, files)
	contact := handlers.NewContactHandler(db)
	admin := handlers.NewAdminHandler(db)

	// ===== Public =====
	e.GET("/healthz", handlers.Health)
	e.POST("/auth/register", auth.Register)
	e.POST("/auth/login", auth.Login)
	e.POST("/contact", contact.Submit)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	e.GET("/me", auth.Me, authMW)
	e.GET("/materials/:id/download", plan.DownloadMaterial, authMW,
		middlewares.RequireRole(models.RoleEducator, models.RoleStudent))

	// ===== Educator =====
	ed := e.Group("/educator", authMW, middlewares.RequireRole(models.RoleEducator))
	ed.GET("/courses", course.ListOwned)
	ed.POST("/courses", course.Create)
	ed.GET("/courses/:id", course.GetOwned)
	ed.PUT("/courses/:id", course.Update)
	ed.DELETE("/courses/:id", course.Delete)

	ed.GET("/courses/:id/students", enroll.Roster)
	ed.POST("/courses/:id/enrollments", enroll.AddByEmail)
	ed.DELETE("/courses/:id/enrollments/:studentID", enroll.Remove)

	ed.GET("/courses/:id/plans", plan.ListForCourse)
	ed.POST("/courses/:id/plans", plan.Create)
	ed.PUT("/plans/:id", plan.Update)
	ed.DELETE("/plans/:id", plan.Delete)
	ed.POST("/plans/:id/materials", plan.UploadMaterial)
	ed.DELETE("/materials/:id", plan.DeleteMaterial)

	ed.POST("/courses/:id/attendance", attend.Record)
	ed.GET("/courses/:id/attendance", attend.History)
	ed.GET("/courses/:id/attendance/:date", attend.DaySheet)

	// ===== Student =====
	stu := e.Group("/student", authMW, middlewares.RequireRole(models.RoleStudent))
	stu.GET("/courses", course.ListEnrolled)
	stu.POST("/courses/join", enroll.Join)
	stu.GET("/courses/:id", course.GetEnrolled)
	stu.GET("/courses/:id/plans", plan.ListForStudent)
	stu.GET("/courses/:id/attendance", attend.Mine)

	// ===== Admin =====
	adm := e.Group("/admin", authMW, middlewares.RequireRole(models.RoleAdmin))
	adm.GET("/stats", admin.Stats)
	adm.GET("/messages", admin.ListMessages)
	adm.PUT("/messages/:id/read", admin.MarkMessageRead)
	adm.DELETE("/messages/:id", admin.DeleteMessage)
}
