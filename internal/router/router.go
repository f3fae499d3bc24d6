package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gotinite/coursehub-backend/internal/config"
	"github.com/gotinite/coursehub-backend/internal/handler"
	"github.com/gotinite/coursehub-backend/internal/middleware"
	"github.com/gotinite/coursehub-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Student *handler.StudentHandler
	Teacher *handler.TeacherHandler
	Course  *handler.CourseHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// Reads are unthrottled.
	{
		api.GET("/overview", handlers.Student.Overview)

		api.GET("/students", handlers.Student.List)
		api.GET("/students/search", handlers.Student.Search)
		api.GET("/students/enrollments", handlers.Student.Enrollments)
		api.GET("/students/courses", handlers.Student.Courses)
		api.GET("/students/grades", handlers.Student.Grades)

		api.GET("/teachers", handlers.Teacher.List)
		api.GET("/teachers/search", handlers.Teacher.Search)
		api.GET("/teachers/courses", handlers.Teacher.Courses)
		api.GET("/teachers/grades", handlers.Teacher.Grades)

		api.GET("/courses", handlers.Course.List)
		api.GET("/courses/by-status", handlers.Course.ByStatus)
		api.GET("/courses/enrollments", handlers.Course.Enrollments)
		api.GET("/courses/students", handlers.Course.Students)
		api.GET("/courses/grades", handlers.Course.Grades)
		api.GET("/courses/teacher", handlers.Course.Teacher)
		api.GET("/courses/grade-sheet", handlers.Course.GradeSheet)
	}

	// Mutations share a per-IP limiter.
	writeLimiter := middleware.NewRateLimiter(cfg.WriteRateLimit, cfg.WriteRateWindow)
	writes := api.Group("")
	writes.Use(writeLimiter.Middleware())
	{
		writes.POST("/students", handlers.Student.Create)
		writes.PUT("/students/email", handlers.Student.UpdateEmail)
		writes.POST("/enrollments", handlers.Student.Enroll)

		writes.POST("/teachers", handlers.Teacher.Create)
		writes.PUT("/teachers/email", handlers.Teacher.UpdateEmail)
		writes.POST("/grades", handlers.Teacher.RecordGrade)
		writes.PUT("/grades/:id", handlers.Teacher.UpdateGradeValue)

		writes.POST("/courses", handlers.Course.Create)
		writes.PUT("/courses/name", handlers.Course.Rename)
		writes.PUT("/courses/status", handlers.Course.UpdateStatus)
		writes.POST("/courses/assign-teacher", handlers.Course.AssignTeacher)
	}

	return router
}
