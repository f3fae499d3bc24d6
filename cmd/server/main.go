package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gotinite/coursehub-backend/internal/config"
	"github.com/gotinite/coursehub-backend/internal/database"
	"github.com/gotinite/coursehub-backend/internal/handler"
	"github.com/gotinite/coursehub-backend/internal/logger"
	"github.com/gotinite/coursehub-backend/internal/repository"
	"github.com/gotinite/coursehub-backend/internal/router"
	"github.com/gotinite/coursehub-backend/internal/service"
	"github.com/gotinite/coursehub-backend/internal/validator"
)

func main() {
	cfg := config.Load()

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting CourseHub Backend")

	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Repositories
	studentRepo := repository.NewStudentRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	gradeRepo := repository.NewGradeRepository(pool)

	// Services
	studentService := service.NewStudentService(studentRepo, courseRepo, rdb, log)
	teacherService := service.NewTeacherService(teacherRepo, courseRepo, log)
	courseService := service.NewCourseService(courseRepo, teacherRepo, studentRepo, log)
	enrollmentService := service.NewEnrollmentService(courseRepo, studentRepo, enrollmentRepo, rdb, log)
	gradeService := service.NewGradeService(gradeRepo, studentRepo, courseRepo, teacherRepo, enrollmentRepo, log)
	reportService := service.NewReportService(courseRepo, studentRepo, gradeRepo, log)

	// Handlers
	handlers := &router.Handlers{
		Student: handler.NewStudentHandler(studentService, courseService, enrollmentService, gradeService),
		Teacher: handler.NewTeacherHandler(teacherService, courseService, gradeService),
		Course:  handler.NewCourseHandler(courseService, studentService, teacherService, enrollmentService, gradeService, reportService),
	}

	r := router.SetupRouter(handlers, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}

	log.Info().Msg("Server stopped")
}
