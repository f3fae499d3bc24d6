package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gotinite/coursehub-backend/internal/config"
	"github.com/gotinite/coursehub-backend/internal/database"
	"github.com/gotinite/coursehub-backend/internal/logger"
	"github.com/gotinite/coursehub-backend/internal/model"
	"github.com/gotinite/coursehub-backend/internal/repository"
	"github.com/gotinite/coursehub-backend/internal/service"
)

// Seeds a demo dataset: a handful of teachers and courses, a class worth of
// students, and enrollments linking them. Safe to re-run; duplicates are
// skipped.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	studentRepo := repository.NewStudentRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)

	studentService := service.NewStudentService(studentRepo, courseRepo, nil, log)
	teacherService := service.NewTeacherService(teacherRepo, courseRepo, log)
	courseService := service.NewCourseService(courseRepo, teacherRepo, studentRepo, log)
	enrollmentService := service.NewEnrollmentService(courseRepo, studentRepo, enrollmentRepo, nil, log)

	fmt.Println("=== Seeding demo data ===")

	teachers := []model.CreateTeacherRequest{
		{FirstName: "Elena", LastName: "Petrova", Email: "elena.petrova@coursehub.dev"},
		{FirstName: "Georgi", LastName: "Ivanov", Email: "georgi.ivanov@coursehub.dev"},
		{FirstName: "Maria", LastName: "Dimitrova", Email: "maria.dimitrova@coursehub.dev"},
	}
	for _, t := range teachers {
		if _, err := teacherService.Create(ctx, t); err != nil {
			fmt.Printf("teacher %s skipped: %v\n", t.Email, err)
		}
	}

	courses := []struct {
		req     model.CreateCourseRequest
		teacher string
	}{
		{model.CreateCourseRequest{Name: "Mathematics", Status: model.CourseStatusActive}, "elena.petrova@coursehub.dev"},
		{model.CreateCourseRequest{Name: "Physics", Status: model.CourseStatusActive}, "georgi.ivanov@coursehub.dev"},
		{model.CreateCourseRequest{Name: "Literature", Status: model.CourseStatusPending}, "maria.dimitrova@coursehub.dev"},
		{model.CreateCourseRequest{Name: "Chemistry", Status: model.CourseStatusInactive}, ""},
	}
	for _, cr := range courses {
		if _, err := courseService.Create(ctx, cr.req); err != nil {
			fmt.Printf("course %s skipped: %v\n", cr.req.Name, err)
		}
		if cr.teacher != "" {
			if _, err := courseService.AssignTeacher(ctx, cr.req.Name, cr.teacher); err != nil {
				fmt.Printf("assignment %s skipped: %v\n", cr.req.Name, err)
			}
		}
	}

	names := []string{
		"Ivan Georgiev", "Anna Koleva", "Petar Stoyanov", "Nina Vasileva",
		"Stefan Iliev", "Daniela Hristova", "Viktor Angelov", "Elitsa Todorova",
		"Kiril Marinov", "Yana Atanasova", "Boris Nikolov", "Silvia Petkova",
	}
	successCount := 0
	for i, full := range names {
		parts := strings.SplitN(full, " ", 2)
		email := fmt.Sprintf("%s.%s@student.coursehub.dev",
			strings.ToLower(parts[0]), strings.ToLower(parts[1]))
		req := model.CreateStudentRequest{
			FirstName: parts[0],
			LastName:  parts[1],
			Email:     email,
		}
		if _, err := studentService.Create(ctx, req); err != nil {
			fmt.Printf("student %s skipped: %v\n", email, err)
			continue
		}
		successCount++

		// Spread students across the active courses.
		courseName := courses[i%3].req.Name
		if _, err := enrollmentService.Enroll(ctx, courseName, email); err != nil {
			fmt.Printf("enrollment %s -> %s skipped: %v\n", email, courseName, err)
		}
	}

	fmt.Printf("Seeded %d students\n", successCount)
}
