package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gotinite/coursehub-backend/internal/config"
	"github.com/gotinite/coursehub-backend/internal/model"
	"github.com/gotinite/coursehub-backend/internal/repository"
)

// EnrollmentService links students to courses, at most once per pair. The
// enrollments ledger is the single source of truth; every derived view
// (course roster, student course list) is a join projection, so the single
// INSERT carries the whole state change.
type EnrollmentService struct {
	courseRepo     CourseStore
	studentRepo    StudentStore
	enrollmentRepo EnrollmentStore
	rdb            *redis.Client
	log            zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService. rdb may be nil when
// no roster cache is in play.
func NewEnrollmentService(courseRepo CourseStore, studentRepo StudentStore, enrollmentRepo EnrollmentStore, rdb *redis.Client, log zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		courseRepo:     courseRepo,
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		rdb:            rdb,
		log:            log.With().Str("component", "enrollment_service").Logger(),
	}
}

// Enroll links a student to a course. Every new enrollment is created with
// the fixed default status; the endpoint takes no status input.
func (s *EnrollmentService) Enroll(ctx context.Context, courseName, studentEmail string) (*model.Enrollment, error) {
	course, err := s.courseRepo.GetByName(ctx, courseName)
	if err != nil {
		return nil, asNotFound(err, "course", courseName)
	}
	student, err := s.studentRepo.GetByEmail(ctx, studentEmail)
	if err != nil {
		return nil, asNotFound(err, "student", studentEmail)
	}

	enrolled, err := s.enrollmentRepo.ExistsByCourseAndStudent(ctx, course.ID, student.ID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, fmt.Errorf("enrollment of %q in %q: %w", studentEmail, courseName, ErrConflict)
	}

	enrollment := &model.Enrollment{
		Status:    model.EnrollmentStatusCompleted,
		CourseID:  course.ID,
		StudentID: student.ID,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		if errors.Is(err, repository.ErrDuplicateEnrollment) {
			return nil, fmt.Errorf("enrollment of %q in %q: %w", studentEmail, courseName, ErrConflict)
		}
		return nil, err
	}

	s.invalidateRoster(ctx, course.ID)
	s.log.Info().
		Int64("enrollment_id", enrollment.ID).
		Int64("course_id", course.ID).
		Int64("student_id", student.ID).
		Msg("Student enrolled")
	return enrollment, nil
}

// GetByCourse retrieves all enrollments for a course.
func (s *EnrollmentService) GetByCourse(ctx context.Context, courseName string) ([]model.Enrollment, error) {
	course, err := s.courseRepo.GetByName(ctx, courseName)
	if err != nil {
		return nil, asNotFound(err, "course", courseName)
	}
	return s.enrollmentRepo.ListByCourseID(ctx, course.ID)
}

// GetByStudent retrieves all enrollments for a student.
func (s *EnrollmentService) GetByStudent(ctx context.Context, studentEmail string) ([]model.Enrollment, error) {
	student, err := s.studentRepo.GetByEmail(ctx, studentEmail)
	if err != nil {
		return nil, asNotFound(err, "student", studentEmail)
	}
	return s.enrollmentRepo.ListByStudentID(ctx, student.ID)
}

// GetByStudentAndStatus retrieves a student's enrollments filtered by
// status label.
func (s *EnrollmentService) GetByStudentAndStatus(ctx context.Context, studentEmail, status string) ([]model.Enrollment, error) {
	student, err := s.studentRepo.GetByEmail(ctx, studentEmail)
	if err != nil {
		return nil, asNotFound(err, "student", studentEmail)
	}
	return s.enrollmentRepo.ListByStudentIDAndStatus(ctx, student.ID, status)
}

func (s *EnrollmentService) invalidateRoster(ctx context.Context, courseID int64) {
	if s.rdb == nil {
		return
	}
	key := config.CacheKey.CourseRosterKey(courseID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Roster cache invalidation failed")
	}
}
