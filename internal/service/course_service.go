package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gotinite/coursehub-backend/internal/model"
	"github.com/gotinite/coursehub-backend/internal/repository"
	"github.com/gotinite/coursehub-backend/internal/response"
)

// CourseService owns the course lifecycle: creation, rename, status changes
// and the one-time teacher assignment.
type CourseService struct {
	courseRepo  CourseStore
	teacherRepo TeacherStore
	studentRepo StudentStore
	log         zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo CourseStore, teacherRepo TeacherStore, studentRepo StudentStore, log zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo:  courseRepo,
		teacherRepo: teacherRepo,
		studentRepo: studentRepo,
		log:         log.With().Str("component", "course_service").Logger(),
	}
}

// Create adds a new course. Name must be unique; the status label is stored
// verbatim, no enumeration is enforced at this layer.
func (s *CourseService) Create(ctx context.Context, req model.CreateCourseRequest) (*model.Course, error) {
	exists, err := s.courseRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("course %q: %w", req.Name, ErrConflict)
	}

	course := &model.Course{
		Name:   req.Name,
		Status: req.Status,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, repository.ErrDuplicateCourseName) {
			return nil, fmt.Errorf("course %q: %w", req.Name, ErrConflict)
		}
		return nil, err
	}

	s.log.Info().Int64("course_id", course.ID).Str("name", course.Name).Msg("Course created")
	return course, nil
}

// Rename rewrites a course's name in place. lookupName is the course's
// current name; the two keys travel together in the request payload. Blank
// input is rejected before any existence check runs.
func (s *CourseService) Rename(ctx context.Context, newName, lookupName string) error {
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("the name cannot be empty: %w", ErrValidation)
	}

	taken, err := s.courseRepo.ExistsByName(ctx, newName)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("course %q: %w", newName, ErrConflict)
	}

	course, err := s.courseRepo.GetByName(ctx, lookupName)
	if err != nil {
		return asNotFound(err, "course", lookupName)
	}

	if err := s.courseRepo.UpdateName(ctx, course.ID, newName); err != nil {
		if errors.Is(err, repository.ErrDuplicateCourseName) {
			return fmt.Errorf("course %q: %w", newName, ErrConflict)
		}
		return err
	}

	s.log.Info().Int64("course_id", course.ID).Str("name", newName).Msg("Course renamed")
	return nil
}

// UpdateStatus rewrites a course's status label. Any non-blank string is
// accepted; no transition rules are enforced.
func (s *CourseService) UpdateStatus(ctx context.Context, newStatus, lookupName string) error {
	if strings.TrimSpace(newStatus) == "" {
		return fmt.Errorf("the status cannot be empty: %w", ErrValidation)
	}

	course, err := s.courseRepo.GetByName(ctx, lookupName)
	if err != nil {
		return asNotFound(err, "course", lookupName)
	}

	if err := s.courseRepo.UpdateStatus(ctx, course.ID, newStatus); err != nil {
		return err
	}

	s.log.Info().Int64("course_id", course.ID).Str("status", newStatus).Msg("Course status updated")
	return nil
}

// AssignTeacher links a course to its teacher. Assignment happens at most
// once; there is no reassignment or removal path. The conditional UPDATE in
// the store keeps a concurrent double-assign from overwriting.
func (s *CourseService) AssignTeacher(ctx context.Context, courseName, teacherEmail string) (*model.Course, error) {
	course, err := s.courseRepo.GetByName(ctx, courseName)
	if err != nil {
		return nil, asNotFound(err, "course", courseName)
	}
	if course.TeacherID != nil {
		return nil, fmt.Errorf("course %q teacher assignment: %w", courseName, ErrConflict)
	}

	teacher, err := s.teacherRepo.GetByEmail(ctx, teacherEmail)
	if err != nil {
		return nil, asNotFound(err, "teacher", teacherEmail)
	}

	assigned, err := s.courseRepo.AssignTeacher(ctx, course.ID, teacher.ID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		// Lost the race to a concurrent assignment.
		return nil, fmt.Errorf("course %q teacher assignment: %w", courseName, ErrConflict)
	}

	course.TeacherID = &teacher.ID
	s.log.Info().
		Int64("course_id", course.ID).
		Int64("teacher_id", teacher.ID).
		Msg("Teacher assigned to course")
	return course, nil
}

// GetByName retrieves a course by its unique name.
func (s *CourseService) GetByName(ctx context.Context, name string) (*model.Course, error) {
	course, err := s.courseRepo.GetByName(ctx, name)
	if err != nil {
		return nil, asNotFound(err, "course", name)
	}
	return course, nil
}

// List retrieves courses with pagination. Pages are 1-based.
func (s *CourseService) List(ctx context.Context, page, perPage int) ([]model.Course, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	courses, total, err := s.courseRepo.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return courses, pagination, nil
}

// GetByStatus retrieves all courses carrying the given status label.
func (s *CourseService) GetByStatus(ctx context.Context, status string) ([]model.Course, error) {
	return s.courseRepo.FindByStatus(ctx, status)
}

// GetByTeacher retrieves the courses assigned to a teacher.
func (s *CourseService) GetByTeacher(ctx context.Context, teacherEmail string) ([]model.Course, error) {
	teacher, err := s.teacherRepo.GetByEmail(ctx, teacherEmail)
	if err != nil {
		return nil, asNotFound(err, "teacher", teacherEmail)
	}
	return s.courseRepo.ListByTeacherID(ctx, teacher.ID)
}

// GetByStudent retrieves a student's courses, projected from the
// enrollments ledger.
func (s *CourseService) GetByStudent(ctx context.Context, studentEmail string) ([]model.Course, error) {
	student, err := s.studentRepo.GetByEmail(ctx, studentEmail)
	if err != nil {
		return nil, asNotFound(err, "student", studentEmail)
	}
	return s.courseRepo.ListByStudentID(ctx, student.ID)
}
