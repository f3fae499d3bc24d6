package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gotinite/coursehub-backend/internal/model"
	"github.com/gotinite/coursehub-backend/internal/repository"
)

// GradeService records and maintains grades. It is the most coupled part of
// the system: recording a grade validates against identity, catalog and
// enrollment state before the ledger row is written.
type GradeService struct {
	gradeRepo      GradeStore
	studentRepo    StudentStore
	courseRepo     CourseStore
	teacherRepo    TeacherStore
	enrollmentRepo EnrollmentStore
	log            zerolog.Logger
}

// NewGradeService creates a new GradeService.
func NewGradeService(gradeRepo GradeStore, studentRepo StudentStore, courseRepo CourseStore, teacherRepo TeacherStore, enrollmentRepo EnrollmentStore, log zerolog.Logger) *GradeService {
	return &GradeService{
		gradeRepo:      gradeRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		teacherRepo:    teacherRepo,
		enrollmentRepo: enrollmentRepo,
		log:            log.With().Str("component", "grade_service").Logger(),
	}
}

// Record creates a grade for a (student, course) pair. All three referenced
// entities must exist; then, in order: the value must lie in
// [GradeMin, GradeMax], the pair must not be graded yet, the acting teacher
// must be the course's assigned teacher, and the student must hold an
// enrollment in the course.
func (s *GradeService) Record(ctx context.Context, req model.RecordGradeRequest) (*model.Grade, error) {
	student, err := s.studentRepo.GetByEmail(ctx, req.StudentEmail)
	if err != nil {
		return nil, asNotFound(err, "student", req.StudentEmail)
	}
	course, err := s.courseRepo.GetByName(ctx, req.CourseName)
	if err != nil {
		return nil, asNotFound(err, "course", req.CourseName)
	}
	teacher, err := s.teacherRepo.GetByEmail(ctx, req.TeacherEmail)
	if err != nil {
		return nil, asNotFound(err, "teacher", req.TeacherEmail)
	}

	if req.Value < model.GradeMin || req.Value > model.GradeMax {
		return nil, fmt.Errorf("grade value %v is outside [%v, %v]: %w",
			req.Value, model.GradeMin, model.GradeMax, ErrValidation)
	}

	graded, err := s.gradeRepo.ExistsByStudentAndCourse(ctx, student.ID, course.ID)
	if err != nil {
		return nil, err
	}
	if graded {
		return nil, fmt.Errorf("grade of %q for %q: %w", req.StudentEmail, req.CourseName, ErrConflict)
	}

	if course.TeacherID == nil || *course.TeacherID != teacher.ID {
		return nil, fmt.Errorf("teacher %q on course %q: %w", req.TeacherEmail, req.CourseName, ErrNotCourseTeacher)
	}

	enrolled, err := s.enrollmentRepo.ExistsByCourseAndStudent(ctx, course.ID, student.ID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, fmt.Errorf("student %q in course %q: %w", req.StudentEmail, req.CourseName, ErrNotEnrolled)
	}

	grade := &model.Grade{
		Value:     req.Value,
		StudentID: student.ID,
		CourseID:  course.ID,
		TeacherID: teacher.ID,
	}
	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		if errors.Is(err, repository.ErrDuplicateGrade) {
			return nil, fmt.Errorf("grade of %q for %q: %w", req.StudentEmail, req.CourseName, ErrConflict)
		}
		return nil, err
	}

	s.log.Info().
		Int64("grade_id", grade.ID).
		Int64("student_id", student.ID).
		Int64("course_id", course.ID).
		Float64("value", grade.Value).
		Msg("Grade recorded")
	return grade, nil
}

// UpdateValue rewrites the value of an existing grade; nothing else about
// the row can change after creation.
func (s *GradeService) UpdateValue(ctx context.Context, value float64, id int64) error {
	if value < model.GradeMin || value > model.GradeMax {
		return fmt.Errorf("grade value %v is outside [%v, %v]: %w",
			value, model.GradeMin, model.GradeMax, ErrValidation)
	}

	exists, err := s.gradeRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("grade %d: %w", id, ErrNotFound)
	}

	if err := s.gradeRepo.UpdateValue(ctx, id, value); err != nil {
		return err
	}

	s.log.Info().Int64("grade_id", id).Float64("value", value).Msg("Grade value updated")
	return nil
}

// GetByStudent retrieves all grades recorded for a student.
func (s *GradeService) GetByStudent(ctx context.Context, studentEmail string) ([]model.Grade, error) {
	student, err := s.studentRepo.GetByEmail(ctx, studentEmail)
	if err != nil {
		return nil, asNotFound(err, "student", studentEmail)
	}
	return s.gradeRepo.ListByStudentID(ctx, student.ID)
}

// GetByCourse retrieves all grades recorded for a course.
func (s *GradeService) GetByCourse(ctx context.Context, courseName string) ([]model.Grade, error) {
	course, err := s.courseRepo.GetByName(ctx, courseName)
	if err != nil {
		return nil, asNotFound(err, "course", courseName)
	}
	return s.gradeRepo.ListByCourseID(ctx, course.ID)
}

// GetByTeacher retrieves all grades authored by a teacher.
func (s *GradeService) GetByTeacher(ctx context.Context, teacherEmail string) ([]model.Grade, error) {
	teacher, err := s.teacherRepo.GetByEmail(ctx, teacherEmail)
	if err != nil {
		return nil, asNotFound(err, "teacher", teacherEmail)
	}
	return s.gradeRepo.ListByTeacherID(ctx, teacher.ID)
}

// GetByStudentAndCourse retrieves the single grade for a (student, course)
// pair.
func (s *GradeService) GetByStudentAndCourse(ctx context.Context, studentEmail, courseName string) (*model.Grade, error) {
	student, err := s.studentRepo.GetByEmail(ctx, studentEmail)
	if err != nil {
		return nil, asNotFound(err, "student", studentEmail)
	}
	course, err := s.courseRepo.GetByName(ctx, courseName)
	if err != nil {
		return nil, asNotFound(err, "course", courseName)
	}

	grade, err := s.gradeRepo.GetByStudentAndCourse(ctx, student.ID, course.ID)
	if err != nil {
		return nil, asNotFound(err, "grade", fmt.Sprintf("%s/%s", studentEmail, courseName))
	}
	return grade, nil
}
