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

// TeacherService owns creation and identity of teacher records.
type TeacherService struct {
	teacherRepo TeacherStore
	courseRepo  CourseStore
	log         zerolog.Logger
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(teacherRepo TeacherStore, courseRepo CourseStore, log zerolog.Logger) *TeacherService {
	return &TeacherService{
		teacherRepo: teacherRepo,
		courseRepo:  courseRepo,
		log:         log.With().Str("component", "teacher_service").Logger(),
	}
}

// Create registers a new teacher. Email must be unique among teachers.
func (s *TeacherService) Create(ctx context.Context, req model.CreateTeacherRequest) (*model.Teacher, error) {
	exists, err := s.teacherRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("teacher email %q: %w", req.Email, ErrConflict)
	}

	teacher := &model.Teacher{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		if errors.Is(err, repository.ErrDuplicateTeacherEmail) {
			return nil, fmt.Errorf("teacher email %q: %w", req.Email, ErrConflict)
		}
		return nil, err
	}

	s.log.Info().Int64("teacher_id", teacher.ID).Msg("Teacher created")
	return teacher, nil
}

// UpdateEmail rewrites a teacher's email in place. The current email is the
// lookup key. Blank input is rejected before any existence check runs.
func (s *TeacherService) UpdateEmail(ctx context.Context, newEmail, currentEmail string) error {
	if strings.TrimSpace(newEmail) == "" {
		return fmt.Errorf("the email cannot be empty: %w", ErrValidation)
	}

	taken, err := s.teacherRepo.ExistsByEmail(ctx, newEmail)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("teacher email %q: %w", newEmail, ErrConflict)
	}

	teacher, err := s.teacherRepo.GetByEmail(ctx, currentEmail)
	if err != nil {
		return asNotFound(err, "teacher", currentEmail)
	}

	if err := s.teacherRepo.UpdateEmail(ctx, teacher.ID, newEmail); err != nil {
		if errors.Is(err, repository.ErrDuplicateTeacherEmail) {
			return fmt.Errorf("teacher email %q: %w", newEmail, ErrConflict)
		}
		return err
	}

	s.log.Info().Int64("teacher_id", teacher.ID).Msg("Teacher email updated")
	return nil
}

// GetByEmail retrieves a teacher by their unique email.
func (s *TeacherService) GetByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	teacher, err := s.teacherRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, asNotFound(err, "teacher", email)
	}
	return teacher, nil
}

// List retrieves teachers with pagination. Pages are 1-based.
func (s *TeacherService) List(ctx context.Context, page, perPage int) ([]model.Teacher, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	teachers, total, err := s.teacherRepo.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if teachers == nil {
		teachers = []model.Teacher{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return teachers, pagination, nil
}

// Search finds teachers by exact first, last or derived full name.
func (s *TeacherService) Search(ctx context.Context, searchType, value string) ([]model.Teacher, error) {
	var (
		teachers []model.Teacher
		err      error
	)
	switch strings.ToLower(searchType) {
	case "firstname":
		teachers, err = s.teacherRepo.FindByFirstName(ctx, value)
	case "lastname":
		teachers, err = s.teacherRepo.FindByLastName(ctx, value)
	case "fullname":
		teachers, err = s.teacherRepo.FindByFullName(ctx, value)
	default:
		return nil, fmt.Errorf("unknown search type %q: %w", searchType, ErrValidation)
	}
	return teachers, err
}

// GetByCourse resolves the teacher assigned to a course. The course must
// exist; a course without an assigned teacher reports not found for the
// teacher itself.
func (s *TeacherService) GetByCourse(ctx context.Context, courseName string) (*model.Teacher, error) {
	course, err := s.courseRepo.GetByName(ctx, courseName)
	if err != nil {
		return nil, asNotFound(err, "course", courseName)
	}

	teacher, err := s.teacherRepo.GetByCourseID(ctx, course.ID)
	if err != nil {
		return nil, asNotFound(err, "teacher for course", courseName)
	}
	return teacher, nil
}
