package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gotinite/coursehub-backend/internal/config"
	"github.com/gotinite/coursehub-backend/internal/model"
	"github.com/gotinite/coursehub-backend/internal/repository"
	"github.com/gotinite/coursehub-backend/internal/response"
)

// rosterCacheTTL bounds staleness of the cached course roster projection.
// Enrollment invalidates the key eagerly; the TTL is the backstop.
const rosterCacheTTL = 5 * time.Minute

// StudentService owns creation and identity of student records, plus the
// read-side projections over them.
type StudentService struct {
	studentRepo StudentStore
	courseRepo  CourseStore
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewStudentService creates a new StudentService. rdb may be nil; the
// roster cache is then skipped entirely.
func NewStudentService(studentRepo StudentStore, courseRepo CourseStore, rdb *redis.Client, log zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "student_service").Logger(),
	}
}

// Create registers a new student. Email must be unique among students.
func (s *StudentService) Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error) {
	exists, err := s.studentRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("student email %q: %w", req.Email, ErrConflict)
	}

	student := &model.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicateStudentEmail) {
			return nil, fmt.Errorf("student email %q: %w", req.Email, ErrConflict)
		}
		return nil, err
	}

	s.log.Info().Int64("student_id", student.ID).Msg("Student created")
	return student, nil
}

// UpdateEmail rewrites a student's email in place. The current email is the
// lookup key. Blank input is rejected before any existence check runs.
func (s *StudentService) UpdateEmail(ctx context.Context, newEmail, currentEmail string) error {
	if strings.TrimSpace(newEmail) == "" {
		return fmt.Errorf("the email cannot be empty: %w", ErrValidation)
	}

	taken, err := s.studentRepo.ExistsByEmail(ctx, newEmail)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("student email %q: %w", newEmail, ErrConflict)
	}

	student, err := s.studentRepo.GetByEmail(ctx, currentEmail)
	if err != nil {
		return asNotFound(err, "student", currentEmail)
	}

	if err := s.studentRepo.UpdateEmail(ctx, student.ID, newEmail); err != nil {
		if errors.Is(err, repository.ErrDuplicateStudentEmail) {
			return fmt.Errorf("student email %q: %w", newEmail, ErrConflict)
		}
		return err
	}

	s.log.Info().Int64("student_id", student.ID).Msg("Student email updated")
	return nil
}

// GetByEmail retrieves a student by their unique email.
func (s *StudentService) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, asNotFound(err, "student", email)
	}
	return student, nil
}

// List retrieves students with pagination. Pages are 1-based.
func (s *StudentService) List(ctx context.Context, page, perPage int) ([]model.Student, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	students, total, err := s.studentRepo.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if students == nil {
		students = []model.Student{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return students, pagination, nil
}

// Search finds students by exact first, last or derived full name. No
// uniqueness is assumed; zero matches is a valid result.
func (s *StudentService) Search(ctx context.Context, searchType, value string) ([]model.Student, error) {
	var (
		students []model.Student
		err      error
	)
	switch strings.ToLower(searchType) {
	case "firstname":
		students, err = s.studentRepo.FindByFirstName(ctx, value)
	case "lastname":
		students, err = s.studentRepo.FindByLastName(ctx, value)
	case "fullname":
		students, err = s.studentRepo.FindByFullName(ctx, value)
	default:
		return nil, fmt.Errorf("unknown search type %q: %w", searchType, ErrValidation)
	}
	return students, err
}

// GetByCourse returns the roster of a course, projected from the
// enrollments ledger. The projection is cached in Redis and invalidated on
// every new enrollment.
func (s *StudentService) GetByCourse(ctx context.Context, courseName string) ([]model.Student, error) {
	course, err := s.courseRepo.GetByName(ctx, courseName)
	if err != nil {
		return nil, asNotFound(err, "course", courseName)
	}

	key := config.CacheKey.CourseRosterKey(course.ID)
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var students []model.Student
			if err := json.Unmarshal([]byte(cached), &students); err == nil {
				return students, nil
			}
			s.log.Warn().Str("key", key).Msg("Dropping undecodable roster cache entry")
			s.rdb.Del(ctx, key)
		}
	}

	students, err := s.studentRepo.ListByCourseID(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(students); err == nil {
			if err := s.rdb.Set(ctx, key, payload, rosterCacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Str("key", key).Msg("Roster cache write failed")
			}
		}
	}
	return students, nil
}
