package service

import (
	"context"

	"github.com/gotinite/coursehub-backend/internal/model"
)

// Store interfaces describe the persistence primitives the services compose:
// create, find-by-unique-key, find-by-foreign-key, existence checks,
// in-place field updates and paginated find-all. internal/repository
// implements them on pgx; tests implement them in memory. Lookups signal a
// missing row with pgx.ErrNoRows, duplicates with the repository's
// duplicate sentinels — uniqueness is ultimately enforced by the storage
// constraints, the services' existence checks are only the fast path.

// StudentStore is the persistence surface for student records.
type StudentStore interface {
	Create(ctx context.Context, s *model.Student) error
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateEmail(ctx context.Context, id int64, email string) error
	ListPaginated(ctx context.Context, limit, offset int) ([]model.Student, int, error)
	FindByFirstName(ctx context.Context, firstName string) ([]model.Student, error)
	FindByLastName(ctx context.Context, lastName string) ([]model.Student, error)
	FindByFullName(ctx context.Context, fullName string) ([]model.Student, error)
	ListByCourseID(ctx context.Context, courseID int64) ([]model.Student, error)
}

// TeacherStore is the persistence surface for teacher records.
type TeacherStore interface {
	Create(ctx context.Context, t *model.Teacher) error
	GetByEmail(ctx context.Context, email string) (*model.Teacher, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateEmail(ctx context.Context, id int64, email string) error
	ListPaginated(ctx context.Context, limit, offset int) ([]model.Teacher, int, error)
	FindByFirstName(ctx context.Context, firstName string) ([]model.Teacher, error)
	FindByLastName(ctx context.Context, lastName string) ([]model.Teacher, error)
	FindByFullName(ctx context.Context, fullName string) ([]model.Teacher, error)
	GetByCourseID(ctx context.Context, courseID int64) (*model.Teacher, error)
}

// CourseStore is the persistence surface for course records.
type CourseStore interface {
	Create(ctx context.Context, c *model.Course) error
	GetByName(ctx context.Context, name string) (*model.Course, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	AssignTeacher(ctx context.Context, courseID, teacherID int64) (bool, error)
	ListPaginated(ctx context.Context, limit, offset int) ([]model.Course, int, error)
	FindByStatus(ctx context.Context, status string) ([]model.Course, error)
	ListByTeacherID(ctx context.Context, teacherID int64) ([]model.Course, error)
	ListByStudentID(ctx context.Context, studentID int64) ([]model.Course, error)
}

// EnrollmentStore is the persistence surface for the enrollments ledger.
type EnrollmentStore interface {
	Create(ctx context.Context, e *model.Enrollment) error
	ExistsByCourseAndStudent(ctx context.Context, courseID, studentID int64) (bool, error)
	ListByCourseID(ctx context.Context, courseID int64) ([]model.Enrollment, error)
	ListByStudentID(ctx context.Context, studentID int64) ([]model.Enrollment, error)
	ListByStudentIDAndStatus(ctx context.Context, studentID int64, status string) ([]model.Enrollment, error)
}

// GradeStore is the persistence surface for the grades ledger.
type GradeStore interface {
	Create(ctx context.Context, g *model.Grade) error
	ExistsByStudentAndCourse(ctx context.Context, studentID, courseID int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	UpdateValue(ctx context.Context, id int64, value float64) error
	GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*model.Grade, error)
	ListByStudentID(ctx context.Context, studentID int64) ([]model.Grade, error)
	ListByCourseID(ctx context.Context, courseID int64) ([]model.Grade, error)
	ListByTeacherID(ctx context.Context, teacherID int64) ([]model.Grade, error)
}
