package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gotinite/coursehub-backend/internal/model"
)

var ErrDuplicateEnrollment = errors.New("student is already enrolled in this course")

// EnrollmentRepository handles the enrollments ledger. Rows here are the
// authoritative course-student relationship state; rosters and course lists
// are projected from them by joins.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// Create inserts an enrollment row. The enrollments_course_student_key
// constraint decides pair uniqueness under concurrent writers.
func (r *EnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO enrollments (status, course_id, student_id)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		e.Status, e.CourseID, e.StudentID,
	).Scan(&e.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEnrollment
		}
		return err
	}
	return nil
}

// ExistsByCourseAndStudent reports whether the (course, student) pair is
// already enrolled.
func (r *EnrollmentRepository) ExistsByCourseAndStudent(ctx context.Context, courseID, studentID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM enrollments WHERE course_id = $1 AND student_id = $2)`,
		courseID, studentID,
	).Scan(&exists)
	return exists, err
}

// ListByCourseID retrieves all enrollments for a course.
func (r *EnrollmentRepository) ListByCourseID(ctx context.Context, courseID int64) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, status, course_id, student_id FROM enrollments WHERE course_id = $1`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEnrollments(rows)
}

// ListByStudentID retrieves all enrollments for a student.
func (r *EnrollmentRepository) ListByStudentID(ctx context.Context, studentID int64) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, status, course_id, student_id FROM enrollments WHERE student_id = $1`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEnrollments(rows)
}

// ListByStudentIDAndStatus retrieves a student's enrollments filtered by
// status label.
func (r *EnrollmentRepository) ListByStudentIDAndStatus(ctx context.Context, studentID int64, status string) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, status, course_id, student_id FROM enrollments
		 WHERE student_id = $1 AND status = $2`, studentID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEnrollments(rows)
}

func scanEnrollments(rows pgx.Rows) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.Status, &e.CourseID, &e.StudentID); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}
