package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gotinite/coursehub-backend/internal/model"
)

var ErrDuplicateStudentEmail = errors.New("student with this email already exists")

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// GetByEmail retrieves a student by their unique email.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email FROM students WHERE email = $1`, email,
	).Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ExistsByEmail reports whether a student with the given email exists.
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM students WHERE email = $1)`, email,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new student. The students_email_key constraint is the
// authority on email uniqueness; a violation surfaces as
// ErrDuplicateStudentEmail even when the caller's own existence check passed.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (first_name, last_name, email)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		s.FirstName, s.LastName, s.Email,
	).Scan(&s.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateStudentEmail
		}
		return err
	}
	return nil
}

// UpdateEmail rewrites the email column in place; the identifier is unchanged.
func (r *StudentRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students SET email = $1 WHERE id = $2`, email, id,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateStudentEmail
		}
		return err
	}
	return nil
}

// ListPaginated retrieves students ordered by last then first name.
func (r *StudentRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.Student, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, email FROM students
		 ORDER BY last_name, first_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	students, err := scanStudents(rows)
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

// FindByFirstName retrieves all students with the given first name.
func (r *StudentRepository) FindByFirstName(ctx context.Context, firstName string) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, email FROM students WHERE first_name = $1`, firstName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStudents(rows)
}

// FindByLastName retrieves all students with the given last name.
func (r *StudentRepository) FindByLastName(ctx context.Context, lastName string) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, email FROM students WHERE last_name = $1`, lastName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStudents(rows)
}

// FindByFullName matches against the derived "first last" concatenation.
func (r *StudentRepository) FindByFullName(ctx context.Context, fullName string) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, email FROM students
		 WHERE first_name || ' ' || last_name = $1`, fullName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStudents(rows)
}

// ListByCourseID projects the course roster out of the enrollments ledger.
func (r *StudentRepository) ListByCourseID(ctx context.Context, courseID int64) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.first_name, s.last_name, s.email
		 FROM students s
		 JOIN enrollments e ON e.student_id = s.id
		 WHERE e.course_id = $1
		 ORDER BY s.last_name, s.first_name`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStudents(rows)
}

func scanStudents(rows pgx.Rows) ([]model.Student, error) {
	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
