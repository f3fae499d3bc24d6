package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gotinite/coursehub-backend/internal/model"
)

var ErrDuplicateTeacherEmail = errors.New("teacher with this email already exists")

// TeacherRepository handles teacher data access.
type TeacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

// GetByEmail retrieves a teacher by their unique email.
func (r *TeacherRepository) GetByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	t := &model.Teacher{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email FROM teachers WHERE email = $1`, email,
	).Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ExistsByEmail reports whether a teacher with the given email exists.
func (r *TeacherRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM teachers WHERE email = $1)`, email,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new teacher. The teachers_email_key constraint decides
// uniqueness under concurrent writers.
func (r *TeacherRepository) Create(ctx context.Context, t *model.Teacher) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO teachers (first_name, last_name, email)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		t.FirstName, t.LastName, t.Email,
	).Scan(&t.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateTeacherEmail
		}
		return err
	}
	return nil
}

// UpdateEmail rewrites the email column in place; the identifier is unchanged.
func (r *TeacherRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE teachers SET email = $1 WHERE id = $2`, email, id,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateTeacherEmail
		}
		return err
	}
	return nil
}

// ListPaginated retrieves teachers ordered by last then first name.
func (r *TeacherRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.Teacher, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, email FROM teachers
		 ORDER BY last_name, first_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	teachers, err := scanTeachers(rows)
	if err != nil {
		return nil, 0, err
	}
	return teachers, total, nil
}

// FindByFirstName retrieves all teachers with the given first name.
func (r *TeacherRepository) FindByFirstName(ctx context.Context, firstName string) ([]model.Teacher, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, email FROM teachers WHERE first_name = $1`, firstName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTeachers(rows)
}

// FindByLastName retrieves all teachers with the given last name.
func (r *TeacherRepository) FindByLastName(ctx context.Context, lastName string) ([]model.Teacher, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, email FROM teachers WHERE last_name = $1`, lastName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTeachers(rows)
}

// FindByFullName matches against the derived "first last" concatenation.
func (r *TeacherRepository) FindByFullName(ctx context.Context, fullName string) ([]model.Teacher, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, email FROM teachers
		 WHERE first_name || ' ' || last_name = $1`, fullName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTeachers(rows)
}

// GetByCourseID resolves the teacher assigned to a course, if any.
func (r *TeacherRepository) GetByCourseID(ctx context.Context, courseID int64) (*model.Teacher, error) {
	t := &model.Teacher{}
	err := r.pool.QueryRow(ctx,
		`SELECT t.id, t.first_name, t.last_name, t.email
		 FROM teachers t
		 JOIN courses c ON c.teacher_id = t.id
		 WHERE c.id = $1`, courseID,
	).Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func scanTeachers(rows pgx.Rows) ([]model.Teacher, error) {
	var teachers []model.Teacher
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}
