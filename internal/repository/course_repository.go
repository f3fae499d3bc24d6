package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gotinite/coursehub-backend/internal/model"
)

var ErrDuplicateCourseName = errors.New("course with this name already exists")

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// GetByName retrieves a course by its unique name.
func (r *CourseRepository) GetByName(ctx context.Context, name string) (*model.Course, error) {
	c := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, status, teacher_id FROM courses WHERE name = $1`, name,
	).Scan(&c.ID, &c.Name, &c.Status, &c.TeacherID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ExistsByName reports whether a course with the given name exists.
func (r *CourseRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM courses WHERE name = $1)`, name,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new course. The courses_name_key constraint decides
// name uniqueness under concurrent writers.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO courses (name, status) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Status,
	).Scan(&c.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateCourseName
		}
		return err
	}
	return nil
}

// UpdateName rewrites the name column in place by course ID.
func (r *CourseRepository) UpdateName(ctx context.Context, id int64, name string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE courses SET name = $1 WHERE id = $2`, name, id,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateCourseName
		}
		return err
	}
	return nil
}

// UpdateStatus rewrites the status label by course ID.
func (r *CourseRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE courses SET status = $1 WHERE id = $2`, status, id,
	)
	return err
}

// AssignTeacher sets the course's teacher reference. The WHERE clause only
// matches an unassigned course, so a concurrent double-assign loses the race
// instead of overwriting; the caller treats zero rows affected as a conflict.
func (r *CourseRepository) AssignTeacher(ctx context.Context, courseID, teacherID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE courses SET teacher_id = $1 WHERE id = $2 AND teacher_id IS NULL`,
		teacherID, courseID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListPaginated retrieves courses ordered by name.
func (r *CourseRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.Course, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, status, teacher_id FROM courses
		 ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// FindByStatus retrieves all courses carrying the given status label.
func (r *CourseRepository) FindByStatus(ctx context.Context, status string) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, status, teacher_id FROM courses WHERE status = $1 ORDER BY name`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

// ListByTeacherID retrieves the courses assigned to a teacher.
func (r *CourseRepository) ListByTeacherID(ctx context.Context, teacherID int64) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, status, teacher_id FROM courses WHERE teacher_id = $1 ORDER BY name`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

// ListByStudentID projects a student's courses out of the enrollments ledger.
func (r *CourseRepository) ListByStudentID(ctx context.Context, studentID int64) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.name, c.status, c.teacher_id
		 FROM courses c
		 JOIN enrollments e ON e.course_id = c.id
		 WHERE e.student_id = $1
		 ORDER BY c.name`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

func scanCourses(rows pgx.Rows) ([]model.Course, error) {
	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.TeacherID); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
