package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gotinite/coursehub-backend/internal/model"
)

var ErrDuplicateGrade = errors.New("student already has a grade for this course")

// GradeRepository handles the grades ledger.
type GradeRepository struct {
	pool *pgxpool.Pool
}

// NewGradeRepository creates a new GradeRepository.
func NewGradeRepository(pool *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{pool: pool}
}

// Create inserts a grade row. The grades_student_course_key constraint
// decides pair uniqueness under concurrent writers.
func (r *GradeRepository) Create(ctx context.Context, g *model.Grade) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO grades (grade_value, student_id, course_id, teacher_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		g.Value, g.StudentID, g.CourseID, g.TeacherID,
	).Scan(&g.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateGrade
		}
		return err
	}
	return nil
}

// ExistsByStudentAndCourse reports whether the (student, course) pair is
// already graded.
func (r *GradeRepository) ExistsByStudentAndCourse(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM grades WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID,
	).Scan(&exists)
	return exists, err
}

// ExistsByID reports whether a grade with the given identifier exists.
func (r *GradeRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM grades WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

// UpdateValue rewrites the value field only.
func (r *GradeRepository) UpdateValue(ctx context.Context, id int64, value float64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE grades SET grade_value = $1 WHERE id = $2`, value, id,
	)
	return err
}

// GetByStudentAndCourse retrieves the single grade for a (student, course)
// pair.
func (r *GradeRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*model.Grade, error) {
	g := &model.Grade{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, grade_value, student_id, course_id, teacher_id
		 FROM grades WHERE student_id = $1 AND course_id = $2`, studentID, courseID,
	).Scan(&g.ID, &g.Value, &g.StudentID, &g.CourseID, &g.TeacherID)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// ListByStudentID retrieves all grades recorded for a student.
func (r *GradeRepository) ListByStudentID(ctx context.Context, studentID int64) ([]model.Grade, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, grade_value, student_id, course_id, teacher_id
		 FROM grades WHERE student_id = $1`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGrades(rows)
}

// ListByCourseID retrieves all grades recorded for a course.
func (r *GradeRepository) ListByCourseID(ctx context.Context, courseID int64) ([]model.Grade, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, grade_value, student_id, course_id, teacher_id
		 FROM grades WHERE course_id = $1`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGrades(rows)
}

// ListByTeacherID retrieves all grades authored by a teacher.
func (r *GradeRepository) ListByTeacherID(ctx context.Context, teacherID int64) ([]model.Grade, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, grade_value, student_id, course_id, teacher_id
		 FROM grades WHERE teacher_id = $1`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGrades(rows)
}

func scanGrades(rows pgx.Rows) ([]model.Grade, error) {
	var grades []model.Grade
	for rows.Next() {
		var g model.Grade
		if err := rows.Scan(&g.ID, &g.Value, &g.StudentID, &g.CourseID, &g.TeacherID); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}
