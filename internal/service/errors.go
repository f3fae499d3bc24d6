package service

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Domain error kinds. Services wrap these with entity context via
// fmt.Errorf("...: %w", ...); handlers match with errors.Is and map each
// kind to an HTTP status. All of them describe logical state, none are
// retryable.
var (
	// ErrValidation marks malformed input: blank strings, grade values
	// outside the allowed range.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound marks a referenced entity (by email, name or id) that
	// does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness or single-assignment violation:
	// duplicate email/name, duplicate enrollment or grade pair, teacher
	// already assigned.
	ErrConflict = errors.New("already exists")
	// ErrNotCourseTeacher marks a grading attempt by a teacher who is not
	// the course's assigned teacher.
	ErrNotCourseTeacher = errors.New("teacher is not allowed to grade this course")
	// ErrNotEnrolled marks a grading attempt for a student who holds no
	// enrollment in the course.
	ErrNotEnrolled = errors.New("student is not enrolled in this course")
)

// asNotFound converts the repository's no-rows error into ErrNotFound with
// entity context; anything else passes through unchanged.
func asNotFound(err error, entity, key string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %q: %w", entity, key, ErrNotFound)
	}
	return err
}
