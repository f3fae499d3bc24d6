package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotinite/coursehub-backend/internal/model"
)

func newCourseService() (*CourseService, *fakeCourseStore, *fakeTeacherStore, *fakeStudentStore) {
	courses := newFakeCourseStore()
	teachers := newFakeTeacherStore()
	students := newFakeStudentStore()
	svc := NewCourseService(courses, teachers, students, zerolog.Nop())
	return svc, courses, teachers, students
}

func TestCourseCreate(t *testing.T) {
	svc, _, _, _ := newCourseService()
	ctx := context.Background()

	course, err := svc.Create(ctx, model.CreateCourseRequest{Name: "Math", Status: model.CourseStatusActive})
	require.NoError(t, err)
	assert.NotZero(t, course.ID)
	assert.Equal(t, "Math", course.Name)
	assert.Nil(t, course.TeacherID)

	got, err := svc.GetByName(ctx, "Math")
	require.NoError(t, err)
	assert.Equal(t, course.ID, got.ID)
}

func TestCourseCreateDuplicateName(t *testing.T) {
	svc, _, _, _ := newCourseService()
	ctx := context.Background()

	_, err := svc.Create(ctx, model.CreateCourseRequest{Name: "Math", Status: model.CourseStatusActive})
	require.NoError(t, err)

	_, err = svc.Create(ctx, model.CreateCourseRequest{Name: "Math", Status: model.CourseStatusPending})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCourseRename(t *testing.T) {
	svc, _, _, _ := newCourseService()
	ctx := context.Background()

	course, err := svc.Create(ctx, model.CreateCourseRequest{Name: "Math", Status: model.CourseStatusActive})
	require.NoError(t, err)

	require.NoError(t, svc.Rename(ctx, "Advanced Math", "Math"))

	// The old name frees up, the row keeps its identity.
	_, err = svc.GetByName(ctx, "Math")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.GetByName(ctx, "Advanced Math")
	require.NoError(t, err)
	assert.Equal(t, course.ID, got.ID)
}

func TestCourseRenameBlankName(t *testing.T) {
	svc, _, _, _ := newCourseService()
	ctx := context.Background()

	for _, blank := range []string{"", "   ", "\t"} {
		err := svc.Rename(ctx, blank, "Math")
		// Blank input is rejected before the lookup, so a missing course
		// still reports validation, not not-found.
		assert.ErrorIs(t, err, ErrValidation, "name %q", blank)
		assert.NotErrorIs(t, err, ErrNotFound)
	}
}

func TestCourseRenameTakenName(t *testing.T) {
	svc, _, _, _ := newCourseService()
	ctx := context.Background()

	_, err := svc.Create(ctx, model.CreateCourseRequest{Name: "Math", Status: model.CourseStatusActive})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.CreateCourseRequest{Name: "History", Status: model.CourseStatusActive})
	require.NoError(t, err)

	err = svc.Rename(ctx, "History", "Math")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCourseRenameUnknownCourse(t *testing.T) {
	svc, _, _, _ := newCourseService()
	err := svc.Rename(context.Background(), "Advanced Math", "Math")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseUpdateStatus(t *testing.T) {
	svc, _, _, _ := newCourseService()
	ctx := context.Background()

	_, err := svc.Create(ctx, model.CreateCourseRequest{Name: "Math", Status: model.CourseStatusPending})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, model.CourseStatusActive, "Math"))

	got, err := svc.GetByName(ctx, "Math")
	require.NoError(t, err)
	assert.Equal(t, model.CourseStatusActive, got.Status)
}

func TestCourseUpdateStatusBlank(t *testing.T) {
	svc, _, _, _ := newCourseService()
	err := svc.UpdateStatus(context.Background(), "  ", "Math")
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCourseUpdateStatusUnknownCourse(t *testing.T) {
	svc, _, _, _ := newCourseService()
	err := svc.UpdateStatus(context.Background(), model.CourseStatusActive, "Math")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseAssignTeacher(t *testing.T) {
	svc, _, teachers, _ := newCourseService()
	ctx := context.Background()

	teacher := &model.Teacher{FirstName: "Maria", LastName: "Ivanova", Email: "maria@uni.edu"}
	require.NoError(t, teachers.Create(ctx, teacher))

	_, err := svc.Create(ctx, model.CreateCourseRequest{Name: "Math", Status: model.CourseStatusActive})
	require.NoError(t, err)

	course, err := svc.AssignTeacher(ctx, "Math", teacher.Email)
	require.NoError(t, err)
	require.NotNil(t, course.TeacherID)
	assert.Equal(t, teacher.ID, *course.TeacherID)
}

func TestCourseAssignTeacherIsPermanent(t *testing.T) {
	svc, _, teachers, _ := newCourseService()
	ctx := context.Background()

	first := &model.Teacher{FirstName: "Maria", LastName: "Ivanova", Email: "maria@uni.edu"}
	require.NoError(t, teachers.Create(ctx, first))
	second := &model.Teacher{FirstName: "Petar", LastName: "Georgiev", Email: "petar@uni.edu"}
	require.NoError(t, teachers.Create(ctx, second))

	_, err := svc.Create(ctx, model.CreateCourseRequest{Name: "Math", Status: model.CourseStatusActive})
	require.NoError(t, err)

	_, err = svc.AssignTeacher(ctx, "Math", first.Email)
	require.NoError(t, err)

	// Second assignment fails and the original link survives — even for the
	// same teacher.
	_, err = svc.AssignTeacher(ctx, "Math", second.Email)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.AssignTeacher(ctx, "Math", first.Email)
	assert.ErrorIs(t, err, ErrConflict)

	got, err := svc.GetByName(ctx, "Math")
	require.NoError(t, err)
	require.NotNil(t, got.TeacherID)
	assert.Equal(t, first.ID, *got.TeacherID)
}

func TestCourseAssignTeacherUnknowns(t *testing.T) {
	svc, _, teachers, _ := newCourseService()
	ctx := context.Background()

	teacher := &model.Teacher{FirstName: "Maria", LastName: "Ivanova", Email: "maria@uni.edu"}
	require.NoError(t, teachers.Create(ctx, teacher))

	_, err := svc.AssignTeacher(ctx, "Math", teacher.Email)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(ctx, model.CreateCourseRequest{Name: "Math", Status: model.CourseStatusActive})
	require.NoError(t, err)

	_, err = svc.AssignTeacher(ctx, "Math", "ghost@uni.edu")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseGetByStatus(t *testing.T) {
	svc, _, _, _ := newCourseService()
	ctx := context.Background()

	_, err := svc.Create(ctx, model.CreateCourseRequest{Name: "Math", Status: model.CourseStatusActive})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.CreateCourseRequest{Name: "History", Status: model.CourseStatusPending})
	require.NoError(t, err)

	active, err := svc.GetByStatus(ctx, model.CourseStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Math", active[0].Name)

	none, err := svc.GetByStatus(ctx, model.CourseStatusInactive)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCourseGetByTeacher(t *testing.T) {
	svc, _, teachers, _ := newCourseService()
	ctx := context.Background()

	teacher := &model.Teacher{FirstName: "Maria", LastName: "Ivanova", Email: "maria@uni.edu"}
	require.NoError(t, teachers.Create(ctx, teacher))

	for _, name := range []string{"Math", "Physics"} {
		_, err := svc.Create(ctx, model.CreateCourseRequest{Name: name, Status: model.CourseStatusActive})
		require.NoError(t, err)
		_, err = svc.AssignTeacher(ctx, name, teacher.Email)
		require.NoError(t, err)
	}

	courses, err := svc.GetByTeacher(ctx, teacher.Email)
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	_, err = svc.GetByTeacher(ctx, "ghost@uni.edu")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseListPagination(t *testing.T) {
	svc, _, _, _ := newCourseService()
	ctx := context.Background()

	names := []string{"Math", "History", "Physics"}
	for _, name := range names {
		_, err := svc.Create(ctx, model.CreateCourseRequest{Name: name, Status: model.CourseStatusActive})
		require.NoError(t, err)
	}

	courses, pagination, err := svc.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 2, pagination.PerPage)
	assert.Equal(t, 3, pagination.TotalItems)
	assert.Equal(t, 2, pagination.TotalPages)

	courses, _, err = svc.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Physics", courses[0].Name)
}
