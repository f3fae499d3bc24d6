package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotinite/coursehub-backend/internal/model"
)

func newTeacherService() (*TeacherService, *fakeTeacherStore, *fakeCourseStore) {
	teachers := newFakeTeacherStore()
	courses := newFakeCourseStore()
	svc := NewTeacherService(teachers, courses, zerolog.Nop())
	return svc, teachers, courses
}

func TestTeacherCreate(t *testing.T) {
	svc, _, _ := newTeacherService()
	ctx := context.Background()

	teacher, err := svc.Create(ctx, model.CreateTeacherRequest{
		FirstName: "Maria", LastName: "Ivanova", Email: "maria@uni.edu",
	})
	require.NoError(t, err)
	assert.NotZero(t, teacher.ID)

	got, err := svc.GetByEmail(ctx, "maria@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, teacher.ID, got.ID)
}

func TestTeacherCreateDuplicateEmail(t *testing.T) {
	svc, _, _ := newTeacherService()
	ctx := context.Background()

	_, err := svc.Create(ctx, model.CreateTeacherRequest{
		FirstName: "Maria", LastName: "Ivanova", Email: "maria@uni.edu",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, model.CreateTeacherRequest{
		FirstName: "Mara", LastName: "Ilieva", Email: "maria@uni.edu",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

// A student holding the same email is a separate namespace; teacher creation
// only checks teachers.
func TestTeacherEmailNamespaceIsSeparate(t *testing.T) {
	svc, _, _ := newTeacherService()
	students := newFakeStudentStore()
	ctx := context.Background()

	require.NoError(t, students.Create(ctx, &model.Student{
		FirstName: "Ivan", LastName: "Petrov", Email: "shared@uni.edu",
	}))

	_, err := svc.Create(ctx, model.CreateTeacherRequest{
		FirstName: "Maria", LastName: "Ivanova", Email: "shared@uni.edu",
	})
	assert.NoError(t, err)
}

func TestTeacherUpdateEmail(t *testing.T) {
	svc, _, _ := newTeacherService()
	ctx := context.Background()

	teacher, err := svc.Create(ctx, model.CreateTeacherRequest{
		FirstName: "Maria", LastName: "Ivanova", Email: "maria@uni.edu",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateEmail(ctx, "m.ivanova@uni.edu", "maria@uni.edu"))

	_, err = svc.GetByEmail(ctx, "maria@uni.edu")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.GetByEmail(ctx, "m.ivanova@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, teacher.ID, got.ID)
}

func TestTeacherUpdateEmailBlank(t *testing.T) {
	svc, _, _ := newTeacherService()
	err := svc.UpdateEmail(context.Background(), "", "maria@uni.edu")
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestTeacherUpdateEmailTaken(t *testing.T) {
	svc, _, _ := newTeacherService()
	ctx := context.Background()

	_, err := svc.Create(ctx, model.CreateTeacherRequest{
		FirstName: "Maria", LastName: "Ivanova", Email: "maria@uni.edu",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.CreateTeacherRequest{
		FirstName: "Petar", LastName: "Georgiev", Email: "petar@uni.edu",
	})
	require.NoError(t, err)

	err = svc.UpdateEmail(ctx, "petar@uni.edu", "maria@uni.edu")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestTeacherSearch(t *testing.T) {
	svc, _, _ := newTeacherService()
	ctx := context.Background()

	_, err := svc.Create(ctx, model.CreateTeacherRequest{
		FirstName: "Maria", LastName: "Ivanova", Email: "maria@uni.edu",
	})
	require.NoError(t, err)

	byFull, err := svc.Search(ctx, "fullname", "Maria Ivanova")
	require.NoError(t, err)
	require.Len(t, byFull, 1)
	assert.Equal(t, "maria@uni.edu", byFull[0].Email)

	_, err = svc.Search(ctx, "shoesize", "42")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTeacherGetByCourse(t *testing.T) {
	svc, teachers, courses := newTeacherService()
	ctx := context.Background()

	teacher, err := svc.Create(ctx, model.CreateTeacherRequest{
		FirstName: "Maria", LastName: "Ivanova", Email: "maria@uni.edu",
	})
	require.NoError(t, err)

	course := &model.Course{Name: "Math", Status: model.CourseStatusActive}
	require.NoError(t, courses.Create(ctx, course))
	teachers.byCourse[course.ID] = teacher.ID

	got, err := svc.GetByCourse(ctx, "Math")
	require.NoError(t, err)
	assert.Equal(t, teacher.ID, got.ID)

	// Unassigned course: the course exists but has no teacher row to serve.
	bare := &model.Course{Name: "History", Status: model.CourseStatusActive}
	require.NoError(t, courses.Create(ctx, bare))

	_, err = svc.GetByCourse(ctx, "History")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByCourse(ctx, "Alchemy")
	assert.ErrorIs(t, err, ErrNotFound)
}
