package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/gotinite/coursehub-backend/internal/model"
	"github.com/gotinite/coursehub-backend/internal/repository"
)

// In-memory store fakes. They mimic the repository contract: pgx.ErrNoRows
// for missing rows, the repository duplicate sentinels for constraint
// violations.

type fakeStudentStore struct {
	nextID   int64
	students []*model.Student
	// roster maps course ID to enrolled student IDs, maintained by the
	// enrollment fake when tests share the two.
	roster map[int64][]int64

	lastLimit  int
	lastOffset int
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{nextID: 1, roster: make(map[int64][]int64)}
}

func (f *fakeStudentStore) Create(_ context.Context, s *model.Student) error {
	for _, existing := range f.students {
		if existing.Email == s.Email {
			return repository.ErrDuplicateStudentEmail
		}
	}
	s.ID = f.nextID
	f.nextID++
	cp := *s
	f.students = append(f.students, &cp)
	return nil
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStudentStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, s := range f.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) UpdateEmail(_ context.Context, id int64, email string) error {
	for _, s := range f.students {
		if s.ID != id && s.Email == email {
			return repository.ErrDuplicateStudentEmail
		}
	}
	for _, s := range f.students {
		if s.ID == id {
			s.Email = email
			return nil
		}
	}
	return nil
}

func (f *fakeStudentStore) ListPaginated(_ context.Context, limit, offset int) ([]model.Student, int, error) {
	f.lastLimit = limit
	f.lastOffset = offset

	total := len(f.students)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	out := make([]model.Student, 0, end-offset)
	for _, s := range f.students[offset:end] {
		out = append(out, *s)
	}
	return out, total, nil
}

func (f *fakeStudentStore) FindByFirstName(_ context.Context, firstName string) ([]model.Student, error) {
	var out []model.Student
	for _, s := range f.students {
		if s.FirstName == firstName {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) FindByLastName(_ context.Context, lastName string) ([]model.Student, error) {
	var out []model.Student
	for _, s := range f.students {
		if s.LastName == lastName {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) FindByFullName(_ context.Context, fullName string) ([]model.Student, error) {
	var out []model.Student
	for _, s := range f.students {
		if s.FullName() == fullName {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) ListByCourseID(_ context.Context, courseID int64) ([]model.Student, error) {
	var out []model.Student
	for _, id := range f.roster[courseID] {
		for _, s := range f.students {
			if s.ID == id {
				out = append(out, *s)
			}
		}
	}
	return out, nil
}

type fakeTeacherStore struct {
	nextID   int64
	teachers []*model.Teacher
	// byCourse maps course ID to the assigned teacher's ID.
	byCourse map[int64]int64
}

func newFakeTeacherStore() *fakeTeacherStore {
	return &fakeTeacherStore{nextID: 1, byCourse: make(map[int64]int64)}
}

func (f *fakeTeacherStore) Create(_ context.Context, t *model.Teacher) error {
	for _, existing := range f.teachers {
		if existing.Email == t.Email {
			return repository.ErrDuplicateTeacherEmail
		}
	}
	t.ID = f.nextID
	f.nextID++
	cp := *t
	f.teachers = append(f.teachers, &cp)
	return nil
}

func (f *fakeTeacherStore) GetByEmail(_ context.Context, email string) (*model.Teacher, error) {
	for _, t := range f.teachers {
		if t.Email == email {
			cp := *t
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeTeacherStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, t := range f.teachers {
		if t.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTeacherStore) UpdateEmail(_ context.Context, id int64, email string) error {
	for _, t := range f.teachers {
		if t.ID != id && t.Email == email {
			return repository.ErrDuplicateTeacherEmail
		}
	}
	for _, t := range f.teachers {
		if t.ID == id {
			t.Email = email
			return nil
		}
	}
	return nil
}

func (f *fakeTeacherStore) ListPaginated(_ context.Context, limit, offset int) ([]model.Teacher, int, error) {
	total := len(f.teachers)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	out := make([]model.Teacher, 0, end-offset)
	for _, t := range f.teachers[offset:end] {
		out = append(out, *t)
	}
	return out, total, nil
}

func (f *fakeTeacherStore) FindByFirstName(_ context.Context, firstName string) ([]model.Teacher, error) {
	var out []model.Teacher
	for _, t := range f.teachers {
		if t.FirstName == firstName {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTeacherStore) FindByLastName(_ context.Context, lastName string) ([]model.Teacher, error) {
	var out []model.Teacher
	for _, t := range f.teachers {
		if t.LastName == lastName {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTeacherStore) FindByFullName(_ context.Context, fullName string) ([]model.Teacher, error) {
	var out []model.Teacher
	for _, t := range f.teachers {
		if t.FullName() == fullName {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTeacherStore) GetByCourseID(_ context.Context, courseID int64) (*model.Teacher, error) {
	id, ok := f.byCourse[courseID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	for _, t := range f.teachers {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeCourseStore struct {
	nextID  int64
	courses []*model.Course
	// byStudent maps student ID to enrolled course IDs, maintained by the
	// enrollment fake when tests share the two.
	byStudent map[int64][]int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{nextID: 1, byStudent: make(map[int64][]int64)}
}

func (f *fakeCourseStore) Create(_ context.Context, c *model.Course) error {
	for _, existing := range f.courses {
		if existing.Name == c.Name {
			return repository.ErrDuplicateCourseName
		}
	}
	c.ID = f.nextID
	f.nextID++
	cp := *c
	f.courses = append(f.courses, &cp)
	return nil
}

func (f *fakeCourseStore) GetByName(_ context.Context, name string) (*model.Course, error) {
	for _, c := range f.courses {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCourseStore) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range f.courses {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseStore) UpdateName(_ context.Context, id int64, name string) error {
	for _, c := range f.courses {
		if c.ID != id && c.Name == name {
			return repository.ErrDuplicateCourseName
		}
	}
	for _, c := range f.courses {
		if c.ID == id {
			c.Name = name
			return nil
		}
	}
	return nil
}

func (f *fakeCourseStore) UpdateStatus(_ context.Context, id int64, status string) error {
	for _, c := range f.courses {
		if c.ID == id {
			c.Status = status
			return nil
		}
	}
	return nil
}

func (f *fakeCourseStore) AssignTeacher(_ context.Context, courseID, teacherID int64) (bool, error) {
	for _, c := range f.courses {
		if c.ID == courseID {
			if c.TeacherID != nil {
				return false, nil
			}
			id := teacherID
			c.TeacherID = &id
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseStore) ListPaginated(_ context.Context, limit, offset int) ([]model.Course, int, error) {
	total := len(f.courses)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	out := make([]model.Course, 0, end-offset)
	for _, c := range f.courses[offset:end] {
		out = append(out, *c)
	}
	return out, total, nil
}

func (f *fakeCourseStore) FindByStatus(_ context.Context, status string) ([]model.Course, error) {
	var out []model.Course
	for _, c := range f.courses {
		if c.Status == status {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) ListByTeacherID(_ context.Context, teacherID int64) ([]model.Course, error) {
	var out []model.Course
	for _, c := range f.courses {
		if c.TeacherID != nil && *c.TeacherID == teacherID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) ListByStudentID(_ context.Context, studentID int64) ([]model.Course, error) {
	var out []model.Course
	for _, id := range f.byStudent[studentID] {
		for _, c := range f.courses {
			if c.ID == id {
				out = append(out, *c)
			}
		}
	}
	return out, nil
}

type fakeEnrollmentStore struct {
	nextID      int64
	enrollments []*model.Enrollment

	// Optional back-references so the derived projections other fakes
	// serve stay in sync with the ledger.
	studentStore *fakeStudentStore
	courseStore  *fakeCourseStore
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{nextID: 1}
}

func (f *fakeEnrollmentStore) Create(_ context.Context, e *model.Enrollment) error {
	for _, existing := range f.enrollments {
		if existing.CourseID == e.CourseID && existing.StudentID == e.StudentID {
			return repository.ErrDuplicateEnrollment
		}
	}
	e.ID = f.nextID
	f.nextID++
	cp := *e
	f.enrollments = append(f.enrollments, &cp)

	if f.studentStore != nil {
		f.studentStore.roster[e.CourseID] = append(f.studentStore.roster[e.CourseID], e.StudentID)
	}
	if f.courseStore != nil {
		f.courseStore.byStudent[e.StudentID] = append(f.courseStore.byStudent[e.StudentID], e.CourseID)
	}
	return nil
}

func (f *fakeEnrollmentStore) ExistsByCourseAndStudent(_ context.Context, courseID, studentID int64) (bool, error) {
	for _, e := range f.enrollments {
		if e.CourseID == courseID && e.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEnrollmentStore) ListByCourseID(_ context.Context, courseID int64) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range f.enrollments {
		if e.CourseID == courseID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) ListByStudentID(_ context.Context, studentID int64) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range f.enrollments {
		if e.StudentID == studentID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) ListByStudentIDAndStatus(_ context.Context, studentID int64, status string) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range f.enrollments {
		if e.StudentID == studentID && e.Status == status {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakeGradeStore struct {
	nextID int64
	grades []*model.Grade
}

func newFakeGradeStore() *fakeGradeStore {
	return &fakeGradeStore{nextID: 1}
}

func (f *fakeGradeStore) Create(_ context.Context, g *model.Grade) error {
	for _, existing := range f.grades {
		if existing.StudentID == g.StudentID && existing.CourseID == g.CourseID {
			return repository.ErrDuplicateGrade
		}
	}
	g.ID = f.nextID
	f.nextID++
	cp := *g
	f.grades = append(f.grades, &cp)
	return nil
}

func (f *fakeGradeStore) ExistsByStudentAndCourse(_ context.Context, studentID, courseID int64) (bool, error) {
	for _, g := range f.grades {
		if g.StudentID == studentID && g.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGradeStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	for _, g := range f.grades {
		if g.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGradeStore) UpdateValue(_ context.Context, id int64, value float64) error {
	for _, g := range f.grades {
		if g.ID == id {
			g.Value = value
			return nil
		}
	}
	return nil
}

func (f *fakeGradeStore) GetByStudentAndCourse(_ context.Context, studentID, courseID int64) (*model.Grade, error) {
	for _, g := range f.grades {
		if g.StudentID == studentID && g.CourseID == courseID {
			cp := *g
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeGradeStore) ListByStudentID(_ context.Context, studentID int64) ([]model.Grade, error) {
	var out []model.Grade
	for _, g := range f.grades {
		if g.StudentID == studentID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGradeStore) ListByCourseID(_ context.Context, courseID int64) ([]model.Grade, error) {
	var out []model.Grade
	for _, g := range f.grades {
		if g.CourseID == courseID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGradeStore) ListByTeacherID(_ context.Context, teacherID int64) ([]model.Grade, error) {
	var out []model.Grade
	for _, g := range f.grades {
		if g.TeacherID == teacherID {
			out = append(out, *g)
		}
	}
	return out, nil
}
