package handler

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/gotinite/coursehub-backend/internal/model"
	"github.com/gotinite/coursehub-backend/internal/response"
	"github.com/gotinite/coursehub-backend/internal/service"
	"github.com/gotinite/coursehub-backend/internal/validator"
)

// StudentHandler serves the student-facing resource endpoints.
type StudentHandler struct {
	studentService    *service.StudentService
	courseService     *service.CourseService
	enrollmentService *service.EnrollmentService
	gradeService      *service.GradeService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(
	studentService *service.StudentService,
	courseService *service.CourseService,
	enrollmentService *service.EnrollmentService,
	gradeService *service.GradeService,
) *StudentHandler {
	return &StudentHandler{
		studentService:    studentService,
		courseService:     courseService,
		enrollmentService: enrollmentService,
		gradeService:      gradeService,
	}
}

// List godoc
// GET /api/v1/students?page=&per_page=
func (h *StudentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	students, pagination, err := h.studentService.List(c.Request.Context(), page, perPage)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"students": students}, pagination)
}

// Search godoc
// GET /api/v1/students/search?type=firstname|lastname|fullname&value=
func (h *StudentHandler) Search(c *gin.Context) {
	students, err := h.studentService.Search(c.Request.Context(), c.Query("type"), c.Query("value"))
	if err != nil {
		failDomain(c, err)
		return
	}
	if students == nil {
		students = []model.Student{}
	}
	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// Create godoc
// POST /api/v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), req)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// UpdateEmail godoc
// PUT /api/v1/students/email
// The body carries both keys: the current email (lookup) and the new one.
func (h *StudentHandler) UpdateEmail(c *gin.Context) {
	var req model.UpdateStudentEmailRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.studentService.UpdateEmail(c.Request.Context(), req.NewEmail, req.Email); err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "student email updated successfully"})
}

// Enroll godoc
// POST /api/v1/enrollments
func (h *StudentHandler) Enroll(c *gin.Context) {
	var req model.EnrollRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), req.CourseName, req.StudentEmail)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"enrollment": enrollment})
}

// Enrollments godoc
// GET /api/v1/students/enrollments?email=&status=
// Without status, returns all of the student's enrollments.
func (h *StudentHandler) Enrollments(c *gin.Context) {
	email := c.Query("email")
	status := c.Query("status")

	var (
		enrollments []model.Enrollment
		err         error
	)
	if status == "" {
		enrollments, err = h.enrollmentService.GetByStudent(c.Request.Context(), email)
	} else {
		enrollments, err = h.enrollmentService.GetByStudentAndStatus(c.Request.Context(), email, status)
	}
	if err != nil {
		failDomain(c, err)
		return
	}
	if enrollments == nil {
		enrollments = []model.Enrollment{}
	}
	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}

// Courses godoc
// GET /api/v1/students/courses?email=
func (h *StudentHandler) Courses(c *gin.Context) {
	courses, err := h.courseService.GetByStudent(c.Request.Context(), c.Query("email"))
	if err != nil {
		failDomain(c, err)
		return
	}
	if courses == nil {
		courses = []model.Course{}
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// Grades godoc
// GET /api/v1/students/grades?email=&course_name=
// With course_name, returns the single grade for that pair.
func (h *StudentHandler) Grades(c *gin.Context) {
	email := c.Query("email")
	courseName := c.Query("course_name")

	if courseName != "" {
		grade, err := h.gradeService.GetByStudentAndCourse(c.Request.Context(), email, courseName)
		if err != nil {
			failDomain(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"grade": grade})
		return
	}

	grades, err := h.gradeService.GetByStudent(c.Request.Context(), email)
	if err != nil {
		failDomain(c, err)
		return
	}
	if grades == nil {
		grades = []model.Grade{}
	}
	response.Success(c, http.StatusOK, gin.H{"grades": grades})
}

// Overview godoc
// GET /api/v1/overview
// Fetches the first page of students and courses concurrently.
func (h *StudentHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		wg         sync.WaitGroup
		students   []model.Student
		courses    []model.Course
		sErr, cErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		students, _, sErr = h.studentService.List(ctx, 1, 10)
	}()
	go func() {
		defer wg.Done()
		courses, _, cErr = h.courseService.List(ctx, 1, 10)
	}()
	wg.Wait()

	if sErr != nil {
		failDomain(c, sErr)
		return
	}
	if cErr != nil {
		failDomain(c, cErr)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"students": students,
		"courses":  courses,
	})
}
