package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gotinite/coursehub-backend/internal/model"
	"github.com/gotinite/coursehub-backend/internal/response"
	"github.com/gotinite/coursehub-backend/internal/service"
	"github.com/gotinite/coursehub-backend/internal/validator"
)

// CourseHandler serves the course-facing resource endpoints.
type CourseHandler struct {
	courseService     *service.CourseService
	studentService    *service.StudentService
	teacherService    *service.TeacherService
	enrollmentService *service.EnrollmentService
	gradeService      *service.GradeService
	reportService     *service.ReportService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(
	courseService *service.CourseService,
	studentService *service.StudentService,
	teacherService *service.TeacherService,
	enrollmentService *service.EnrollmentService,
	gradeService *service.GradeService,
	reportService *service.ReportService,
) *CourseHandler {
	return &CourseHandler{
		courseService:     courseService,
		studentService:    studentService,
		teacherService:    teacherService,
		enrollmentService: enrollmentService,
		gradeService:      gradeService,
		reportService:     reportService,
	}
}

// List godoc
// GET /api/v1/courses?page=&per_page=
func (h *CourseHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	courses, pagination, err := h.courseService.List(c.Request.Context(), page, perPage)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"courses": courses}, pagination)
}

// ByStatus godoc
// GET /api/v1/courses/by-status?status=
func (h *CourseHandler) ByStatus(c *gin.Context) {
	courses, err := h.courseService.GetByStatus(c.Request.Context(), c.Query("status"))
	if err != nil {
		failDomain(c, err)
		return
	}
	if courses == nil {
		courses = []model.Course{}
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// Create godoc
// POST /api/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), req)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"course": course})
}

// Rename godoc
// PUT /api/v1/courses/name
// The body carries both keys: the current name (lookup) and the new one.
func (h *CourseHandler) Rename(c *gin.Context) {
	var req model.RenameCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.courseService.Rename(c.Request.Context(), req.NewName, req.Name); err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "course renamed successfully"})
}

// UpdateStatus godoc
// PUT /api/v1/courses/status
func (h *CourseHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateCourseStatusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.courseService.UpdateStatus(c.Request.Context(), req.Status, req.Name); err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "course status updated successfully"})
}

// AssignTeacher godoc
// POST /api/v1/courses/assign-teacher
func (h *CourseHandler) AssignTeacher(c *gin.Context) {
	var req model.AssignTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course, err := h.courseService.AssignTeacher(c.Request.Context(), req.CourseName, req.TeacherEmail)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// Enrollments godoc
// GET /api/v1/courses/enrollments?name=
func (h *CourseHandler) Enrollments(c *gin.Context) {
	enrollments, err := h.enrollmentService.GetByCourse(c.Request.Context(), c.Query("name"))
	if err != nil {
		failDomain(c, err)
		return
	}
	if enrollments == nil {
		enrollments = []model.Enrollment{}
	}
	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}

// Students godoc
// GET /api/v1/courses/students?name=
func (h *CourseHandler) Students(c *gin.Context) {
	students, err := h.studentService.GetByCourse(c.Request.Context(), c.Query("name"))
	if err != nil {
		failDomain(c, err)
		return
	}
	if students == nil {
		students = []model.Student{}
	}
	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// Grades godoc
// GET /api/v1/courses/grades?name=
func (h *CourseHandler) Grades(c *gin.Context) {
	grades, err := h.gradeService.GetByCourse(c.Request.Context(), c.Query("name"))
	if err != nil {
		failDomain(c, err)
		return
	}
	if grades == nil {
		grades = []model.Grade{}
	}
	response.Success(c, http.StatusOK, gin.H{"grades": grades})
}

// Teacher godoc
// GET /api/v1/courses/teacher?name=
func (h *CourseHandler) Teacher(c *gin.Context) {
	teacher, err := h.teacherService.GetByCourse(c.Request.Context(), c.Query("name"))
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teacher": teacher})
}

// GradeSheet godoc
// GET /api/v1/courses/grade-sheet?name=
// Streams the course roster with grades as an .xlsx workbook.
func (h *CourseHandler) GradeSheet(c *gin.Context) {
	name := c.Query("name")

	f, err := h.reportService.CourseGradeSheet(c.Request.Context(), name)
	if err != nil {
		failDomain(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.CourseGradeSheetName(name)))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		// Headers are already out; nothing sensible left to send.
		c.Abort()
	}
}
