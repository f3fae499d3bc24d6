package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gotinite/coursehub-backend/internal/model"
	"github.com/gotinite/coursehub-backend/internal/response"
	"github.com/gotinite/coursehub-backend/internal/service"
	"github.com/gotinite/coursehub-backend/internal/validator"
)

// TeacherHandler serves the teacher-facing resource endpoints, including
// grade recording since grading is a teacher action.
type TeacherHandler struct {
	teacherService *service.TeacherService
	courseService  *service.CourseService
	gradeService   *service.GradeService
}

// NewTeacherHandler creates a new TeacherHandler.
func NewTeacherHandler(
	teacherService *service.TeacherService,
	courseService *service.CourseService,
	gradeService *service.GradeService,
) *TeacherHandler {
	return &TeacherHandler{
		teacherService: teacherService,
		courseService:  courseService,
		gradeService:   gradeService,
	}
}

// List godoc
// GET /api/v1/teachers?page=&per_page=
func (h *TeacherHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	teachers, pagination, err := h.teacherService.List(c.Request.Context(), page, perPage)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"teachers": teachers}, pagination)
}

// Search godoc
// GET /api/v1/teachers/search?type=firstname|lastname|fullname&value=
func (h *TeacherHandler) Search(c *gin.Context) {
	teachers, err := h.teacherService.Search(c.Request.Context(), c.Query("type"), c.Query("value"))
	if err != nil {
		failDomain(c, err)
		return
	}
	if teachers == nil {
		teachers = []model.Teacher{}
	}
	response.Success(c, http.StatusOK, gin.H{"teachers": teachers})
}

// Create godoc
// POST /api/v1/teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	var req model.CreateTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher, err := h.teacherService.Create(c.Request.Context(), req)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"teacher": teacher})
}

// UpdateEmail godoc
// PUT /api/v1/teachers/email
func (h *TeacherHandler) UpdateEmail(c *gin.Context) {
	var req model.UpdateTeacherEmailRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.teacherService.UpdateEmail(c.Request.Context(), req.NewEmail, req.Email); err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "teacher email updated successfully"})
}

// Courses godoc
// GET /api/v1/teachers/courses?email=
func (h *TeacherHandler) Courses(c *gin.Context) {
	courses, err := h.courseService.GetByTeacher(c.Request.Context(), c.Query("email"))
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
// GET /api/v1/teachers/grades?email=
func (h *TeacherHandler) Grades(c *gin.Context) {
	grades, err := h.gradeService.GetByTeacher(c.Request.Context(), c.Query("email"))
	if err != nil {
		failDomain(c, err)
		return
	}
	if grades == nil {
		grades = []model.Grade{}
	}
	response.Success(c, http.StatusOK, gin.H{"grades": grades})
}

// RecordGrade godoc
// POST /api/v1/grades
func (h *TeacherHandler) RecordGrade(c *gin.Context) {
	var req model.RecordGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	grade, err := h.gradeService.Record(c.Request.Context(), req)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"grade": grade})
}

// UpdateGradeValue godoc
// PUT /api/v1/grades/:id
func (h *TeacherHandler) UpdateGradeValue(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateGradeValueRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.gradeService.UpdateValue(c.Request.Context(), req.Value, id); err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "grade value updated successfully"})
}
