package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gotinite/coursehub-backend/internal/response"
	"github.com/gotinite/coursehub-backend/internal/service"
)

// failDomain maps a service-layer error kind to its HTTP status and error
// code. Anything outside the domain taxonomy is a 500.
func failDomain(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrConflict):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, service.ErrNotCourseTeacher):
		response.Fail(c, http.StatusForbidden, response.ErrNotCourseTeacher)
	case errors.Is(err, service.ErrNotEnrolled):
		response.Fail(c, http.StatusPreconditionFailed, response.ErrNotEnrolled)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
