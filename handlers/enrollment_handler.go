package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planify-app/planify-backend/middlewares"
	"github.com/planify-app/planify-backend/services"
)

type EnrollmentHandler struct {
	enrollments *services.EnrollmentService
}

func NewEnrollmentHandler(enrollments *services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

type joinPayload struct {
	EnrollmentCode string `json:"enrollment_code" validate:"required,len=8,alphanum"`
}

// POST /student/courses/join
func (h *EnrollmentHandler) Join(c echo.Context) error {
	var p joinPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	course, err := h.enrollments.JoinByCode(middlewares.UserID(c), p.EnrollmentCode)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, course)
}

type enrollByEmailPayload struct {
	StudentEmail string `json:"student_email" validate:"required,email"`
}

// POST /educator/courses/:id/enrollments
func (h *EnrollmentHandler) AddByEmail(c echo.Context) error {
	var p enrollByEmailPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	student, err := h.enrollments.AddByEmail(middlewares.UserID(c), uintParam(c, "id"), p.StudentEmail)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, student)
}

// DELETE /educator/courses/:id/enrollments/:studentID
func (h *EnrollmentHandler) Remove(c echo.Context) error {
	err := h.enrollments.Remove(middlewares.UserID(c), uintParam(c, "id"), uintParam(c, "studentID"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GET /educator/courses/:id/students
func (h *EnrollmentHandler) Roster(c echo.Context) error {
	students, err := h.enrollments.Roster(middlewares.UserID(c), uintParam(c, "id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, students)
}
