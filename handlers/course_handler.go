package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planify-app/planify-backend/middlewares"
	"github.com/planify-app/planify-backend/services"
)

type CourseHandler struct {
	courses *services.CourseService
}

func NewCourseHandler(courses *services.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

type coursePayload struct {
	Name         string `json:"course_name" validate:"required,min=3,max=100"`
	Code         string `json:"course_code" validate:"required,min=2,max=20"`
	BlockSection string `json:"block_section" validate:"max=20"`
	Description  string `json:"description"`
}

func (p *coursePayload) input() services.CourseInput {
	return services.CourseInput{
		Name:         p.Name,
		Code:         p.Code,
		BlockSection: p.BlockSection,
		Description:  p.Description,
	}
}

// GET /educator/courses
func (h *CourseHandler) ListOwned(c echo.Context) error {
	rows, err := h.courses.ListByEducator(middlewares.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /educator/courses
func (h *CourseHandler) Create(c echo.Context) error {
	var p coursePayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	course, err := h.courses.Create(middlewares.UserID(c), p.input())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, course)
}

// GET /educator/courses/:id
func (h *CourseHandler) GetOwned(c echo.Context) error {
	course, err := h.courses.GetForEducator(middlewares.UserID(c), uintParam(c, "id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, course)
}

// PUT /educator/courses/:id
func (h *CourseHandler) Update(c echo.Context) error {
	var p coursePayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	course, err := h.courses.Update(middlewares.UserID(c), uintParam(c, "id"), p.input())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, course)
}

// DELETE /educator/courses/:id
func (h *CourseHandler) Delete(c echo.Context) error {
	if err := h.courses.Delete(middlewares.UserID(c), uintParam(c, "id")); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GET /student/courses
func (h *CourseHandler) ListEnrolled(c echo.Context) error {
	rows, err := h.courses.ListByStudent(middlewares.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /student/courses/:id
func (h *CourseHandler) GetEnrolled(c echo.Context) error {
	course, err := h.courses.GetForStudent(middlewares.UserID(c), uintParam(c, "id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, course)
}
