package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planify-app/planify-backend/middlewares"
	"github.com/planify-app/planify-backend/models"
	"github.com/planify-app/planify-backend/services"
)

type AttendanceHandler struct {
	attendance *services.AttendanceService
}

func NewAttendanceHandler(attendance *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

type recordPayload struct {
	Date string `json:"date" validate:"required,len=10"` // YYYY-MM-DD
	// student_id -> status; students left out are simply not written
	Statuses map[uint]models.AttendanceStatus `json:"statuses" validate:"required"`
}

// POST /educator/courses/:id/attendance
func (h *AttendanceHandler) Record(c echo.Context) error {
	var p recordPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	written, err := h.attendance.Record(middlewares.UserID(c), uintParam(c, "id"), p.Date, p.Statuses)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"date": p.Date, "recorded": written})
}

// GET /educator/courses/:id/attendance
func (h *AttendanceHandler) History(c echo.Context) error {
	rows, err := h.attendance.History(middlewares.UserID(c), uintParam(c, "id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /educator/courses/:id/attendance/:date
// Full roster for one day, not-recorded students included; this is the data
// set the downloadable report is rendered from.
func (h *AttendanceHandler) DaySheet(c echo.Context) error {
	entries, err := h.attendance.DaySheet(middlewares.UserID(c), uintParam(c, "id"), c.Param("date"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// GET /student/courses/:id/attendance
func (h *AttendanceHandler) Mine(c echo.Context) error {
	rows, err := h.attendance.MyAttendance(middlewares.UserID(c), uintParam(c, "id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
