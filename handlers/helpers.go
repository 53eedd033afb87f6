package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/planify-app/planify-backend/services"
)

// validate is shared by every handler; payload rules live in struct tags.
var validate = validator.New()

// bindAndValidate binds the JSON payload and runs the validator; a non-nil
// return is ready to hand back from the handler as-is.
func bindAndValidate(c echo.Context, payload any) error {
	if err := c.Bind(payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := validate.Struct(payload); err != nil {
		fields := map[string]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
	}
	return nil
}

// uintParam parses a numeric route param; 0 means absent/garbage.
func uintParam(c echo.Context, name string) uint {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

// serviceError maps the service sentinels to HTTP responses. Anything
// unknown is a 500 with a generic body; the store being unreachable is fatal
// to the request, not the process.
func serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrAccessDenied):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "ACCESS_DENIED"})
	case errors.Is(err, services.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	case errors.Is(err, services.ErrAlreadyEnrolled):
		return c.JSON(http.StatusConflict, map[string]string{"error": "ALREADY_ENROLLED"})
	case errors.Is(err, services.ErrStudentNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "STUDENT_NOT_FOUND"})
	case errors.Is(err, services.ErrNotEnrolled):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_ENROLLED"})
	case errors.Is(err, services.ErrUsernameTaken):
		return c.JSON(http.StatusConflict, map[string]string{"error": "USERNAME_TAKEN"})
	case errors.Is(err, services.ErrEmailTaken):
		return c.JSON(http.StatusConflict, map[string]string{"error": "EMAIL_TAKEN"})
	case errors.Is(err, services.ErrCodeSpaceExhausted):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "CODE_SPACE_EXHAUSTED"})
	case errors.Is(err, services.ErrInvalidDate):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_DATE"})
	case errors.Is(err, services.ErrInvalidStatus):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_STATUS"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "INTERNAL"})
}
