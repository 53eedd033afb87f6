package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/planify-app/planify-backend/models"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// GET /admin/stats
func (h *AdminHandler) Stats(c echo.Context) error {
	count := func(model any, query string, args ...any) int64 {
		var n int64
		tx := h.db.Model(model)
		if query != "" {
			tx = tx.Where(query, args...)
		}
		tx.Count(&n)
		return n
	}
	return c.JSON(http.StatusOK, map[string]any{
		"educators":       count(&models.User{}, "role = ?", models.RoleEducator),
		"students":        count(&models.User{}, "role = ?", models.RoleStudent),
		"courses":         count(&models.Course{}, ""),
		"enrollments":     count(&models.Enrollment{}, ""),
		"lesson_plans":    count(&models.LessonPlan{}, ""),
		"unread_messages": count(&models.ContactMessage{}, "is_read = ?", false),
	})
}

// GET /admin/messages?unread=1
func (h *AdminHandler) ListMessages(c echo.Context) error {
	tx := h.db.Model(&models.ContactMessage{})
	if c.QueryParam("unread") == "1" {
		tx = tx.Where("is_read = ?", false)
	}
	var rows []models.ContactMessage
	if err := tx.Order("id DESC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

// PUT /admin/messages/:id/read
func (h *AdminHandler) MarkMessageRead(c echo.Context) error {
	res := h.db.Model(&models.ContactMessage{}).
		Where("id = ?", uintParam(c, "id")).
		Update("is_read", true)
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}

// DELETE /admin/messages/:id
func (h *AdminHandler) DeleteMessage(c echo.Context) error {
	if err := h.db.Delete(&models.ContactMessage{}, "id = ?", uintParam(c, "id")).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.NoContent(http.StatusNoContent)
}
