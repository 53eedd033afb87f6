package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/planify-app/planify-backend/models"
)

type ContactHandler struct {
	db *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

type contactPayload struct {
	Name    string `json:"name" validate:"max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// POST /contact — unauthenticated on purpose.
func (h *ContactHandler) Submit(c echo.Context) error {
	var p contactPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	msg := models.ContactMessage{
		Name:    strings.TrimSpace(p.Name),
		Email:   strings.ToLower(strings.TrimSpace(p.Email)),
		Message: strings.TrimSpace(p.Message),
	}
	if err := h.db.Create(&msg).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": msg.ID})
}
