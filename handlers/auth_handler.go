package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/planify-app/planify-backend/middlewares"
	"github.com/planify-app/planify-backend/models"
	"github.com/planify-app/planify-backend/services"
)

const tokenTTL = 12 * time.Hour

type AuthHandler struct {
	users     *services.UserService
	jwtSecret string
}

func NewAuthHandler(users *services.UserService, jwtSecret string) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret}
}

func (h *AuthHandler) signJWT(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"name": u.FullName(),
		"exp":  time.Now().Add(tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.jwtSecret))
}

type registerPayload struct {
	FirstName     string `json:"first_name" validate:"required,min=3,max=20"`
	LastName      string `json:"last_name" validate:"required,min=3,max=20"`
	Username      string `json:"username" validate:"required,min=3,max=60"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contact_number" validate:"required,len=11,numeric"`
	Password      string `json:"password" validate:"required,min=6"`
	Role          string `json:"role" validate:"required,oneof=educator student"`
}

// POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var p registerPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	u, err := h.users.Register(services.NewUser{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Username:      p.Username,
		Email:         p.Email,
		ContactNumber: p.ContactNumber,
		Password:      p.Password,
		Role:          models.Role(p.Role),
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

type loginPayload struct {
	Identity string `json:"identity" validate:"required,min=3,max=120"` // username or email
	Password string `json:"password" validate:"required,min=6"`
}

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var p loginPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	u, err := h.users.Authenticate(p.Identity, p.Password)
	if err != nil {
		// wrong identity and wrong password answer identically
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "INVALID_CREDENTIALS"})
	}
	token, err := h.signJWT(u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "TOKEN_SIGN_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": u})
}

// GET /me
func (h *AuthHandler) Me(c echo.Context) error {
	u, err := h.users.GetByID(middlewares.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
