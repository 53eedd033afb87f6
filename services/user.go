package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/planify-app/planify-backend/models"
	"github.com/planify-app/planify-backend/store"
)

type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

type NewUser struct {
	FirstName     string
	LastName      string
	Username      string
	Email         string
	ContactNumber string
	Password      string
	Role          models.Role
}

// Register creates an educator or student account. Admin accounts are never
// self-served; they come from the seed script.
func (svc *UserService) Register(nu NewUser) (models.User, error) {
	if nu.Role != models.RoleEducator && nu.Role != models.RoleStudent {
		return models.User{}, ErrAccessDenied
	}

	// Usernames are stored lowercased so login-by-identity stays one lookup.
	username := strings.ToLower(strings.TrimSpace(nu.Username))
	email := strings.ToLower(strings.TrimSpace(nu.Email))

	// Friendly pre-check; the unique indexes still back this up under races.
	unameTaken, emailTaken, err := svc.users.UsernameOrEmailTaken(username, email)
	if err != nil {
		return models.User{}, err
	}
	if unameTaken {
		return models.User{}, ErrUsernameTaken
	}
	if emailTaken {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	u := models.User{
		FirstName:     strings.TrimSpace(nu.FirstName),
		LastName:      strings.TrimSpace(nu.LastName),
		Username:      username,
		Email:         email,
		ContactNumber: strings.TrimSpace(nu.ContactNumber),
		PasswordHash:  string(hash),
		Role:          nu.Role,
	}
	if err := svc.users.CreateUser(&u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	return u, nil
}

// Authenticate matches identity against username or email and verifies the
// password. A miss on either reports ErrNotFound without distinguishing.
func (svc *UserService) Authenticate(identity, password string) (models.User, error) {
	identity = strings.ToLower(strings.TrimSpace(identity))
	u, err := svc.users.GetUserByUsernameOrEmail(identity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (svc *UserService) GetByID(id uint) (models.User, error) {
	u, err := svc.users.GetUserByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrNotFound
	}
	return u, err
}
