package gormstore

import (
	"github.com/planify-app/planify-backend/models"
)

func (s *Store) CreateUser(u *models.User) error {
	return translate(s.db.Create(u).Error)
}

func (s *Store) GetUserByID(id uint) (models.User, error) {
	var u models.User
	err := s.db.First(&u, "id = ?", id).Error
	return u, translate(err)
}

func (s *Store) GetUserByUsernameOrEmail(identity string) (models.User, error) {
	var u models.User
	err := s.db.Where("username = ? OR email = ?", identity, identity).First(&u).Error
	return u, translate(err)
}

func (s *Store) GetStudentByEmail(email string) (models.User, error) {
	var u models.User
	err := s.db.Where("email = ? AND role = ?", email, models.RoleStudent).First(&u).Error
	return u, translate(err)
}

func (s *Store) UsernameOrEmailTaken(username, email string) (bool, bool, error) {
	var rows []models.User
	err := s.db.Select("username", "email").
		Where("username = ? OR email = ?", username, email).
		Find(&rows).Error
	if err != nil {
		return false, false, translate(err)
	}
	var unameTaken, emailTaken bool
	for _, r := range rows {
		if r.Username == username {
			unameTaken = true
		}
		if r.Email == email {
			emailTaken = true
		}
	}
	return unameTaken, emailTaken, nil
}
