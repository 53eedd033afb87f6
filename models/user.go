package models

import "time"

// Role is the closed set of account roles. Every user carries exactly one.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEducator Role = "educator"
	RoleStudent  Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEducator, RoleStudent:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	FirstName     string    `json:"first_name" gorm:"size:20;not null"`
	LastName      string    `json:"last_name" gorm:"size:20;not null"`
	Username      string    `json:"username" gorm:"uniqueIndex;size:60;not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;size:120;not null"` // stored lowercased
	ContactNumber string    `json:"contact_number" gorm:"size:11;not null"`
	PasswordHash  string    `json:"-" gorm:"not null"` // bcrypt hash
	Role          Role      `json:"role" gorm:"size:20;not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (u *User) FullName() string { return u.FirstName + " " + u.LastName }
