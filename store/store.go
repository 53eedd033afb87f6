// Package store defines the persistence interfaces the services operate on.
// gormstore implements them against PostgreSQL; memstore implements them in
// memory for tests.
package store

import (
	"errors"

	"github.com/planify-app/planify-backend/models"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate surfaces a unique-constraint violation (username, email,
	// enrollment code, (student,course) pair).
	ErrDuplicate = errors.New("duplicate record")
)

type UserStore interface {
	CreateUser(u *models.User) error
	GetUserByID(id uint) (models.User, error)
	// GetUserByUsernameOrEmail matches either column; the argument is
	// expected to be trimmed and lowercased by the caller.
	GetUserByUsernameOrEmail(identity string) (models.User, error)
	// GetStudentByEmail only matches users with the student role.
	GetStudentByEmail(email string) (models.User, error)
	UsernameOrEmailTaken(username, email string) (usernameTaken, emailTaken bool, err error)
}

type CourseStore interface {
	CreateCourse(c *models.Course) error
	GetCourse(id uint) (models.Course, error)
	GetCourseByEnrollmentCode(code string) (models.Course, error)
	EnrollmentCodeExists(code string) (bool, error)
	CoursesByEducator(educatorID uint) ([]models.Course, error)
	CoursesByStudent(studentID uint) ([]models.Course, error)
	UpdateCourse(c *models.Course) error
	// DeleteCourse removes the course and cascades to its enrollments,
	// lesson plans (with materials) and attendance records.
	DeleteCourse(id uint) error
}

type EnrollmentStore interface {
	CreateEnrollment(e *models.Enrollment) error
	IsEnrolled(studentID, courseID uint) (bool, error)
	DeleteEnrollment(studentID, courseID uint) error
	// Roster returns the enrolled students of a course.
	Roster(courseID uint) ([]models.User, error)
}

type AttendanceStore interface {
	// SaveRecord inserts or, when a row for (student, course, date) already
	// exists, overwrites status, recorded_by and recorded_at in place.
	SaveRecord(r *models.AttendanceRecord) error
	GetRecord(studentID, courseID uint, date string) (models.AttendanceRecord, error)
	RecordsByCourse(courseID uint) ([]models.AttendanceRecord, error)
	RecordsByCourseDate(courseID uint, date string) ([]models.AttendanceRecord, error)
}
