package services

import (
	"errors"
	"strings"

	"github.com/planify-app/planify-backend/models"
	"github.com/planify-app/planify-backend/store"
)

type EnrollmentService struct {
	users       store.UserStore
	courses     store.CourseStore
	enrollments store.EnrollmentStore
}

func NewEnrollmentService(users store.UserStore, courses store.CourseStore, enrollments store.EnrollmentStore) *EnrollmentService {
	return &EnrollmentService{users: users, courses: courses, enrollments: enrollments}
}

// JoinByCode enrolls the student in the course matching the join code.
// The code is trimmed and uppercased before lookup.
func (svc *EnrollmentService) JoinByCode(studentID uint, code string) (models.Course, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	c, err := svc.courses.GetCourseByEnrollmentCode(code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Course{}, ErrNotFound
		}
		return models.Course{}, err
	}
	if err := svc.enroll(studentID, c.ID); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// AddByEmail enrolls a student (looked up by email, student role only) into
// a course the educator owns.
func (svc *EnrollmentService) AddByEmail(educatorID, courseID uint, email string) (models.User, error) {
	if err := svc.requireOwned(educatorID, courseID); err != nil {
		return models.User{}, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	student, err := svc.users.GetStudentByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrStudentNotFound
		}
		return models.User{}, err
	}
	if err := svc.enroll(student.ID, courseID); err != nil {
		return models.User{}, err
	}
	return student, nil
}

// Remove deletes an enrollment from a course the educator owns. Ownership is
// re-verified here, per mutation, never cached from an earlier request.
func (svc *EnrollmentService) Remove(educatorID, courseID, studentID uint) error {
	if err := svc.requireOwned(educatorID, courseID); err != nil {
		return err
	}
	err := svc.enrollments.DeleteEnrollment(studentID, courseID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotEnrolled
	}
	return err
}

// Roster lists the enrolled students of a course the educator owns.
func (svc *EnrollmentService) Roster(educatorID, courseID uint) ([]models.User, error) {
	if err := svc.requireOwned(educatorID, courseID); err != nil {
		return nil, err
	}
	return svc.enrollments.Roster(courseID)
}

func (svc *EnrollmentService) requireOwned(educatorID, courseID uint) error {
	c, err := svc.courses.GetCourse(courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccessDenied
		}
		return err
	}
	if c.EducatorID != educatorID {
		return ErrAccessDenied
	}
	return nil
}

// enroll inserts the (student, course) pair. The pre-check yields the
// friendly ErrAlreadyEnrolled; the unique index catches the race, and its
// violation maps to the same error.
func (svc *EnrollmentService) enroll(studentID, courseID uint) error {
	enrolled, err := svc.enrollments.IsEnrolled(studentID, courseID)
	if err != nil {
		return err
	}
	if enrolled {
		return ErrAlreadyEnrolled
	}
	e := models.Enrollment{StudentID: studentID, CourseID: courseID}
	if err := svc.enrollments.CreateEnrollment(&e); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return ErrAlreadyEnrolled
		}
		return err
	}
	return nil
}
