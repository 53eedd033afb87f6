package services

import (
	"errors"
	"strings"

	"github.com/planify-app/planify-backend/models"
	"github.com/planify-app/planify-backend/store"
)

type CourseService struct {
	courses     store.CourseStore
	enrollments store.EnrollmentStore
}

func NewCourseService(courses store.CourseStore, enrollments store.EnrollmentStore) *CourseService {
	return &CourseService{courses: courses, enrollments: enrollments}
}

type CourseInput struct {
	Name         string
	Code         string
	BlockSection string
	Description  string
}

// Create persists a course owned by the educator, with a freshly generated
// unique enrollment code.
func (svc *CourseService) Create(educatorID uint, in CourseInput) (models.Course, error) {
	code, err := GenerateEnrollmentCode(svc.courses)
	if err != nil {
		return models.Course{}, err
	}
	c := models.Course{
		EducatorID:     educatorID,
		Name:           strings.TrimSpace(in.Name),
		Code:           strings.TrimSpace(in.Code),
		BlockSection:   strings.TrimSpace(in.BlockSection),
		Description:    strings.TrimSpace(in.Description),
		EnrollmentCode: code,
	}
	if err := svc.courses.CreateCourse(&c); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// getOwned loads a course and verifies ownership. Missing and unowned both
// come back as ErrAccessDenied.
func (svc *CourseService) getOwned(educatorID, courseID uint) (models.Course, error) {
	c, err := svc.courses.GetCourse(courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Course{}, ErrAccessDenied
		}
		return models.Course{}, err
	}
	if c.EducatorID != educatorID {
		return models.Course{}, ErrAccessDenied
	}
	return c, nil
}

func (svc *CourseService) Update(educatorID, courseID uint, in CourseInput) (models.Course, error) {
	c, err := svc.getOwned(educatorID, courseID)
	if err != nil {
		return models.Course{}, err
	}
	c.Name = strings.TrimSpace(in.Name)
	c.Code = strings.TrimSpace(in.Code)
	c.BlockSection = strings.TrimSpace(in.BlockSection)
	c.Description = strings.TrimSpace(in.Description)
	if err := svc.courses.UpdateCourse(&c); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// Delete removes an owned course; enrollments, lesson plans and attendance
// go with it.
func (svc *CourseService) Delete(educatorID, courseID uint) error {
	if _, err := svc.getOwned(educatorID, courseID); err != nil {
		return err
	}
	return svc.courses.DeleteCourse(courseID)
}

func (svc *CourseService) ListByEducator(educatorID uint) ([]models.Course, error) {
	return svc.courses.CoursesByEducator(educatorID)
}

func (svc *CourseService) ListByStudent(studentID uint) ([]models.Course, error) {
	return svc.courses.CoursesByStudent(studentID)
}

// GetForEducator returns an owned course.
func (svc *CourseService) GetForEducator(educatorID, courseID uint) (models.Course, error) {
	return svc.getOwned(educatorID, courseID)
}

// GetForStudent returns a course the student is enrolled in; anything else
// is ErrAccessDenied.
func (svc *CourseService) GetForStudent(studentID, courseID uint) (models.Course, error) {
	enrolled, err := svc.enrollments.IsEnrolled(studentID, courseID)
	if err != nil {
		return models.Course{}, err
	}
	if !enrolled {
		return models.Course{}, ErrAccessDenied
	}
	c, err := svc.courses.GetCourse(courseID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Course{}, ErrAccessDenied
	}
	return c, err
}
