package gormstore

import (
	"github.com/planify-app/planify-backend/models"
	"github.com/planify-app/planify-backend/store"
)

func (s *Store) CreateEnrollment(e *models.Enrollment) error {
	return translate(s.db.Create(e).Error)
}

func (s *Store) IsEnrolled(studentID, courseID uint) (bool, error) {
	var cnt int64
	err := s.db.Model(&models.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&cnt).Error
	return cnt > 0, translate(err)
}

func (s *Store) DeleteEnrollment(studentID, courseID uint) error {
	res := s.db.Where("student_id = ? AND course_id = ?", studentID, courseID).
		Delete(&models.Enrollment{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) Roster(courseID uint) ([]models.User, error) {
	var rows []models.User
	err := s.db.
		Joins("JOIN enrollments e ON e.student_id = users.id").
		Where("e.course_id = ?", courseID).
		Order("users.last_name ASC, users.first_name ASC").
		Find(&rows).Error
	return rows, translate(err)
}
