package gormstore

import (
	"gorm.io/gorm"

	"github.com/planify-app/planify-backend/models"
)

func (s *Store) CreateCourse(c *models.Course) error {
	return translate(s.db.Create(c).Error)
}

func (s *Store) GetCourse(id uint) (models.Course, error) {
	var c models.Course
	err := s.db.First(&c, "id = ?", id).Error
	return c, translate(err)
}

func (s *Store) GetCourseByEnrollmentCode(code string) (models.Course, error) {
	var c models.Course
	err := s.db.Where("enrollment_code = ?", code).First(&c).Error
	return c, translate(err)
}

func (s *Store) EnrollmentCodeExists(code string) (bool, error) {
	var cnt int64
	err := s.db.Model(&models.Course{}).Where("enrollment_code = ?", code).Count(&cnt).Error
	return cnt > 0, translate(err)
}

func (s *Store) CoursesByEducator(educatorID uint) ([]models.Course, error) {
	var rows []models.Course
	err := s.db.Where("educator_id = ?", educatorID).Order("id DESC").Find(&rows).Error
	return rows, translate(err)
}

func (s *Store) CoursesByStudent(studentID uint) ([]models.Course, error) {
	var rows []models.Course
	err := s.db.
		Joins("JOIN enrollments e ON e.course_id = courses.id").
		Where("e.student_id = ?", studentID).
		Preload("Educator").
		Order("courses.id DESC").
		Find(&rows).Error
	return rows, translate(err)
}

func (s *Store) UpdateCourse(c *models.Course) error {
	return translate(s.db.Save(c).Error)
}

// DeleteCourse removes the course and everything it owns in one transaction.
// The children never outlive the course.
func (s *Store) DeleteCourse(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&models.AttendanceRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_plan_id IN (?)",
			tx.Model(&models.LessonPlan{}).Select("id").Where("course_id = ?", id),
		).Delete(&models.LearningMaterial{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&models.LessonPlan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Course{}, "id = ?", id).Error
	})
	return translate(err)
}
