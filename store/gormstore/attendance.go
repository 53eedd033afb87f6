package gormstore

import (
	"gorm.io/gorm/clause"

	"github.com/planify-app/planify-backend/models"
)

// SaveRecord upserts on the (student_id, course_id, date) unique index:
// a concurrent insert of the same triple degrades to last-write-wins on
// status/recorded_by/recorded_at, which is the intended semantic.
func (s *Store) SaveRecord(r *models.AttendanceRecord) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "course_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "recorded_by", "recorded_at", "updated_at",
		}),
	}).Create(r).Error
	return translate(err)
}

func (s *Store) GetRecord(studentID, courseID uint, date string) (models.AttendanceRecord, error) {
	var r models.AttendanceRecord
	err := s.db.
		Where("student_id = ? AND course_id = ? AND date = ?", studentID, courseID, date).
		First(&r).Error
	return r, translate(err)
}

func (s *Store) RecordsByCourse(courseID uint) ([]models.AttendanceRecord, error) {
	var rows []models.AttendanceRecord
	err := s.db.Where("course_id = ?", courseID).
		Order("date DESC, student_id ASC").
		Find(&rows).Error
	return rows, translate(err)
}

func (s *Store) RecordsByCourseDate(courseID uint, date string) ([]models.AttendanceRecord, error) {
	var rows []models.AttendanceRecord
	err := s.db.Where("course_id = ? AND date = ?", courseID, date).
		Order("student_id ASC").
		Find(&rows).Error
	return rows, translate(err)
}
