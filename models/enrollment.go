package models

import "time"

// Enrollment links a student to a course. The (student, course) pair is
// unique: the composite index is the actual guarantee against concurrent
// double-joins, the service pre-check only exists for a friendly error.
type Enrollment struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	StudentID uint `json:"student_id" gorm:"uniqueIndex:idx_enrollment_student_course;not null"`
	CourseID  uint `json:"course_id" gorm:"uniqueIndex:idx_enrollment_student_course;index;not null"`

	Student *User   `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Course  *Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"enrolled_at"`
	UpdatedAt time.Time `json:"-"`
}
