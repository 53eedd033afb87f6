package models

import "time"

// AttendanceStatus is the closed set of recordable statuses. "not recorded"
// is deliberately not a status: it is the absence of a row for the day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
	StatusExcused AttendanceStatus = "excused"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

// AttendanceDateLayout is the canonical per-day key format.
const AttendanceDateLayout = "2006-01-02"

// AttendanceRecord holds one status per student per course per calendar day.
// Re-recording the same (student, course, date) overwrites in place; the
// composite index makes the triple unique under concurrent writes too.
type AttendanceRecord struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	StudentID uint             `json:"student_id" gorm:"uniqueIndex:idx_attendance_student_course_date;not null"`
	CourseID  uint             `json:"course_id" gorm:"uniqueIndex:idx_attendance_student_course_date;index;not null"`
	Date      string           `json:"date" gorm:"uniqueIndex:idx_attendance_student_course_date;size:10;not null"` // YYYY-MM-DD
	Status    AttendanceStatus `json:"status" gorm:"size:10;not null"`

	RecordedBy uint      `json:"recorded_by" gorm:"not null"` // educator who last wrote the row
	RecordedAt time.Time `json:"recorded_at" gorm:"not null"`

	Course *Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
