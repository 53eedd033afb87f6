package models

import "time"

// EnrollmentCodeLength is the fixed length of self-service join codes.
const EnrollmentCodeLength = 8

type Course struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	EducatorID   uint   `json:"educator_id" gorm:"index;not null"`
	Name         string `json:"course_name" gorm:"size:100;not null"`
	Code         string `json:"course_code" gorm:"size:20;not null"` // display code, e.g. "CS101"
	BlockSection string `json:"block_section" gorm:"size:20"`
	Description  string `json:"description" gorm:"type:text"`

	// EnrollmentCode is the unique 8-char join token (A-Z, 0-9).
	EnrollmentCode string `json:"enrollment_code" gorm:"uniqueIndex;size:8;not null"`

	Educator *User `json:"educator,omitempty" gorm:"foreignKey:EducatorID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
