package models

import "time"

type LessonPlan struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	EducatorID  uint   `json:"educator_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"size:200;not null"`
	Topic       string `json:"topic" gorm:"size:200"`
	Objectives  string `json:"objectives" gorm:"type:text"`
	Description string `json:"description" gorm:"type:text"`

	Course    *Course            `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Materials []LearningMaterial `json:"materials,omitempty" gorm:"foreignKey:LessonPlanID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LearningMaterial is file metadata for an uploaded attachment; the bytes
// live on disk under the path handed back by the storage layer.
type LearningMaterial struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	LessonPlanID uint      `json:"lesson_plan_id" gorm:"index;not null"`
	FileName     string    `json:"file_name" gorm:"size:255;not null"` // original client filename
	StoragePath  string    `json:"-" gorm:"size:500;not null"`
	UploadedAt   time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}
