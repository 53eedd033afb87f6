package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/planify-app/planify-backend/config"
	"github.com/planify-app/planify-backend/models"
)

// Open connects and migrates the schema. The handle is returned, not stored
// in a package global: callers inject it where it is needed and own the
// request-boundary transactions.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		// unique-index violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
		&models.LessonPlan{},
		&models.LearningMaterial{},
		&models.AttendanceRecord{},
		&models.ContactMessage{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
