// Package gormstore is the PostgreSQL-backed implementation of the store
// interfaces.
package gormstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/planify-app/planify-backend/store"
)

// Store implements every store interface over one gorm handle.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

// translate maps gorm errors to the store sentinels. Relies on
// gorm.Config{TranslateError: true} so unique-index violations come back as
// gorm.ErrDuplicatedKey regardless of driver.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return store.ErrDuplicate
	}
	return err
}
