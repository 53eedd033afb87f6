// Package services holds the business rules between the HTTP handlers and
// the store: enrollment-code generation, the enrollment ledger and the
// attendance upsert/aggregation, plus account and course lifecycle.
package services

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrAccessDenied covers role mismatch and ownership mismatch alike. A
	// missing resource behind an ownership check also reports this, never
	// ErrNotFound; handlers rely on that conflation.
	ErrAccessDenied = errors.New("access denied")

	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")

	ErrAlreadyEnrolled = errors.New("student already enrolled in this course")
	ErrStudentNotFound = errors.New("no student account with this email")
	ErrNotEnrolled     = errors.New("student is not enrolled in this course")

	// ErrCodeSpaceExhausted means code generation hit its retry bound
	// without finding a free enrollment code.
	ErrCodeSpaceExhausted = errors.New("could not generate a unique enrollment code")

	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidStatus = errors.New("invalid attendance status")
)
