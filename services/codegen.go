package services

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/planify-app/planify-backend/models"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxCodeAttempts bounds the collision-retry loop. At tens of live courses
// against a 36^8 space a single draw almost always lands free; the bound
// exists so a pathological table turns into an error instead of a spin.
const maxCodeAttempts = 100

// codeTable is the slice of CourseStore that code generation needs.
type codeTable interface {
	EnrollmentCodeExists(code string) (bool, error)
}

// GenerateEnrollmentCode draws 8-char codes over A-Z0-9 until one does not
// collide with a live course, or the attempt bound is hit
// (ErrCodeSpaceExhausted). Read-only: persisting the code together with its
// course is the caller's job.
func GenerateEnrollmentCode(courses codeTable) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := randomCode(models.EnrollmentCodeLength)
		if err != nil {
			return "", err
		}
		exists, err := courses.EnrollmentCodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}

func randomCode(n int) (string, error) {
	var b strings.Builder
	b.Grow(n)
	max := big.NewInt(int64(len(codeCharset)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(codeCharset[idx.Int64()])
	}
	return b.String(), nil
}
