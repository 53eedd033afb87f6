package services

import (
	"strings"
	"testing"

	"github.com/planify-app/planify-backend/models"
)

// fakeCodeTable reports a collision for the first collideFor lookups.
type fakeCodeTable struct {
	calls      int
	collideFor int
}

func (f *fakeCodeTable) EnrollmentCodeExists(string) (bool, error) {
	f.calls++
	return f.calls <= f.collideFor, nil
}

func TestGenerateEnrollmentCodeShape(t *testing.T) {
	table := &fakeCodeTable{}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code, err := GenerateEnrollmentCode(table)
		if err != nil {
			t.Fatalf("GenerateEnrollmentCode() error = %v", err)
		}
		if len(code) != models.EnrollmentCodeLength {
			t.Fatalf("code %q: length = %d, want %d", code, len(code), models.EnrollmentCodeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(codeCharset, r) {
				t.Fatalf("code %q contains %q outside A-Z0-9", code, r)
			}
		}
		if seen[code] {
			t.Fatalf("code %q drawn twice in 200 draws", code)
		}
		seen[code] = true
	}
}

func TestGenerateEnrollmentCodeRetriesOnCollision(t *testing.T) {
	table := &fakeCodeTable{collideFor: 3}
	code, err := GenerateEnrollmentCode(table)
	if err != nil {
		t.Fatalf("GenerateEnrollmentCode() error = %v", err)
	}
	if code == "" {
		t.Fatal("expected a code after collisions cleared")
	}
	if table.calls != 4 {
		t.Errorf("lookups = %d, want 4 (3 collisions + 1 hit)", table.calls)
	}
}

func TestGenerateEnrollmentCodeBoundedRetry(t *testing.T) {
	table := &fakeCodeTable{collideFor: maxCodeAttempts + 1}
	_, err := GenerateEnrollmentCode(table)
	if err != ErrCodeSpaceExhausted {
		t.Fatalf("error = %v, want ErrCodeSpaceExhausted", err)
	}
	if table.calls != maxCodeAttempts {
		t.Errorf("lookups = %d, want %d", table.calls, maxCodeAttempts)
	}
}
