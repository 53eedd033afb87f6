package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planify-app/planify-backend/models"
	"github.com/planify-app/planify-backend/store/memstore"
)

// fixture wires every service over one shared memstore.
type fixture struct {
	db      *memstore.Store
	users   *UserService
	courses *CourseService
	enroll  *EnrollmentService
	attend  *AttendanceService
}

func newFixture() *fixture {
	db := memstore.New()
	return &fixture{
		db:      db,
		users:   NewUserService(db),
		courses: NewCourseService(db, db),
		enroll:  NewEnrollmentService(db, db, db),
		attend:  NewAttendanceService(db, db, db),
	}
}

func (f *fixture) educator(t *testing.T, username string) models.User {
	t.Helper()
	u, err := f.users.Register(NewUser{
		FirstName: "Edu", LastName: "Cator",
		Username: username, Email: username + "@planify.test",
		ContactNumber: "09170000000", Password: "pass123",
		Role: models.RoleEducator,
	})
	if err != nil {
		t.Fatalf("educator(%s): %v", username, err)
	}
	return u
}

func (f *fixture) student(t *testing.T, username string) models.User {
	t.Helper()
	u, err := f.users.Register(NewUser{
		FirstName: "Stu", LastName: "Dent",
		Username: username, Email: username + "@planify.test",
		ContactNumber: "09170000001", Password: "pass123",
		Role: models.RoleStudent,
	})
	if err != nil {
		t.Fatalf("student(%s): %v", username, err)
	}
	return u
}

func (f *fixture) course(t *testing.T, educatorID uint, name string) models.Course {
	t.Helper()
	c, err := f.courses.Create(educatorID, CourseInput{Name: name, Code: "CS101"})
	if err != nil {
		t.Fatalf("course(%s): %v", name, err)
	}
	return c
}

func TestJoinByCode(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	st := f.student(t, "learn")
	c := f.course(t, ed.ID, "Algorithms")

	joined, err := f.enroll.JoinByCode(st.ID, c.EnrollmentCode)
	assert.NoError(t, err)
	assert.Equal(t, c.ID, joined.ID)

	enrolled, _ := f.db.IsEnrolled(st.ID, c.ID)
	assert.True(t, enrolled)

	// joining again changes nothing
	_, err = f.enroll.JoinByCode(st.ID, c.EnrollmentCode)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	roster, _ := f.db.Roster(c.ID)
	assert.Len(t, roster, 1)
}

func TestJoinByCodeNormalizesInput(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	st := f.student(t, "learn")
	c := f.course(t, ed.ID, "Algorithms")

	sloppy := "  " + strings.ToLower(c.EnrollmentCode) + " "
	_, err := f.enroll.JoinByCode(st.ID, sloppy)
	assert.NoError(t, err)
}

func TestJoinByCodeUnknown(t *testing.T) {
	f := newFixture()
	st := f.student(t, "learn")

	_, err := f.enroll.JoinByCode(st.ID, "ZZZZ9999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddByEmail(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	other := f.educator(t, "rival")
	st := f.student(t, "learn")
	c := f.course(t, ed.ID, "Algorithms")

	// only the owner may enroll by email
	_, err := f.enroll.AddByEmail(other.ID, c.ID, st.Email)
	assert.ErrorIs(t, err, ErrAccessDenied)

	added, err := f.enroll.AddByEmail(ed.ID, c.ID, " Learn@Planify.TEST ")
	assert.NoError(t, err)
	assert.Equal(t, st.ID, added.ID)

	// an educator's email never resolves to a student
	_, err = f.enroll.AddByEmail(ed.ID, c.ID, other.Email)
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = f.enroll.AddByEmail(ed.ID, c.ID, st.Email)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestRemoveEnrollment(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	other := f.educator(t, "rival")
	st := f.student(t, "learn")
	c := f.course(t, ed.ID, "Algorithms")

	_, err := f.enroll.JoinByCode(st.ID, c.EnrollmentCode)
	assert.NoError(t, err)

	// ownership is re-verified on the mutation itself
	assert.ErrorIs(t, f.enroll.Remove(other.ID, c.ID, st.ID), ErrAccessDenied)

	assert.NoError(t, f.enroll.Remove(ed.ID, c.ID, st.ID))
	enrolled, _ := f.db.IsEnrolled(st.ID, c.ID)
	assert.False(t, enrolled)

	assert.ErrorIs(t, f.enroll.Remove(ed.ID, c.ID, st.ID), ErrNotEnrolled)
}

func TestRosterRequiresOwnership(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	other := f.educator(t, "rival")
	c := f.course(t, ed.ID, "Algorithms")

	_, err := f.enroll.Roster(other.ID, c.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// a missing course answers exactly like an unowned one
	_, err = f.enroll.Roster(ed.ID, c.ID+999)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
