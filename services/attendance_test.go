package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/planify-app/planify-backend/models"
)

func TestRecordAttendance(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	s1 := f.student(t, "s1")
	s2 := f.student(t, "s2")
	c := f.course(t, ed.ID, "Algorithms")
	mustJoin(t, f, s1, c)
	mustJoin(t, f, s2, c)

	written, err := f.attend.Record(ed.ID, c.ID, "2024-01-10", map[uint]models.AttendanceStatus{
		s1.ID: models.StatusPresent,
		s2.ID: models.StatusAbsent,
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, written)

	r1, err := f.db.GetRecord(s1.ID, c.ID, "2024-01-10")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPresent, r1.Status)
	assert.Equal(t, ed.ID, r1.RecordedBy)
}

func TestRecordAttendanceUpsertsInPlace(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	s1 := f.student(t, "s1")
	s2 := f.student(t, "s2")
	c := f.course(t, ed.ID, "Algorithms")
	mustJoin(t, f, s1, c)
	mustJoin(t, f, s2, c)

	t0 := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	f.attend.now = func() time.Time { return t0 }

	_, err := f.attend.Record(ed.ID, c.ID, "2024-01-10", map[uint]models.AttendanceStatus{
		s1.ID: models.StatusPresent,
		s2.ID: models.StatusAbsent,
	})
	assert.NoError(t, err)

	// partial re-submission: only S1 changes
	t1 := t0.Add(2 * time.Hour)
	f.attend.now = func() time.Time { return t1 }
	written, err := f.attend.Record(ed.ID, c.ID, "2024-01-10", map[uint]models.AttendanceStatus{
		s1.ID: models.StatusLate,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, written)

	r1, _ := f.db.GetRecord(s1.ID, c.ID, "2024-01-10")
	assert.Equal(t, models.StatusLate, r1.Status)
	assert.Equal(t, t1, r1.RecordedAt) // overwrite refreshes the timestamp

	r2, _ := f.db.GetRecord(s2.ID, c.ID, "2024-01-10")
	assert.Equal(t, models.StatusAbsent, r2.Status)
	assert.Equal(t, t0, r2.RecordedAt)

	// still exactly one row per student for the day
	rows, _ := f.db.RecordsByCourseDate(c.ID, "2024-01-10")
	assert.Len(t, rows, 2)
}

func TestRecordAttendanceIdempotent(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	s1 := f.student(t, "s1")
	c := f.course(t, ed.ID, "Algorithms")
	mustJoin(t, f, s1, c)

	statuses := map[uint]models.AttendanceStatus{s1.ID: models.StatusPresent}
	for i := 0; i < 2; i++ {
		_, err := f.attend.Record(ed.ID, c.ID, "2024-01-10", statuses)
		assert.NoError(t, err)
	}
	rows, _ := f.db.RecordsByCourseDate(c.ID, "2024-01-10")
	assert.Len(t, rows, 1)
	assert.Equal(t, models.StatusPresent, rows[0].Status)
}

func TestRecordAttendanceSkipsNonRoster(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	s1 := f.student(t, "s1")
	outsider := f.student(t, "out")
	c := f.course(t, ed.ID, "Algorithms")
	mustJoin(t, f, s1, c)

	written, err := f.attend.Record(ed.ID, c.ID, "2024-01-10", map[uint]models.AttendanceStatus{
		s1.ID:       models.StatusPresent,
		outsider.ID: models.StatusPresent, // not enrolled, must not be written
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, written)

	_, err = f.db.GetRecord(outsider.ID, c.ID, "2024-01-10")
	assert.Error(t, err)
}

func TestRecordAttendanceValidation(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	other := f.educator(t, "rival")
	s1 := f.student(t, "s1")
	c := f.course(t, ed.ID, "Algorithms")
	mustJoin(t, f, s1, c)

	_, err := f.attend.Record(other.ID, c.ID, "2024-01-10", nil)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.attend.Record(ed.ID, c.ID, "10/01/2024", nil)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = f.attend.Record(ed.ID, c.ID, "2024-01-10", map[uint]models.AttendanceStatus{
		s1.ID: "tardy",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAttendanceHistory(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	s1 := f.student(t, "s1")
	s2 := f.student(t, "s2")
	c := f.course(t, ed.ID, "Algorithms")
	mustJoin(t, f, s1, c)
	mustJoin(t, f, s2, c)

	// day one: only S1 recorded
	_, err := f.attend.Record(ed.ID, c.ID, "2024-01-10", map[uint]models.AttendanceStatus{
		s1.ID: models.StatusPresent,
	})
	assert.NoError(t, err)
	// day two: both
	_, err = f.attend.Record(ed.ID, c.ID, "2024-01-11", map[uint]models.AttendanceStatus{
		s1.ID: models.StatusLate,
		s2.ID: models.StatusExcused,
	})
	assert.NoError(t, err)

	hist, err := f.attend.History(ed.ID, c.ID)
	assert.NoError(t, err)
	assert.Len(t, hist, 2)

	// newest first
	assert.Equal(t, "2024-01-11", hist[0].Date)
	assert.Equal(t, DailySummary{
		Date: "2024-01-11", Late: 1, Excused: 1, Total: 2, NotRecorded: 0,
	}, hist[0])

	// the unrecorded student is its own bucket, not an absence
	assert.Equal(t, DailySummary{
		Date: "2024-01-10", Present: 1, Total: 2, NotRecorded: 1,
	}, hist[1])
}

func TestDaySheet(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	s1 := f.student(t, "s1")
	s2 := f.student(t, "s2")
	c := f.course(t, ed.ID, "Algorithms")
	mustJoin(t, f, s1, c)
	mustJoin(t, f, s2, c)

	_, err := f.attend.Record(ed.ID, c.ID, "2024-01-10", map[uint]models.AttendanceStatus{
		s1.ID: models.StatusPresent,
	})
	assert.NoError(t, err)

	sheet, err := f.attend.DaySheet(ed.ID, c.ID, "2024-01-10")
	assert.NoError(t, err)
	assert.Len(t, sheet, 2)

	byID := map[uint]DaySheetEntry{}
	for _, e := range sheet {
		byID[e.Student.ID] = e
	}
	assert.True(t, byID[s1.ID].Recorded)
	assert.Equal(t, models.StatusPresent, byID[s1.ID].Status)
	assert.False(t, byID[s2.ID].Recorded)
	assert.Empty(t, byID[s2.ID].Status)
}

func TestMyAttendance(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	s1 := f.student(t, "s1")
	s2 := f.student(t, "s2")
	outsider := f.student(t, "out")
	c := f.course(t, ed.ID, "Algorithms")
	mustJoin(t, f, s1, c)
	mustJoin(t, f, s2, c)

	_, err := f.attend.Record(ed.ID, c.ID, "2024-01-10", map[uint]models.AttendanceStatus{
		s1.ID: models.StatusPresent,
		s2.ID: models.StatusAbsent,
	})
	assert.NoError(t, err)

	mine, err := f.attend.MyAttendance(s1.ID, c.ID)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, s1.ID, mine[0].StudentID)

	_, err = f.attend.MyAttendance(outsider.ID, c.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func mustJoin(t *testing.T, f *fixture, student models.User, course models.Course) {
	t.Helper()
	if _, err := f.enroll.JoinByCode(student.ID, course.EnrollmentCode); err != nil {
		t.Fatalf("join(%d, %d): %v", student.ID, course.ID, err)
	}
}
