package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planify-app/planify-backend/models"
)

func TestCourseCreateGeneratesDistinctCodes(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		c, err := f.courses.Create(ed.ID, CourseInput{Name: "Course", Code: "C10"})
		assert.NoError(t, err)
		assert.Len(t, c.EnrollmentCode, models.EnrollmentCodeLength)
		assert.False(t, seen[c.EnrollmentCode], "code %q reused", c.EnrollmentCode)
		seen[c.EnrollmentCode] = true
	}
}

func TestCourseUpdateOwnership(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	other := f.educator(t, "rival")
	c := f.course(t, ed.ID, "Algorithms")

	_, err := f.courses.Update(other.ID, c.ID, CourseInput{Name: "Hijacked", Code: "X1"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	updated, err := f.courses.Update(ed.ID, c.ID, CourseInput{Name: "Algorithms II", Code: "CS102"})
	assert.NoError(t, err)
	assert.Equal(t, "Algorithms II", updated.Name)
	// the join code survives edits
	assert.Equal(t, c.EnrollmentCode, updated.EnrollmentCode)
}

func TestCourseDeleteCascades(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	st := f.student(t, "learn")
	c := f.course(t, ed.ID, "Algorithms")
	mustJoin(t, f, st, c)

	f.db.AddLessonPlan(&models.LessonPlan{CourseID: c.ID, EducatorID: ed.ID, Title: "Week 1"})
	_, err := f.attend.Record(ed.ID, c.ID, "2024-01-10", map[uint]models.AttendanceStatus{
		st.ID: models.StatusPresent,
	})
	assert.NoError(t, err)

	assert.ErrorIs(t, f.courses.Delete(st.ID, c.ID), ErrAccessDenied)
	assert.NoError(t, f.courses.Delete(ed.ID, c.ID))

	_, err = f.db.GetCourse(c.ID)
	assert.Error(t, err)
	enrolled, _ := f.db.IsEnrolled(st.ID, c.ID)
	assert.False(t, enrolled)
	rows, _ := f.db.RecordsByCourse(c.ID)
	assert.Empty(t, rows)
	assert.Zero(t, f.db.LessonPlanCount(c.ID))

	// users survive the cascade
	_, err = f.db.GetUserByID(st.ID)
	assert.NoError(t, err)
	_, err = f.db.GetUserByID(ed.ID)
	assert.NoError(t, err)
}

func TestCourseStudentAccess(t *testing.T) {
	f := newFixture()
	ed := f.educator(t, "teach")
	st := f.student(t, "learn")
	outsider := f.student(t, "out")
	c := f.course(t, ed.ID, "Algorithms")
	mustJoin(t, f, st, c)

	got, err := f.courses.GetForStudent(st.ID, c.ID)
	assert.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = f.courses.GetForStudent(outsider.ID, c.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	mine, err := f.courses.ListByStudent(st.ID)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)

	owned, err := f.courses.ListByEducator(ed.ID)
	assert.NoError(t, err)
	assert.Len(t, owned, 1)
}
