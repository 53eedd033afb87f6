package services

import (
	"errors"
	"sort"
	"time"

	"github.com/planify-app/planify-backend/models"
	"github.com/planify-app/planify-backend/store"
)

type AttendanceService struct {
	courses     store.CourseStore
	enrollments store.EnrollmentStore
	attendance  store.AttendanceStore

	now func() time.Time // mockable
}

func NewAttendanceService(courses store.CourseStore, enrollments store.EnrollmentStore, attendance store.AttendanceStore) *AttendanceService {
	return &AttendanceService{
		courses:     courses,
		enrollments: enrollments,
		attendance:  attendance,
		now:         time.Now,
	}
}

// Record writes one day of attendance for a course the educator owns.
// Statuses are keyed by student ID; students missing from the map are
// skipped (a partial submission is not an "absent"). Students outside the
// course roster are never written. Re-recording an existing (student,
// course, date) overwrites status and refreshes recorded_by/recorded_at.
// Returns the number of rows written.
func (svc *AttendanceService) Record(educatorID, courseID uint, date string, statuses map[uint]models.AttendanceStatus) (int, error) {
	if err := svc.requireOwned(educatorID, courseID); err != nil {
		return 0, err
	}
	if _, err := time.Parse(models.AttendanceDateLayout, date); err != nil {
		return 0, ErrInvalidDate
	}
	for _, st := range statuses {
		if !st.Valid() {
			return 0, ErrInvalidStatus
		}
	}

	roster, err := svc.enrollments.Roster(courseID)
	if err != nil {
		return 0, err
	}

	now := svc.now()
	written := 0
	for _, student := range roster {
		st, ok := statuses[student.ID]
		if !ok {
			continue
		}
		rec := models.AttendanceRecord{
			StudentID:  student.ID,
			CourseID:   courseID,
			Date:       date,
			Status:     st,
			RecordedBy: educatorID,
			RecordedAt: now,
		}
		if err := svc.attendance.SaveRecord(&rec); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// DailySummary is one history row: per-status counts for a date plus the
// enrolled students that have no row at all. NotRecorded is its own bucket,
// never folded into absent.
type DailySummary struct {
	Date        string `json:"date"`
	Present     int    `json:"present"`
	Absent      int    `json:"absent"`
	Late        int    `json:"late"`
	Excused     int    `json:"excused"`
	Total       int    `json:"total"` // enrolled students
	NotRecorded int    `json:"not_recorded"`
}

// History aggregates all attendance of an owned course by date, newest
// first. Total is the current roster size.
func (svc *AttendanceService) History(educatorID, courseID uint) ([]DailySummary, error) {
	if err := svc.requireOwned(educatorID, courseID); err != nil {
		return nil, err
	}
	rows, err := svc.attendance.RecordsByCourse(courseID)
	if err != nil {
		return nil, err
	}
	roster, err := svc.enrollments.Roster(courseID)
	if err != nil {
		return nil, err
	}
	enrolled := len(roster)

	byDate := map[string]*DailySummary{}
	for _, r := range rows {
		day, ok := byDate[r.Date]
		if !ok {
			day = &DailySummary{Date: r.Date, Total: enrolled}
			byDate[r.Date] = day
		}
		switch r.Status {
		case models.StatusPresent:
			day.Present++
		case models.StatusAbsent:
			day.Absent++
		case models.StatusLate:
			day.Late++
		case models.StatusExcused:
			day.Excused++
		}
	}

	out := make([]DailySummary, 0, len(byDate))
	for _, day := range byDate {
		recorded := day.Present + day.Absent + day.Late + day.Excused
		if n := day.Total - recorded; n > 0 {
			day.NotRecorded = n
		}
		out = append(out, *day)
	}
	// newest first; the YYYY-MM-DD key sorts lexicographically
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// DaySheetEntry pairs a rostered student with their status for one date;
// Recorded is false when no row exists for that student/day.
type DaySheetEntry struct {
	Student  models.User             `json:"student"`
	Status   models.AttendanceStatus `json:"status,omitempty"`
	Recorded bool                    `json:"recorded"`
}

// DaySheet lists the full roster of an owned course for one date with each
// student's status, or an explicit not-recorded marker. This is the data the
// downloadable report is rendered from.
func (svc *AttendanceService) DaySheet(educatorID, courseID uint, date string) ([]DaySheetEntry, error) {
	if err := svc.requireOwned(educatorID, courseID); err != nil {
		return nil, err
	}
	if _, err := time.Parse(models.AttendanceDateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	roster, err := svc.enrollments.Roster(courseID)
	if err != nil {
		return nil, err
	}
	rows, err := svc.attendance.RecordsByCourseDate(courseID, date)
	if err != nil {
		return nil, err
	}
	byStudent := make(map[uint]models.AttendanceStatus, len(rows))
	for _, r := range rows {
		byStudent[r.StudentID] = r.Status
	}

	out := make([]DaySheetEntry, 0, len(roster))
	for _, student := range roster {
		entry := DaySheetEntry{Student: student}
		if st, ok := byStudent[student.ID]; ok {
			entry.Status = st
			entry.Recorded = true
		}
		out = append(out, entry)
	}
	return out, nil
}

// MyAttendance returns a student's own records for a course they are
// enrolled in.
func (svc *AttendanceService) MyAttendance(studentID, courseID uint) ([]models.AttendanceRecord, error) {
	enrolled, err := svc.enrollments.IsEnrolled(studentID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, ErrAccessDenied
	}
	rows, err := svc.attendance.RecordsByCourse(courseID)
	if err != nil {
		return nil, err
	}
	mine := make([]models.AttendanceRecord, 0, len(rows))
	for _, r := range rows {
		if r.StudentID == studentID {
			mine = append(mine, r)
		}
	}
	return mine, nil
}

func (svc *AttendanceService) requireOwned(educatorID, courseID uint) error {
	c, err := svc.courses.GetCourse(courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccessDenied
		}
		return err
	}
	if c.EducatorID != educatorID {
		return ErrAccessDenied
	}
	return nil
}
