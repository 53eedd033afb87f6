// Package memstore is an in-memory implementation of the store interfaces.
// It enforces the same uniqueness invariants as the SQL schema and backs the
// services tests.
package memstore

import (
	"sort"
	"sync"

	"github.com/planify-app/planify-backend/models"
	"github.com/planify-app/planify-backend/store"
)

type Store struct {
	mu sync.RWMutex

	nextID      uint
	users       map[uint]*models.User
	courses     map[uint]*models.Course
	enrollments map[uint]*models.Enrollment
	plans       map[uint]*models.LessonPlan
	materials   map[uint]*models.LearningMaterial
	attendance  map[uint]*models.AttendanceRecord
}

func New() *Store {
	return &Store{
		users:       map[uint]*models.User{},
		courses:     map[uint]*models.Course{},
		enrollments: map[uint]*models.Enrollment{},
		plans:       map[uint]*models.LessonPlan{},
		materials:   map[uint]*models.LearningMaterial{},
		attendance:  map[uint]*models.AttendanceRecord{},
	}
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

/* ----- users ----- */

func (s *Store) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return store.ErrDuplicate
		}
	}
	u.ID = s.id()
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *Store) GetUserByID(id uint) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[id]; ok {
		return *u, nil
	}
	return models.User{}, store.ErrNotFound
}

func (s *Store) GetUserByUsernameOrEmail(identity string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == identity || u.Email == identity {
			return *u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *Store) GetStudentByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email && u.Role == models.RoleStudent {
			return *u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *Store) UsernameOrEmailTaken(username, email string) (bool, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var unameTaken, emailTaken bool
	for _, u := range s.users {
		if u.Username == username {
			unameTaken = true
		}
		if u.Email == email {
			emailTaken = true
		}
	}
	return unameTaken, emailTaken, nil
}

/* ----- courses ----- */

func (s *Store) CreateCourse(c *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.courses {
		if existing.EnrollmentCode == c.EnrollmentCode {
			return store.ErrDuplicate
		}
	}
	c.ID = s.id()
	cp := *c
	s.courses[c.ID] = &cp
	return nil
}

func (s *Store) GetCourse(id uint) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.courses[id]; ok {
		return *c, nil
	}
	return models.Course{}, store.ErrNotFound
}

func (s *Store) GetCourseByEnrollmentCode(code string) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		if c.EnrollmentCode == code {
			return *c, nil
		}
	}
	return models.Course{}, store.ErrNotFound
}

func (s *Store) EnrollmentCodeExists(code string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		if c.EnrollmentCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CoursesByEducator(educatorID uint) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []models.Course
	for _, c := range s.courses {
		if c.EducatorID == educatorID {
			rows = append(rows, *c)
		}
	}
	sortCoursesDesc(rows)
	return rows, nil
}

func (s *Store) CoursesByStudent(studentID uint) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []models.Course
	for _, e := range s.enrollments {
		if e.StudentID == studentID {
			if c, ok := s.courses[e.CourseID]; ok {
				rows = append(rows, *c)
			}
		}
	}
	sortCoursesDesc(rows)
	return rows, nil
}

func (s *Store) UpdateCourse(c *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[c.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *c
	s.courses[c.ID] = &cp
	return nil
}

func (s *Store) DeleteCourse(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return store.ErrNotFound
	}
	for eid, e := range s.enrollments {
		if e.CourseID == id {
			delete(s.enrollments, eid)
		}
	}
	for pid, p := range s.plans {
		if p.CourseID == id {
			for mid, m := range s.materials {
				if m.LessonPlanID == pid {
					delete(s.materials, mid)
				}
			}
			delete(s.plans, pid)
		}
	}
	for aid, a := range s.attendance {
		if a.CourseID == id {
			delete(s.attendance, aid)
		}
	}
	delete(s.courses, id)
	return nil
}

func sortCoursesDesc(rows []models.Course) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
}

/* ----- enrollments ----- */

func (s *Store) CreateEnrollment(e *models.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.enrollments {
		if existing.StudentID == e.StudentID && existing.CourseID == e.CourseID {
			return store.ErrDuplicate
		}
	}
	e.ID = s.id()
	cp := *e
	s.enrollments[e.ID] = &cp
	return nil
}

func (s *Store) IsEnrolled(studentID, courseID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) DeleteEnrollment(studentID, courseID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			delete(s.enrollments, id)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) Roster(courseID uint) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []models.User
	for _, e := range s.enrollments {
		if e.CourseID == courseID {
			if u, ok := s.users[e.StudentID]; ok {
				rows = append(rows, *u)
			}
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].LastName != rows[j].LastName {
			return rows[i].LastName < rows[j].LastName
		}
		return rows[i].FirstName < rows[j].FirstName
	})
	return rows, nil
}

/* ----- attendance ----- */

func (s *Store) SaveRecord(r *models.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.attendance {
		if existing.StudentID == r.StudentID && existing.CourseID == r.CourseID && existing.Date == r.Date {
			existing.Status = r.Status
			existing.RecordedBy = r.RecordedBy
			existing.RecordedAt = r.RecordedAt
			r.ID = existing.ID
			return nil
		}
	}
	r.ID = s.id()
	cp := *r
	s.attendance[r.ID] = &cp
	return nil
}

func (s *Store) GetRecord(studentID, courseID uint, date string) (models.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.attendance {
		if r.StudentID == studentID && r.CourseID == courseID && r.Date == date {
			return *r, nil
		}
	}
	return models.AttendanceRecord{}, store.ErrNotFound
}

func (s *Store) RecordsByCourse(courseID uint) ([]models.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []models.AttendanceRecord
	for _, r := range s.attendance {
		if r.CourseID == courseID {
			rows = append(rows, *r)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		return rows[i].StudentID < rows[j].StudentID
	})
	return rows, nil
}

func (s *Store) RecordsByCourseDate(courseID uint, date string) ([]models.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []models.AttendanceRecord
	for _, r := range s.attendance {
		if r.CourseID == courseID && r.Date == date {
			rows = append(rows, *r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StudentID < rows[j].StudentID })
	return rows, nil
}

/* ----- test seeding helpers ----- */

// AddLessonPlan registers a plan so course cascade deletes can be observed.
func (s *Store) AddLessonPlan(p *models.LessonPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.id()
	cp := *p
	s.plans[p.ID] = &cp
}

// LessonPlanCount reports how many plans a course still owns.
func (s *Store) LessonPlanCount(courseID uint) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	for _, p := range s.plans {
		if p.CourseID == courseID {
			n++
		}
	}
	return n
}
