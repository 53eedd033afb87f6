package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/planify-app/planify-backend/middlewares"
	"github.com/planify-app/planify-backend/models"
	"github.com/planify-app/planify-backend/storage"
)

// LessonPlanHandler works straight on the gorm handle; the plan/material
// surface is plain CRUD with ownership checks, no cross-entity invariants.
type LessonPlanHandler struct {
	db    *gorm.DB
	files storage.FileStorage
}

func NewLessonPlanHandler(db *gorm.DB, files storage.FileStorage) *LessonPlanHandler {
	return &LessonPlanHandler{db: db, files: files}
}

type lessonPlanPayload struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Topic       string `json:"topic" validate:"max=200"`
	Objectives  string `json:"objectives"`
	Description string `json:"description"`
}

// ownedCourse loads a course and verifies the educator owns it. Missing and
// unowned answer the same way.
func (h *LessonPlanHandler) ownedCourse(c echo.Context, courseID uint) (models.Course, bool) {
	var course models.Course
	err := h.db.First(&course, "id = ?", courseID).Error
	if err != nil || course.EducatorID != middlewares.UserID(c) {
		return models.Course{}, false
	}
	return course, true
}

func (h *LessonPlanHandler) ownedPlan(c echo.Context, planID uint) (models.LessonPlan, bool) {
	var plan models.LessonPlan
	if err := h.db.First(&plan, "id = ?", planID).Error; err != nil {
		return models.LessonPlan{}, false
	}
	if _, ok := h.ownedCourse(c, plan.CourseID); !ok {
		return models.LessonPlan{}, false
	}
	return plan, true
}

func accessDenied(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{"error": "ACCESS_DENIED"})
}

// GET /educator/courses/:id/plans
func (h *LessonPlanHandler) ListForCourse(c echo.Context) error {
	course, ok := h.ownedCourse(c, uintParam(c, "id"))
	if !ok {
		return accessDenied(c)
	}
	var plans []models.LessonPlan
	if err := h.db.Preload("Materials").
		Where("course_id = ?", course.ID).
		Order("id DESC").
		Find(&plans).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, plans)
}

// POST /educator/courses/:id/plans
func (h *LessonPlanHandler) Create(c echo.Context) error {
	course, ok := h.ownedCourse(c, uintParam(c, "id"))
	if !ok {
		return accessDenied(c)
	}
	var p lessonPlanPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	plan := models.LessonPlan{
		CourseID:    course.ID,
		EducatorID:  course.EducatorID,
		Title:       p.Title,
		Topic:       p.Topic,
		Objectives:  p.Objectives,
		Description: p.Description,
	}
	if err := h.db.Create(&plan).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusCreated, plan)
}

// PUT /educator/plans/:id
func (h *LessonPlanHandler) Update(c echo.Context) error {
	plan, ok := h.ownedPlan(c, uintParam(c, "id"))
	if !ok {
		return accessDenied(c)
	}
	var p lessonPlanPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	plan.Title = p.Title
	plan.Topic = p.Topic
	plan.Objectives = p.Objectives
	plan.Description = p.Description
	if err := h.db.Save(&plan).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, plan)
}

// DELETE /educator/plans/:id
// Materials go with the plan, files included (best effort on disk).
func (h *LessonPlanHandler) Delete(c echo.Context) error {
	plan, ok := h.ownedPlan(c, uintParam(c, "id"))
	if !ok {
		return accessDenied(c)
	}
	var materials []models.LearningMaterial
	h.db.Where("lesson_plan_id = ?", plan.ID).Find(&materials)

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_plan_id = ?", plan.ID).Delete(&models.LearningMaterial{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.LessonPlan{}, "id = ?", plan.ID).Error
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	for _, m := range materials {
		_ = h.files.Remove(m.StoragePath)
	}
	return c.NoContent(http.StatusNoContent)
}

// POST /educator/plans/:id/materials  (multipart field "file")
func (h *LessonPlanHandler) UploadMaterial(c echo.Context) error {
	plan, ok := h.ownedPlan(c, uintParam(c, "id"))
	if !ok {
		return accessDenied(c)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "MISSING_FILE"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_FILE"})
	}
	defer src.Close()

	path, err := h.files.Save(fh.Filename, src)
	if err != nil {
		if errors.Is(err, storage.ErrExtensionNotAllowed) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "FILE_TYPE_NOT_ALLOWED"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "STORAGE_FAILED"})
	}
	m := models.LearningMaterial{
		LessonPlanID: plan.ID,
		FileName:     fh.Filename,
		StoragePath:  path,
	}
	if err := h.db.Create(&m).Error; err != nil {
		_ = h.files.Remove(path)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusCreated, m)
}

// DELETE /educator/materials/:id
func (h *LessonPlanHandler) DeleteMaterial(c echo.Context) error {
	var m models.LearningMaterial
	if err := h.db.First(&m, "id = ?", uintParam(c, "id")).Error; err != nil {
		return accessDenied(c)
	}
	if _, ok := h.ownedPlan(c, m.LessonPlanID); !ok {
		return accessDenied(c)
	}
	if err := h.db.Delete(&models.LearningMaterial{}, "id = ?", m.ID).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	_ = h.files.Remove(m.StoragePath)
	return c.NoContent(http.StatusNoContent)
}

// GET /student/courses/:id/plans
func (h *LessonPlanHandler) ListForStudent(c echo.Context) error {
	courseID := uintParam(c, "id")
	var cnt int64
	h.db.Model(&models.Enrollment{}).
		Where("student_id = ? AND course_id = ?", middlewares.UserID(c), courseID).
		Count(&cnt)
	if cnt == 0 {
		return accessDenied(c)
	}
	var plans []models.LessonPlan
	if err := h.db.Preload("Materials").
		Where("course_id = ?", courseID).
		Order("id DESC").
		Find(&plans).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, plans)
}

// GET /materials/:id/download — educator owner or enrolled student.
func (h *LessonPlanHandler) DownloadMaterial(c echo.Context) error {
	var m models.LearningMaterial
	if err := h.db.First(&m, "id = ?", uintParam(c, "id")).Error; err != nil {
		return accessDenied(c)
	}
	var plan models.LessonPlan
	if err := h.db.First(&plan, "id = ?", m.LessonPlanID).Error; err != nil {
		return accessDenied(c)
	}
	if !h.canReadCourse(c, plan.CourseID) {
		return accessDenied(c)
	}

	f, err := h.files.Open(m.StoragePath)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "FILE_MISSING"})
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+m.FileName+`"`)
	return c.Stream(http.StatusOK, echo.MIMEOctetStream, f)
}

// canReadCourse is the shared read rule: the owning educator, or an enrolled
// student.
func (h *LessonPlanHandler) canReadCourse(c echo.Context, courseID uint) bool {
	userID := middlewares.UserID(c)
	role, _ := c.Get("role").(models.Role)
	switch role {
	case models.RoleEducator:
		var course models.Course
		if err := h.db.First(&course, "id = ?", courseID).Error; err != nil {
			return false
		}
		return course.EducatorID == userID
	case models.RoleStudent:
		var cnt int64
		h.db.Model(&models.Enrollment{}).
			Where("student_id = ? AND course_id = ?", userID, courseID).
			Count(&cnt)
		return cnt > 0
	}
	return false
}
