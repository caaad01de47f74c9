package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/course-catalog/internal/middleware"
	"github.com/iliyamo/course-catalog/internal/model"
	"github.com/iliyamo/course-catalog/internal/queue"
	"github.com/iliyamo/course-catalog/internal/service"
	"github.com/iliyamo/course-catalog/internal/store"
)

// CourseHandler bundles dependencies for course endpoints. Cache and
// PublishEvents are optional: a nil cache client disables invalidation and
// events are only emitted when enabled in config.
type CourseHandler struct {
	Store         store.Store
	Cache         *redis.Client
	CachePrefix   string
	PublishEvents bool
}

func NewCourseHandler(s store.Store, cache *redis.Client, cachePrefix string, publish bool) *CourseHandler {
	return &CourseHandler{Store: s, Cache: cache, CachePrefix: cachePrefix, PublishEvents: publish}
}

// coursePayload binds create and update bodies. Pointer fields distinguish
// "absent" from zero values so partial updates only touch what was sent.
// Duration is bound as float64 to detect fractional input.
type coursePayload struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Level       *string  `json:"level"`
	Duration    *float64 `json:"duration"`
	Published   *bool    `json:"published"`
}

// validateCourse applies the field rules to every present field and, unless
// partial, also requires every field. All violations are collected so the
// caller reports them together in a single failure.
func validateCourse(p coursePayload, partial bool) []string {
	var errs []string

	checkText := func(name string, v *string) {
		if v == nil {
			if !partial {
				errs = append(errs, name+" is required")
			}
			return
		}
		if strings.TrimSpace(*v) == "" {
			errs = append(errs, name+" must be a non-empty string")
		}
	}
	checkText("title", p.Title)
	checkText("description", p.Description)
	checkText("category", p.Category)

	if p.Level == nil {
		if !partial {
			errs = append(errs, "level is required")
		}
	} else if !model.ValidLevel(*p.Level) {
		errs = append(errs, "level must be one of beginner, intermediate, advanced")
	}

	if p.Duration == nil {
		if !partial {
			errs = append(errs, "duration is required")
		}
	} else if *p.Duration <= 0 || *p.Duration != float64(int(*p.Duration)) {
		errs = append(errs, "duration must be a positive whole number")
	}

	if p.Published == nil && !partial {
		errs = append(errs, "published is required")
	}

	return errs
}

// List handles GET /api/courses and returns the complete collection. There
// is no filtering or pagination: clients derive their views locally.
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.Store.ListCourses(c.Request().Context())
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "could not list courses")
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return respondData(c, http.StatusOK, courses, "")
}

// Get handles GET /api/courses/:id.
func (h *CourseHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Course not found")
	}
	course, err := h.Store.GetCourse(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "Course not found")
		}
		return respondError(c, http.StatusInternalServerError, "could not fetch course")
	}
	return respondData(c, http.StatusOK, course, "")
}

// Create handles POST /api/courses. All fields are required and validated;
// the new record gets a fresh id and createdAt = updatedAt = now. The course
// is attributed to the authenticated user.
func (h *CourseHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "unauthorized")
	}
	var p coursePayload
	if err := c.Bind(&p); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validateCourse(p, false); len(errs) > 0 {
		return respondError(c, http.StatusBadRequest, strings.Join(errs, "; "))
	}

	now := time.Now().UTC()
	course := model.Course{
		Title:       strings.TrimSpace(*p.Title),
		Description: strings.TrimSpace(*p.Description),
		Category:    strings.TrimSpace(*p.Category),
		Level:       *p.Level,
		Duration:    int(*p.Duration),
		Published:   *p.Published,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := h.Store.CreateCourse(c.Request().Context(), course)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "could not create course")
	}

	h.afterWrite(c, queue.ActionCreated, created)
	return respondData(c, http.StatusCreated, created, "Course created successfully")
}

// Update handles PUT /api/courses/:id. Fields present in the body are
// re-validated with the create rules and merged onto the existing record;
// id and createdAt never change, updatedAt always does.
func (h *CourseHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Course not found")
	}
	var p coursePayload
	if err := c.Bind(&p); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validateCourse(p, true); len(errs) > 0 {
		return respondError(c, http.StatusBadRequest, strings.Join(errs, "; "))
	}

	ctx := c.Request().Context()
	course, err := h.Store.GetCourse(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "Course not found")
		}
		return respondError(c, http.StatusInternalServerError, "could not fetch course")
	}

	if p.Title != nil {
		course.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		course.Description = strings.TrimSpace(*p.Description)
	}
	if p.Category != nil {
		course.Category = strings.TrimSpace(*p.Category)
	}
	if p.Level != nil {
		course.Level = *p.Level
	}
	if p.Duration != nil {
		course.Duration = int(*p.Duration)
	}
	if p.Published != nil {
		course.Published = *p.Published
	}
	course.UpdatedAt = time.Now().UTC()

	updated, err := h.Store.UpdateCourse(ctx, course)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "Course not found")
		}
		return respondError(c, http.StatusInternalServerError, "could not update course")
	}

	h.afterWrite(c, queue.ActionUpdated, updated)
	return respondData(c, http.StatusOK, updated, "Course updated successfully")
}

// Delete handles DELETE /api/courses/:id. Removal is final: no soft delete,
// no tombstone.
func (h *CourseHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Course not found")
	}
	if err := h.Store.DeleteCourse(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "Course not found")
		}
		return respondError(c, http.StatusInternalServerError, "could not delete course")
	}

	h.afterWrite(c, queue.ActionDeleted, model.Course{ID: id})
	return respondMessage(c, http.StatusOK, "Course deleted successfully")
}

// afterWrite invalidates cached course responses and publishes a catalog
// event. Both are best effort and never fail the request.
func (h *CourseHandler) afterWrite(c echo.Context, action string, course model.Course) {
	ctx := c.Request().Context()
	middleware.InvalidateCache(ctx, h.Cache, h.CachePrefix)
	if h.PublishEvents {
		actorID, _ := getUserID(c)
		_ = service.PublishCourseEvent(ctx, queue.CourseEvent{
			Action:     action,
			CourseID:   course.ID,
			Title:      course.Title,
			Category:   course.Category,
			Level:      course.Level,
			ActorID:    actorID,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
