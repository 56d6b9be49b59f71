package client

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yigit/courseapproval/internal/app/models"
)

// Cache is the client-side copy of the course list. Local state only changes after the
// service confirmed an action, so a failed request never leaves the cache ahead of storage.
type Cache struct {
	api    CourseAPI
	logger zerolog.Logger

	mu      sync.RWMutex
	courses []models.Course
	loaded  bool
}

// NewCache creates an empty cache backed by api
func NewCache(api CourseAPI, lgr zerolog.Logger) *Cache {
	return &Cache{
		api:     api,
		logger:  lgr.With().Str("component", "course_cache").Logger(),
		courses: []models.Course{},
	}
}

// Load replaces the local list with the service's current list.
// On failure the previous list is kept.
func (c *Cache) Load(ctx context.Context) error {
	courses, err := c.api.ListCourses(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to load courses")
		return err
	}

	c.mu.Lock()
	c.courses = courses
	c.loaded = true
	c.mu.Unlock()

	c.logger.Debug().Int("count", len(courses)).Msg("Courses loaded")
	return nil
}

// Loaded reports whether at least one Load succeeded
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Courses returns a copy of the local list in service order
func (c *Cache) Courses() []models.Course {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Course, len(c.courses))
	for i := range c.courses {
		out[i] = *c.courses[i].Clone()
	}
	return out
}

// Get returns a copy of the course with code
func (c *Cache) Get(code string) (models.Course, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(code); i >= 0 {
		return *c.courses[i].Clone(), true
	}
	return models.Course{}, false
}

// Approve asks the service to approve code and marks the local copy approved once it confirmed.
// A 404 means the course is gone, so the local copy is dropped.
func (c *Cache) Approve(ctx context.Context, code string) error {
	resp, err := c.api.ApproveCourse(ctx, code)
	if err != nil {
		return c.failed(err, "approve", code)
	}
	if !resp.Approved {
		c.logger.Warn().Str("code", code).Msg("Service answered approve without approved=true, keeping local state")
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(code); i >= 0 {
		c.courses[i].Approved = true
	}
	return nil
}

// Reject asks the service to delete code and drops the local copy once it confirmed.
func (c *Cache) Reject(ctx context.Context, code string) error {
	if _, err := c.api.RejectCourse(ctx, code); err != nil {
		return c.failed(err, "reject", code)
	}

	c.remove(code)
	return nil
}

// ApproveStudent approves one student and mirrors the confirmed flag locally
func (c *Cache) ApproveStudent(ctx context.Context, code, studentID string) error {
	return c.decideStudent(ctx, code, studentID, true)
}

// RejectStudent rejects one student and mirrors the confirmed flag locally
func (c *Cache) RejectStudent(ctx context.Context, code, studentID string) error {
	return c.decideStudent(ctx, code, studentID, false)
}

func (c *Cache) decideStudent(ctx context.Context, code, studentID string, approve bool) error {
	call := c.api.RejectStudent
	if approve {
		call = c.api.ApproveStudent
	}

	dec, err := call(ctx, code, studentID)
	if err != nil {
		c.logger.Error().Err(err).Str("code", code).Str("studentID", studentID).
			Bool("approve", approve).Msg("Student decision failed, local state unchanged")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(code); i >= 0 {
		if s := c.courses[i].Student(studentID); s != nil {
			s.Approved = dec.Approved
		}
	}
	return nil
}

// failed logs a course action error and reconciles a 404 by dropping the course.
// Network and server errors leave local state as it was.
func (c *Cache) failed(err error, action, code string) error {
	var netErr *NetworkError
	switch {
	case IsNotFound(err):
		c.logger.Warn().Err(err).Str("code", code).Str("action", action).Msg("Course no longer exists, dropping local copy")
		c.remove(code)
	case errors.As(err, &netErr):
		c.logger.Error().Err(err).Str("code", code).Str("action", action).Msg("Service unreachable, local state unchanged")
	default:
		c.logger.Error().Err(err).Str("code", code).Str("action", action).Msg("Course action failed, local state unchanged")
	}
	return err
}

func (c *Cache) remove(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(code); i >= 0 {
		c.courses = append(c.courses[:i], c.courses[i+1:]...)
	}
}

// indexOf must be called with mu held
func (c *Cache) indexOf(code string) int {
	for i := range c.courses {
		if c.courses[i].Code == code {
			return i
		}
	}
	return -1
}
