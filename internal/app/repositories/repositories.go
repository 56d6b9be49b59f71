package repositories

import (
	"context"

	"github.com/yigit/courseapproval/internal/app/models"
)

// UpdateResult carries the per-document counters a single-document update reports.
// Matched counts documents selected by the filter, Modified those actually changed.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// CourseStore is the persistent collection of course documents keyed by code.
// Every mutation targets at most one document and is atomic per document.
type CourseStore interface {
	// FindAll returns every course in storage order.
	FindAll(ctx context.Context) ([]*models.Course, error)
	// FindByCode returns the first course with code, or apperrors.ErrCourseNotFound.
	FindByCode(ctx context.Context, code string) (*models.Course, error)
	// SetApproved sets approved=true on the first course with code.
	SetApproved(ctx context.Context, code string) (UpdateResult, error)
	// DeleteByCode removes the first course with code and returns the number of deleted documents.
	DeleteByCode(ctx context.Context, code string) (int64, error)
	// SetStudentApproved sets the approved flag of one embedded student. Matched is zero when
	// either the course or the student does not exist.
	SetStudentApproved(ctx context.Context, code, studentID string, approved bool) (UpdateResult, error)
	// Insert stores a new course; apperrors.ErrDuplicateCode when the code is taken.
	Insert(ctx context.Context, course *models.Course) error
	// Count returns the number of stored courses.
	Count(ctx context.Context) (int64, error)
	// EnsureIndexes creates the unique index on code where the backend supports it.
	EnsureIndexes(ctx context.Context) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository CourseStore
}

// NewRepositories wraps the selected course store
func NewRepositories(courses CourseStore) *Repositories {
	return &Repositories{
		CourseRepository: courses,
	}
}
