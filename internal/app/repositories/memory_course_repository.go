package repositories

import (
	"context"
	"sync"

	"github.com/yigit/courseapproval/internal/app/models"
	"github.com/yigit/courseapproval/internal/pkg/apperrors"
)

// MemoryCourseRepository keeps courses in process memory, in insertion order.
// It reports the same matched/modified/deleted counters as the MongoDB store.
type MemoryCourseRepository struct {
	mu      sync.RWMutex
	courses []*models.Course
}

// NewMemoryCourseRepository creates a store pre-filled with copies of courses
func NewMemoryCourseRepository(courses ...*models.Course) *MemoryCourseRepository {
	r := &MemoryCourseRepository{}
	for _, c := range courses {
		r.courses = append(r.courses, c.Clone())
	}
	return r
}

// indexOf must be called with mu held
func (r *MemoryCourseRepository) indexOf(code string) int {
	for i, c := range r.courses {
		if c.Code == code {
			return i
		}
	}
	return -1
}

func (r *MemoryCourseRepository) FindAll(ctx context.Context) ([]*models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (r *MemoryCourseRepository) FindByCode(ctx context.Context, code string) (*models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(code)
	if i < 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	return r.courses[i].Clone(), nil
}

func (r *MemoryCourseRepository) SetApproved(ctx context.Context, code string) (UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return UpdateResult{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(code)
	if i < 0 {
		return UpdateResult{}, nil
	}
	if r.courses[i].Approved {
		return UpdateResult{Matched: 1}, nil
	}
	r.courses[i].Approved = true
	return UpdateResult{Matched: 1, Modified: 1}, nil
}

func (r *MemoryCourseRepository) DeleteByCode(ctx context.Context, code string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(code)
	if i < 0 {
		return 0, nil
	}
	r.courses = append(r.courses[:i], r.courses[i+1:]...)
	return 1, nil
}

func (r *MemoryCourseRepository) SetStudentApproved(ctx context.Context, code, studentID string, approved bool) (UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return UpdateResult{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(code)
	if i < 0 {
		return UpdateResult{}, nil
	}
	s := r.courses[i].Student(studentID)
	if s == nil {
		return UpdateResult{}, nil
	}
	if s.Approved == approved {
		return UpdateResult{Matched: 1}, nil
	}
	s.Approved = approved
	return UpdateResult{Matched: 1, Modified: 1}, nil
}

func (r *MemoryCourseRepository) Insert(ctx context.Context, course *models.Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(course.Code) >= 0 {
		return apperrors.ErrDuplicateCode
	}
	r.courses = append(r.courses, course.Clone())
	return nil
}

func (r *MemoryCourseRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.courses)), nil
}

// EnsureIndexes is a no-op; Insert already rejects duplicate codes.
func (r *MemoryCourseRepository) EnsureIndexes(context.Context) error {
	return nil
}

func (r *MemoryCourseRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
