package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseErrorsUnwrapToCategories(t *testing.T) {
	assert.ErrorIs(t, ErrCourseNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrStudentNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrDuplicateCode, ErrConflict)
	assert.False(t, errors.Is(ErrCourseNotFound, ErrStudentNotFound))
}

func TestStatusMessage(t *testing.T) {
	err := NewCustomError(ErrCourseNotFound, "lookup failed").WithStatusMsg("No course found with code CS101")
	wrapped := fmt.Errorf("reject: %w", err)

	assert.Equal(t, "No course found with code CS101", StatusMessage(wrapped, "fallback"))
	assert.Equal(t, "fallback", StatusMessage(errors.New("plain"), "fallback"))
}

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("Course code is required")
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Course code is required", StatusMessage(err, "fallback"))
}
