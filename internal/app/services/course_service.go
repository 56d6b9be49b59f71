package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/courseapproval/internal/app/models"
	"github.com/yigit/courseapproval/internal/app/repositories"
	"github.com/yigit/courseapproval/internal/pkg/apperrors"
	"github.com/yigit/courseapproval/internal/pkg/dberrors"
)

// CourseService defines the approval operations over the course store
type CourseService interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
	ApproveCourse(ctx context.Context, code string) (*ApproveResult, error)
	RejectCourse(ctx context.Context, code string) (*RejectResult, error)
	ApproveStudent(ctx context.Context, code, studentID string) (*StudentDecision, error)
	RejectStudent(ctx context.Context, code, studentID string) (*StudentDecision, error)
}

// ApproveResult describes a successful approval
type ApproveResult struct {
	Code string
	// AlreadyApproved is set when the course was approved before this call.
	AlreadyApproved bool
}

// RejectResult describes a successful rejection
type RejectResult struct {
	Code         string
	DeletedCount int64
}

// StudentDecision describes a stored student approve/reject decision
type StudentDecision struct {
	Code      string
	StudentID string
	Approved  bool
	Changed   bool
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.CourseStore
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseStore, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		logger:     logger.With().Str("service", "course").Logger(),
	}
}

func courseNotFound(code string) error {
	return apperrors.NewCustomError(apperrors.ErrCourseNotFound, "course not found: "+code).
		WithStatusMsg(fmt.Sprintf("No course found with code %s", code))
}

func storeFailure(err error, statusMsg string) error {
	if dberrors.IsTimeout(err) {
		err = fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
	}
	return apperrors.NewCustomError(err, statusMsg+": "+err.Error()).WithStatusMsg(statusMsg)
}

// ListCourses returns every stored course in storage order
func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(err, "Failed to fetch courses")
	}
	return courses, nil
}

// ApproveCourse moves a course to the approved state. Approving an approved course succeeds
// again: the outcome is decided by whether a course matched, not by whether a field changed.
func (s *courseServiceImpl) ApproveCourse(ctx context.Context, code string) (*ApproveResult, error) {
	res, err := s.courseRepo.SetApproved(ctx, code)
	if err != nil {
		return nil, storeFailure(err, "Failed to approve course")
	}

	if res.Matched == 0 {
		s.logger.Info().Str("code", code).Msg("Approve requested for unknown course")
		return nil, courseNotFound(code)
	}

	result := &ApproveResult{Code: code, AlreadyApproved: res.Modified == 0}
	if result.AlreadyApproved {
		s.logger.Debug().Str("code", code).Msg("Course was already approved")
	} else {
		s.logger.Info().Str("code", code).Msg("Course approved")
	}
	return result, nil
}

// RejectCourse removes a course. Rejection is terminal: the document is deleted.
func (s *courseServiceImpl) RejectCourse(ctx context.Context, code string) (*RejectResult, error) {
	deleted, err := s.courseRepo.DeleteByCode(ctx, code)
	if err != nil {
		s.logger.Error().Err(err).Str("code", code).Msg("Error rejecting course")
		return nil, storeFailure(err, "Failed to reject course")
	}

	if deleted == 0 {
		return nil, courseNotFound(code)
	}

	s.logger.Info().Str("code", code).Int64("deletedCount", deleted).Msg("Course rejected")
	return &RejectResult{Code: code, DeletedCount: deleted}, nil
}

// ApproveStudent marks one student of a course as approved
func (s *courseServiceImpl) ApproveStudent(ctx context.Context, code, studentID string) (*StudentDecision, error) {
	return s.decideStudent(ctx, code, studentID, true)
}

// RejectStudent marks one student of a course as not approved
func (s *courseServiceImpl) RejectStudent(ctx context.Context, code, studentID string) (*StudentDecision, error) {
	return s.decideStudent(ctx, code, studentID, false)
}

func (s *courseServiceImpl) decideStudent(ctx context.Context, code, studentID string, approved bool) (*StudentDecision, error) {
	res, err := s.courseRepo.SetStudentApproved(ctx, code, studentID, approved)
	if err != nil {
		return nil, storeFailure(err, "Failed to update student")
	}

	if res.Matched == 0 {
		// Zero matches covers both a missing course and a missing student; tell them apart.
		if _, err := s.courseRepo.FindByCode(ctx, code); err != nil {
			if errors.Is(err, apperrors.ErrCourseNotFound) {
				return nil, courseNotFound(code)
			}
			return nil, storeFailure(err, "Failed to update student")
		}
		return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound, "student not found: "+studentID).
			WithStatusMsg(fmt.Sprintf("No student %s found in course %s", studentID, code))
	}

	s.logger.Info().
		Str("code", code).
		Str("studentID", studentID).
		Bool("approved", approved).
		Bool("changed", res.Modified > 0).
		Msg("Student decision stored")

	return &StudentDecision{
		Code:      code,
		StudentID: studentID,
		Approved:  approved,
		Changed:   res.Modified > 0,
	}, nil
}
