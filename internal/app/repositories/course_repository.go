package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/yigit/courseapproval/internal/app/models"
	"github.com/yigit/courseapproval/internal/pkg/apperrors"
	"github.com/yigit/courseapproval/internal/pkg/dberrors"
	"github.com/yigit/courseapproval/internal/pkg/logger"
)

const codeIndexName = "code_unique"

// CourseRepository handles course document operations on MongoDB
type CourseRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewCourseRepository creates a new CourseRepository. timeout bounds each operation; zero disables it.
func NewCourseRepository(coll *mongo.Collection, timeout time.Duration) *CourseRepository {
	return &CourseRepository{
		coll:    coll,
		timeout: timeout,
	}
}

func (r *CourseRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func byCode(code string) bson.D {
	return bson.D{{Key: "code", Value: code}}
}

// FindAll retrieves all courses in natural order
func (r *CourseRepository) FindAll(ctx context.Context) ([]*models.Course, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find all courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := []*models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		logger.Error().Err(err).Msg("Error decoding course documents")
		return nil, fmt.Errorf("error decoding courses: %w", err)
	}

	return courses, nil
}

// FindByCode retrieves the first course with the given code
func (r *CourseRepository) FindByCode(ctx context.Context, code string) (*models.Course, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	course := &models.Course{}
	err := r.coll.FindOne(ctx, byCode(code)).Decode(course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("code", code).Msg("Error finding course by code")
		return nil, fmt.Errorf("error getting course by code: %w", err)
	}

	return course, nil
}

// SetApproved flips approved to true on one course
func (r *CourseRepository) SetApproved(ctx context.Context, code string) (UpdateResult, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "approved", Value: true}}}}
	res, err := r.coll.UpdateOne(ctx, byCode(code), update)
	if err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Error executing approve course update")
		return UpdateResult{}, fmt.Errorf("error approving course: %w", err)
	}

	return UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// DeleteByCode deletes one course
func (r *CourseRepository) DeleteByCode(ctx context.Context, code string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, byCode(code))
	if err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Error executing delete course query")
		return 0, fmt.Errorf("error deleting course: %w", err)
	}

	logger.Debug().Str("code", code).Int64("deletedCount", res.DeletedCount).Msg("Delete operation result")
	return res.DeletedCount, nil
}

// SetStudentApproved updates the approved flag of one student through the positional operator
func (r *CourseRepository) SetStudentApproved(ctx context.Context, code, studentID string, approved bool) (UpdateResult, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	filter := bson.D{
		{Key: "code", Value: code},
		{Key: "students.id", Value: studentID},
	}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "students.$.approved", Value: approved}}}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		logger.Error().Err(err).Str("code", code).Str("studentID", studentID).Msg("Error executing student decision update")
		return UpdateResult{}, fmt.Errorf("error updating student: %w", err)
	}

	return UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// Insert creates a new course document
func (r *CourseRepository) Insert(ctx context.Context, course *models.Course) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, course)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateCode
		}
		logger.Error().Err(err).Str("code", course.Code).Msg("Error inserting course")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// Count returns the number of course documents
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the unique code index. Existing duplicate codes make this fail,
// which callers report without stopping the service.
func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(codeIndexName),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, model); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return fmt.Errorf("duplicate course codes prevent unique index: %w", apperrors.ErrDuplicateCode)
		}
		return fmt.Errorf("error creating course indexes: %w", err)
	}
	return nil
}

// Ping checks the primary is reachable
func (r *CourseRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}
