package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/courseapproval/internal/app/models"
	appRepos "github.com/yigit/courseapproval/internal/app/repositories"
	"github.com/yigit/courseapproval/internal/pkg/apperrors"
)

// DefaultCourses are the demo courses inserted into an empty store.
func DefaultCourses() []*appModels.Course {
	return []*appModels.Course{
		{
			Code:  "CS101",
			Title: "Introduction to Programming",
			Students: []appModels.Student{
				{ID: "s1001", Name: "Ada Lovelace"},
				{ID: "s1002", Name: "Alan Turing"},
			},
		},
		{
			Code:  "CS202",
			Title: "Data Structures",
			Students: []appModels.Student{
				{ID: "s1001", Name: "Ada Lovelace"},
			},
		},
		{Code: "MA201", Title: "Linear Algebra"},
		{Code: "PH110", Title: "Physics I", Approved: true},
	}
}

// CreateDefaultData inserts the demo courses when the store has none.
// A populated store is left alone.
func CreateDefaultData(ctx context.Context, store appRepos.CourseStore, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Courses)...")

	count, err := store.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting courses")
		return err
	}
	if count > 0 {
		lgr.Info().Int64("count", count).Msg("Courses already exist, skipping creation")
		return nil
	}

	var finalErr error
	created := 0
	for _, course := range DefaultCourses() {
		err := store.Insert(ctx, course)
		if err != nil && !errors.Is(err, apperrors.ErrDuplicateCode) {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error creating course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if err == nil {
			created++
		}
	}

	lgr.Info().Int("created", created).Msg("Default data check/creation finished.")
	return finalErr
}
