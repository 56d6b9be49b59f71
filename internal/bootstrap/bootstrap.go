package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/courseapproval/internal/app/controllers"
	appRepos "github.com/yigit/courseapproval/internal/app/repositories"
	appRoutes "github.com/yigit/courseapproval/internal/app/routes"
	appServices "github.com/yigit/courseapproval/internal/app/services"
	"github.com/yigit/courseapproval/internal/config"
	"github.com/yigit/courseapproval/internal/db"
	appMiddleware "github.com/yigit/courseapproval/internal/middleware"
	"github.com/yigit/courseapproval/internal/pkg/logger"
	"github.com/yigit/courseapproval/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService    appServices.CourseService
	CourseController *appControllers.CourseController
	HealthController *appControllers.HealthController
	Repos            *appRepos.Repositories
	Logger           zerolog.Logger
}

// Store is the selected course store together with the handle that has to be released on shutdown.
// Mongo is nil for the memory driver.
type Store struct {
	Courses appRepos.CourseStore
	Mongo   *db.MongoDB
}

// Close releases the database connection, if any.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.Mongo == nil {
		return nil
	}
	return s.Mongo.Close(ctx)
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		Output: os.Stdout,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured course store, ensures its indexes and seeds demo data when enabled.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	store := &Store{}

	switch cfg.Database.Driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory course store, data is lost on restart")
		store.Courses = appRepos.NewMemoryCourseRepository()
	default:
		lgr.Info().Str("database", cfg.Database.Name).Str("collection", cfg.Database.Collection).
			Msg("Establishing database connection...")
		mdb, err := db.NewMongoDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		store.Mongo = mdb
		store.Courses = appRepos.NewCourseRepository(mdb.Collection(cfg.Database.Collection), cfg.QueryTimeout())
		lgr.Info().Msg("Database connection successfully established.")
	}

	if cfg.Database.EnsureIndexes {
		if err := store.Courses.EnsureIndexes(ctx); err != nil {
			// Existing duplicate codes make the unique index fail; the API still works without it.
			lgr.Error().Err(err).Msg("Failed to ensure course indexes, proceeding anyway...")
		}
	}

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, store.Courses, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return store, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(store *Store, lgr zerolog.Logger) (*Dependencies, error) {
	if store == nil || store.Courses == nil {
		return nil, fmt.Errorf("course store is not initialized")
	}

	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(store.Courses)

	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, lgr)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.HealthController = appControllers.NewHealthController(deps.Repos.CourseRepository)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if cfg.Server.Mode == "test" {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.HealthController,
	)

	return router
}
