package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseapproval/internal/app/models"
	"github.com/yigit/courseapproval/internal/config"
	"github.com/yigit/courseapproval/internal/middleware"
	"github.com/yigit/courseapproval/internal/seed"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Server.Mode = "test"
	cfg.Database.Driver = config.DriverMemory
	cfg.Seed.Enabled = true
	return cfg
}

func TestServerWithMemoryStore(t *testing.T) {
	srv, err := New(context.Background(), memoryConfig(t), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	var courses []models.Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
	assert.Len(t, courses, len(seed.DefaultCourses()))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/courses/approve/CS101", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSwaggerIsServed(t *testing.T) {
	srv, err := New(context.Background(), memoryConfig(t), zerolog.Nop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/api/courses/approve/{code}")
}

func TestShutdownWithoutRun(t *testing.T) {
	srv, err := New(context.Background(), memoryConfig(t), zerolog.Nop())
	require.NoError(t, err)
	assert.NoError(t, srv.Shutdown(context.Background()))
}
