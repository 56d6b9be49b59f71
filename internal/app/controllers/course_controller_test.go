package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseapproval/internal/app/controllers"
	"github.com/yigit/courseapproval/internal/app/models"
	"github.com/yigit/courseapproval/internal/app/repositories"
	"github.com/yigit/courseapproval/internal/app/routes"
	"github.com/yigit/courseapproval/internal/app/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type httpTest struct {
	name     string
	method   string
	path     string
	wantCode int
	wantData string
}

func newRouter(store repositories.CourseStore) *gin.Engine {
	svc := services.NewCourseService(store, zerolog.New(io.Discard))
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewCourseController(svc),
		controllers.NewHealthController(store),
	)
	return router
}

func fixtureCourses() []*models.Course {
	return []*models.Course{
		{Code: "CS101", Title: "Programming", Students: []models.Student{{ID: "s1"}, {ID: "s2", Approved: true}}},
		{Code: "MA201", Approved: true},
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) bool {
	t.Helper()
	var j1, j2 interface{}
	require.NoError(t, json.Unmarshal(b1, &j1), string(b1))
	require.NoError(t, json.Unmarshal(b2, &j2), string(b2))
	return reflect.DeepEqual(j1, j2)
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func runHTTPTests(t *testing.T, router http.Handler, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, tt.method, tt.path)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.True(t, jsonBytesEqual(t, rec.Body.Bytes(), []byte(tt.wantData)),
				"data = %s; want %s", rec.Body.String(), tt.wantData)
		})
	}
}

func TestCourseEndpointsScenario(t *testing.T) {
	router := newRouter(repositories.NewMemoryCourseRepository(&models.Course{Code: "CS101", Approved: false}))

	// Steps run in order against the same store.
	runHTTPTests(t, router, []httpTest{
		{
			name: "list pending", method: http.MethodGet, path: "/api/courses",
			wantCode: http.StatusOK,
			wantData: `[{"code":"CS101","approved":false}]`,
		},
		{
			name: "approve", method: http.MethodPost, path: "/api/courses/approve/CS101",
			wantCode: http.StatusOK,
			wantData: `{"message":"Course with code CS101 approved","approved":true}`,
		},
		{
			name: "approve again succeeds", method: http.MethodPost, path: "/api/courses/approve/CS101",
			wantCode: http.StatusOK,
			wantData: `{"message":"Course with code CS101 approved","approved":true}`,
		},
		{
			name: "list approved", method: http.MethodGet, path: "/api/courses",
			wantCode: http.StatusOK,
			wantData: `[{"code":"CS101","approved":true}]`,
		},
		{
			name: "reject", method: http.MethodPost, path: "/api/courses/reject/CS101",
			wantCode: http.StatusOK,
			wantData: `{"message":"Course with code CS101 rejected","result":{"deletedCount":1}}`,
		},
		{
			name: "list empty", method: http.MethodGet, path: "/api/courses",
			wantCode: http.StatusOK,
			wantData: `[]`,
		},
		{
			name: "reject again", method: http.MethodPost, path: "/api/courses/reject/CS101",
			wantCode: http.StatusNotFound,
			wantData: `{"message":"No course found with code CS101","code":"RES_001"}`,
		},
		{
			name: "approve rejected", method: http.MethodPost, path: "/api/courses/approve/CS101",
			wantCode: http.StatusNotFound,
			wantData: `{"message":"No course found with code CS101","code":"RES_001"}`,
		},
	})
}

func TestStudentEndpoints(t *testing.T) {
	store := repositories.NewMemoryCourseRepository(fixtureCourses()...)
	router := newRouter(store)

	runHTTPTests(t, router, []httpTest{
		{
			name: "approve student", method: http.MethodPost, path: "/api/courses/CS101/approve/student/s1",
			wantCode: http.StatusOK,
			wantData: `{"message":"Student s1 approved for course CS101","code":"CS101","studentId":"s1","approved":true}`,
		},
		{
			name: "reject student", method: http.MethodPost, path: "/api/courses/CS101/reject/student/s2",
			wantCode: http.StatusOK,
			wantData: `{"message":"Student s2 rejected for course CS101","code":"CS101","studentId":"s2","approved":false}`,
		},
		{
			name: "unknown student", method: http.MethodPost, path: "/api/courses/CS101/approve/student/s9",
			wantCode: http.StatusNotFound,
			wantData: `{"message":"No student s9 found in course CS101","code":"RES_001"}`,
		},
		{
			name: "unknown course", method: http.MethodPost, path: "/api/courses/XX000/reject/student/s1",
			wantCode: http.StatusNotFound,
			wantData: `{"message":"No course found with code XX000","code":"RES_001"}`,
		},
	})

	course, err := store.FindByCode(context.Background(), "CS101")
	require.NoError(t, err)
	assert.True(t, course.Student("s1").Approved)
	assert.False(t, course.Student("s2").Approved)
}

func TestListReturnsStorageOrder(t *testing.T) {
	router := newRouter(repositories.NewMemoryCourseRepository(fixtureCourses()...))

	rec := serve(router, http.MethodGet, "/api/courses")
	require.Equal(t, http.StatusOK, rec.Code)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
	require.Len(t, courses, 2)
	assert.Equal(t, "CS101", courses[0].Code)
	assert.Len(t, courses[0].Students, 2)
	assert.Equal(t, "MA201", courses[1].Code)
}

// brokenStore fails every call, standing in for an unreachable database.
type brokenStore struct {
	repositories.CourseStore
}

var errDown = errors.New("server selection timeout")

func (brokenStore) FindAll(context.Context) ([]*models.Course, error)   { return nil, errDown }
func (brokenStore) DeleteByCode(context.Context, string) (int64, error) { return 0, errDown }
func (brokenStore) Ping(context.Context) error                          { return errDown }

func TestStoreFailures(t *testing.T) {
	router := newRouter(brokenStore{})

	runHTTPTests(t, router, []httpTest{
		{
			name: "reject fails", method: http.MethodPost, path: "/api/courses/reject/CS101",
			wantCode: http.StatusInternalServerError,
			wantData: `{"message":"Failed to reject course","code":"SRV_001"}`,
		},
		{
			name: "list fails", method: http.MethodGet, path: "/api/courses",
			wantCode: http.StatusInternalServerError,
			wantData: `{"message":"Failed to fetch courses","code":"SRV_001"}`,
		},
		{
			name: "health degraded", method: http.MethodGet, path: "/health",
			wantCode: http.StatusServiceUnavailable,
			wantData: `{"status":"degraded","store":"down"}`,
		},
	})
}

func TestHealthAndPing(t *testing.T) {
	router := newRouter(repositories.NewMemoryCourseRepository())

	runHTTPTests(t, router, []httpTest{
		{name: "health", method: http.MethodGet, path: "/health", wantCode: http.StatusOK, wantData: `{"status":"ok","store":"up"}`},
		{name: "ping", method: http.MethodGet, path: "/ping", wantCode: http.StatusOK, wantData: `{"message":"pong","status":"success"}`},
	})
}

func TestNoBodyIsConsumed(t *testing.T) {
	router := newRouter(repositories.NewMemoryCourseRepository(fixtureCourses()...))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/courses/approve/CS101", http.NoBody)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCodesAreMatchedExactly(t *testing.T) {
	store := repositories.NewMemoryCourseRepository(
		&models.Course{Code: "CS 101", Students: []models.Student{{ID: "s 1"}}},
		&models.Course{Code: "CS/101"},
		&models.Course{Code: "CS101"},
	)
	router := newRouter(store)

	runHTTPTests(t, router, []httpTest{
		{
			name: "code with space", method: http.MethodPost, path: "/api/courses/approve/CS%20101",
			wantCode: http.StatusOK,
			wantData: `{"message":"Course with code CS 101 approved","approved":true}`,
		},
		{
			name: "student id with space", method: http.MethodPost, path: "/api/courses/CS%20101/approve/student/s%201",
			wantCode: http.StatusOK,
			wantData: `{"message":"Student s 1 approved for course CS 101","code":"CS 101","studentId":"s 1","approved":true}`,
		},
		{
			name: "code with slash", method: http.MethodPost, path: "/api/courses/reject/CS%2F101",
			wantCode: http.StatusOK,
			wantData: `{"message":"Course with code CS/101 rejected","result":{"deletedCount":1}}`,
		},
	})

	ctx := context.Background()
	spaced, err := store.FindByCode(ctx, "CS 101")
	require.NoError(t, err)
	assert.True(t, spaced.Approved)
	assert.True(t, spaced.Student("s 1").Approved)

	_, err = store.FindByCode(ctx, "CS/101")
	assert.Error(t, err)

	plain, err := store.FindByCode(ctx, "CS101")
	require.NoError(t, err)
	assert.False(t, plain.Approved, "neighbouring codes are untouched")
}
