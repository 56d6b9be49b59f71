package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseapproval/internal/app/models/dto"
	"github.com/yigit/courseapproval/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
		wantErrCode dto.ErrorCode
	}{
		{
			name:        "course not found with message",
			err:         apperrors.NewCustomError(apperrors.ErrCourseNotFound, "x").WithStatusMsg("No course found with code CS101"),
			wantCode:    http.StatusNotFound,
			wantMessage: "No course found with code CS101",
			wantErrCode: dto.ErrorCodeResourceNotFound,
		},
		{
			name:        "bare not found",
			err:         apperrors.ErrStudentNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: "Resource not found",
			wantErrCode: dto.ErrorCodeResourceNotFound,
		},
		{
			name:        "conflict",
			err:         apperrors.ErrDuplicateCode,
			wantCode:    http.StatusConflict,
			wantMessage: "Conflict",
			wantErrCode: dto.ErrorCodeConflict,
		},
		{
			name:        "store failure",
			err:         fmt.Errorf("wrap: %w", apperrors.NewCustomError(errors.New("boom"), "boom").WithStatusMsg("Failed to reject course")),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Failed to reject course",
			wantErrCode: dto.ErrorCodeInternalServer,
		},
		{
			name:        "store unreachable",
			err:         apperrors.NewCustomError(fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, errors.New("i/o timeout")), "x").WithStatusMsg("Failed to fetch courses"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Failed to fetch courses",
			wantErrCode: dto.ErrorCodeDatabaseError,
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error",
			wantErrCode: dto.ErrorCodeInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/courses/reject/CS101", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantErrCode, body.Code)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestLogger(zerolog.New(&buf)))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	t.Run("generates an id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())

		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "/ping", line["path"])
		assert.EqualValues(t, 200, line["status"])
		assert.Equal(t, id, line["requestID"])
	})

	t.Run("keeps caller id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		router.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})
}
