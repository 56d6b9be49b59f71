package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/yigit/courseapproval/internal/app/models"
	"github.com/yigit/courseapproval/internal/app/models/dto"
)

// CourseAPI is the HTTP surface of the approval service as seen by the cache
type CourseAPI interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	ApproveCourse(ctx context.Context, code string) (*dto.ApproveCourseResponse, error)
	RejectCourse(ctx context.Context, code string) (*dto.RejectCourseResponse, error)
	ApproveStudent(ctx context.Context, code, studentID string) (*dto.StudentDecisionResponse, error)
	RejectStudent(ctx context.Context, code, studentID string) (*dto.StudentDecisionResponse, error)
}

// NetworkError is a request that never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from the service.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
	Code       dto.ErrorCode
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status=%d message=%q", e.Op, e.StatusCode, e.Message)
}

// NotFound reports whether the service said the target does not exist.
// A 404 without the service's error code (an unmatched route, a proxy) does not count.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound && e.Code == dto.ErrorCodeResourceNotFound
}

// IsNotFound reports whether err is an APIError for a course or student the service does not have
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.NotFound()
}

// Options tune the HTTP client
type Options struct {
	Timeout time.Duration
	// Retries applies to List only; approve/reject calls are never repeated.
	Retries      int
	RetryWait    time.Duration
	RetryMaxWait time.Duration
	UserAgent    string
}

// DefaultOptions returns the options used by New when none are given
func DefaultOptions() Options {
	return Options{
		Timeout:      10 * time.Second,
		Retries:      2,
		RetryWait:    300 * time.Millisecond,
		RetryMaxWait: 3 * time.Second,
		UserAgent:    "coursectl/1.0",
	}
}

// Client talks to the approval service
type Client struct {
	http *resty.Client
}

var _ CourseAPI = (*Client)(nil)

// New creates a client for the service at baseURL
func New(baseURL string, opts ...Options) *Client {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(o.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", o.UserAgent).
		SetRetryCount(o.Retries).
		SetRetryWaitTime(o.RetryWait).
		SetRetryMaxWaitTime(o.RetryMaxWait).
		AddRetryCondition(retryableRead)

	return &Client{http: rc}
}

// retryableRead retries GET requests on transport errors and 5xx responses.
func retryableRead(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
		return false
	}
	return err != nil || r.StatusCode() >= http.StatusInternalServerError
}

func (c *Client) do(ctx context.Context, op, method, path string, pathParams map[string]string, out interface{}) error {
	var errBody dto.ErrorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetResult(out).
		SetError(&errBody).
		Execute(method, path)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	if resp.IsError() {
		msg := errBody.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return &APIError{
			Op:         op,
			StatusCode: resp.StatusCode(),
			Message:    msg,
			Code:       errBody.Code,
		}
	}
	return nil
}

// ListCourses fetches the full course list
func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses := []models.Course{}
	if err := c.do(ctx, "list courses", http.MethodGet, "/api/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// ApproveCourse asks the service to approve a course
func (c *Client) ApproveCourse(ctx context.Context, code string) (*dto.ApproveCourseResponse, error) {
	out := &dto.ApproveCourseResponse{}
	err := c.do(ctx, "approve course", http.MethodPost, "/api/courses/approve/{code}",
		map[string]string{"code": code}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RejectCourse asks the service to reject (delete) a course
func (c *Client) RejectCourse(ctx context.Context, code string) (*dto.RejectCourseResponse, error) {
	out := &dto.RejectCourseResponse{}
	err := c.do(ctx, "reject course", http.MethodPost, "/api/courses/reject/{code}",
		map[string]string{"code": code}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveStudent asks the service to approve one student of a course
func (c *Client) ApproveStudent(ctx context.Context, code, studentID string) (*dto.StudentDecisionResponse, error) {
	return c.decideStudent(ctx, "approve student", "approve", code, studentID)
}

// RejectStudent asks the service to reject one student of a course
func (c *Client) RejectStudent(ctx context.Context, code, studentID string) (*dto.StudentDecisionResponse, error) {
	return c.decideStudent(ctx, "reject student", "reject", code, studentID)
}

func (c *Client) decideStudent(ctx context.Context, op, action, code, studentID string) (*dto.StudentDecisionResponse, error) {
	out := &dto.StudentDecisionResponse{}
	err := c.do(ctx, op, http.MethodPost, "/api/courses/{code}/"+action+"/student/{studentId}",
		map[string]string{"code": code, "studentId": studentID}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
