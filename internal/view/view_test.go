package view

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseapproval/internal/app/models"
)

var plain = Options{NoColor: true}

func TestRenderCourses(t *testing.T) {
	courses := []models.Course{
		{Code: "CS101", Title: "Programming", Students: []models.Student{{ID: "s1", Approved: true}, {ID: "s2"}}},
		{Code: "MA201", Title: "Linear Algebra", Approved: true},
	}

	var buf bytes.Buffer
	RenderCourses(&buf, courses, plain)
	out := buf.String()

	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "STATUS")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "CS101")
	assert.Contains(t, lines[1], "PENDING")
	assert.Contains(t, lines[1], "1/2")
	assert.Contains(t, lines[1], "approve, reject")
	assert.Contains(t, lines[2], "MA201")
	assert.Contains(t, lines[2], "APPROVED")
	assert.NotContains(t, lines[2], "approve,")
	assert.NotContains(t, out, "\x1b[", "no escape codes with colors disabled")
}

func TestRenderCoursesEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderCourses(&buf, nil, plain)
	assert.Equal(t, "No courses.\n", buf.String())
}

func TestRenderCoursesColored(t *testing.T) {
	var buf bytes.Buffer
	RenderCourses(&buf, []models.Course{{Code: "CS101", Approved: true}}, Options{})
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestRenderStudents(t *testing.T) {
	course := models.Course{
		Code:     "CS101",
		Students: []models.Student{{ID: "s1", Name: "Ada", Approved: true}, {ID: "s2", Name: "Alan"}},
	}

	var buf bytes.Buffer
	RenderStudents(&buf, course, plain)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "CS101 PENDING\n"))
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "Alan")
	assert.Equal(t, 1, strings.Count(out, "APPROVED"))

	buf.Reset()
	RenderStudents(&buf, models.Course{Code: "MA201"}, plain)
	assert.Equal(t, "MA201 PENDING\nNo students.\n", buf.String())
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	RenderError(&buf, errors.New("approve course: status=404"), plain)
	assert.Equal(t, "error: approve course: status=404\n", buf.String())
}
