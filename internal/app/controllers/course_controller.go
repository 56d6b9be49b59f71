package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/courseapproval/internal/app/models/dto"
	"github.com/yigit/courseapproval/internal/app/services"
	"github.com/yigit/courseapproval/internal/middleware"
	"github.com/yigit/courseapproval/internal/pkg/apperrors"
	"github.com/yigit/courseapproval/internal/pkg/validation"
)

// CourseController handles course approval endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses lists every course
// @Summary List courses
// @Description Returns all courses in storage order, pending and approved alike
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course "Courses"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /api/courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// ApproveCourse approves a course by code
// @Summary Approve a course
// @Description Sets approved=true on the course. Approving an approved course succeeds again.
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.ApproveCourseResponse "Course approved"
// @Failure 400 {object} dto.ErrorResponse "Missing course code"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /api/courses/approve/{code} [post]
func (c *CourseController) ApproveCourse(ctx *gin.Context) {
	code, ok := courseCode(ctx)
	if !ok {
		return
	}

	res, err := c.courseService.ApproveCourse(ctx, code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ApproveCourseResponse{
		Message:  fmt.Sprintf("Course with code %s approved", res.Code),
		Approved: true,
	})
}

// RejectCourse rejects (deletes) a course by code
// @Summary Reject a course
// @Description Deletes the course document. A rejected course cannot be approved afterwards.
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.RejectCourseResponse "Course rejected"
// @Failure 400 {object} dto.ErrorResponse "Missing course code"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to reject course"
// @Router /api/courses/reject/{code} [post]
func (c *CourseController) RejectCourse(ctx *gin.Context) {
	code, ok := courseCode(ctx)
	if !ok {
		return
	}

	res, err := c.courseService.RejectCourse(ctx, code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RejectCourseResponse{
		Message: fmt.Sprintf("Course with code %s rejected", res.Code),
		Result:  dto.RejectResult{DeletedCount: res.DeletedCount},
	})
}

// ApproveStudent approves one student of a course
// @Summary Approve a student
// @Description Sets approved=true on the student embedded in the course
// @Tags students
// @Produce json
// @Param code path string true "Course code"
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.StudentDecisionResponse "Student approved"
// @Failure 400 {object} dto.ErrorResponse "Missing course code or student id"
// @Failure 404 {object} dto.ErrorResponse "Course or student not found"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /api/courses/{code}/approve/student/{studentId} [post]
func (c *CourseController) ApproveStudent(ctx *gin.Context) {
	c.decideStudent(ctx, true)
}

// RejectStudent rejects one student of a course
// @Summary Reject a student
// @Description Sets approved=false on the student embedded in the course. The student stays in the course.
// @Tags students
// @Produce json
// @Param code path string true "Course code"
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.StudentDecisionResponse "Student rejected"
// @Failure 400 {object} dto.ErrorResponse "Missing course code or student id"
// @Failure 404 {object} dto.ErrorResponse "Course or student not found"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /api/courses/{code}/reject/student/{studentId} [post]
func (c *CourseController) RejectStudent(ctx *gin.Context) {
	c.decideStudent(ctx, false)
}

func (c *CourseController) decideStudent(ctx *gin.Context, approve bool) {
	code, ok := courseCode(ctx)
	if !ok {
		return
	}
	studentID := ctx.Param("studentId")
	if !validation.IsValidKey(studentID) {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Student id is required"))
		return
	}

	var (
		dec *services.StudentDecision
		err error
	)
	if approve {
		dec, err = c.courseService.ApproveStudent(ctx, code, studentID)
	} else {
		dec, err = c.courseService.RejectStudent(ctx, code, studentID)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	verb := "rejected"
	if dec.Approved {
		verb = "approved"
	}
	ctx.JSON(http.StatusOK, dto.StudentDecisionResponse{
		Message:   fmt.Sprintf("Student %s %s for course %s", dec.StudentID, verb, dec.Code),
		Code:      dec.Code,
		StudentID: dec.StudentID,
		Approved:  dec.Approved,
	})
}

// courseCode reads the code path parameter and answers 400 when it is empty
func courseCode(ctx *gin.Context) (string, bool) {
	code := ctx.Param("code")
	if !validation.IsValidKey(code) {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Course code is required"))
		return "", false
	}
	return code, true
}
