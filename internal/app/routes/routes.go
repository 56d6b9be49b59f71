package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/courseapproval/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	healthController *controllers.HealthController,
) {
	// Route on the escaped path so a code holding "/" stays one segment, then unescape it for handlers.
	router.UseRawPath = true
	router.UnescapePathValues = true

	api := router.Group("/api")

	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)

		// Course decisions, keyed by course code
		courses.POST("/approve/:code", courseController.ApproveCourse)
		courses.POST("/reject/:code", courseController.RejectCourse)

		// Student decisions inside a course
		courses.POST("/:code/approve/student/:studentId", courseController.ApproveStudent)
		courses.POST("/:code/reject/student/:studentId", courseController.RejectStudent)
	}

	router.GET("/health", healthController.Health)
	router.GET("/ping", healthController.Ping)
}
