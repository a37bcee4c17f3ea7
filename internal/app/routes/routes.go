package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skillpoint/institute-backend/internal/app/controllers"
	"github.com/skillpoint/institute-backend/internal/app/models/dto"
	"github.com/skillpoint/institute-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	dashboardController *controllers.DashboardController,
	studentController *controllers.StudentController,
	feeController *controllers.FeeController,
	courseController *controllers.CourseController,
	certificateController *controllers.CertificateController,
) {
	api := router.Group("/api")

	api.GET("/stats", dashboardController.GetStats)

	students := api.Group("/students")
	{
		students.POST("", middleware.ValidateRequest[dto.CreateStudentRequest](), studentController.Create)
		students.GET("", studentController.List)
		students.GET("/search", studentController.Search)
		students.GET("/:id", studentController.GetByID)
		students.PUT("/:id", middleware.ValidateRequest[dto.UpdateStudentRequest](), studentController.Update)
		students.DELETE("/:id", studentController.Delete)
		students.POST("/:id/photo", studentController.UploadPhoto)
	}

	fees := api.Group("/fees")
	{
		fees.POST("/collect", middleware.ValidateRequest[dto.CollectFeeRequest](), feeController.Collect)
		fees.GET("/history/:studentId", feeController.History)
		fees.DELETE("/transaction/:id", feeController.Void)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetAll)
		courses.POST("", middleware.ValidateRequest[dto.CreateCourseRequest](), courseController.Create)
		courses.GET("/name/:name", courseController.GetByName)
		courses.PUT("/:id", middleware.ValidateRequest[dto.UpdateCourseRequest](), courseController.Update)
		courses.DELETE("/:id", courseController.Delete)
	}

	certificates := api.Group("/certificates")
	{
		certificates.POST("/issue", middleware.ValidateRequest[dto.IssueCertificateRequest](), certificateController.Issue)
		certificates.GET("", certificateController.List)
		certificates.GET("/verify/:certNo", certificateController.Verify)
		certificates.DELETE("/:id", certificateController.Delete)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
