package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srkad/placement-portal/internal/app/controllers"
	"github.com/srkad/placement-portal/internal/app/models/dto"
)

// SetupRouter registers all application routes under /api
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	companyController *controllers.CompanyController,
) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	students := api.Group("/students")
	{
		students.GET("", studentController.GetAll)
		students.POST("", studentController.Register)
		// Static segments registered alongside :id; gin resolves them first
		students.GET("/search", studentController.Search)
		students.GET("/department/:dept/batch/:batch", studentController.GetByDepartmentAndBatch)
		students.GET("/:id", studentController.GetByID)
		students.PUT("/:id", studentController.Update)
		students.DELETE("/:id", studentController.Delete)
	}

	companies := api.Group("/companies")
	{
		companies.GET("", companyController.GetAll)
		companies.POST("", companyController.Create)
	}

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:  "OK",
			Message: "Placement Portal API is running",
		})
	})
}
