package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tolga/acadapi/internal/app/controllers"
	"github.com/tolga/acadapi/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	institutionController *controllers.InstitutionController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/login", authController.Login)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Member routes resolve the caller against the store and reject
		// disabled accounts. The parent id for student creation is taken
		// from the path.
		active := authenticated.Group("")
		active.Use(authMiddleware.ActiveUserRequired())
		{
			active.GET("/users/me", userController.GetMe)
			active.PATCH("/users/me/password", userController.UpdatePassword)
			active.POST("/academic_institutions/:id/students", studentController.CreateStudent)
		}

		// Administrative routes
		usersAdmin := authenticated.Group("/users")
		usersAdmin.Use(authMiddleware.SuperuserRequired())
		{
			usersAdmin.POST("", userController.CreateUser)
			usersAdmin.GET("", userController.ListUsers)
		}

		institutionsAdmin := authenticated.Group("/academic_institutions")
		institutionsAdmin.Use(authMiddleware.SuperuserRequired())
		{
			institutionsAdmin.POST("", institutionController.CreateInstitution)
			institutionsAdmin.GET("", institutionController.ListInstitutions)
			institutionsAdmin.GET("/:id", institutionController.GetInstitutionByID)
			institutionsAdmin.DELETE("/:id", institutionController.DeleteInstitution)
			institutionsAdmin.GET("/:id/students", studentController.ListStudents)
			institutionsAdmin.GET("/:id/students/:studentId", studentController.GetStudentByID)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
