package routes

import (
	"storefront-backend/config"
	"storefront-backend/controllers"
	"storefront-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes configures session-identity routes
func SetupUserRoutes(router *gin.Engine, cfg *config.Config, db *gorm.DB, userController *controllers.UserController) {
	user := router.Group("")
	user.Use(middleware.AuthMiddleware(cfg))
	{
		user.GET("/user-role", userController.GetUserRole) // Resolve roles for the current session
		user.GET("/profile", userController.GetProfile)
		user.PUT("/profile", userController.UpdateProfile)
	}

	// Role graph mutations (admin only)
	manage := router.Group("")
	manage.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin(db))
	{
		manage.POST("/make-admin", userController.MakeAdmin)         // Idempotent admin promotion by email
		manage.POST("/users/detach-role", userController.DetachRole) // Revoke a role assignment
	}
}
