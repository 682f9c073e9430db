package routes

import (
	"storefront-backend/controllers"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configures authentication routes
func SetupAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", authController.Register) // User registration
		auth.POST("/login", authController.Login)       // User login, sets session cookie
		auth.POST("/logout", authController.Logout)     // Clears session cookie
	}
}
