package routes

import (
	"storefront-backend/config"
	"storefront-backend/controllers"
	"storefront-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoleRoutes configures role/permission graph routes
func SetupRoleRoutes(router *gin.Engine, cfg *config.Config, db *gorm.DB, roleController *controllers.RoleController) {
	roles := router.Group("/roles")
	roles.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin(db))
	{
		roles.POST("/assign-permission", roleController.AssignPermission)
		roles.POST("/revoke-permission", roleController.RevokePermission)
	}
}
