package routes

import (
	"storefront-backend/config"
	"storefront-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes configures the admin dashboard CRUD surface. The session
// guard runs first and only checks that a session cookie is present,
// redirecting browsers to the login page; token verification and role checks
// happen in the middlewares behind it.
func SetupAdminRoutes(router *gin.Engine, cfg *config.Config, db *gorm.DB, ctrl Controllers) {
	admin := router.Group("/admin")
	admin.Use(
		middleware.SessionGuard("/login"),
		middleware.AuthMiddleware(cfg),
		middleware.RequireAdmin(db),
	)
	{
		admin.GET("/users", ctrl.UserManager.GetUsers)
		admin.GET("/users/:id", ctrl.UserManager.GetUser)
		admin.POST("/users/:id/roles", ctrl.UserManager.AssignRole)
		admin.DELETE("/users/:id", ctrl.UserManager.DeleteUser)

		admin.GET("/roles", ctrl.Role.GetRoles)
		admin.POST("/roles", ctrl.Role.CreateRole)
		admin.PUT("/roles/:id", ctrl.Role.UpdateRole)
		admin.DELETE("/roles/:id", ctrl.Role.DeleteRole)

		admin.GET("/permissions", ctrl.Permission.GetPermissions)
		admin.POST("/permissions", ctrl.Permission.CreatePermission)
		admin.DELETE("/permissions/:id", ctrl.Permission.DeletePermission)

		admin.POST("/categories", ctrl.Category.CreateCategory)
		admin.PUT("/categories/:id", ctrl.Category.UpdateCategory)
		admin.DELETE("/categories/:id", ctrl.Category.DeleteCategory)

		admin.POST("/products", ctrl.Product.CreateProduct)
		admin.PUT("/products/:id", ctrl.Product.UpdateProduct)
		admin.DELETE("/products/:id", ctrl.Product.RemoveProduct)
	}
}
