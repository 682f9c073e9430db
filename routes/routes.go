package routes

import (
	"net/http"
	"strings"

	"storefront-backend/config"
	"storefront-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controllers bundles every controller the router mounts
type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	UserManager *controllers.UserManagerController
	Role        *controllers.RoleController
	Permission  *controllers.PermissionController
	Category    *controllers.CategoryController
	Product     *controllers.ProductController
	Cart        *controllers.CartController
	Order       *controllers.OrderController
	Address     *controllers.AddressController
}

// SetupRoutes configures the gin engine with all application routes
func SetupRoutes(cfg *config.Config, db *gorm.DB, ctrl Controllers) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSAllowOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Login entry point the session guard redirects to
	router.GET("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "POST credentials to /auth/login"})
	})

	SetupAuthRoutes(router, ctrl.Auth)
	SetupCatalogRoutes(router, ctrl.Category, ctrl.Product)
	SetupUserRoutes(router, cfg, db, ctrl.User)
	SetupShopRoutes(router, cfg, ctrl.Cart, ctrl.Order, ctrl.Address)
	SetupRoleRoutes(router, cfg, db, ctrl.Role)
	SetupAdminRoutes(router, cfg, db, ctrl)

	return router
}
