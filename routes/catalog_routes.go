package routes

import (
	"storefront-backend/controllers"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configures the public storefront catalog routes
func SetupCatalogRoutes(router *gin.Engine, categoryController *controllers.CategoryController, productController *controllers.ProductController) {
	router.GET("/categories", categoryController.GetCategories)
	router.GET("/categories/:id", categoryController.GetCategory)
	router.GET("/products", productController.GetProducts)
	router.GET("/products/:id", productController.GetProduct)
}
