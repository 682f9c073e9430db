package routes

import (
	"storefront-backend/config"
	"storefront-backend/controllers"
	"storefront-backend/middleware"

	"github.com/gin-gonic/gin"
)

// SetupShopRoutes configures authenticated storefront routes (cart, checkout,
// orders, addresses)
func SetupShopRoutes(router *gin.Engine, cfg *config.Config, cartController *controllers.CartController, orderController *controllers.OrderController, addressController *controllers.AddressController) {
	shop := router.Group("")
	shop.Use(middleware.AuthMiddleware(cfg))
	{
		shop.GET("/cart", cartController.GetCart)
		shop.POST("/cart", cartController.AddItem)
		shop.PUT("/cart/:id", cartController.UpdateItem)
		shop.DELETE("/cart/:id", cartController.RemoveItem)
		shop.DELETE("/cart", cartController.ClearCart)

		shop.POST("/checkout", orderController.Checkout)
		shop.GET("/orders", orderController.GetOrders)
		shop.GET("/orders/:id", orderController.GetOrder)
		shop.GET("/transactions", orderController.GetTransactions)

		shop.GET("/addresses", addressController.GetAddresses)
		shop.POST("/addresses", addressController.CreateAddress)
		shop.PUT("/addresses/:id", addressController.UpdateAddress)
		shop.DELETE("/addresses/:id", addressController.DeleteAddress)
	}
}
