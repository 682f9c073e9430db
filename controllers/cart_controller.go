package controllers

import (
	"net/http"

	"storefront-backend/models"
	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartController struct {
	DB *gorm.DB
}

// AddCartItemRequest represents the add-to-cart request
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItemRequest represents the cart quantity update request
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// CartResponse represents the current user's cart
type CartResponse struct {
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

// NewCartController creates a new cart controller
func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

// GetCart godoc
// @Summary Get the current user's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.Response{data=CartResponse}
// @Failure 401 {object} utilities.Response
// @Router /cart [get]
func (cc *CartController) GetCart(c *gin.Context) {
	userID := c.GetUint("user_id")

	var items []models.CartItem
	if err := cc.DB.Where("user_id = ?", userID).Preload("Product").Order("id ASC").Find(&items).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve cart", "internal error")
		return
	}

	total := 0.0
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}

	utilities.SuccessResponse(c, http.StatusOK, "Cart retrieved successfully", CartResponse{
		Items: items,
		Total: total,
	})
}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Add a product to the cart. Adding an existing product increments its quantity.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddCartItemRequest true "Add item request"
// @Success 200 {object} utilities.Response{data=models.CartItem}
// @Failure 400 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /cart [post]
func (cc *CartController) AddItem(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	var product models.Product
	if err := cc.DB.First(&product, req.ProductID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Product not found", "no product with that id")
		return
	}

	if product.Stock < req.Quantity {
		utilities.ErrorResponse(c, http.StatusBadRequest, "Insufficient stock", "requested quantity exceeds stock")
		return
	}

	// Insert-first: the (user_id, product_id) unique index resolves
	// concurrent adds, bumping the quantity on conflict.
	item := models.CartItem{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	err := cc.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", req.Quantity),
		}),
	}).Create(&item).Error
	if err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to add item to cart", "internal error")
		return
	}

	cc.DB.Where("user_id = ? AND product_id = ?", userID, req.ProductID).Preload("Product").First(&item)

	utilities.SuccessResponse(c, http.StatusOK, "Item added to cart", item)
}

// UpdateItem godoc
// @Summary Update a cart item's quantity
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cart item ID"
// @Param request body UpdateCartItemRequest true "Update request"
// @Success 200 {object} utilities.Response{data=models.CartItem}
// @Failure 400 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /cart/{id} [put]
func (cc *CartController) UpdateItem(c *gin.Context) {
	userID := c.GetUint("user_id")
	itemID := c.Param("id")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	var item models.CartItem
	if err := cc.DB.Where("user_id = ?", userID).First(&item, itemID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Cart item not found", "no such item in your cart")
		return
	}

	item.Quantity = req.Quantity
	if err := cc.DB.Save(&item).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to update cart item", "internal error")
		return
	}

	cc.DB.Preload("Product").First(&item, item.ID)

	utilities.SuccessResponse(c, http.StatusOK, "Cart item updated", item)
}

// RemoveItem godoc
// @Summary Remove an item from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cart item ID"
// @Success 200 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /cart/{id} [delete]
func (cc *CartController) RemoveItem(c *gin.Context) {
	userID := c.GetUint("user_id")
	itemID := c.Param("id")

	result := cc.DB.Where("user_id = ? AND id = ?", userID, itemID).Delete(&models.CartItem{})
	if result.Error != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to remove cart item", "internal error")
		return
	}
	if result.RowsAffected == 0 {
		utilities.ErrorResponse(c, http.StatusNotFound, "Cart item not found", "no such item in your cart")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Item removed from cart", nil)
}

// ClearCart godoc
// @Summary Remove every item from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.Response
// @Router /cart [delete]
func (cc *CartController) ClearCart(c *gin.Context) {
	userID := c.GetUint("user_id")

	if err := cc.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to clear cart", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Cart cleared", nil)
}
