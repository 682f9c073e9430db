package controllers

import (
	"errors"
	"net/http"

	"storefront-backend/models"
	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

// CheckoutRequest represents the checkout request
type CheckoutRequest struct {
	AddressID uint `json:"address_id" binding:"required"`
}

var errInsufficientStock = errors.New("insufficient stock")

// NewOrderController creates a new order controller
func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// Checkout godoc
// @Summary Check out the current cart
// @Description Turn the cart into an order with a pending transaction. The
// order, its items, the stock decrement, the transaction and the cart clear
// commit atomically or not at all.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckoutRequest true "Checkout request"
// @Success 201 {object} utilities.Response{data=models.Order}
// @Failure 400 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /checkout [post]
func (oc *OrderController) Checkout(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	var address models.Address
	if err := oc.DB.Where("user_id = ?", userID).First(&address, req.AddressID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Address not found", "no such address for this user")
		return
	}

	var items []models.CartItem
	if err := oc.DB.Where("user_id = ?", userID).Preload("Product").Find(&items).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to load cart", "internal error")
		return
	}
	if len(items) == 0 {
		utilities.ErrorResponse(c, http.StatusBadRequest, "Cart is empty", "nothing to check out")
		return
	}

	var order models.Order
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		total := 0.0
		orderItems := make([]models.OrderItem, 0, len(items))

		for _, item := range items {
			// Guarded decrement: the WHERE clause keeps stock from going
			// negative under concurrent checkouts.
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return errInsufficientStock
			}

			total += item.Product.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Product.Name,
				UnitPrice: item.Product.Price,
				Quantity:  item.Quantity,
			})
		}

		order = models.Order{
			Number:    uuid.NewString(),
			UserID:    userID,
			AddressID: address.ID,
			Status:    models.OrderStatusPending,
			Total:     total,
			Items:     orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		transaction := models.Transaction{
			OrderID:   order.ID,
			Reference: uuid.NewString(),
			Amount:    total,
			Status:    models.TransactionStatusPending,
		}
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		if errors.Is(err, errInsufficientStock) {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Insufficient stock", "a cart item exceeds available stock")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Checkout failed", "internal error")
		return
	}

	oc.DB.Preload("Items").Preload("Transactions").First(&order, order.ID)

	utilities.SuccessResponse(c, http.StatusCreated, "Order placed successfully", order)
}

// GetOrders godoc
// @Summary Get the current user's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.Response{data=[]models.Order}
// @Router /orders [get]
func (oc *OrderController) GetOrders(c *gin.Context) {
	userID := c.GetUint("user_id")

	var orders []models.Order
	if err := oc.DB.Where("user_id = ?", userID).Preload("Items").Order("id DESC").Find(&orders).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve orders", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
}

// GetOrder godoc
// @Summary Get one of the current user's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} utilities.Response{data=models.Order}
// @Failure 404 {object} utilities.Response
// @Router /orders/{id} [get]
func (oc *OrderController) GetOrder(c *gin.Context) {
	userID := c.GetUint("user_id")
	orderID := c.Param("id")

	var order models.Order
	if err := oc.DB.Where("user_id = ?", userID).Preload("Items").Preload("Transactions").Preload("Address").First(&order, orderID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Order not found", "no such order for this user")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Order retrieved successfully", order)
}

// GetTransactions godoc
// @Summary Get the current user's transactions
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.Response{data=[]models.Transaction}
// @Router /transactions [get]
func (oc *OrderController) GetTransactions(c *gin.Context) {
	userID := c.GetUint("user_id")

	var transactions []models.Transaction
	err := oc.DB.
		Joins("JOIN orders ON orders.id = transactions.order_id").
		Where("orders.user_id = ?", userID).
		Order("transactions.id DESC").
		Find(&transactions).Error
	if err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve transactions", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", transactions)
}
