package controllers

import (
	"net/http"

	"storefront-backend/models"
	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddressController struct {
	DB *gorm.DB
}

// AddressRequest represents an address create/update request
type AddressRequest struct {
	Label      string `json:"label" example:"Home"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"is_default"`
}

// NewAddressController creates a new address controller
func NewAddressController(db *gorm.DB) *AddressController {
	return &AddressController{DB: db}
}

// GetAddresses godoc
// @Summary Get the current user's addresses
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.Response{data=[]models.Address}
// @Router /addresses [get]
func (ac *AddressController) GetAddresses(c *gin.Context) {
	userID := c.GetUint("user_id")

	var addresses []models.Address
	if err := ac.DB.Where("user_id = ?", userID).Order("id ASC").Find(&addresses).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve addresses", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Addresses retrieved successfully", addresses)
}

// CreateAddress godoc
// @Summary Create a new address
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddressRequest true "Address request"
// @Success 201 {object} utilities.Response{data=models.Address}
// @Failure 400 {object} utilities.Response
// @Router /addresses [post]
func (ac *AddressController) CreateAddress(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	address := models.Address{
		UserID:     userID,
		Label:      req.Label,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
		IsDefault:  req.IsDefault,
	}

	if err := ac.DB.Create(&address).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to create address", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusCreated, "Address created successfully", address)
}

// UpdateAddress godoc
// @Summary Update an address
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Address ID"
// @Param request body AddressRequest true "Address request"
// @Success 200 {object} utilities.Response{data=models.Address}
// @Failure 400 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /addresses/{id} [put]
func (ac *AddressController) UpdateAddress(c *gin.Context) {
	userID := c.GetUint("user_id")
	addressID := c.Param("id")

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	var address models.Address
	if err := ac.DB.Where("user_id = ?", userID).First(&address, addressID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Address not found", "no such address for this user")
		return
	}

	address.Label = req.Label
	address.Line1 = req.Line1
	address.Line2 = req.Line2
	address.City = req.City
	address.State = req.State
	address.PostalCode = req.PostalCode
	address.Country = req.Country
	address.Phone = req.Phone
	address.IsDefault = req.IsDefault

	if err := ac.DB.Save(&address).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to update address", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Address updated successfully", address)
}

// DeleteAddress godoc
// @Summary Delete an address
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Address ID"
// @Success 200 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /addresses/{id} [delete]
func (ac *AddressController) DeleteAddress(c *gin.Context) {
	userID := c.GetUint("user_id")
	addressID := c.Param("id")

	result := ac.DB.Where("user_id = ? AND id = ?", userID, addressID).Delete(&models.Address{})
	if result.Error != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete address", "internal error")
		return
	}
	if result.RowsAffected == 0 {
		utilities.ErrorResponse(c, http.StatusNotFound, "Address not found", "no such address for this user")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Address deleted successfully", nil)
}
