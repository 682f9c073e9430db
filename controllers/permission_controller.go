package controllers

import (
	"net/http"

	"storefront-backend/models"
	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PermissionController struct {
	DB *gorm.DB
}

// PermissionRequest represents a permission create request
type PermissionRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100" example:"products.write"`
}

// NewPermissionController creates a new permission controller
func NewPermissionController(db *gorm.DB) *PermissionController {
	return &PermissionController{DB: db}
}

// GetPermissions godoc
// @Summary Get all permissions
// @Tags permissions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.Response{data=[]models.Permission}
// @Router /admin/permissions [get]
func (pc *PermissionController) GetPermissions(c *gin.Context) {
	var permissions []models.Permission
	if err := pc.DB.Order("id ASC").Find(&permissions).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve permissions", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Permissions retrieved successfully", permissions)
}

// CreatePermission godoc
// @Summary Create a new permission
// @Tags permissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PermissionRequest true "Permission request"
// @Success 201 {object} utilities.Response{data=models.Permission}
// @Failure 400 {object} utilities.Response
// @Router /admin/permissions [post]
func (pc *PermissionController) CreatePermission(c *gin.Context) {
	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	permission := models.Permission{Name: req.Name}
	if err := pc.DB.Create(&permission).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Permission already exists", "permission name already taken")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to create permission", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusCreated, "Permission created successfully", permission)
}

// DeletePermission godoc
// @Summary Delete permission
// @Description Delete a permission and its role attachments.
// @Tags permissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Permission ID"
// @Success 200 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /admin/permissions/{id} [delete]
func (pc *PermissionController) DeletePermission(c *gin.Context) {
	permissionID := c.Param("id")

	var permission models.Permission
	if err := pc.DB.First(&permission, permissionID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Permission not found", "no permission with that id")
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("permission_id = ?", permission.ID).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&permission).Error
	})
	if err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete permission", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Permission deleted successfully", nil)
}
