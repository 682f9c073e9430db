package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-backend/authz"
	"storefront-backend/models"
	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoleController struct {
	DB *gorm.DB
}

// RoleRequest represents a role create/update request
type RoleRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=50" example:"support"`
	Guard       string `json:"guard" example:"web"`
	Description string `json:"description" example:"Customer support staff"`
}

// RolePermissionRequest represents a permission attach/detach request
type RolePermissionRequest struct {
	RoleID       uint `json:"role_id" binding:"required"`
	PermissionID uint `json:"permission_id" binding:"required"`
}

// NewRoleController creates a new role controller
func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db}
}

// GetRoles godoc
// @Summary Get all roles
// @Description Get list of all roles with their permissions.
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.Response{data=[]models.RoleResponse}
// @Failure 401 {object} utilities.Response
// @Router /admin/roles [get]
func (rc *RoleController) GetRoles(c *gin.Context) {
	var roles []models.Role
	if err := rc.DB.Order("id ASC").Preload("RolePermissions.Permission").Find(&roles).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve roles", "internal error")
		return
	}

	roleResponses := make([]models.RoleResponse, len(roles))
	for i, role := range roles {
		roleResponses[i] = role.ToRoleResponse()
	}

	utilities.SuccessResponse(c, http.StatusOK, "Roles retrieved successfully", roleResponses)
}

// CreateRole godoc
// @Summary Create a new role
// @Description Create a new role. Role names are unique.
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RoleRequest true "Role request"
// @Success 201 {object} utilities.Response{data=models.RoleResponse}
// @Failure 400 {object} utilities.Response
// @Router /admin/roles [post]
func (rc *RoleController) CreateRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	role := models.Role{
		Name:        req.Name,
		Guard:       req.Guard,
		Description: req.Description,
	}

	if err := rc.DB.Create(&role).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Role already exists", "role name already taken")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to create role", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusCreated, "Role created successfully", role.ToRoleResponse())
}

// UpdateRole godoc
// @Summary Update role
// @Description Update a role's name, guard or description.
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Param request body RoleRequest true "Role request"
// @Success 200 {object} utilities.Response{data=models.RoleResponse}
// @Failure 400 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /admin/roles/{id} [put]
func (rc *RoleController) UpdateRole(c *gin.Context) {
	roleID := c.Param("id")

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	var role models.Role
	if err := rc.DB.First(&role, roleID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "Role not found", "no role with that id")
		return
	}

	role.Name = req.Name
	role.Guard = req.Guard
	role.Description = req.Description

	if err := rc.DB.Save(&role).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Role already exists", "role name already taken")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to update role", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Role updated successfully", role.ToRoleResponse())
}

// DeleteRole godoc
// @Summary Delete role
// @Description Delete a role and all of its user assignments and permission attachments.
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /admin/roles/{id} [delete]
func (rc *RoleController) DeleteRole(c *gin.Context) {
	roleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utilities.ErrorResponse(c, http.StatusBadRequest, "Invalid role id", "role id must be an integer")
		return
	}

	if err := authz.DeleteRole(rc.DB, uint(roleID)); err != nil {
		if errors.Is(err, authz.ErrRoleNotFound) {
			utilities.ErrorResponse(c, http.StatusNotFound, "Role not found", "no role with that id")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete role", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Role deleted successfully", nil)
}

// AssignPermission godoc
// @Summary Attach a permission to a role
// @Description Attach a permission to a role. Duplicate attachments are rejected.
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RolePermissionRequest true "Attach request"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /roles/assign-permission [post]
func (rc *RoleController) AssignPermission(c *gin.Context) {
	var req RolePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	if err := authz.AssignPermission(rc.DB, req.RoleID, req.PermissionID); err != nil {
		switch {
		case errors.Is(err, authz.ErrRoleNotFound):
			utilities.ErrorResponse(c, http.StatusNotFound, "Role not found", "no role with that id")
		case errors.Is(err, authz.ErrPermissionNotFound):
			utilities.ErrorResponse(c, http.StatusNotFound, "Permission not found", "no permission with that id")
		case errors.Is(err, authz.ErrDuplicateAssignment):
			utilities.ErrorResponse(c, http.StatusBadRequest, "Role already has this permission", "permission already attached")
		default:
			utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to attach permission", "internal error")
		}
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Permission attached successfully", nil)
}

// RevokePermission godoc
// @Summary Detach a permission from a role
// @Description Remove an existing permission attachment.
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RolePermissionRequest true "Detach request"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /roles/revoke-permission [post]
func (rc *RoleController) RevokePermission(c *gin.Context) {
	var req RolePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	if err := authz.RevokePermission(rc.DB, req.RoleID, req.PermissionID); err != nil {
		if errors.Is(err, authz.ErrAssignmentNotFound) {
			utilities.ErrorResponse(c, http.StatusNotFound, "Attachment not found", "role does not hold that permission")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to detach permission", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Permission detached successfully", nil)
}
