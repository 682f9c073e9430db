package controllers

import (
	"errors"
	"net/http"

	"storefront-backend/authz"
	"storefront-backend/middleware"
	"storefront-backend/models"
	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

// UserRoleResponse represents the resolved role set for the current session
type UserRoleResponse struct {
	Roles   []string `json:"roles"`
	IsAdmin bool     `json:"isAdmin"`
}

// MakeAdminRequest represents the admin promotion request
type MakeAdminRequest struct {
	Email string `json:"email" binding:"required,email" example:"john@example.com"`
}

// DetachRoleRequest represents the role revocation request
type DetachRoleRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	RoleID uint `json:"role_id" binding:"required"`
}

// UpdateProfileRequest represents the profile update request
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
}

// NewUserController creates a new user controller
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetUserRole godoc
// @Summary Get current user's roles
// @Description Resolve the session identity into its current role names and the admin capability
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.Response{data=UserRoleResponse}
// @Failure 401 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /user-role [get]
func (uc *UserController) GetUserRole(c *gin.Context) {
	roles, err := authz.ResolveRoles(uc.DB, middleware.CurrentIdentity(c))
	if err != nil {
		if errors.Is(err, authz.ErrUserNotFound) {
			utilities.ErrorResponse(c, http.StatusNotFound, "User not found", "user record missing")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to resolve roles", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Roles resolved successfully", UserRoleResponse{
		Roles:   roles,
		IsAdmin: authz.IsAdmin(roles),
	})
}

// MakeAdmin godoc
// @Summary Promote a user to admin
// @Description Grant the admin role to the user with the given email. Idempotent.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MakeAdminRequest true "Promotion request"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /make-admin [post]
func (uc *UserController) MakeAdmin(c *gin.Context) {
	var req MakeAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	if err := authz.PromoteToAdmin(uc.DB, req.Email); err != nil {
		switch {
		case errors.Is(err, authz.ErrUserNotFound):
			utilities.ErrorResponse(c, http.StatusNotFound, "User not found", "no user with that email")
		case errors.Is(err, authz.ErrRoleNotFound):
			utilities.ErrorResponse(c, http.StatusNotFound, "Role not found", "admin role is not seeded")
		default:
			utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to promote user", "internal error")
		}
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "User promoted to admin", nil)
}

// DetachRole godoc
// @Summary Detach a role from a user
// @Description Remove an existing role assignment
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DetachRoleRequest true "Detach request"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /users/detach-role [post]
func (uc *UserController) DetachRole(c *gin.Context) {
	var req DetachRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	if err := authz.RevokeRole(uc.DB, req.UserID, req.RoleID); err != nil {
		switch {
		case errors.Is(err, authz.ErrUserNotFound):
			utilities.ErrorResponse(c, http.StatusNotFound, "User not found", "no user with that id")
		case errors.Is(err, authz.ErrRoleNotFound):
			utilities.ErrorResponse(c, http.StatusNotFound, "Role not found", "no role with that id")
		case errors.Is(err, authz.ErrAssignmentNotFound):
			utilities.ErrorResponse(c, http.StatusNotFound, "Assignment not found", "user does not hold that role")
		default:
			utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to detach role", "internal error")
		}
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Role detached successfully", nil)
}

// GetProfile godoc
// @Summary Get user profile
// @Description Get current user's profile information
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.Response{data=models.UserResponse}
// @Failure 401 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /profile [get]
func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := uc.DB.Preload("UserRoles.Role").First(&user, userID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "User not found", "user record missing")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user.ToUserResponse())
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Update current user's profile information
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Update profile request"
// @Success 200 {object} utilities.Response{data=models.UserResponse}
// @Failure 400 {object} utilities.Response
// @Failure 401 {object} utilities.Response
// @Router /profile [put]
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "User not found", "user record missing")
		return
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Username != "" {
		user.Username = req.Username
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Username already taken", "username already exists")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to update profile", "internal error")
		return
	}

	uc.DB.Preload("UserRoles.Role").First(&user, user.ID)

	utilities.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user.ToUserResponse())
}
