package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"storefront-backend/authz"
	"storefront-backend/models"
	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserManagerController struct {
	DB *gorm.DB
}

// UsersListResponse represents a paginated user listing
type UsersListResponse struct {
	Users      []models.UserResponse        `json:"users"`
	Pagination utilities.PaginationResponse `json:"pagination"`
}

// AssignRoleRequest represents the role assignment request
type AssignRoleRequest struct {
	RoleID uint `json:"role_id" binding:"required"`
}

// NewUserManagerController creates a new user manager controller
func NewUserManagerController(db *gorm.DB) *UserManagerController {
	return &UserManagerController{DB: db}
}

// GetUsers godoc
// @Summary Get all users with search capability
// @Description Get list of all users. Optional search by username or email.
// @Tags admin-users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Search by username or email"
// @Success 200 {object} utilities.Response{data=UsersListResponse}
// @Failure 401 {object} utilities.Response
// @Failure 403 {object} utilities.Response
// @Router /admin/users [get]
func (umc *UserManagerController) GetUsers(c *gin.Context) {
	page, limit, offset := utilities.ParsePagination(c)
	search := strings.TrimSpace(c.Query("search"))

	var users []models.User
	var total int64

	query := umc.DB.Model(&models.User{})

	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("username LIKE ? OR email LIKE ?", searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to count users", "internal error")
		return
	}

	if err := query.Order("id ASC").Preload("UserRoles.Role").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve users", "internal error")
		return
	}

	userResponses := make([]models.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = user.ToUserResponse()
	}

	response := UsersListResponse{
		Users: userResponses,
		Pagination: utilities.PaginationResponse{
			Page:  page,
			Limit: limit,
			Total: int(total),
		},
	}

	utilities.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", response)
}

// GetUser godoc
// @Summary Get user by ID
// @Description Get specific user information.
// @Tags admin-users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} utilities.Response{data=models.UserResponse}
// @Failure 404 {object} utilities.Response
// @Router /admin/users/{id} [get]
func (umc *UserManagerController) GetUser(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := umc.DB.Preload("UserRoles.Role").First(&user, userID).Error; err != nil {
		utilities.ErrorResponse(c, http.StatusNotFound, "User not found", "no user with that id")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user.ToUserResponse())
}

// AssignRole godoc
// @Summary Assign role to user
// @Description Assign a role to a user. Duplicate assignments are rejected.
// @Tags admin-users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body AssignRoleRequest true "Assign role request"
// @Success 200 {object} utilities.Response{data=models.UserResponse}
// @Failure 400 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /admin/users/{id}/roles [post]
func (umc *UserManagerController) AssignRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utilities.ErrorResponse(c, http.StatusBadRequest, "Invalid user id", "user id must be an integer")
		return
	}

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	if err := authz.AssignRole(umc.DB, uint(userID), req.RoleID); err != nil {
		switch {
		case errors.Is(err, authz.ErrUserNotFound):
			utilities.ErrorResponse(c, http.StatusNotFound, "User not found", "no user with that id")
		case errors.Is(err, authz.ErrRoleNotFound):
			utilities.ErrorResponse(c, http.StatusNotFound, "Role not found", "no role with that id")
		case errors.Is(err, authz.ErrDuplicateAssignment):
			utilities.ErrorResponse(c, http.StatusBadRequest, "User already has this role", "role already assigned")
		default:
			utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to assign role", "internal error")
		}
		return
	}

	var user models.User
	umc.DB.Preload("UserRoles.Role").First(&user, userID)

	utilities.SuccessResponse(c, http.StatusOK, "Role assigned successfully", user.ToUserResponse())
}

// DeleteUser godoc
// @Summary Delete user
// @Description Soft-delete a user and remove its role assignments.
// @Tags admin-users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} utilities.Response
// @Failure 404 {object} utilities.Response
// @Router /admin/users/{id} [delete]
func (umc *UserManagerController) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utilities.ErrorResponse(c, http.StatusBadRequest, "Invalid user id", "user id must be an integer")
		return
	}

	if err := authz.DeleteUser(umc.DB, uint(userID)); err != nil {
		if errors.Is(err, authz.ErrUserNotFound) {
			utilities.ErrorResponse(c, http.StatusNotFound, "User not found", "no user with that id")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete user", "internal error")
		return
	}

	utilities.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}
