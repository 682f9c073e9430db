package controllers

import (
	"errors"
	"net/http"

	"storefront-backend/authz"
	"storefront-backend/config"
	"storefront-backend/models"
	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB     *gorm.DB
	Config *config.Config
}

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"john_doe"`
	Email    string `json:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	FullName string `json:"full_name" example:"John Doe"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token string         `json:"token"`
	User  authz.Identity `json:"user"`
}

// NewAuthController creates a new auth controller
func NewAuthController(db *gorm.DB, config *config.Config) *AuthController {
	return &AuthController{
		DB:     db,
		Config: config,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Register a new user account. New users are granted the customer role.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration request"
// @Success 201 {object} utilities.Response{data=models.UserResponse}
// @Failure 400 {object} utilities.Response
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	hashedPassword, err := utilities.HashPassword(req.Password)
	if err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to register user", "internal error")
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		FullName: req.FullName,
	}

	// User creation and the customer role grant commit or fail together.
	// The unique indexes on email and username are the duplicate arbiter;
	// there is no existence pre-check.
	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return authz.EnsureCustomerRole(tx, user.ID)
	})
	if err != nil {
		if utilities.IsUniqueViolation(err) {
			utilities.ErrorResponse(c, http.StatusBadRequest, "Registration failed", "email or username already taken")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to register user", "internal error")
		return
	}

	ac.DB.Preload("UserRoles.Role").First(&user, user.ID)

	utilities.SuccessResponse(c, http.StatusCreated, "User registered successfully", user.ToUserResponse())
}

// Login godoc
// @Summary Login user
// @Description Authenticate and receive a session token, also set as an HTTP-only cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} utilities.Response{data=LoginResponse}
// @Failure 400 {object} utilities.Response
// @Failure 401 {object} utilities.Response
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.ValidationErrorResponse(c, err)
		return
	}

	identity, err := authz.Authenticate(ac.DB, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authz.ErrInvalidCredentials) {
			utilities.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials", "invalid credentials")
			return
		}
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to login", "internal error")
		return
	}

	token, err := utilities.GenerateToken(identity.ID, identity.Email, identity.FullName, ac.Config.JWTSecret, ac.Config.JWTExpireHours)
	if err != nil {
		utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate session token", "internal error")
		return
	}

	ac.setSessionCookie(c, token, ac.Config.JWTExpireHours*3600)

	utilities.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		Token: token,
		User:  identity,
	})
}

// Logout godoc
// @Summary Logout user
// @Description Clear the session cookies. The token itself stays valid until
// expiry since sessions are stateless.
// @Tags auth
// @Produce json
// @Success 200 {object} utilities.Response
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	ac.setSessionCookie(c, "", -1)

	utilities.SuccessResponse(c, http.StatusOK, "Logout successful", nil)
}

// setSessionCookie writes the session token to the cookie matching the
// request transport: the __Secure- variant over TLS, the plain one otherwise.
func (ac *AuthController) setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := c.Request.TLS != nil
	name := utilities.SessionCookieName
	if secure {
		name = utilities.SecureSessionCookieName
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, token, maxAge, "/", "", secure, true)
}
