package utilities

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the standard API response envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// SuccessResponse sends a successful API response
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends an error API response. The detail string is meant for
// clients and must not carry internal identifiers or driver error text.
func ErrorResponse(c *gin.Context, statusCode int, message string, detail string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// ValidationErrorResponse sends a 400 response for request binding failures
func ValidationErrorResponse(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Error:   err.Error(),
	})
}
