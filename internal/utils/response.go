// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error payloads carry a single "detail" message, or a per-field message map
// for validation failures.

func OKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func PaginatedResponse(c *gin.Context, envelope PageEnvelope) {
	c.JSON(http.StatusOK, envelope)
}

func BadRequestResponse(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": message})
}

func ValidationErrorResponse(c *gin.Context, fieldErrors FieldErrors) {
	c.JSON(http.StatusBadRequest, fieldErrors)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication credentials were not provided."
	}
	c.JSON(http.StatusUnauthorized, gin.H{"detail": message})
}

func ForbiddenResponse(c *gin.Context, message string) {
	if message == "" {
		message = "You do not have permission to perform this action."
	}
	c.JSON(http.StatusForbidden, gin.H{"detail": message})
}

func NotFoundResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Not found."
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": message})
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error."
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": message})
}
