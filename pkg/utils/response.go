package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse writes the standard error body used by every endpoint.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
