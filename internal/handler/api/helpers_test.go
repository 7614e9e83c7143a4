//go:build unit

package api_test

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("user_name", "seller")
	c.Set("marketplace", false)
	c.Next()
}
