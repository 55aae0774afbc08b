package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"api/config"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// AdminAuth guards admin endpoints with the static ADMIN_TOKEN bearer token.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tokenMatches(c, config.AdminToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// SelectAuth guards the selection transition endpoint with ADMIN_SELECT_TOKEN,
// a separate credential so selection rights can be handed out independently.
func SelectAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tokenMatches(c, config.AdminSelectToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// tokenMatches compares the request's bearer token against expected. An
// unconfigured token rejects everything rather than letting requests through.
func tokenMatches(c *gin.Context, expected string) bool {
	if expected == "" {
		return false
	}

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return false
	}
	token := strings.TrimPrefix(header, bearerPrefix)

	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}
