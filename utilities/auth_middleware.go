package utilities

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Prefixes reachable without a token. The video search proxy is public so
// the UI can resolve videos before a user signs in.
var publicPrefixes = []string{"/auth", "/api/videos", "/healthz", "/download"}

// AuthMiddleware ensures each request is authenticated
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := ValidateToken(tokenStr, false)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		// Store claims in context for later use
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)

		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the gin context,
// or "anon" when the request carries no identity.
func CurrentUserID(c *gin.Context) string {
	if id := c.GetString("user_id"); id != "" {
		return id
	}
	return "anon"
}
