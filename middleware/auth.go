package middleware

import (
	"net/http"
	"strings"

	"schedulebuilder-backend/service"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key the authenticated user id is stored
// under.
const userIDKey = "user_id"

// RequireAuth resolves the Authorization bearer token to a user id and
// aborts with 401 otherwise.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		userID, err := auth.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by RequireAuth.
func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
