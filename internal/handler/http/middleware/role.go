package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voyago/voyago/internal/domain/entity"
)

// RequireRole gates a route group behind one of the allowed roles. Must run
// after AuthMiddleWare.
func RequireRole(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("userRole")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		role := entity.UserRole(roleValue.(string))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	}
}
