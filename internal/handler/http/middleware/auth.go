package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// accessTokenFromRequest prefers the httpOnly cookie over the Authorization
// header so a stale header can't override a rotated session.
func accessTokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie("accessToken"); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// AuthMiddleWare authenticates the request and stores the user's identity
// in the gin context under userID, userRole and user.
func AuthMiddleWare(userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := accessTokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		user, err := userUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired access token"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", string(user.Role))
		c.Set("user", user)
		c.Next()
	}
}
