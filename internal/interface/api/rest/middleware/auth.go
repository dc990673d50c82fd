package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"contacts-api/internal/infrastructure/jwt"
)

const (
	CtxAccountID    = "accountID"
	CtxAccountEmail = "accountEmail"
)

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxAccountID, claims.AccountID)
		c.Set(CtxAccountEmail, claims.Email)

		c.Next()
	}
}
