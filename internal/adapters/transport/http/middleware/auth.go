package middleware

import (
	"net/http"
	"strings"

	"github.com/pocketmint/auth-service/internal/domain/auth/jwt"

	"github.com/gin-gonic/gin"
)

// EmailKey is the context key под которым лежит email из access-токена.
const EmailKey = "authEmail"

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Empty string means no usable credential was presented.
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// Authenticate gates a route on a valid access token. A missing credential is
// 401, a present but unverifiable one is 403; either way the chain is aborted
// and the handler never runs.
func Authenticate(jwtUtil jwt.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := BearerToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "no token provided"})
			return
		}

		claims, err := jwtUtil.ValidateAccessToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "wrong token"})
			return
		}

		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}
