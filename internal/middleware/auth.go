package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/internal/pkg/jwt"
	"doctorsportal/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// ContextEmail is the gin context key holding the verified caller email.
const ContextEmail = "email"

// JWTAuth verifies the bearer credential. An absent or malformed header is
// unauthenticated (401); a credential that fails verification is forbidden (403).
func JWTAuth(tokens *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Abort(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Unauthorized access")
			return
		}

		tokenStr, ok := strings.CutPrefix(h, "Bearer ")
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be a Bearer token")
			return
		}

		tokenStr = strings.TrimSpace(tokenStr)
		if tokenStr == "" {
			response.Abort(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Empty token")
			return
		}

		claims, err := tokens.ValidateToken(tokenStr)
		if err != nil {
			response.Abort(c, http.StatusForbidden, "INVALID_TOKEN", "Forbidden access")
			return
		}

		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// Email returns the verified caller email set by JWTAuth, or "".
func Email(c *gin.Context) string {
	return c.GetString(ContextEmail)
}
