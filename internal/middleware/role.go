package middleware

import (
	"context"
	"net/http"

	"doctorsportal/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin must run after JWTAuth. A negative answer aborts the chain,
// so the guarded handler never runs for non-administrators.
func RequireAdmin(checker AdminChecker, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := Email(c)
		if email == "" {
			response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "Authentication required")
			return
		}

		isAdmin, err := checker.IsAdmin(c.Request.Context(), email)
		if err != nil {
			log.Error().Err(err).Str("email", email).Msg("admin check failed")
			response.Abort(c, http.StatusInternalServerError, response.CodeInternal, "Failed to check role")
			return
		}
		if !isAdmin {
			response.Abort(c, http.StatusForbidden, response.CodeForbidden, "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}
