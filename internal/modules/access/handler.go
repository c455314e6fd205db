package access

import (
	"net/http"

	"doctorsportal/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	policy *Policy
	log    zerolog.Logger
}

func NewHandler(policy *Policy, log zerolog.Logger) *Handler {
	return &Handler{policy: policy, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/:user/is-admin", h.IsAdmin)
}

func (h *Handler) IsAdmin(c *gin.Context) {
	email := c.Param("user")
	ok, err := h.policy.IsAdmin(c.Request.Context(), email)
	if err != nil {
		h.log.Error().Err(err).Str("email", email).Msg("admin lookup failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to check role")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"isAdmin": ok})
}
