package user

import (
	"errors"
	"net/http"

	"doctorsportal/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	service *Service
	log     zerolog.Logger
}

func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// RegisterRoutes mounts the user routes. admin guards listing and promotion
// and is expected to include the identity check.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, admin ...gin.HandlerFunc) {
	rg.GET("/jwt", h.IssueToken)
	rg.POST("/users", h.Register)

	guarded := rg.Group("", admin...)
	guarded.GET("/users", h.List)
	guarded.PUT("/users/:user/admin", h.Promote)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "A valid email is required")
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "A valid email is required")
			return
		}
		h.log.Error().Err(err).Str("email", req.Email).Msg("register user failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to register user")
		return
	}

	status := http.StatusOK
	if res.Status == StatusCreated {
		status = http.StatusCreated
	}
	response.Success(c, status, res)
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list users failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to list users")
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) Promote(c *gin.Context) {
	id := c.Param("user")
	u, err := h.service.Promote(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "User not found")
			return
		}
		h.log.Error().Err(err).Str("user_id", id).Msg("promote user failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to promote user")
		return
	}
	h.log.Info().Str("user_id", u.ID).Str("email", u.Email).Msg("user promoted to admin")
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) IssueToken(c *gin.Context) {
	token, err := h.service.IssueToken(c.Request.Context(), c.Query("email"))
	if err != nil {
		if errors.Is(err, ErrUnknownUser) {
			response.ErrorWithDetails(c, http.StatusUnauthorized, response.CodeUnauthorized, "Unknown user",
				TokenResponse{AccessToken: ""})
			return
		}
		h.log.Error().Err(err).Msg("issue token failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to issue token")
		return
	}
	response.Success(c, http.StatusOK, TokenResponse{AccessToken: token})
}
