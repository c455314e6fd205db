package availability

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/availability", h.GetAvailability)
}

func (h *Handler) GetAvailability(c *gin.Context) {
	date := c.Query("date")

	out, err := h.service.Availability(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "date query parameter must be YYYY-MM-DD")
			return
		}
		h.log.Error().Err(err).Str("date", date).Msg("availability failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load availability")
		return
	}

	response.Success(c, http.StatusOK, out)
}
