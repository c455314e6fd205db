package booking

import (
	"errors"
	"net/http"

	"doctorsportal/internal/middleware"
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

// RegisterRoutes mounts the booking routes; auth guards only the owner list.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	rg.GET("/bookings", auth, h.ListMyBookings)
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.DELETE("/bookings/:id", h.CancelBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	res, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "appointment must be YYYY-MM-DD and price must not be negative")
		case errors.Is(err, ErrSlotTaken):
			response.Error(c, http.StatusConflict, response.CodeConflict, "This slot is no longer available")
		default:
			h.log.Error().Err(err).Str("email", req.Email).Msg("create booking failed")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create booking")
		}
		return
	}

	if !res.Accepted {
		response.Success(c, http.StatusOK, res)
		return
	}
	h.log.Info().
		Str("booking_id", res.Booking.ID).
		Str("offering", res.Booking.OfferingName).
		Str("date", res.Booking.Date).
		Msg("booking created")
	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	bookings, err := h.service.ListForIdentity(c.Request.Context(), c.Query("email"), middleware.Email(c))
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, response.CodeForbidden, "Forbidden")
			return
		}
		h.log.Error().Err(err).Msg("list bookings failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Booking not found")
			return
		}
		h.log.Error().Err(err).Str("booking_id", c.Param("id")).Msg("get booking failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	res, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Str("booking_id", c.Param("id")).Msg("cancel booking failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to cancel booking")
		return
	}
	response.Success(c, http.StatusOK, res)
}
