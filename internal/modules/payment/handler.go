package payment

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
	rg.POST("/payment-intents", h.CreateIntent)
	rg.POST("/payments", h.RecordPayment)
}

func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	res, err := h.service.CreateIntent(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "bookingId or a positive price is required")
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Booking not found")
		case errors.Is(err, ErrAlreadyPaid):
			response.Error(c, http.StatusConflict, "ALREADY_PAID", "Booking is already paid")
		case errors.Is(err, ErrProvider):
			response.Error(c, http.StatusBadGateway, response.CodeUpstream, "Payment provider is unavailable")
		default:
			h.log.Error().Err(err).Str("booking_id", req.BookingID).Msg("create intent failed")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create payment intent")
		}
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "bookingId and transactionId are required")
		return
	}

	res, err := h.service.RecordPayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "bookingId and transactionId are required")
		case errors.Is(err, ErrTransactionConflict):
			response.Error(c, http.StatusConflict, "TRANSACTION_CONFLICT", "Transaction already recorded for another booking")
		default:
			h.log.Error().Err(err).Str("booking_id", req.BookingID).Msg("record payment failed")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to record payment")
		}
		return
	}

	status := http.StatusCreated
	if res.Duplicate {
		status = http.StatusOK
	}
	response.Success(c, status, res)
}
