package catalog

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

// RegisterRoutes mounts the public name list and the admin-only mutations.
// admin must contain the identity guard followed by the admin guard.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, admin ...gin.HandlerFunc) {
	rg.GET("/offerings/names", h.ListNames)

	guarded := rg.Group("/offerings", admin...)
	guarded.POST("", h.CreateOffering)
	guarded.PUT("/price", h.UpdatePrices)
}

func (h *Handler) ListNames(c *gin.Context) {
	names, err := h.service.ListNames(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list offering names failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load offerings")
		return
	}
	response.Success(c, http.StatusOK, names)
}

func (h *Handler) CreateOffering(c *gin.Context) {
	var req CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	o, err := h.service.CreateOffering(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "name, non-negative price and slots are required")
		case errors.Is(err, ErrDuplicateName):
			response.Error(c, http.StatusConflict, "OFFERING_EXISTS", "An offering with this name already exists")
		default:
			h.log.Error().Err(err).Str("name", req.Name).Msg("create offering failed")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create offering")
		}
		return
	}
	response.Success(c, http.StatusCreated, o)
}

func (h *Handler) UpdatePrices(c *gin.Context) {
	var req UpdatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	res, err := h.service.UpdatePrices(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "price must not be negative")
			return
		}
		h.log.Error().Err(err).Msg("update prices failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to update prices")
		return
	}
	response.Success(c, http.StatusOK, res)
}
