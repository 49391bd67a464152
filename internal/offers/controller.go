package offers

import (
	"errors"
	"net/http"

	"seatwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterOffer handles PUT /offers/:offerId
func (c *Controller) RegisterOffer(ctx *gin.Context) {
	offerID := ctx.Param("offerId")
	if offerID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Offer ID is required", nil, "missing offer ID")
		return
	}

	var req RegisterOfferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	offer, err := c.service.Register(ctx.Request.Context(), req.ToModel(offerID))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to register offer", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Offer registered successfully", ToOfferResponse(offer), nil)
}

// GetOffer handles GET /offers/:offerId
func (c *Controller) GetOffer(ctx *gin.Context) {
	offerID := ctx.Param("offerId")
	if offerID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Offer ID is required", nil, "missing offer ID")
		return
	}

	offer, err := c.service.GetByID(ctx.Request.Context(), offerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Offer not found", nil, err.Error())
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get offer", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Offer retrieved successfully", ToOfferResponse(offer), nil)
}

// GetEligibility handles GET /offers/:offerId/eligibility
func (c *Controller) GetEligibility(ctx *gin.Context) {
	offerID := ctx.Param("offerId")
	if offerID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Offer ID is required", nil, "missing offer ID")
		return
	}

	verdict, err := c.service.Eligibility(ctx.Request.Context(), offerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Offer not found", nil, err.Error())
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to evaluate eligibility", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Eligibility evaluated", verdict, nil)
}
