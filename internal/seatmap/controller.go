package seatmap

import (
	"errors"
	"net/http"
	"strconv"

	"seatwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetSeatMap handles GET /offers/:offerId/segments/:segmentIndex/seatmap.
// The force query flag bypasses the payload cache for the UI's explicit
// retry affordance; the cooldown still applies.
func (c *Controller) GetSeatMap(ctx *gin.Context) {
	offerID := ctx.Param("offerId")
	if offerID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Offer ID is required", nil, "missing offer ID")
		return
	}

	segmentIndex, err := strconv.Atoi(ctx.Param("segmentIndex"))
	if err != nil || segmentIndex < 0 {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid segment index", nil, "segment index must be a non-negative integer")
		return
	}

	forceRefresh := ctx.Query("force") == "true"

	layout, err := c.service.GetSeatMap(ctx.Request.Context(), offerID, segmentIndex, forceRefresh)
	if err != nil {
		switch {
		case errors.Is(err, ErrContextNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Offer or segment not found", nil, err.Error())
		case errors.Is(err, ErrCoolingDown):
			// Retryable shortly; distinct from "not offered"
			response.RespondJSON(ctx, "error", http.StatusTooManyRequests, "Seat map source is busy, try again shortly", nil, err.Error())
		case errors.Is(err, ErrUnavailable):
			response.RespondJSON(ctx, "error", http.StatusBadGateway, "Seat map unavailable for this flight", nil, err.Error())
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to build seat map", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat map retrieved successfully", ToSeatMapResponse(layout), nil)
}
