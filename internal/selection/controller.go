package selection

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

// AssignSeat handles POST /offers/:offerId/segments/:segmentIndex/selection/seats
func (c *Controller) AssignSeat(ctx *gin.Context) {
	offerID, segmentIndex, ok := c.pathParams(ctx)
	if !ok {
		return
	}

	var req AssignSeatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	state, err := c.service.Assign(ctx.Request.Context(), offerID, segmentIndex, req.SeatID, req.ShownPrice.ToAmount())
	if err != nil {
		c.respondError(ctx, err, "Failed to assign seat")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat assigned successfully",
		ToSelectionResponse(offerID, segmentIndex, state), nil)
}

// GetSelection handles GET /offers/:offerId/segments/:segmentIndex/selection
func (c *Controller) GetSelection(ctx *gin.Context) {
	offerID, segmentIndex, ok := c.pathParams(ctx)
	if !ok {
		return
	}

	state, err := c.service.Get(ctx.Request.Context(), offerID, segmentIndex)
	if err != nil {
		c.respondError(ctx, err, "Failed to get selection")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Selection retrieved successfully",
		ToSelectionResponse(offerID, segmentIndex, state), nil)
}

// ClearSelection handles DELETE /offers/:offerId/segments/:segmentIndex/selection
func (c *Controller) ClearSelection(ctx *gin.Context) {
	offerID, segmentIndex, ok := c.pathParams(ctx)
	if !ok {
		return
	}

	if err := c.service.Clear(ctx.Request.Context(), offerID, segmentIndex); err != nil {
		c.respondError(ctx, err, "Failed to clear selection")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Selection cleared successfully", nil, nil)
}

// GetTotal handles GET /offers/:offerId/selection/total
func (c *Controller) GetTotal(ctx *gin.Context) {
	offerID := ctx.Param("offerId")
	if offerID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Offer ID is required", nil, "missing offer ID")
		return
	}

	total, err := c.service.TotalExtra(ctx.Request.Context(), offerID)
	if err != nil {
		c.respondError(ctx, err, "Failed to compute selection total")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Selection total computed", total, nil)
}

func (c *Controller) pathParams(ctx *gin.Context) (string, int, bool) {
	offerID := ctx.Param("offerId")
	if offerID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Offer ID is required", nil, "missing offer ID")
		return "", 0, false
	}

	segmentIndex, err := strconv.Atoi(ctx.Param("segmentIndex"))
	if err != nil || segmentIndex < 0 {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid segment index", nil, "segment index must be a non-negative integer")
		return "", 0, false
	}

	return offerID, segmentIndex, true
}

func (c *Controller) respondError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrOfferNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Offer not found", nil, err.Error())
	case errors.Is(err, ErrSegmentOutOfRange):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Segment index out of range", nil, err.Error())
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, message, nil, err.Error())
	}
}
