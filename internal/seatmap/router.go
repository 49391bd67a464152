package seatmap

import (
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSeatMapRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	segments := rg.Group("/offers/:offerId/segments")
	segments.Use(middleware.JWTAuthWithConfig(cfg))
	{
		segments.GET("/:segmentIndex/seatmap", controller.GetSeatMap) // GET /api/v1/offers/:offerId/segments/:segmentIndex/seatmap
	}
}
