package selection

import (
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSelectionRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	offers := rg.Group("/offers")
	offers.Use(middleware.JWTAuthWithConfig(cfg))
	{
		offers.GET("/:offerId/selection/total", controller.GetTotal)

		segment := offers.Group("/:offerId/segments/:segmentIndex/selection")
		{
			segment.POST("/seats", controller.AssignSeat)
			segment.GET("", controller.GetSelection)
			segment.DELETE("", controller.ClearSelection)
		}
	}
}
