package offers

import (
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupOfferRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	offers := rg.Group("/offers")
	offers.Use(middleware.JWTAuthWithConfig(cfg))
	{
		offers.PUT("/:offerId", controller.RegisterOffer)        // PUT /api/v1/offers/:offerId
		offers.GET("/:offerId", controller.GetOffer)             // GET /api/v1/offers/:offerId
		offers.GET("/:offerId/eligibility", controller.GetEligibility) // GET /api/v1/offers/:offerId/eligibility
	}
}
