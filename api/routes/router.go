// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"seatwise/internal/notifications"
	"seatwise/internal/offers"
	"seatwise/internal/seatmap"
	"seatwise/internal/selection"
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/database"
	"seatwise/pkg/cache"
	"seatwise/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	store    cache.Store
	notifier notifications.Notifier

	offerService     offers.Service    // For dependency injection
	selectionService selection.Service // For dependency injection
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, store cache.Store, notifier notifications.Notifier) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		store:    store,
		notifier: notifier,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Offer routes first: both other modules resolve context through them
		r.setupOfferRoutes(api)

		// Selection routes (must be before seat-map routes, the seat-map
		// pipeline sanitizes selections through the selection service)
		r.setupSelectionRoutes(api)

		// Seat-map routes
		r.setupSeatMapRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Perform health checks
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "seatwise-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "seatwise-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupOfferRoutes configures offer registration and eligibility routes
func (r *Router) setupOfferRoutes(rg *gin.RouterGroup) {
	offerRepo := offers.NewRepository(r.db.GetPostgreSQL())
	offerService := offers.NewService(offerRepo, r.config)
	offerController := offers.NewController(offerService)

	// Store offer service for dependency injection
	r.offerService = offerService

	offers.SetupOfferRoutes(rg, offerController, r.config)
}

// setupSelectionRoutes configures seat selection routes
func (r *Router) setupSelectionRoutes(rg *gin.RouterGroup) {
	selectionRepo := selection.NewRepository(r.db.GetPostgreSQL(), r.store, r.config.Redis.SelectionMirrorTTL)
	selectionService := selection.NewService(
		selectionRepo,
		offers.NewSelectionAdapter(r.offerService),
		r.notifier,
		logger.GetDefault(),
	)
	selectionController := selection.NewController(selectionService)

	// Store selection service for dependency injection
	r.selectionService = selectionService

	selection.SetupSelectionRoutes(rg, selectionController, r.config)
}

// setupSeatMapRoutes configures seat-map retrieval routes
func (r *Router) setupSeatMapRoutes(rg *gin.RouterGroup) {
	appLogger := logger.GetDefault()

	payloadCache := seatmap.NewPayloadCache(r.store, r.config, appLogger)
	fetcher := seatmap.NewHTTPFetcher(r.config.Upstream)
	seatMapService := seatmap.NewService(
		offers.NewSeatMapAdapter(r.offerService),
		payloadCache,
		fetcher,
		r.selectionService,
		appLogger,
	)
	seatMapController := seatmap.NewController(seatMapService)

	seatmap.SetupSeatMapRoutes(rg, seatMapController, r.config)
}
