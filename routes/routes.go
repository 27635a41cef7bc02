package routes

import (
	"time"

	"slowlove/config"
	"slowlove/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(router *gin.Engine, bh *handlers.BookingHandler, ch *handlers.ContentHandler) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", handlers.HealthHandler)

	RegisterContentRoutes(router, ch)
	RegisterBookingRoutes(router, bh)
}

// RegisterContentRoutes registers the static event content endpoints.
func RegisterContentRoutes(r *gin.Engine, ch *handlers.ContentHandler) {
	api := r.Group("/api")
	{
		api.GET("/event", ch.GetEvent)
		api.GET("/event/timeline", ch.GetTimeline)
		api.GET("/event/games", ch.GetGames)
		api.GET("/legal/:doc", ch.GetLegal)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	r.GET("/api/slots", bh.GetSlots)

	booking := r.Group("/api/booking")
	{
		booking.POST("/session", bh.OpenSession)
		booking.GET("/session/:sessionID", bh.GetSession)
		booking.DELETE("/session/:sessionID", bh.CloseSession)
		booking.PUT("/session/:sessionID/form", bh.UpdateForm)
		booking.POST("/session/:sessionID/pay", bh.Pay)
		booking.POST("/session/:sessionID/checkout/ready", bh.CheckoutReady)
		booking.POST("/session/:sessionID/checkout/complete", bh.CheckoutComplete)
		booking.POST("/session/:sessionID/checkout/failed", bh.CheckoutFailed)
		booking.POST("/session/:sessionID/checkout/dismissed", bh.CheckoutDismissed)
	}
}
