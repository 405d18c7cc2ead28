package routes

import (
	"net/http"
	"time"

	"washhub/handlers"
	"washhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the availability and capacity endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthPartnerMiddleware())
		api.GET("/availability", hb.GetWeeklyAvailabilityHandler)
		api.GET("/capacity", hb.GetCapacityHandler)
		api.POST("/availability/blocks", hb.EditDayBlocksHandler)
		api.POST("/availability/day-enabled", hb.SetDayEnabledHandler)
		api.PUT("/save", hb.SaveScheduleHandler)
	}
}

// RegisterBookingRoutes registers the weekly calendar and its actions.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthPartnerMiddleware())
		api.GET("", hb.ListBookingsHandler)
		api.POST("/:bookingID/start", hb.StartBookingHandler)
		api.POST("/:bookingID/complete", hb.CompleteBookingHandler)
		api.POST("/:bookingID/cancel", hb.CancelBookingHandler)
		api.POST("/:bookingID/reschedule", hb.RescheduleBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "washhub partner console"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterScheduleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
