package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the console's endpoint handlers for route
// registration.
type HandlerBundle struct {
	// Schedule endpoints.
	GetWeeklyAvailabilityHandler gin.HandlerFunc
	GetCapacityHandler           gin.HandlerFunc
	EditDayBlocksHandler         gin.HandlerFunc
	SetDayEnabledHandler         gin.HandlerFunc
	SaveScheduleHandler          gin.HandlerFunc

	// Booking endpoints.
	ListBookingsHandler      gin.HandlerFunc
	StartBookingHandler      gin.HandlerFunc
	CompleteBookingHandler   gin.HandlerFunc
	CancelBookingHandler     gin.HandlerFunc
	RescheduleBookingHandler gin.HandlerFunc
}

// partnerIDFromContext pulls the authenticated partner ID set by the auth
// middleware.
func partnerIDFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("partnerID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
