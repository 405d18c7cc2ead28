package handlers

import (
	"errors"
	"net/http"

	"washhub/models"
	"washhub/services/booking"
	"washhub/services/schedule"
	"washhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingHandler serves the weekly calendar and its action buttons.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	partnerID, ok := partnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Partner not authenticated"})
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing from/to date range"})
		return
	}

	bookings, err := h.Service.ListWeek(c.Request.Context(), partnerID, from, to)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range", "message": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) StartBookingHandler(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id string) (*models.Booking, error) {
		return h.Service.StartBooking(ctx.Request.Context(), id)
	})
}

func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id string) (*models.Booking, error) {
		return h.Service.CompleteBooking(ctx.Request.Context(), id)
	})
}

func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cancellation reason is required", "message": err.Error()})
		return
	}
	h.transition(c, func(ctx *gin.Context, id string) (*models.Booking, error) {
		return h.Service.CancelBooking(ctx.Request.Context(), id, req.Reason)
	})
}

func (h *BookingHandler) RescheduleBookingHandler(c *gin.Context) {
	var req struct {
		Slot models.Slot `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	h.transition(c, func(ctx *gin.Context, id string) (*models.Booking, error) {
		return h.Service.RescheduleBooking(ctx.Request.Context(), id, req.Slot)
	})
}

func (h *BookingHandler) transition(c *gin.Context, apply func(*gin.Context, string) (*models.Booking, error)) {
	if _, ok := partnerIDFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Partner not authenticated"})
		return
	}

	id := c.Param("bookingID")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing booking ID in path"})
		return
	}

	updated, err := apply(c, id)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, booking.ErrIllegalTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Transition not allowed", "message": err.Error()})
		case errors.Is(err, booking.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Slot not available", "message": err.Error()})
		case errors.Is(err, booking.ErrReasonRequired),
			errors.Is(err, schedule.ErrInvalidFormat),
			errors.Is(err, schedule.ErrEmptyInterval):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Booking update failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": updated})
}
