package handlers

import (
	"errors"
	"net/http"

	"washhub/models"
	"washhub/services/partner"
	"washhub/services/schedule"
	"washhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the partner's availability and capacity screens.
type ScheduleHandler struct {
	Service partner.PartnerService
}

func NewScheduleHandler(svc partner.PartnerService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func (h *ScheduleHandler) GetWeeklyAvailabilityHandler(c *gin.Context) {
	partnerID, ok := partnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Partner not authenticated"})
		return
	}

	weekly, err := h.Service.GetWeeklyAvailability(c.Request.Context(), partnerID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch weekly availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weekly availability", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": weekly})
}

func (h *ScheduleHandler) GetCapacityHandler(c *gin.Context) {
	partnerID, ok := partnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Partner not authenticated"})
		return
	}

	capacity, err := h.Service.GetPartnerCapacity(c.Request.Context(), partnerID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch partner capacity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch partner capacity", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"capacity": capacity, "categories": models.AllServiceCategories})
}

// EditDayBlocksHandler applies one interval edit to the session's working
// copy of the schedule and returns the result. Nothing is persisted; the
// session commits through SaveScheduleHandler.
func (h *ScheduleHandler) EditDayBlocksHandler(c *gin.Context) {
	if _, ok := partnerIDFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Partner not authenticated"})
		return
	}

	var req struct {
		Availability models.WeeklyAvailability `json:"availability" binding:"required"`
		Day          *int                      `json:"day" binding:"required"`
		Op           schedule.EditOp           `json:"op" binding:"required"`
		Start        string                    `json:"start" binding:"required"`
		End          string                    `json:"end" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	// Canonicalize before anything compares: "9:00" must become "09:00" or
	// lexicographic ordering breaks.
	start, err := schedule.ParseTimeOfDay(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time", "message": err.Error()})
		return
	}
	end, err := schedule.ParseTimeOfDay(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time", "message": err.Error()})
		return
	}

	rng := models.TimeBlock{Start: start, End: end}
	edited, err := schedule.EditDayBlocks(req.Availability, *req.Day, req.Op, rng)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Edit rejected", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": edited})
}

// SetDayEnabledHandler toggles a day of the session's working copy.
func (h *ScheduleHandler) SetDayEnabledHandler(c *gin.Context) {
	if _, ok := partnerIDFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Partner not authenticated"})
		return
	}

	var req struct {
		Availability models.WeeklyAvailability `json:"availability" binding:"required"`
		Day          *int                      `json:"day" binding:"required"`
		Enabled      *bool                     `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	edited, err := schedule.SetDayEnabled(req.Availability, *req.Day, *req.Enabled)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Edit rejected", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": edited})
}

// SaveScheduleHandler commits the session's availability and capacity
// documents. A failure of either save leaves the session dirty client-side.
func (h *ScheduleHandler) SaveScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	partnerID, ok := partnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Partner not authenticated"})
		return
	}

	var req struct {
		Availability models.WeeklyAvailability `json:"availability" binding:"required"`
		Capacity     models.PartnerCapacity    `json:"capacity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	// Documents are owned by the authenticated partner regardless of payload.
	req.Availability.PartnerID = partnerID
	req.Capacity.PartnerID = partnerID

	if err := h.Service.SaveSchedule(c.Request.Context(), req.Availability, req.Capacity); err != nil {
		if errors.Is(err, schedule.ErrInvariantViolation) || errors.Is(err, schedule.ErrEmptyInterval) || errors.Is(err, schedule.ErrInvalidFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Schedule rejected", "message": err.Error()})
			return
		}
		logger.Error("Failed to save schedule", zap.String("partnerID", partnerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save schedule", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule saved"})
}
