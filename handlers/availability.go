package handlers

import (
	"net/http"

	"serenia/middleware"
	"serenia/models"
	"serenia/services/availability"
	"serenia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the calendar-management endpoints.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func (h *AvailabilityHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	associateID := c.Param("associateID")

	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid set-availability request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	day, err := h.Service.SetAvailability(associateID, req)
	if err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Availability updated",
		"day":     day,
	})
}

func (h *AvailabilityHandler) ApplyPatternHandler(c *gin.Context) {
	logger := utils.GetLogger()
	associateID := c.Param("associateID")

	var req models.ApplyPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid pattern request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	days, err := h.Service.ApplyPattern(associateID, req)
	if err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pattern applied",
		"days":    days,
	})
}

func (h *AvailabilityHandler) ClearAvailabilityHandler(c *gin.Context) {
	associateID := c.Param("associateID")

	var req models.ClearAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Dates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid dates in request body"})
		return
	}

	if err := h.Service.ClearAvailability(associateID, req.Dates); err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability cleared"})
}

func (h *AvailabilityHandler) GetDayAvailabilityHandler(c *gin.Context) {
	associateID := c.Param("associateID")
	date := c.Param("date")

	day, err := h.Service.GetDayAvailability(associateID, date)
	if err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"day": day})
}

func (h *AvailabilityHandler) GetCalendarHandler(c *gin.Context) {
	associateID := c.Param("associateID")
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing start or end query parameter"})
		return
	}

	days, err := h.Service.GetCalendar(associateID, start, end)
	if err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"calendar": days})
}

func (h *AvailabilityHandler) NextAvailableSlotHandler(c *gin.Context) {
	associateID := c.Param("associateID")
	from := c.Query("from")
	if from == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing from query parameter"})
		return
	}

	date, slot, err := h.Service.NextAvailableSlot(associateID, from)
	if err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "slot": slot})
}

// principalOrAbort is a tiny helper used by handlers that need the caller's
// identity beyond the middleware guard.
func principalOrAbort(c *gin.Context) (models.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return models.Principal{}, false
	}
	return principal, true
}
