package handlers

import (
	"net/http"

	"serenia/models"
	"serenia/services/booking"
	"serenia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the slot-booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) BookSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	associateID := c.Param("associateID")

	var req models.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	bkg, err := h.Service.BookSlot(principal, associateID, req)
	if err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Slot booked",
		"booking": bkg,
	})
}

func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	bookingID := c.Param("bookingID")

	if err := h.Service.CancelBooking(principal, bookingID); err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	bookingID := c.Param("bookingID")

	bkg, err := h.Service.GetBooking(principal, bookingID)
	if err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": bkg})
}

func (h *BookingHandler) ListAssociateBookingsHandler(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	associateID := c.Param("associateID")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}

	bookings, err := h.Service.ListAssociateBookings(principal, associateID, date)
	if err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) ListSubjectBookingsHandler(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	subjectID := c.Param("subjectID")

	bookings, err := h.Service.ListSubjectBookings(principal, subjectID)
	if err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
