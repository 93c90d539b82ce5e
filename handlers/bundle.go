package handlers

import (
	associateRepo "serenia/database/repository/associate"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AssociateRepo associateRepo.AssociateRepository

	// Associate directory endpoints
	CreateAssociateHandler gin.HandlerFunc
	GetAssociateHandler    gin.HandlerFunc
	ListAssociatesHandler  gin.HandlerFunc
	DeleteAssociateHandler gin.HandlerFunc

	// Availability endpoints
	SetAvailabilityHandler    gin.HandlerFunc
	ApplyPatternHandler       gin.HandlerFunc
	ClearAvailabilityHandler  gin.HandlerFunc
	GetDayAvailabilityHandler gin.HandlerFunc
	GetCalendarHandler        gin.HandlerFunc
	NextAvailableSlotHandler  gin.HandlerFunc

	// Booking endpoints
	BookSlotHandler              gin.HandlerFunc
	CancelBookingHandler         gin.HandlerFunc
	GetBookingHandler            gin.HandlerFunc
	ListSubjectBookingsHandler   gin.HandlerFunc
	ListAssociateBookingsHandler gin.HandlerFunc
}
