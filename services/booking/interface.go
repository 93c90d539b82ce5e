package booking

import (
	"errors"

	associateRepo "serenia/database/repository/associate"
	bookingRepo "serenia/database/repository/booking"
	"serenia/models"
	"serenia/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// ErrForbidden means the principal may not act on the given booking.
var ErrForbidden = errors.New("not allowed to act on this booking")

// BookingService is the write path of the calendar: it turns a validated
// (date, time, duration) request into a committed booking, and back.
type BookingService interface {
	BookSlot(principal models.Principal, associateID string, req models.BookSlotRequest) (*models.Booking, error)
	CancelBooking(principal models.Principal, bookingID string) error
	GetBooking(principal models.Principal, bookingID string) (*models.Booking, error)
	ListSubjectBookings(principal models.Principal, subjectID string) ([]models.Booking, error)
	ListAssociateBookings(principal models.Principal, associateID, date string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService against the associate
// aggregate store.
type DefaultBookingService struct {
	AssociateRepo associateRepo.AssociateRepository
	BookingRepo   bookingRepo.BookingRepository
	Notifier      notification.NotificationService
	AsynqClient   *asynq.Client
	Cache         *redis.Client

	// HorizonDays bounds how far ahead a session may be booked.
	HorizonDays int
	// ReleaseNeighborsOnCancel reverses blocking/restriction side effects
	// when a booking is cancelled. Off by default: the historical behavior
	// leaves neighbors blocked after cancellation.
	ReleaseNeighborsOnCancel bool
}
