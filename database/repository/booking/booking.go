package bookingRepo

import (
	"errors"

	"serenia/models"
)

// ErrNotFound means no booking document matched the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines data access methods for booking records.
type BookingRepository interface {
	// Create persists a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetBySubject lists a client's bookings, newest first.
	GetBySubject(subjectID string) ([]models.Booking, error)
	// GetByAssociateDate lists an associate's bookings for one date.
	GetByAssociateDate(associateID, date string) ([]models.Booking, error)
	// Delete removes a booking record by its ID.
	Delete(id string) error
}
