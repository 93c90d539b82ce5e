package booking

import (
	"errors"
	"time"

	bookingRepo "serenia/database/repository/booking"
	"serenia/models"
	"serenia/services/schedule"
)

// GetBooking returns one booking, subject to the same ownership rules as
// cancellation.
func (s *DefaultBookingService) GetBooking(principal models.Principal, bookingID string) (*models.Booking, error) {
	bk, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, schedule.WrapError(schedule.KindNotFound, err, "booking %s not found", bookingID)
		}
		return nil, schedule.WrapError(schedule.KindFatal, err, "failed to load booking %s", bookingID)
	}
	if !s.mayActOn(principal, bk) {
		return nil, ErrForbidden
	}
	return bk, nil
}

// ListAssociateBookings lists an associate's bookings for one date: the
// doctor's day view. Only the owning doctor or an admin may read it.
func (s *DefaultBookingService) ListAssociateBookings(principal models.Principal, associateID, date string) ([]models.Booking, error) {
	if !principal.CanManage(associateID) {
		return nil, ErrForbidden
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, schedule.NewError(schedule.KindValidation, "invalid date %q: want YYYY-MM-DD", date)
	}
	bookings, err := s.BookingRepo.GetByAssociateDate(associateID, date)
	if err != nil {
		return nil, schedule.WrapError(schedule.KindFatal, err, "failed to list bookings for associate %s on %s", associateID, date)
	}
	return bookings, nil
}

// ListSubjectBookings lists a client's bookings, newest first.
func (s *DefaultBookingService) ListSubjectBookings(principal models.Principal, subjectID string) ([]models.Booking, error) {
	if principal.Role != models.RoleAdmin && principal.ID != subjectID {
		return nil, ErrForbidden
	}
	bookings, err := s.BookingRepo.GetBySubject(subjectID)
	if err != nil {
		return nil, schedule.WrapError(schedule.KindFatal, err, "failed to list bookings for subject %s", subjectID)
	}
	return bookings, nil
}
