package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	associateRepo "serenia/database/repository/associate"
	bookingRepo "serenia/database/repository/booking"
	"serenia/models"
	"serenia/services/schedule"
	"serenia/utils"
)

// CancelBooking restores the booked slot to free state and deletes the
// booking record. Whether the blocking/restriction side effects applied at
// booking time are reversed is a policy decision
// (ReleaseNeighborsOnCancel); historically they were left in place.
func (s *DefaultBookingService) CancelBooking(principal models.Principal, bookingID string) error {
	logger := utils.GetLogger()

	bk, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return schedule.WrapError(schedule.KindNotFound, err, "booking %s not found", bookingID)
		}
		return schedule.WrapError(schedule.KindFatal, err, "failed to load booking %s", bookingID)
	}

	if !s.mayActOn(principal, bk) {
		return ErrForbidden
	}

	var lastConflict error
	for attempt := 0; attempt < maxBookingAttempts; attempt++ {
		assoc, err := s.AssociateRepo.GetByID(bk.AssociateID)
		if err != nil {
			if errors.Is(err, associateRepo.ErrNotFound) {
				return schedule.WrapError(schedule.KindNotFound, err, "associate %s not found", bk.AssociateID)
			}
			return schedule.WrapError(schedule.KindFatal, err, "failed to load associate %s", bk.AssociateID)
		}

		day := assoc.Day(bk.Date)
		slot := findSlotByBooking(day, bk.ID)
		if slot == nil {
			// The slot is already gone; just drop the record.
			break
		}

		slot.IsBooked = false
		slot.IsAvailable = true
		slot.Duration = models.SlotStepMinutes
		slot.BookingID = ""

		if s.ReleaseNeighborsOnCancel {
			effects := schedule.ComputeSideEffects(assoc.Designation, bk.Time, bk.Duration)
			schedule.ReverseSideEffects(day, effects)
			// A neighbor may have been blocked or restricted by another
			// booking as well; re-derive the surviving side effects.
			reapplyBookedSideEffects(assoc, day)
			schedule.ReconcileDay(assoc, bk.Date)
		}

		if err := s.AssociateRepo.ReplaceVersioned(assoc); err != nil {
			if errors.Is(err, associateRepo.ErrVersionConflict) {
				lastConflict = err
				continue
			}
			return schedule.WrapError(schedule.KindFatal, err, "failed to persist cancellation for associate %s", bk.AssociateID)
		}
		lastConflict = nil
		break
	}
	if lastConflict != nil {
		return schedule.WrapError(schedule.KindRace, lastConflict, "schedule changed, please retry")
	}

	if err := s.BookingRepo.Delete(bk.ID); err != nil && !errors.Is(err, bookingRepo.ErrNotFound) {
		return schedule.WrapError(schedule.KindFatal, err, "failed to delete booking record %s", bk.ID)
	}

	s.invalidateSnapshot(bk.AssociateID, bk.Date)

	if s.Notifier != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		event := models.BookingCancelled{
			BookingID:   bk.ID,
			AssociateID: bk.AssociateID,
			SubjectID:   bk.SubjectID,
		}
		if err := s.Notifier.NotifyBookingCancelled(ctx, event); err != nil {
			logger.Warn("booking: BookingCancelled delivery failed",
				zap.String("bookingID", bk.ID), zap.Error(err))
		}
	}
	return nil
}

// mayActOn: clients act on their own bookings, doctors on their own calendar,
// admins on anything.
func (s *DefaultBookingService) mayActOn(principal models.Principal, bk *models.Booking) bool {
	switch principal.Role {
	case models.RoleAdmin:
		return true
	case models.RoleDoctor:
		return principal.ID == bk.AssociateID
	default:
		return principal.ID == bk.SubjectID
	}
}

// findSlotByBooking scans the day for the slot holding the booking's
// back-reference.
func findSlotByBooking(day *models.DayAvailability, bookingID string) *models.Slot {
	if day == nil {
		return nil
	}
	for i := range day.Slots {
		if day.Slots[i].BookingID == bookingID {
			return &day.Slots[i]
		}
	}
	return nil
}

// reapplyBookedSideEffects replays the buffer consequences of every booking
// still on the day.
func reapplyBookedSideEffects(assoc *models.Associate, day *models.DayAvailability) {
	for i := range day.Slots {
		slot := &day.Slots[i]
		if !slot.IsBooked {
			continue
		}
		effects := schedule.ComputeSideEffects(assoc.Designation, slot.Time, slot.Duration)
		schedule.ApplySideEffects(day, effects)
	}
}
