package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	associateRepo "serenia/database/repository/associate"
	"serenia/models"
	"serenia/services/schedule"
	"serenia/services/tasks"
	"serenia/utils"
)

// maxBookingAttempts bounds the reload-and-retry loop on version conflicts.
const maxBookingAttempts = 4

// BookSlot runs the booking transaction: validate the requested
// (date, time, duration), mark the slot booked, apply the buffer side effects
// to its neighbors, and persist the aggregate behind the version check. A
// lost race reloads the aggregate, re-verifies the same slot is still free
// and reapplies the mutation, a bounded number of times.
func (s *DefaultBookingService) BookSlot(principal models.Principal, associateID string, req models.BookSlotRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	bk := &models.Booking{
		ID:          uuid.New().String(),
		AssociateID: associateID,
		SubjectID:   principal.ID,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		ServiceType: req.ServiceType,
		Status:      models.BookingStatusConfirmed,
		CreatedAt:   time.Now(),
	}

	recordCreated := false
	cleanup := func() {
		if !recordCreated {
			return
		}
		if err := s.BookingRepo.Delete(bk.ID); err != nil {
			logger.Warn("booking: failed to remove orphaned booking record",
				zap.String("bookingID", bk.ID), zap.Error(err))
		}
	}

	var lastConflict error
	for attempt := 0; attempt < maxBookingAttempts; attempt++ {
		assoc, err := s.AssociateRepo.GetByID(associateID)
		if err != nil {
			cleanup()
			if errors.Is(err, associateRepo.ErrNotFound) {
				return nil, schedule.WrapError(schedule.KindNotFound, err, "associate %s not found", associateID)
			}
			return nil, schedule.WrapError(schedule.KindFatal, err, "failed to load associate %s", associateID)
		}

		day := assoc.Day(req.Date)
		if day == nil {
			cleanup()
			return nil, schedule.NewError(schedule.KindNotFound, "associate %s has no availability on %s", associateID, req.Date)
		}
		slot := day.FindSlot(req.Time)
		if slot == nil {
			cleanup()
			return nil, schedule.NewError(schedule.KindNotFound, "no slot at %s on %s", req.Time, req.Date)
		}
		if slot.IsBooked || !slot.IsAvailable {
			cleanup()
			return nil, schedule.NewError(schedule.KindConflict, "slot at %s on %s is no longer available", req.Time, req.Date)
		}
		if !slot.AllowsDuration(req.Duration) {
			cleanup()
			return nil, schedule.NewError(schedule.KindConflict, "duration %d not allowed for slot at %s", req.Duration, req.Time)
		}

		// The slot checked out; materialize the booking record before the
		// aggregate commit so the slot's back-reference resolves.
		if !recordCreated {
			if err := s.BookingRepo.Create(bk); err != nil {
				return nil, schedule.WrapError(schedule.KindFatal, err, "failed to persist booking record")
			}
			recordCreated = true
		}

		slot.IsBooked = true
		slot.IsAvailable = false
		slot.Duration = req.Duration
		slot.BookingID = bk.ID

		effects := schedule.ComputeSideEffects(assoc.Designation, req.Time, req.Duration)
		schedule.ApplySideEffects(day, effects)

		if err := s.AssociateRepo.ReplaceVersioned(assoc); err != nil {
			if errors.Is(err, associateRepo.ErrVersionConflict) {
				lastConflict = err
				logger.Debug("booking: version conflict, retrying",
					zap.String("associateID", associateID), zap.Int("attempt", attempt+1))
				continue
			}
			cleanup()
			if errors.Is(err, associateRepo.ErrNotFound) {
				return nil, schedule.WrapError(schedule.KindNotFound, err, "associate %s not found", associateID)
			}
			return nil, schedule.WrapError(schedule.KindFatal, err, "failed to commit booking for associate %s", associateID)
		}

		s.afterCommit(bk)
		return bk, nil
	}

	cleanup()
	return nil, schedule.WrapError(schedule.KindRace, lastConflict, "schedule changed, please retry")
}

// afterCommit handles the post-transaction concerns: snapshot invalidation,
// the BookingCreated event, and the session reminder. None of these may fail
// the already-committed booking.
func (s *DefaultBookingService) afterCommit(bk *models.Booking) {
	logger := utils.GetLogger()

	s.invalidateSnapshot(bk.AssociateID, bk.Date)

	if s.Notifier != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		event := models.BookingCreated{
			BookingID:   bk.ID,
			AssociateID: bk.AssociateID,
			SubjectID:   bk.SubjectID,
			Date:        bk.Date,
			Time:        bk.Time,
			Duration:    bk.Duration,
		}
		if err := s.Notifier.NotifyBookingCreated(ctx, event); err != nil {
			logger.Warn("booking: BookingCreated delivery failed",
				zap.String("bookingID", bk.ID), zap.Error(err))
		}
	}

	s.enqueueReminder(bk)
}

func (s *DefaultBookingService) enqueueReminder(bk *models.Booking) {
	if s.AsynqClient == nil {
		return
	}
	logger := utils.GetLogger()

	startAt, err := time.ParseInLocation("2006-01-02 15:04", bk.Date+" "+bk.Time, time.Local)
	if err != nil {
		logger.Warn("booking: cannot schedule reminder", zap.String("bookingID", bk.ID), zap.Error(err))
		return
	}
	fireAt := startAt.Add(-tasks.ReminderLead)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		ID:         bk.AssociateID,
		ReminderID: bk.ID,
		Title:      "Upcoming session",
		Body:       fmt.Sprintf("You have a %d-minute session at %s.", bk.Duration, bk.Time),
		FireDate:   fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("booking: failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
		logger.Warn("booking: failed to enqueue reminder", zap.String("bookingID", bk.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) invalidateSnapshot(associateID, date string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, utils.AvailabilityCacheKey(associateID, date)).Err(); err != nil {
		utils.GetLogger().Warn("booking: snapshot invalidation failed",
			zap.String("associateID", associateID), zap.Error(err))
	}
}
