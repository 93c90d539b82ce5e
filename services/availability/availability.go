package availability

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	associateRepo "serenia/database/repository/associate"
	"serenia/models"
	"serenia/services/schedule"
	"serenia/utils"

	"go.uber.org/zap"
)

// maxSaveAttempts bounds the reload-and-retry loop on version conflicts.
const maxSaveAttempts = 4

// mutate loads the aggregate, applies fn and saves it behind the version
// check, retrying the whole sequence on a lost race. fn runs against a fresh
// aggregate on every attempt, so the intended mutation is re-derived rather
// than re-saved stale.
func (s *DefaultAvailabilityService) mutate(associateID string, fn func(*models.Associate) error) (*models.Associate, error) {
	var lastErr error
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		assoc, err := s.Repo.GetByID(associateID)
		if err != nil {
			if errors.Is(err, associateRepo.ErrNotFound) {
				return nil, schedule.WrapError(schedule.KindNotFound, err, "associate %s not found", associateID)
			}
			return nil, schedule.WrapError(schedule.KindFatal, err, "failed to load associate %s", associateID)
		}

		if err := fn(assoc); err != nil {
			return nil, err
		}

		if err := s.Repo.ReplaceVersioned(assoc); err != nil {
			if errors.Is(err, associateRepo.ErrVersionConflict) {
				lastErr = err
				continue
			}
			if errors.Is(err, associateRepo.ErrNotFound) {
				return nil, schedule.WrapError(schedule.KindNotFound, err, "associate %s not found", associateID)
			}
			return nil, schedule.WrapError(schedule.KindFatal, err, "failed to save associate %s", associateID)
		}
		return assoc, nil
	}
	return nil, schedule.WrapError(schedule.KindRace, lastErr, "schedule changed concurrently, please retry")
}

// SetAvailability opens the requested times on one date, merging with any
// existing slots for that date.
func (s *DefaultAvailabilityService) SetAvailability(associateID string, req models.SetAvailabilityRequest) (*models.DayAvailability, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, schedule.NewError(schedule.KindValidation, "invalid date %q: want YYYY-MM-DD", req.Date)
	}
	if len(req.Times) == 0 {
		return nil, schedule.NewError(schedule.KindValidation, "no slot times given")
	}

	assoc, err := s.mutate(associateID, func(a *models.Associate) error {
		day := a.EnsureDay(req.Date)
		if err := schedule.MergeTimes(day, req.Times); err != nil {
			return err
		}
		schedule.ReconcileDay(a, req.Date)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshots(associateID, []string{req.Date})
	return assoc.Day(req.Date), nil
}

// ClearAvailability removes every open slot on the given dates. Booked slots
// stay; a date whose slots all clear away is pruned from the calendar.
func (s *DefaultAvailabilityService) ClearAvailability(associateID string, dates []string) error {
	for _, d := range dates {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return schedule.NewError(schedule.KindValidation, "invalid date %q: want YYYY-MM-DD", d)
		}
	}

	_, err := s.mutate(associateID, func(a *models.Associate) error {
		for _, d := range dates {
			day := a.Day(d)
			if day == nil {
				continue
			}
			schedule.ClearOpenSlots(day)
			a.PruneDay(d)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateSnapshots(associateID, dates)
	return nil
}

// GetDayAvailability returns the slots an associate has on one date, serving
// from the snapshot cache when warm. The snapshot is a read-only view and may
// be stale by the time a write is attempted elsewhere.
func (s *DefaultAvailabilityService) GetDayAvailability(associateID, date string) (*models.DayAvailability, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		raw, err := s.Cache.Get(ctx, utils.AvailabilityCacheKey(associateID, date)).Result()
		if err == nil {
			var day models.DayAvailability
			if err := json.Unmarshal([]byte(raw), &day); err == nil {
				return &day, nil
			}
			logger.Warn("availability: corrupt cached snapshot, falling through",
				zap.String("associateID", associateID), zap.String("date", date))
		}
	}

	assoc, err := s.Repo.GetByID(associateID)
	if err != nil {
		if errors.Is(err, associateRepo.ErrNotFound) {
			return nil, schedule.WrapError(schedule.KindNotFound, err, "associate %s not found", associateID)
		}
		return nil, schedule.WrapError(schedule.KindFatal, err, "failed to load associate %s", associateID)
	}

	day := assoc.Day(date)
	if day == nil {
		day = &models.DayAvailability{Date: date}
	}

	if s.Cache != nil {
		if data, err := json.Marshal(day); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := s.Cache.Set(ctx, utils.AvailabilityCacheKey(associateID, date), data, utils.AvailabilityCacheTTL).Err(); err != nil {
				logger.Warn("availability: failed to cache snapshot", zap.Error(err))
			}
		}
	}
	return day, nil
}

// GetCalendar lists day availabilities in [startDate, endDate], inclusive.
func (s *DefaultAvailabilityService) GetCalendar(associateID, startDate, endDate string) ([]models.DayAvailability, error) {
	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		return nil, schedule.NewError(schedule.KindValidation, "invalid start date %q", startDate)
	}
	if _, err := time.Parse("2006-01-02", endDate); err != nil {
		return nil, schedule.NewError(schedule.KindValidation, "invalid end date %q", endDate)
	}

	assoc, err := s.Repo.GetByID(associateID)
	if err != nil {
		if errors.Is(err, associateRepo.ErrNotFound) {
			return nil, schedule.WrapError(schedule.KindNotFound, err, "associate %s not found", associateID)
		}
		return nil, schedule.WrapError(schedule.KindFatal, err, "failed to load associate %s", associateID)
	}

	var days []models.DayAvailability
	for i := range assoc.Availability {
		d := assoc.Availability[i].Date
		if d >= startDate && d <= endDate {
			days = append(days, assoc.Availability[i])
		}
	}
	return days, nil
}

// NextAvailableSlot finds the earliest open slot on or after fromDate. It
// reads a point-in-time snapshot; the slot may be gone by the time a booking
// for it is attempted.
func (s *DefaultAvailabilityService) NextAvailableSlot(associateID, fromDate string) (string, *models.Slot, error) {
	if _, err := time.Parse("2006-01-02", fromDate); err != nil {
		return "", nil, schedule.NewError(schedule.KindValidation, "invalid date %q: want YYYY-MM-DD", fromDate)
	}

	assoc, err := s.Repo.GetByID(associateID)
	if err != nil {
		if errors.Is(err, associateRepo.ErrNotFound) {
			return "", nil, schedule.WrapError(schedule.KindNotFound, err, "associate %s not found", associateID)
		}
		return "", nil, schedule.WrapError(schedule.KindFatal, err, "failed to load associate %s", associateID)
	}

	for i := range assoc.Availability {
		day := &assoc.Availability[i]
		if day.Date < fromDate {
			continue
		}
		day.SortSlots()
		for j := range day.Slots {
			if day.Slots[j].IsAvailable && !day.Slots[j].IsBooked {
				slot := day.Slots[j]
				return day.Date, &slot, nil
			}
		}
	}
	return "", nil, schedule.NewError(schedule.KindNotFound, "no open slots for associate %s from %s", associateID, fromDate)
}

// invalidateSnapshots drops cached day snapshots after a calendar write.
// Best-effort: a failed delete only means a snapshot serves slightly stale
// data until its TTL lapses.
func (s *DefaultAvailabilityService) invalidateSnapshots(associateID string, dates []string) {
	if s.Cache == nil || len(dates) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		keys = append(keys, utils.AvailabilityCacheKey(associateID, d))
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("availability: snapshot invalidation failed",
			zap.String("associateID", associateID), zap.Error(err))
	}
}
