package booking

import (
	"time"

	"serenia/models"
	"serenia/services/schedule"
)

const defaultHorizonDays = 60

// validateRequest rejects malformed booking input before anything is loaded
// or mutated.
func (s *DefaultBookingService) validateRequest(req models.BookSlotRequest) error {
	if !schedule.ValidGridTime(req.Time) {
		return schedule.NewError(schedule.KindValidation, "invalid time %q: want HH:MM on a 30-minute grid", req.Time)
	}
	if !schedule.ValidDuration(req.Duration) {
		return schedule.NewError(schedule.KindValidation, "invalid duration %d: want one of 30, 50 or 80", req.Duration)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return schedule.NewError(schedule.KindValidation, "invalid date %q: want YYYY-MM-DD", req.Date)
	}

	horizon := s.HorizonDays
	if horizon <= 0 {
		horizon = defaultHorizonDays
	}
	// Compare calendar dates in local time; zero-padded YYYY-MM-DD strings
	// order lexicographically.
	now := time.Now()
	if req.Date < now.Format("2006-01-02") {
		return schedule.NewError(schedule.KindValidation, "date %s is in the past", req.Date)
	}
	if date.After(now.AddDate(0, 0, horizon)) {
		return schedule.NewError(schedule.KindValidation, "date %s is beyond the %d-day booking horizon", req.Date, horizon)
	}
	return nil
}
