package availability

import (
	"time"

	"serenia/models"
	"serenia/services/schedule"
)

// ApplyPattern applies a bulk availability update across every date the
// pattern touches. The whole invocation rides on one versioned aggregate
// write: either all date updates persist, or none do.
func (s *DefaultAvailabilityService) ApplyPattern(associateID string, req models.ApplyPatternRequest) ([]models.DayAvailability, error) {
	dates, clearing, err := expandPattern(req)
	if err != nil {
		return nil, err
	}
	if !clearing && len(req.Times) == 0 {
		return nil, schedule.NewError(schedule.KindValidation, "pattern %q requires slot times", req.Pattern)
	}

	assoc, err := s.mutate(associateID, func(a *models.Associate) error {
		for _, date := range dates {
			if clearing {
				day := a.Day(date)
				if day == nil {
					continue
				}
				schedule.ClearOpenSlots(day)
				a.PruneDay(date)
				continue
			}
			day := a.EnsureDay(date)
			if err := schedule.MergeTimes(day, req.Times); err != nil {
				return err
			}
			// Newly opened slots may neighbor a pre-existing long booking and
			// must inherit its restriction.
			schedule.ReconcileDay(a, date)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshots(associateID, dates)

	var touched []models.DayAvailability
	for _, date := range dates {
		if day := assoc.Day(date); day != nil {
			touched = append(touched, *day)
		}
	}
	return touched, nil
}

// expandPattern turns a pattern request into the concrete list of dates it
// covers, and reports whether it clears instead of opening.
func expandPattern(req models.ApplyPatternRequest) ([]string, bool, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, false, schedule.NewError(schedule.KindValidation, "invalid start date %q: want YYYY-MM-DD", req.StartDate)
	}

	var end time.Time
	if req.EndDate != "" {
		end, err = time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, false, schedule.NewError(schedule.KindValidation, "invalid end date %q: want YYYY-MM-DD", req.EndDate)
		}
		if end.Before(start) {
			return nil, false, schedule.NewError(schedule.KindValidation, "end date %s before start date %s", req.EndDate, req.StartDate)
		}
	}

	clearing := false
	pattern := req.Pattern
	switch pattern {
	case models.PatternClearSingleDate, models.PatternClearDayOfWeek, models.PatternClearWeek, models.PatternClearMonth:
		clearing = true
	}

	switch pattern {
	case models.PatternSingleDate, models.PatternClearSingleDate:
		return []string{req.StartDate}, clearing, nil

	case models.PatternDayOfWeek, models.PatternClearDayOfWeek:
		if req.DayOfWeek == nil || *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
			return nil, false, schedule.NewError(schedule.KindValidation, "pattern %q requires dayOfWeek 0-6", pattern)
		}
		if req.EndDate == "" {
			return nil, false, schedule.NewError(schedule.KindValidation, "pattern %q requires an end date", pattern)
		}
		var dates []string
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if int(d.Weekday()) == *req.DayOfWeek {
				dates = append(dates, d.Format("2006-01-02"))
			}
		}
		if len(dates) == 0 {
			return nil, false, schedule.NewError(schedule.KindValidation, "no date in range matches dayOfWeek %d", *req.DayOfWeek)
		}
		return dates, clearing, nil

	case models.PatternWeek, models.PatternClearWeek:
		if req.EndDate == "" {
			end = start.AddDate(0, 0, 6)
		}
		return datesBetween(start, end), clearing, nil

	case models.PatternMonth, models.PatternClearMonth:
		if req.EndDate == "" {
			// Through the last day of the start date's month.
			end = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location()).
				AddDate(0, 1, -1)
		}
		return datesBetween(start, end), clearing, nil

	default:
		return nil, false, schedule.NewError(schedule.KindValidation, "unknown pattern %q", pattern)
	}
}

func datesBetween(start, end time.Time) []string {
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}
