package models

// Availability patterns accepted by the bulk mutator. The clear variants
// remove open slots instead of adding them; booked slots are never touched.
const (
	PatternSingleDate = "single-date"
	PatternDayOfWeek  = "day-of-week"
	PatternWeek       = "week"
	PatternMonth      = "month"

	PatternClearSingleDate = "clear-single-date"
	PatternClearDayOfWeek  = "clear-day-of-week"
	PatternClearWeek       = "clear-week"
	PatternClearMonth      = "clear-month"
)

// SetAvailabilityRequest opens the given times on one date.
type SetAvailabilityRequest struct {
	Date  string   `json:"date" binding:"required"`
	Times []string `json:"times" binding:"required"`
}

// ApplyPatternRequest applies a bulk availability pattern across a date range.
// DayOfWeek (0-6, Sunday-Saturday) is only consulted by day-of-week patterns.
type ApplyPatternRequest struct {
	Pattern   string   `json:"pattern" binding:"required"`
	StartDate string   `json:"startDate" binding:"required"`
	EndDate   string   `json:"endDate"`
	Times     []string `json:"times"`
	DayOfWeek *int     `json:"dayOfWeek,omitempty"`
}

// ClearAvailabilityRequest removes every open (unbooked) slot on the given dates.
type ClearAvailabilityRequest struct {
	Dates []string `json:"dates" binding:"required"`
}

// BookSlotRequest asks for one (date, time, duration) on an associate's calendar.
type BookSlotRequest struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
	ServiceType string `json:"serviceType"`
}
