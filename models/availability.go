package models

import "sort"

// SlotStepMinutes is the scheduling granularity of the booking grid.
const SlotStepMinutes = 30

// DefaultDurations are the booking lengths a freshly opened slot accepts.
var DefaultDurations = []int{30, 50, 80}

// Slot is one bookable grid position on an associate's day.
type Slot struct {
	Time              string `bson:"time" json:"time"` // "HH:MM", 24-hour, 30-minute grid
	IsAvailable       bool   `bson:"isAvailable" json:"isAvailable"`
	IsBooked          bool   `bson:"isBooked" json:"isBooked"`
	Duration          int    `bson:"duration" json:"duration"` // minutes actually booked; 30 while merely open
	PossibleDurations []int  `bson:"possibleDurations,omitempty" json:"possibleDurations,omitempty"`
	BookingID         string `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
}

// AllowsDuration reports whether d is still a permitted booking length for the
// slot. A slot that was never narrowed implicitly allows every default length.
func (s *Slot) AllowsDuration(d int) bool {
	durations := s.PossibleDurations
	if len(durations) == 0 {
		durations = DefaultDurations
	}
	for _, pd := range durations {
		if pd == d {
			return true
		}
	}
	return false
}

// DayAvailability groups the slots an associate opened for one calendar date.
type DayAvailability struct {
	Date  string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slots []Slot `bson:"slots" json:"slots"`
}

// FindSlot returns the slot at the given wall-clock time, or nil.
func (d *DayAvailability) FindSlot(t string) *Slot {
	for i := range d.Slots {
		if d.Slots[i].Time == t {
			return &d.Slots[i]
		}
	}
	return nil
}

// SortSlots orders the day's slots by time. Times are zero-padded "HH:MM"
// strings, so lexicographic order is chronological order.
func (d *DayAvailability) SortSlots() {
	sort.Slice(d.Slots, func(i, j int) bool {
		return d.Slots[i].Time < d.Slots[j].Time
	})
}

// HasBookedSlots reports whether any slot on the day holds a booking.
func (d *DayAvailability) HasBookedSlots() bool {
	for i := range d.Slots {
		if d.Slots[i].IsBooked {
			return true
		}
	}
	return false
}
