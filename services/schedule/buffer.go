package schedule

import "serenia/models"

// SideEffects lists the neighbor slots affected by booking one slot: times
// that must be blocked outright, and times whose allowed durations narrow to
// 50 minutes only.
type SideEffects struct {
	BlockedTimes []string
	RestrictTo50 []string
}

// ComputeSideEffects returns the neighbor-slot consequences of booking a slot
// at bookedTime for bookedDuration, under the buffer rule selected by the
// associate's designation. It is pure: no I/O, no aggregate access.
//
// Offsets wrap at midnight into the same day; a booking near 00:00 never
// reaches into the adjacent date's calendar.
func ComputeSideEffects(designation, bookedTime string, bookedDuration int) SideEffects {
	base, err := ParseClock(bookedTime)
	if err != nil {
		return SideEffects{}
	}

	switch designation {
	case models.DesignationCosmetologist:
		return SideEffects{
			BlockedTimes: []string{FormatClock(base - 30), FormatClock(base + 30)},
		}
	case models.DesignationPsychologist:
		switch bookedDuration {
		case 50:
			return SideEffects{
				BlockedTimes: []string{FormatClock(base - 30), FormatClock(base + 30)},
			}
		case 80:
			// An 80-minute session spills into the two following grid slots,
			// and an 80-minute session starting an hour earlier would overlap
			// it, so that slot narrows to 50 instead of closing.
			return SideEffects{
				BlockedTimes: []string{
					FormatClock(base - 30),
					FormatClock(base + 30),
					FormatClock(base + 60),
				},
				RestrictTo50: []string{FormatClock(base - 60)},
			}
		}
	}
	return SideEffects{}
}

// ApplySideEffects blocks and restricts the affected neighbor slots on the
// day. A blocked time only touches a slot that is currently open and unbooked;
// booked or already-closed neighbors are left alone.
func ApplySideEffects(day *models.DayAvailability, effects SideEffects) {
	if day == nil {
		return
	}
	for _, t := range effects.BlockedTimes {
		slot := day.FindSlot(t)
		if slot != nil && slot.IsAvailable && !slot.IsBooked {
			slot.IsAvailable = false
		}
	}
	for _, t := range effects.RestrictTo50 {
		slot := day.FindSlot(t)
		if slot != nil && slot.IsAvailable && !slot.IsBooked {
			slot.PossibleDurations = []int{50}
		}
	}
}

// ReverseSideEffects undoes what ApplySideEffects did for one booking: blocked
// neighbors reopen and the restricted slot regains the default durations.
// Booked neighbors are never touched. Callers re-apply the side effects of
// the remaining bookings afterwards, since a neighbor may have been blocked
// by more than one booking.
func ReverseSideEffects(day *models.DayAvailability, effects SideEffects) {
	if day == nil {
		return
	}
	for _, t := range effects.BlockedTimes {
		slot := day.FindSlot(t)
		if slot != nil && !slot.IsBooked && !slot.IsAvailable {
			slot.IsAvailable = true
		}
	}
	for _, t := range effects.RestrictTo50 {
		slot := day.FindSlot(t)
		if slot != nil && !slot.IsBooked {
			slot.PossibleDurations = nil
		}
	}
}
