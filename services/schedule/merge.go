package schedule

import "serenia/models"

// MergeTimes re-applies an availability pattern to a day. Semantics:
//
//   - every booked slot is retained unchanged, whether or not its time is in
//     the incoming set (a bulk write never silently drops a booking);
//   - an incoming time whose existing slot carries a narrowed duration set
//     keeps that narrowing instead of resetting to the defaults;
//   - open slots whose time is not in the incoming set are replaced away.
//
// All times are validated up front; a malformed time rejects the whole call
// with no partial application.
func MergeTimes(day *models.DayAvailability, times []string) error {
	for _, t := range times {
		if !ValidGridTime(t) {
			return NewError(KindValidation, "invalid slot time %q: want HH:MM on a 30-minute grid", t)
		}
	}

	merged := make([]models.Slot, 0, len(day.Slots)+len(times))
	for i := range day.Slots {
		if day.Slots[i].IsBooked {
			merged = append(merged, day.Slots[i])
		}
	}

	seen := make(map[string]bool, len(times))
	for _, t := range times {
		if seen[t] {
			continue
		}
		seen[t] = true

		existing := day.FindSlot(t)
		if existing != nil && existing.IsBooked {
			// Already retained above; booked slots are immutable under
			// pattern writes.
			continue
		}
		slot := models.Slot{
			Time:        t,
			IsAvailable: true,
			Duration:    models.SlotStepMinutes,
		}
		if existing != nil {
			slot.PossibleDurations = existing.PossibleDurations
		}
		merged = append(merged, slot)
	}

	day.Slots = merged
	day.SortSlots()
	return nil
}

// ClearOpenSlots removes every slot on the day that does not hold a booking.
func ClearOpenSlots(day *models.DayAvailability) {
	kept := day.Slots[:0]
	for i := range day.Slots {
		if day.Slots[i].IsBooked {
			kept = append(kept, day.Slots[i])
		}
	}
	day.Slots = kept
}
