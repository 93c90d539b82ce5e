package schedule

import "serenia/models"

// ReconcileDay re-derives the duration restrictions a day's 80-minute
// bookings impose on their neighbors. Newly opened availability may sit next
// to a pre-existing long booking and must inherit its restriction, so this
// runs after every mutation of a day's slots.
//
// Idempotent: running it twice yields the same slot state as running it once.
func ReconcileDay(associate *models.Associate, date string) {
	day := associate.Day(date)
	if day == nil {
		return
	}

	for i := range day.Slots {
		slot := &day.Slots[i]
		if !slot.IsBooked || slot.Duration != 80 {
			continue
		}
		effects := ComputeSideEffects(associate.Designation, slot.Time, slot.Duration)
		for _, t := range effects.RestrictTo50 {
			target := day.FindSlot(t)
			if target != nil && target.IsAvailable && !target.IsBooked {
				target.PossibleDurations = []int{50}
			}
		}
	}
}
