package schedule

import (
	"testing"

	"serenia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDay(date string, times ...string) models.DayAvailability {
	day := models.DayAvailability{Date: date}
	for _, t := range times {
		day.Slots = append(day.Slots, models.Slot{
			Time:        t,
			IsAvailable: true,
			Duration:    models.SlotStepMinutes,
		})
	}
	return day
}

func TestComputeSideEffectsCosmetologist(t *testing.T) {
	effects := ComputeSideEffects(models.DesignationCosmetologist, "10:00", 30)
	assert.ElementsMatch(t, []string{"09:30", "10:30"}, effects.BlockedTimes)
	assert.Empty(t, effects.RestrictTo50)

	// Same neighbors regardless of session length.
	effects = ComputeSideEffects(models.DesignationCosmetologist, "10:00", 80)
	assert.ElementsMatch(t, []string{"09:30", "10:30"}, effects.BlockedTimes)
	assert.Empty(t, effects.RestrictTo50)
}

func TestComputeSideEffectsPsychologist50(t *testing.T) {
	effects := ComputeSideEffects(models.DesignationPsychologist, "11:00", 50)
	assert.ElementsMatch(t, []string{"10:30", "11:30"}, effects.BlockedTimes)
	assert.Empty(t, effects.RestrictTo50)
}

func TestComputeSideEffectsPsychologist80(t *testing.T) {
	effects := ComputeSideEffects(models.DesignationPsychologist, "11:00", 80)
	assert.ElementsMatch(t, []string{"10:30", "11:30", "12:00"}, effects.BlockedTimes)
	assert.Equal(t, []string{"10:00"}, effects.RestrictTo50)
}

func TestComputeSideEffectsPsychologist30HasNone(t *testing.T) {
	effects := ComputeSideEffects(models.DesignationPsychologist, "11:00", 30)
	assert.Empty(t, effects.BlockedTimes)
	assert.Empty(t, effects.RestrictTo50)
}

func TestComputeSideEffectsWrapsAtMidnight(t *testing.T) {
	effects := ComputeSideEffects(models.DesignationPsychologist, "00:00", 50)
	assert.ElementsMatch(t, []string{"23:30", "00:30"}, effects.BlockedTimes)

	effects = ComputeSideEffects(models.DesignationPsychologist, "23:30", 80)
	assert.ElementsMatch(t, []string{"23:00", "00:00", "00:30"}, effects.BlockedTimes)
	assert.Equal(t, []string{"22:30"}, effects.RestrictTo50)
}

func TestApplySideEffects(t *testing.T) {
	day := openDay("2026-09-10", "10:00", "10:30", "11:00", "11:30", "12:00")
	effects := ComputeSideEffects(models.DesignationPsychologist, "11:00", 80)
	ApplySideEffects(&day, effects)

	require.NotNil(t, day.FindSlot("10:30"))
	assert.False(t, day.FindSlot("10:30").IsAvailable)
	assert.False(t, day.FindSlot("11:30").IsAvailable)
	assert.False(t, day.FindSlot("12:00").IsAvailable)
	assert.Equal(t, []int{50}, day.FindSlot("10:00").PossibleDurations)
}

func TestApplySideEffectsSkipsBookedAndMissingNeighbors(t *testing.T) {
	day := openDay("2026-09-10", "10:30", "11:00")
	neighbor := day.FindSlot("10:30")
	neighbor.IsBooked = true
	neighbor.IsAvailable = false
	neighbor.BookingID = "other"

	// 11:30 and 12:00 are not on the calendar at all.
	effects := ComputeSideEffects(models.DesignationPsychologist, "11:00", 80)
	ApplySideEffects(&day, effects)

	assert.True(t, day.FindSlot("10:30").IsBooked)
	assert.Equal(t, "other", day.FindSlot("10:30").BookingID)
}

func TestReverseSideEffectsReopensNeighbors(t *testing.T) {
	day := openDay("2026-09-10", "10:00", "10:30", "11:00", "11:30", "12:00")
	effects := ComputeSideEffects(models.DesignationPsychologist, "11:00", 80)
	ApplySideEffects(&day, effects)
	ReverseSideEffects(&day, effects)

	for _, tm := range []string{"10:30", "11:30", "12:00"} {
		assert.True(t, day.FindSlot(tm).IsAvailable, "slot %s", tm)
	}
	assert.Nil(t, day.FindSlot("10:00").PossibleDurations)
}

func TestReverseSideEffectsLeavesBookedNeighborsAlone(t *testing.T) {
	day := openDay("2026-09-10", "10:30", "11:00")
	booked := day.FindSlot("10:30")
	booked.IsBooked = true
	booked.IsAvailable = false

	effects := SideEffects{BlockedTimes: []string{"10:30"}}
	ReverseSideEffects(&day, effects)

	assert.False(t, day.FindSlot("10:30").IsAvailable)
	assert.True(t, day.FindSlot("10:30").IsBooked)
}
