package availability

import (
	"testing"

	"serenia/models"
	"serenia/services/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestApplyPatternSingleDate(t *testing.T) {
	repo := newFakeAssociateRepo(newPsychologist("assoc-1"))
	svc := &DefaultAvailabilityService{Repo: repo}

	days, err := svc.ApplyPattern("assoc-1", models.ApplyPatternRequest{
		Pattern:   models.PatternSingleDate,
		StartDate: "2026-09-10",
		Times:     []string{"09:00", "09:30"},
	})
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2026-09-10", days[0].Date)
	assert.Len(t, days[0].Slots, 2)
}

func TestApplyPatternWeekDefaultsToSevenDays(t *testing.T) {
	repo := newFakeAssociateRepo(newPsychologist("assoc-1"))
	svc := &DefaultAvailabilityService{Repo: repo}

	days, err := svc.ApplyPattern("assoc-1", models.ApplyPatternRequest{
		Pattern:   models.PatternWeek,
		StartDate: "2026-09-07",
		Times:     []string{"10:00"},
	})
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, "2026-09-07", days[0].Date)
	assert.Equal(t, "2026-09-13", days[6].Date)

	// One aggregate write for the whole pattern.
	assert.Equal(t, 1, repo.replaceCalls)
}

func TestApplyPatternMonthDefaultsToMonthEnd(t *testing.T) {
	repo := newFakeAssociateRepo(newPsychologist("assoc-1"))
	svc := &DefaultAvailabilityService{Repo: repo}

	days, err := svc.ApplyPattern("assoc-1", models.ApplyPatternRequest{
		Pattern:   models.PatternMonth,
		StartDate: "2026-09-25",
		Times:     []string{"10:00"},
	})
	require.NoError(t, err)
	require.Len(t, days, 6)
	assert.Equal(t, "2026-09-30", days[5].Date)
}

func TestApplyPatternDayOfWeek(t *testing.T) {
	repo := newFakeAssociateRepo(newPsychologist("assoc-1"))
	svc := &DefaultAvailabilityService{Repo: repo}

	// Tuesdays between Sep 1 and Sep 30, 2026: the 1st, 8th, 15th, 22nd, 29th.
	days, err := svc.ApplyPattern("assoc-1", models.ApplyPatternRequest{
		Pattern:   models.PatternDayOfWeek,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-30",
		DayOfWeek: intPtr(2),
		Times:     []string{"14:00"},
	})
	require.NoError(t, err)
	require.Len(t, days, 5)
	assert.Equal(t, "2026-09-01", days[0].Date)
	assert.Equal(t, "2026-09-29", days[4].Date)
}

func TestApplyPatternDayOfWeekRequiresRange(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: newFakeAssociateRepo(newPsychologist("assoc-1"))}

	_, err := svc.ApplyPattern("assoc-1", models.ApplyPatternRequest{
		Pattern:   models.PatternDayOfWeek,
		StartDate: "2026-09-01",
		DayOfWeek: intPtr(2),
		Times:     []string{"14:00"},
	})
	assert.True(t, schedule.IsKind(err, schedule.KindValidation))

	_, err = svc.ApplyPattern("assoc-1", models.ApplyPatternRequest{
		Pattern:   models.PatternDayOfWeek,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-30",
		DayOfWeek: intPtr(9),
		Times:     []string{"14:00"},
	})
	assert.True(t, schedule.IsKind(err, schedule.KindValidation))
}

func TestApplyPatternRequiresTimesWhenOpening(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: newFakeAssociateRepo(newPsychologist("assoc-1"))}

	_, err := svc.ApplyPattern("assoc-1", models.ApplyPatternRequest{
		Pattern:   models.PatternWeek,
		StartDate: "2026-09-07",
	})
	assert.True(t, schedule.IsKind(err, schedule.KindValidation))
}

func TestApplyPatternUnknownPattern(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: newFakeAssociateRepo(newPsychologist("assoc-1"))}

	_, err := svc.ApplyPattern("assoc-1", models.ApplyPatternRequest{
		Pattern:   "fortnight",
		StartDate: "2026-09-07",
		Times:     []string{"10:00"},
	})
	assert.True(t, schedule.IsKind(err, schedule.KindValidation))
}

func TestApplyPatternEndBeforeStart(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: newFakeAssociateRepo(newPsychologist("assoc-1"))}

	_, err := svc.ApplyPattern("assoc-1", models.ApplyPatternRequest{
		Pattern:   models.PatternWeek,
		StartDate: "2026-09-07",
		EndDate:   "2026-09-01",
		Times:     []string{"10:00"},
	})
	assert.True(t, schedule.IsKind(err, schedule.KindValidation))
}

func TestApplyPatternInvalidTimeRollsBackAllDates(t *testing.T) {
	repo := newFakeAssociateRepo(newPsychologist("assoc-1"))
	svc := &DefaultAvailabilityService{Repo: repo}

	_, err := svc.ApplyPattern("assoc-1", models.ApplyPatternRequest{
		Pattern:   models.PatternWeek,
		StartDate: "2026-09-07",
		Times:     []string{"10:00", "10:45"},
	})
	require.Error(t, err)
	assert.True(t, schedule.IsKind(err, schedule.KindValidation))

	// No aggregate write happened; the calendar is untouched.
	assert.Equal(t, 0, repo.replaceCalls)
	stored, err := repo.GetByID("assoc-1")
	require.NoError(t, err)
	assert.Empty(t, stored.Availability)
}

func TestApplyClearWeekPattern(t *testing.T) {
	assoc := newPsychologist("assoc-1")
	for _, d := range []string{"2026-09-07", "2026-09-08"} {
		day := assoc.EnsureDay(d)
		day.Slots = []models.Slot{{Time: "09:00", IsAvailable: true, Duration: 30}}
	}
	booked := assoc.EnsureDay("2026-09-09")
	booked.Slots = []models.Slot{
		{Time: "09:00", IsAvailable: true, Duration: 30},
		{Time: "10:00", IsBooked: true, Duration: 50, BookingID: "bkg-1"},
	}
	repo := newFakeAssociateRepo(assoc)
	svc := &DefaultAvailabilityService{Repo: repo}

	_, err := svc.ApplyPattern("assoc-1", models.ApplyPatternRequest{
		Pattern:   models.PatternClearWeek,
		StartDate: "2026-09-07",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID("assoc-1")
	require.NoError(t, err)
	assert.Nil(t, stored.Day("2026-09-07"))
	assert.Nil(t, stored.Day("2026-09-08"))

	kept := stored.Day("2026-09-09")
	require.NotNil(t, kept)
	require.Len(t, kept.Slots, 1)
	assert.Equal(t, "bkg-1", kept.Slots[0].BookingID)
}

func TestApplyPatternReconcilesAgainstExistingLongBooking(t *testing.T) {
	assoc := newPsychologist("assoc-1")
	day := assoc.EnsureDay("2026-09-10")
	day.Slots = []models.Slot{
		{Time: "11:00", IsBooked: true, Duration: 80, BookingID: "bkg-1"},
	}
	repo := newFakeAssociateRepo(assoc)
	svc := &DefaultAvailabilityService{Repo: repo}

	days, err := svc.ApplyPattern("assoc-1", models.ApplyPatternRequest{
		Pattern:   models.PatternSingleDate,
		StartDate: "2026-09-10",
		Times:     []string{"10:00"},
	})
	require.NoError(t, err)
	require.Len(t, days, 1)

	reopened := days[0]
	slot := reopened.FindSlot("10:00")
	require.NotNil(t, slot)
	assert.Equal(t, []int{50}, slot.PossibleDurations)
}
