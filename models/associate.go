package models

import "time"

// Designation values select which buffer rule applies when a slot is booked.
const (
	DesignationPsychologist  = "psychologist"
	DesignationCosmetologist = "cosmetologist"
)

// Associate is the root aggregate: one service provider together with their
// whole calendar. Every slot mutation goes through the associate and is
// persisted as a single document write guarded by Version.
type Associate struct {
	ID           string            `bson:"id" json:"id"`
	Name         string            `bson:"name" json:"name"`
	Designation  string            `bson:"designation" json:"designation"`
	Availability []DayAvailability `bson:"availability" json:"availability,omitempty"`
	FCMToken     string            `bson:"fcmToken,omitempty" json:"-"`
	Version      int               `bson:"version" json:"version"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time         `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// Day returns the availability entry for the given date, or nil if the
// associate never opened that date.
func (a *Associate) Day(date string) *DayAvailability {
	for i := range a.Availability {
		if a.Availability[i].Date == date {
			return &a.Availability[i]
		}
	}
	return nil
}

// EnsureDay returns the availability entry for the given date, creating an
// empty one (kept sorted by date) when it does not exist yet.
func (a *Associate) EnsureDay(date string) *DayAvailability {
	if day := a.Day(date); day != nil {
		return day
	}
	a.Availability = append(a.Availability, DayAvailability{Date: date})
	for i := len(a.Availability) - 1; i > 0; i-- {
		if a.Availability[i-1].Date <= a.Availability[i].Date {
			break
		}
		a.Availability[i-1], a.Availability[i] = a.Availability[i], a.Availability[i-1]
	}
	return a.Day(date)
}

// PruneDay drops the availability entry for date when every slot is gone.
// A day that still carries a booked slot is never removed.
func (a *Associate) PruneDay(date string) {
	for i := range a.Availability {
		if a.Availability[i].Date != date {
			continue
		}
		if len(a.Availability[i].Slots) == 0 && !a.Availability[i].HasBookedSlots() {
			a.Availability = append(a.Availability[:i], a.Availability[i+1:]...)
		}
		return
	}
}
