package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
)

// Booking represents a confirmed booking record. The slot it occupies holds a
// weak back-reference via its BookingID field; the booking never owns the slot.
type Booking struct {
	ID          string    `bson:"id" json:"id"`                     // Unique booking identifier (UUID)
	AssociateID string    `bson:"associate_id" json:"associate_id"` // Associate who was booked
	SubjectID   string    `bson:"subject_id" json:"subject_id"`     // Client who made the booking
	Date        string    `bson:"date" json:"date"`                 // Booking date in "YYYY-MM-DD" format
	Time        string    `bson:"time" json:"time"`                 // Session start in "HH:MM" format
	Duration    int       `bson:"duration" json:"duration"`         // Session length in minutes (30, 50 or 80)
	ServiceType string    `bson:"service_type" json:"service_type"` // e.g., "counselling", "cosmetology"
	Status      string    `bson:"status" json:"status"`             // e.g., "Confirmed", "Cancelled"
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`     // Timestamp when booking was created
}
