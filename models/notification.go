package models

// BookingCreated is the domain event emitted exactly once after a booking
// transaction commits. Delivery is the notification dispatcher's job.
type BookingCreated struct {
	BookingID   string `json:"bookingId"`
	AssociateID string `json:"associateId"`
	SubjectID   string `json:"subjectId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
}

// BookingCancelled is emitted exactly once after a cancellation commits.
type BookingCancelled struct {
	BookingID   string `json:"bookingId"`
	AssociateID string `json:"associateId"`
	SubjectID   string `json:"subjectId"`
}

type ReminderPayload struct {
	ID         string `json:"id"`         // associateId the push goes to
	ReminderID string `json:"reminderId"` // booking id the reminder belongs to
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"`
}
