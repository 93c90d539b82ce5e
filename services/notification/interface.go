package notification

import (
	"context"
	"fmt"

	associateRepo "serenia/database/repository/associate"
	"serenia/models"
	"serenia/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService delivers the domain events the booking engine emits.
// Delivery is best-effort: a failed push never rolls back a booking.
type NotificationService interface {
	NotifyBookingCreated(ctx context.Context, event models.BookingCreated) error
	NotifyBookingCancelled(ctx context.Context, event models.BookingCancelled) error
	SendReminder(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultNotificationService is the production implementation, pushing FCM
// messages to the associate's registered device.
type DefaultNotificationService struct {
	Associates associateRepo.AssociateRepository
}

func NewDefaultNotificationService(associates associateRepo.AssociateRepository) (*DefaultNotificationService, error) {
	if associates == nil {
		return nil, fmt.Errorf("notification service initialization error: associate repository is nil")
	}
	return &DefaultNotificationService{Associates: associates}, nil
}

// NotifyBookingCreated pushes a "new session booked" notification to the
// associate.
func (s *DefaultNotificationService) NotifyBookingCreated(ctx context.Context, event models.BookingCreated) error {
	title := "New session booked"
	body := fmt.Sprintf("A %d-minute session was booked for %s at %s.", event.Duration, event.Date, event.Time)
	data := map[string]string{
		"bookingId": event.BookingID,
		"date":      event.Date,
		"time":      event.Time,
	}
	return s.push(ctx, event.AssociateID, title, body, data)
}

// NotifyBookingCancelled pushes a cancellation notice to the associate.
func (s *DefaultNotificationService) NotifyBookingCancelled(ctx context.Context, event models.BookingCancelled) error {
	title := "Session cancelled"
	body := "A booked session on your calendar was cancelled."
	data := map[string]string{
		"bookingId": event.BookingID,
	}
	return s.push(ctx, event.AssociateID, title, body, data)
}

// SendReminder pushes a scheduled session reminder to the associate.
func (s *DefaultNotificationService) SendReminder(ctx context.Context, payload models.ReminderPayload) error {
	data := map[string]string{
		"reminderId": payload.ReminderID,
		"fireDate":   payload.FireDate,
	}
	return s.push(ctx, payload.ID, payload.Title, payload.Body, data)
}

func (s *DefaultNotificationService) push(ctx context.Context, associateID, title, body string, data map[string]string) error {
	assoc, err := s.Associates.GetByID(associateID)
	if err != nil {
		return fmt.Errorf("notification: could not find associate %s: %w", associateID, err)
	}
	if assoc.FCMToken == "" {
		return fmt.Errorf("notification: associate %s has no FCM token", associateID)
	}
	if utils.FCMClient == nil {
		return fmt.Errorf("notification: FCM client not initialized")
	}

	msg := &messaging.Message{
		Token: assoc.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("notification: failed to send FCM message: %w", err)
	}
	return nil
}
