package availability

import (
	associateRepo "serenia/database/repository/associate"
	"serenia/models"

	"github.com/go-redis/redis/v8"
)

// AvailabilityService manages associate calendars: opening slots, bulk
// pattern updates, clears, and the read-side queries built on top of them.
type AvailabilityService interface {
	SetAvailability(associateID string, req models.SetAvailabilityRequest) (*models.DayAvailability, error)
	ApplyPattern(associateID string, req models.ApplyPatternRequest) ([]models.DayAvailability, error)
	ClearAvailability(associateID string, dates []string) error
	GetDayAvailability(associateID, date string) (*models.DayAvailability, error)
	GetCalendar(associateID, startDate, endDate string) ([]models.DayAvailability, error)
	NextAvailableSlot(associateID, fromDate string) (string, *models.Slot, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Repo  associateRepo.AssociateRepository
	Cache *redis.Client
}
