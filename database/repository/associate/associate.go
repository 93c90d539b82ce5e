package associateRepo

import (
	"errors"

	"serenia/models"
)

// Sentinel errors surfaced by the repository.
var (
	// ErrNotFound means no associate document matched the given id.
	ErrNotFound = errors.New("associate not found")
	// ErrVersionConflict means a concurrent writer bumped the aggregate
	// version between load and save. Callers reload and retry.
	ErrVersionConflict = errors.New("associate version conflict")
)

// AssociateRepository defines methods for associate aggregate data access.
// The associate document (all day availabilities and slots included) is the
// unit of atomic persistence.
type AssociateRepository interface {
	// GetByID retrieves an associate aggregate by its unique ID.
	GetByID(id string) (*models.Associate, error)
	// GetAll retrieves all associates without their calendars.
	GetAll() ([]models.Associate, error)
	// GetByDesignation retrieves all associates holding the given
	// designation, without their calendars.
	GetByDesignation(designation string) ([]models.Associate, error)
	// Create inserts a new associate aggregate.
	Create(associate *models.Associate) error
	// ReplaceVersioned persists the whole aggregate if and only if the stored
	// version still equals associate.Version, bumping the version by one.
	// Returns ErrVersionConflict when a concurrent writer won the race.
	ReplaceVersioned(associate *models.Associate) error
	// Delete removes an associate aggregate by its ID.
	Delete(id string) error
}
