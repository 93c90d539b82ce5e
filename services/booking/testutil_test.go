package booking

import (
	"context"
	"sort"
	"time"

	associateRepo "serenia/database/repository/associate"
	bookingRepo "serenia/database/repository/booking"
	"serenia/models"
)

// fakeAssociateRepo is an in-memory AssociateRepository with the same
// versioning semantics as the Mongo implementation. conflictNext forces the
// next n ReplaceVersioned calls to lose the race.
type fakeAssociateRepo struct {
	associates   map[string]*models.Associate
	conflictNext int
	replaceCalls int
}

func newFakeAssociateRepo(assocs ...*models.Associate) *fakeAssociateRepo {
	repo := &fakeAssociateRepo{associates: make(map[string]*models.Associate)}
	for _, a := range assocs {
		repo.associates[a.ID] = cloneAssociate(a)
	}
	return repo
}

func cloneAssociate(a *models.Associate) *models.Associate {
	clone := *a
	clone.Availability = make([]models.DayAvailability, len(a.Availability))
	for i := range a.Availability {
		day := a.Availability[i]
		day.Slots = append([]models.Slot(nil), a.Availability[i].Slots...)
		clone.Availability[i] = day
	}
	return &clone
}

func (r *fakeAssociateRepo) GetByID(id string) (*models.Associate, error) {
	a, ok := r.associates[id]
	if !ok {
		return nil, associateRepo.ErrNotFound
	}
	return cloneAssociate(a), nil
}

func (r *fakeAssociateRepo) GetAll() ([]models.Associate, error) {
	var out []models.Associate
	for _, a := range r.associates {
		c := cloneAssociate(a)
		c.Availability = nil
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeAssociateRepo) GetByDesignation(designation string) ([]models.Associate, error) {
	var out []models.Associate
	for _, a := range r.associates {
		if a.Designation != designation {
			continue
		}
		c := cloneAssociate(a)
		c.Availability = nil
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeAssociateRepo) Create(a *models.Associate) error {
	r.associates[a.ID] = cloneAssociate(a)
	return nil
}

func (r *fakeAssociateRepo) ReplaceVersioned(a *models.Associate) error {
	r.replaceCalls++
	stored, ok := r.associates[a.ID]
	if !ok {
		return associateRepo.ErrNotFound
	}
	if r.conflictNext > 0 {
		r.conflictNext--
		stored.Version++
		return associateRepo.ErrVersionConflict
	}
	if stored.Version != a.Version {
		return associateRepo.ErrVersionConflict
	}
	saved := cloneAssociate(a)
	saved.Version = a.Version + 1
	r.associates[a.ID] = saved
	a.Version = saved.Version
	return nil
}

func (r *fakeAssociateRepo) Delete(id string) error {
	if _, ok := r.associates[id]; !ok {
		return associateRepo.ErrNotFound
	}
	delete(r.associates, id)
	return nil
}

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings map[string]models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) Create(bk *models.Booking) error {
	r.bookings[bk.ID] = *bk
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	bk, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return &bk, nil
}

func (r *fakeBookingRepo) GetBySubject(subjectID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.SubjectID == subjectID {
			out = append(out, bk)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBookingRepo) GetByAssociateDate(associateID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.AssociateID == associateID && bk.Date == date {
			out = append(out, bk)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (r *fakeBookingRepo) Delete(id string) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

// fakeNotifier records the events it was asked to deliver.
type fakeNotifier struct {
	created   []models.BookingCreated
	cancelled []models.BookingCancelled
	reminders []models.ReminderPayload
}

func (n *fakeNotifier) NotifyBookingCreated(_ context.Context, event models.BookingCreated) error {
	n.created = append(n.created, event)
	return nil
}

func (n *fakeNotifier) NotifyBookingCancelled(_ context.Context, event models.BookingCancelled) error {
	n.cancelled = append(n.cancelled, event)
	return nil
}

func (n *fakeNotifier) SendReminder(_ context.Context, payload models.ReminderPayload) error {
	n.reminders = append(n.reminders, payload)
	return nil
}

// upcomingDate returns a date a week out, safely inside the booking horizon.
func upcomingDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func associateWithOpenDay(id, designation, date string, times ...string) *models.Associate {
	assoc := &models.Associate{
		ID:          id,
		Name:        "Dr. Vera Lind",
		Designation: designation,
	}
	day := assoc.EnsureDay(date)
	for _, t := range times {
		day.Slots = append(day.Slots, models.Slot{
			Time:        t,
			IsAvailable: true,
			Duration:    models.SlotStepMinutes,
		})
	}
	return assoc
}
