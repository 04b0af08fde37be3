package booking

import (
	"sync"
	"time"

	bookingRepo "stayhub/database/repository/booking"
	"stayhub/models"
)

// In-memory repository fakes used across the engine tests.

type fakePropertyRepo struct {
	props map[string]*models.Property
}

func (r *fakePropertyRepo) GetByID(id string) (*models.Property, error) {
	if p, ok := r.props[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePropertyRepo) Create(p *models.Property) error {
	r.props[p.ID] = p
	return nil
}

func (r *fakePropertyRepo) Update(p *models.Property) error {
	r.props[p.ID] = p
	return nil
}

func (r *fakePropertyRepo) Delete(id string) error {
	delete(r.props, id)
	return nil
}

func (r *fakePropertyRepo) Search(params models.PropertySearchParams) ([]models.Property, int64, error) {
	return nil, 0, nil
}

type fakeAvailabilityRepo struct {
	overrides map[string]models.AvailabilityDay // keyed by date
}

func (r *fakeAvailabilityRepo) GetRange(propertyID, start, end string) (map[string]models.AvailabilityDay, error) {
	out := make(map[string]models.AvailabilityDay)
	for date, day := range r.overrides {
		if date >= start && date < end {
			out[date] = day
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) BulkSet(propertyID string, days []models.AvailabilityDay) error {
	for _, d := range days {
		r.overrides[d.Date] = d
	}
	return nil
}

func (r *fakeAvailabilityRepo) DeleteForProperty(propertyID string) error {
	r.overrides = make(map[string]models.AvailabilityDay)
	return nil
}

// fakeBookingRepo mirrors the mongo repo's contract, including the
// transactional overlap re-check in InsertActive. Guarded by a mutex so
// the concurrency tests exercise real interleavings.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetActiveByProperty(propertyID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.PropertyID == propertyID && b.IsActive() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) InsertActive(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.PropertyID != booking.PropertyID || !b.IsActive() {
			continue
		}
		if booking.CheckInDate < b.CheckOutDate && b.CheckInDate < booking.CheckOutDate {
			return bookingRepo.ErrDateConflict
		}
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(id, status string, at time.Time) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	b.Status = status
	b.UpdatedAt = at
	if status == models.BookingStatusCancelled {
		b.CancelledAt = &at
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByGuest(guestID string, page, limit int) ([]models.Booking, int64, error) {
	return nil, 0, nil
}

func (r *fakeBookingRepo) ListByHost(hostID string, page, limit int) ([]models.Booking, int64, error) {
	return nil, 0, nil
}

// fakeScheduler records lifecycle scheduling calls.
type fakeScheduler struct {
	mu          sync.Mutex
	completions []string
	expiries    []string
}

func (s *fakeScheduler) ScheduleCompletion(b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completions = append(s.completions, b.ID)
	return nil
}

func (s *fakeScheduler) ScheduleExpiry(b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiries = append(s.expiries, b.ID)
	return nil
}

// testProperty returns the listing used by most engine tests: 10000 per
// night, 2000 cleaning fee, 10% service fee, 2 to 30 nights, 4 guests.
func testProperty() *models.Property {
	return &models.Property{
		ID:            "prop-1",
		HostID:        "host-1",
		Title:         "Sea view cottage",
		PricePerNight: 10000,
		CleaningFee:   2000,
		ServiceFeeBps: 1000,
		Currency:      "USD",
		MinNights:     2,
		MaxNights:     30,
		MaxGuests:     4,
		IsPublished:   true,
	}
}

func newTestEngine(props ...*models.Property) (*DefaultBookingEngine, *fakeBookingRepo, *fakeAvailabilityRepo, *fakeScheduler) {
	propRepo := &fakePropertyRepo{props: make(map[string]*models.Property)}
	for _, p := range props {
		propRepo.props[p.ID] = p
	}
	bookings := newFakeBookingRepo()
	avail := &fakeAvailabilityRepo{overrides: make(map[string]models.AvailabilityDay)}
	sched := &fakeScheduler{}

	engine := &DefaultBookingEngine{
		Props:                propRepo,
		Bookings:             bookings,
		Availability:         avail,
		Tax:                  FlatTaxPolicy{RateBps: 800},
		DefaultServiceFeeBps: 1200,
		Scheduler:            sched,
	}
	return engine, bookings, avail, sched
}

func int64Ptr(v int64) *int64 { return &v }

func stayInput(propertyID, checkIn, checkOut string) models.CreateBookingInput {
	return models.CreateBookingInput{
		PropertyID:   propertyID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Adults:       2,
	}
}
