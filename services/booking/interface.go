package booking

import (
	availabilityRepo "stayhub/database/repository/availability"
	bookingRepo "stayhub/database/repository/booking"
	propertyRepo "stayhub/database/repository/property"
	"stayhub/models"
)

// BookingEngine is the availability and booking engine. It resolves
// per-day calendars, quotes stays, and is the only mutating entry point
// for booking records.
type BookingEngine interface {
	// ResolveCalendar returns the effective per-day availability and price
	// for [startDate, endDate), ascending by date.
	ResolveCalendar(propertyID, startDate, endDate string) ([]models.DayAvailability, error)
	// HasConflict reports whether [checkIn, checkOut) overlaps an active
	// booking of the property. excludeBookingID skips one booking, for
	// re-validation during modification.
	HasConflict(propertyID, checkIn, checkOut, excludeBookingID string) (bool, error)
	// Quote computes the deterministic price breakdown for a candidate stay.
	Quote(propertyID, checkIn, checkOut string) (*models.PriceBreakdown, error)
	// Reserve validates and atomically commits a new booking for the guest.
	Reserve(guestID string, in models.CreateBookingInput) (*models.Booking, error)
	// Cancel transitions a booking to cancelled on behalf of its guest or host.
	Cancel(bookingID, actorID string) (*models.Booking, error)
	// Confirm transitions a pending booking to confirmed (host only).
	Confirm(bookingID, actorID string) (*models.Booking, error)
	// Complete transitions a confirmed booking to completed after checkout.
	Complete(bookingID string) (*models.Booking, error)
	// ExpirePending cancels a booking that is still pending; any other
	// state is left untouched.
	ExpirePending(bookingID string) error
	// GetBooking returns a booking visible to the given actor.
	GetBooking(bookingID, actorID string) (*models.Booking, error)
}

// DefaultBookingEngine implements BookingEngine over the store repositories.
type DefaultBookingEngine struct {
	Props        propertyRepo.PropertyRepository
	Bookings     bookingRepo.BookingRepository
	Availability availabilityRepo.AvailabilityRepository

	// Tax supplies the tax schedule; the rate policy is configuration,
	// not engine code.
	Tax TaxPolicy
	// DefaultServiceFeeBps applies when a property has no service fee set.
	DefaultServiceFeeBps int64
	// Scheduler, when set, receives deferred lifecycle work (completion
	// after checkout, expiry of stale pending bookings).
	Scheduler LifecycleScheduler

	locks propertyLockStore
}

// getProperty fetches a property or fails with a notFound engine error.
func (e *DefaultBookingEngine) getProperty(id string) (*models.Property, error) {
	prop, err := e.Props.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, newEngineError(CodeNotFound, "property %s not found", id)
	}
	return prop, nil
}
