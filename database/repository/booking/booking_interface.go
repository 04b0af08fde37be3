package bookingRepo

import (
	"errors"
	"time"

	"stayhub/models"
)

// ErrDateConflict is returned by InsertActive when the storage-level
// overlap re-check finds a competing active booking. It lets the engine
// distinguish a lost race from a transient store failure.
var ErrDateConflict = errors.New("booking dates conflict with an existing active booking")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Booking, error)
	// GetActiveByProperty returns the pending and confirmed bookings of a
	// property ordered by check-in date.
	GetActiveByProperty(propertyID string) ([]models.Booking, error)
	// InsertActive inserts a new booking after re-checking, inside a
	// transaction, that no active booking overlaps its date range.
	// Returns ErrDateConflict if one does.
	InsertActive(booking *models.Booking) error
	// UpdateStatus transitions a booking's status and returns the updated
	// record. A transition to cancelled also stamps cancelled_at.
	UpdateStatus(id, status string, at time.Time) (*models.Booking, error)
	// ListByGuest returns a guest's bookings, newest first, paginated.
	ListByGuest(guestID string, page, limit int) ([]models.Booking, int64, error)
	// ListByHost returns the bookings across a host's properties, newest
	// first, paginated.
	ListByHost(hostID string, page, limit int) ([]models.Booking, int64, error)
}
