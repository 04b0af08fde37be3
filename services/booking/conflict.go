package booking

import (
	"stayhub/models"
)

// HasConflict scans the property's active bookings (pending or confirmed)
// for an overlap with the half-open interval [checkIn, checkOut).
// excludeBookingID, when non-empty, skips the booking being re-validated.
// Deterministic and safe to call repeatedly.
func (e *DefaultBookingEngine) HasConflict(propertyID, checkIn, checkOut, excludeBookingID string) (bool, error) {
	if _, _, err := parseRange(checkIn, checkOut); err != nil {
		return false, err
	}

	active, err := e.Bookings.GetActiveByProperty(propertyID)
	if err != nil {
		return false, err
	}
	for _, b := range active {
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		if datesOverlap(checkIn, checkOut, b.CheckInDate, b.CheckOutDate) {
			return true, nil
		}
	}
	return false, nil
}

// checkStay validates a candidate stay against the property's night bounds
// and resolved calendar, returning the per-day calendar for pricing.
func (e *DefaultBookingEngine) checkStay(prop *models.Property, checkIn, checkOut string) ([]models.DayAvailability, error) {
	start, end, err := parseRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	nights := nightsBetween(start, end)
	if prop.MinNights > 0 && nights < prop.MinNights {
		return nil, newEngineError(CodeInvalidRange, "stay of %d nights is below the %d-night minimum", nights, prop.MinNights)
	}
	if prop.MaxNights > 0 && nights > prop.MaxNights {
		return nil, newEngineError(CodeInvalidRange, "stay of %d nights exceeds the %d-night maximum", nights, prop.MaxNights)
	}

	days, err := e.ResolveCalendar(prop.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	for _, day := range days {
		if !day.IsAvailable {
			return nil, newEngineError(CodeUnavailable, "property %s is not available on %s", prop.ID, day.Date)
		}
	}
	return days, nil
}
