package availabilityRepo

import (
	"stayhub/models"
)

// AvailabilityRepository defines methods for per-day calendar overrides.
type AvailabilityRepository interface {
	// GetRange returns the overrides for [start, end) keyed by date.
	// Days without an explicit record are absent from the map.
	GetRange(propertyID, start, end string) (map[string]models.AvailabilityDay, error)
	// BulkSet upserts one override document per entry (keyed by
	// property id + date), overwriting any previous value for that day.
	BulkSet(propertyID string, days []models.AvailabilityDay) error
	// DeleteForProperty removes all overrides of a property (listing removal).
	DeleteForProperty(propertyID string) error
}
