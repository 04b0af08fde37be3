package property

import (
	"time"

	"stayhub/models"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// SetAvailability bulk-upserts per-day overrides for the host's property.
// Each entry overwrites any previous override for that day; days never
// written keep the property defaults.
func (s *DefaultPropertyService) SetAvailability(propertyID, hostID string, in models.SetAvailabilityInput) error {
	if _, err := s.mustGetOwned(propertyID, hostID); err != nil {
		return err
	}

	days := make([]models.AvailabilityDay, 0, len(in.Dates))
	seen := make(map[string]bool, len(in.Dates))
	for _, entry := range in.Dates {
		if _, err := time.ParseInLocation(dateLayout, entry.Date, time.UTC); err != nil {
			return newServiceError(CodeInvalidInput, "invalid date %q", entry.Date)
		}
		if seen[entry.Date] {
			return newServiceError(CodeInvalidInput, "duplicate date %q", entry.Date)
		}
		seen[entry.Date] = true
		if entry.CustomPrice != nil && *entry.CustomPrice <= 0 {
			return newServiceError(CodeInvalidInput, "customPrice for %s must be positive", entry.Date)
		}
		days = append(days, models.AvailabilityDay{
			ID:          uuid.New().String(),
			PropertyID:  propertyID,
			Date:        entry.Date,
			IsAvailable: entry.IsAvailable,
			CustomPrice: entry.CustomPrice,
			Note:        entry.Note,
		})
	}

	return s.Availability.BulkSet(propertyID, days)
}
