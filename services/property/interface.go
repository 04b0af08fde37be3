package property

import (
	availabilityRepo "stayhub/database/repository/availability"
	propertyRepo "stayhub/database/repository/property"
	userRepo "stayhub/database/repository/user"
	"stayhub/models"
)

// PropertyService manages host-side listing CRUD and calendar overrides.
// Booking-side reads of the calendar go through the booking engine.
type PropertyService interface {
	Create(hostID string, in models.CreatePropertyInput) (*models.Property, error)
	Update(propertyID, hostID string, in models.UpdatePropertyInput) (*models.Property, error)
	Get(propertyID string) (*models.Property, error)
	Search(params models.PropertySearchParams) ([]models.Property, models.PageInfo, error)
	Delete(propertyID, hostID string) error
	// SetAvailability bulk-upserts per-day overrides for the host's property.
	SetAvailability(propertyID, hostID string, in models.SetAvailabilityInput) error
}

// DefaultPropertyService implements PropertyService.
type DefaultPropertyService struct {
	Repo         propertyRepo.PropertyRepository
	Availability availabilityRepo.AvailabilityRepository
	Users        userRepo.UserRepository
}
