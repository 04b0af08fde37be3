package propertyRepo

import (
	"stayhub/models"
)

// PropertyRepository defines methods for listing data access.
type PropertyRepository interface {
	// GetByID retrieves a property by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Property, error)
	// Create inserts a new property record.
	Create(property *models.Property) error
	// Update modifies an existing property record.
	Update(property *models.Property) error
	// Delete removes a property record by its ID.
	Delete(id string) error
	// Search returns published properties matching the filters, paginated,
	// together with the total match count.
	Search(params models.PropertySearchParams) ([]models.Property, int64, error)
}
