package property

import (
	"stayhub/config"
	"stayhub/models"
	"stayhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func validEnum(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

// Create registers a new listing for the host. New listings start
// unpublished; the host publishes via Update once the calendar is set.
func (s *DefaultPropertyService) Create(hostID string, in models.CreatePropertyInput) (*models.Property, error) {
	if !validEnum(in.PropertyType, models.PropertyTypes) {
		return nil, newServiceError(CodeInvalidInput, "unknown property type %q", in.PropertyType)
	}
	if !validEnum(in.RoomType, models.RoomTypes) {
		return nil, newServiceError(CodeInvalidInput, "unknown room type %q", in.RoomType)
	}

	prop := &models.Property{
		ID:            uuid.New().String(),
		HostID:        hostID,
		Title:         in.Title,
		Description:   in.Description,
		PropertyType:  in.PropertyType,
		RoomType:      in.RoomType,
		Address:       in.Address,
		City:          in.City,
		State:         in.State,
		Country:       in.Country,
		PostalCode:    in.PostalCode,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		MaxGuests:     in.MaxGuests,
		Bedrooms:      in.Bedrooms,
		Beds:          in.Beds,
		Bathrooms:     in.Bathrooms,
		PricePerNight: in.PricePerNight,
		CleaningFee:   in.CleaningFee,
		ServiceFeeBps: config.AppConfig.DefaultServiceFeeBps,
		Currency:      in.Currency,
		MinNights:     in.MinNights,
		MaxNights:     in.MaxNights,
		CheckInTime:   in.CheckInTime,
		CheckOutTime:  in.CheckOutTime,
		IsInstantBook: in.IsInstantBook,
	}
	if prop.Currency == "" {
		prop.Currency = "USD"
	}
	if prop.MinNights == 0 {
		prop.MinNights = 1
	}
	if prop.MaxNights == 0 {
		prop.MaxNights = 365
	}
	if prop.MinNights > prop.MaxNights {
		return nil, newServiceError(CodeInvalidInput, "minNights %d exceeds maxNights %d", prop.MinNights, prop.MaxNights)
	}
	if prop.CheckInTime == "" {
		prop.CheckInTime = "15:00"
	}
	if prop.CheckOutTime == "" {
		prop.CheckOutTime = "11:00"
	}

	if err := s.Repo.Create(prop); err != nil {
		return nil, err
	}

	// First listing makes the account a host.
	if user, err := s.Users.GetByID(hostID); err == nil && user != nil && !user.IsHost {
		user.IsHost = true
		if err := s.Users.Update(user); err != nil {
			utils.GetLogger().Warn("failed to mark user as host",
				zap.String("userID", hostID), zap.Error(err))
		}
	}

	return prop, nil
}

// Update applies partial changes to a listing. Host only.
func (s *DefaultPropertyService) Update(propertyID, hostID string, in models.UpdatePropertyInput) (*models.Property, error) {
	prop, err := s.mustGetOwned(propertyID, hostID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		prop.Title = *in.Title
	}
	if in.Description != nil {
		prop.Description = *in.Description
	}
	if in.PricePerNight != nil {
		if *in.PricePerNight <= 0 {
			return nil, newServiceError(CodeInvalidInput, "pricePerNight must be positive")
		}
		prop.PricePerNight = *in.PricePerNight
	}
	if in.CleaningFee != nil {
		if *in.CleaningFee < 0 {
			return nil, newServiceError(CodeInvalidInput, "cleaningFee cannot be negative")
		}
		prop.CleaningFee = *in.CleaningFee
	}
	if in.MinNights != nil {
		prop.MinNights = *in.MinNights
	}
	if in.MaxNights != nil {
		prop.MaxNights = *in.MaxNights
	}
	if prop.MinNights > prop.MaxNights {
		return nil, newServiceError(CodeInvalidInput, "minNights %d exceeds maxNights %d", prop.MinNights, prop.MaxNights)
	}
	if in.MaxGuests != nil {
		prop.MaxGuests = *in.MaxGuests
	}
	if in.CheckInTime != nil {
		prop.CheckInTime = *in.CheckInTime
	}
	if in.CheckOutTime != nil {
		prop.CheckOutTime = *in.CheckOutTime
	}
	if in.IsPublished != nil {
		prop.IsPublished = *in.IsPublished
	}
	if in.IsInstantBook != nil {
		prop.IsInstantBook = *in.IsInstantBook
	}

	if err := s.Repo.Update(prop); err != nil {
		return nil, err
	}
	return prop, nil
}

// Get returns a listing by id.
func (s *DefaultPropertyService) Get(propertyID string) (*models.Property, error) {
	prop, err := s.Repo.GetByID(propertyID)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, newServiceError(CodeNotFound, "property %s not found", propertyID)
	}
	return prop, nil
}

// Search returns published listings matching the filters.
func (s *DefaultPropertyService) Search(params models.PropertySearchParams) ([]models.Property, models.PageInfo, error) {
	properties, total, err := s.Repo.Search(params)
	if err != nil {
		return nil, models.PageInfo{}, err
	}
	return properties, models.NewPageInfo(params.Page, params.Limit, total), nil
}

// Delete removes a listing and its calendar overrides. Host only.
func (s *DefaultPropertyService) Delete(propertyID, hostID string) error {
	if _, err := s.mustGetOwned(propertyID, hostID); err != nil {
		return err
	}
	if err := s.Repo.Delete(propertyID); err != nil {
		return err
	}
	return s.Availability.DeleteForProperty(propertyID)
}

// mustGetOwned fetches a listing and verifies the actor owns it.
func (s *DefaultPropertyService) mustGetOwned(propertyID, hostID string) (*models.Property, error) {
	prop, err := s.Repo.GetByID(propertyID)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, newServiceError(CodeNotFound, "property %s not found", propertyID)
	}
	if prop.HostID != hostID {
		return nil, newServiceError(CodeForbidden, "property %s does not belong to host %s", propertyID, hostID)
	}
	return prop, nil
}
